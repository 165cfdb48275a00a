package views

import (
	"fmt"
	"strings"
)

type RowKind string

const (
	RowHeading  RowKind = "heading"
	RowField    RowKind = "field"
	RowActivity RowKind = "activity"
	RowButton   RowKind = "button"
)

// RowData is one line of the form panel as decided by the controller.
type RowData struct {
	Kind     RowKind
	Label    string
	Value    string
	Detail   string
	Checked  bool
	Focused  bool
	Disabled bool
	Valid    bool
	Invalid  bool
	Hint     string
}

type SummaryPanelData struct {
	CostLabel     string
	SelectedCount int
	Payment       string
	Blocked       []string
	Invalid       []string
	Submissions   int
}

type HelpPanelData struct {
	Bindings []string
	HelpView string
}

type ConfirmationData struct {
	ID         string
	Name       string
	Email      string
	Payment    string
	CostLabel  string
	Activities []string
}

func RenderFormPanel(rows []RowData) string {
	var b strings.Builder
	b.WriteString("registration:\n")
	for _, row := range rows {
		b.WriteString(renderRow(row))
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

func renderRow(row RowData) string {
	cursor := " "
	if row.Focused {
		cursor = ">"
	}
	switch row.Kind {
	case RowHeading:
		return "\n" + headerStyle.Render(row.Label)
	case RowActivity:
		box := "[ ]"
		if row.Checked {
			box = "[x]"
		}
		line := fmt.Sprintf("%s %s %s", box, row.Label, row.Detail)
		if row.Disabled {
			line = disabledStyle.Render(line)
		} else if row.Focused {
			line = focusStyle.Render(line)
		}
		return cursor + " " + line
	case RowButton:
		label := "[ " + row.Label + " ]"
		if row.Focused {
			label = focusStyle.Render(label)
		}
		return cursor + " " + label
	default:
		line := fmt.Sprintf("%s: %s", row.Label, row.Value)
		if row.Disabled {
			line = disabledStyle.Render(line)
		}
		switch {
		case row.Invalid:
			line += " " + hintStyle.Render("!")
		case row.Valid:
			line += " " + validStyle.Render("ok")
		}
		out := cursor + " " + line
		if row.Invalid && row.Hint != "" {
			out += "\n    " + hintStyle.Render(row.Hint)
		}
		return out
	}
}

func RenderSummaryPanel(data SummaryPanelData) string {
	var b strings.Builder
	b.WriteString("summary:\n")
	b.WriteString(data.CostLabel + "\n")
	b.WriteString(fmt.Sprintf("activities selected: %d\n", data.SelectedCount))
	b.WriteString(fmt.Sprintf("payment: %s\n", data.Payment))
	if len(data.Blocked) > 0 {
		b.WriteString(fmt.Sprintf("blocked: %s\n", strings.Join(data.Blocked, ", ")))
	}
	if len(data.Invalid) > 0 {
		b.WriteString(fmt.Sprintf("needs attention: %s\n", strings.Join(data.Invalid, ", ")))
	}
	if data.Submissions > 0 {
		b.WriteString(fmt.Sprintf("submitted: %d\n", data.Submissions))
	}
	return strings.TrimSpace(b.String())
}

// ConfirmationMarkdown is the receipt shown after a successful submission.
func ConfirmationMarkdown(data ConfirmationData) string {
	var b strings.Builder
	b.WriteString("# Registration received\n\n")
	if data.ID != "" {
		b.WriteString(fmt.Sprintf("Reference `%s`\n\n", data.ID))
	}
	b.WriteString(fmt.Sprintf("- **Name:** %s\n", data.Name))
	b.WriteString(fmt.Sprintf("- **Email:** %s\n", data.Email))
	b.WriteString(fmt.Sprintf("- **Payment:** %s\n", data.Payment))
	b.WriteString(fmt.Sprintf("- **%s**\n", data.CostLabel))
	if len(data.Activities) > 0 {
		b.WriteString("\n## Activities\n\n")
		for _, a := range data.Activities {
			b.WriteString("- " + a + "\n")
		}
	}
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s\n%s",
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}
