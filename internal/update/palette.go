package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/regform/internal/commands"
	"github.com/sandeepkv93/regform/internal/form"
)

var textFields = map[form.FieldID]bool{
	form.FieldName:         true,
	form.FieldEmail:        true,
	form.FieldOtherJobRole: true,
	form.FieldCardNumber:   true,
	form.FieldZip:          true,
	form.FieldCVV:          true,
}

func (m Model) openPalette() Model {
	m.Palette.Active = true
	m.Palette.Input = ""
	m.commandInput.Focus()
	m.commandInput.SetValue("")
	m.Status = StatusBar{Text: "command palette active", IsError: false}
	return m
}

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		m.Status = StatusBar{Text: "command palette closed", IsError: false}
	case "enter":
		m.Palette.Input = m.commandInput.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandInput.SetValue(m.commandInput.Value() + string(msg.Runes))
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		if msg.Type == tea.KeySpace {
			m.commandInput.SetValue(m.commandInput.Value() + " ")
			m.Palette.Input = m.commandInput.Value()
			return m
		}
		var cmd tea.Cmd
		m.commandInput, cmd = m.commandInput.Update(msg)
		_ = cmd
		m.Palette.Input = m.commandInput.Value()
	}
	return m
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	cmd, err := commands.Parse(raw)
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.Palette.Active = false
		m.Palette.Input = ""
		m.commandInput.SetValue("")
		m.commandInput.Blur()
		return m
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		Set: func(a commands.SetArgs) (commands.Result, error) {
			return m.applySet(a)
		},
		Toggle: func(a commands.ToggleArgs) (commands.Result, error) {
			entry, ok := m.activityEntry(a.ActivityID)
			if !ok {
				return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown activity: %s", a.ActivityID)}
			}
			checked := !entry.Checked
			if a.Checked != nil {
				checked = *a.Checked
			}
			if err := m.controller.Dispatch(m.ctx, form.Event{Field: form.FieldActivities, Kind: form.EventChange, Target: entry.ID, Checked: checked}); err != nil {
				return commands.Result{}, err
			}
			verb := "unchecked"
			if checked {
				verb = "checked"
			}
			return commands.Result{Message: fmt.Sprintf("%s %s (%s)", verb, entry.Name, m.controller.Aggregate().CostLabel())}, nil
		},
		Pay: func(a commands.PayArgs) (commands.Result, error) {
			if err := m.controller.Dispatch(m.ctx, form.Event{Field: form.FieldPayment, Kind: form.EventChange, Value: a.Method}); err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: fmt.Sprintf("payment method: %s", m.controller.PaymentMethod())}, nil
		},
		Submit: func() (commands.Result, error) {
			text, err := m.submitForm()
			if err != nil {
				return commands.Result{}, err
			}
			return commands.Result{Message: text}, nil
		},
		Show: func(s commands.ShowArgs) (commands.Result, error) {
			return m.showSubject(s.Subject)
		},
	})
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Command Failed", err.Error(), "error")
	} else {
		m.Status = StatusBar{Text: res.Message, IsError: false}
		m.notify("Command", res.Message, "info")
	}

	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandInput.SetValue("")
	m.commandInput.Blur()
	return m
}

// applySet writes a field the way typing and leaving it would: text fields
// get a change followed by a blur, select fields a single change.
func (m *Model) applySet(a commands.SetArgs) (commands.Result, error) {
	field := form.FieldID(a.Field)
	if textFields[field] {
		in := m.inputs[field]
		in.SetValue(a.Value)
		in.CursorEnd()
		m.inputs[field] = in
		// The widget may truncate to its char limit; the controller gets what is shown.
		if err := m.controller.Dispatch(m.ctx, form.Event{Field: field, Kind: form.EventChange, Value: in.Value()}); err != nil {
			return commands.Result{}, err
		}
		if err := m.controller.Dispatch(m.ctx, form.Event{Field: field, Kind: form.EventBlur}); err != nil && !errors.Is(err, form.ErrUnhandledEvent) {
			return commands.Result{}, err
		}
		if st, ok := m.controller.FieldState(field); ok && !st.Valid {
			return commands.Result{Message: fmt.Sprintf("%s set: %s", field, st.Hint)}, nil
		}
		return commands.Result{Message: fmt.Sprintf("%s set", field)}, nil
	}

	switch field {
	case form.FieldJobRole, form.FieldDesign, form.FieldColor, form.FieldPayment:
	default:
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown field: %s", a.Field)}
	}
	if m.Surface.IsDisabled(string(field)) {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("%s is unavailable until a design is chosen", field)}
	}
	options := m.selectOptions(field)
	if indexOf(options, a.Value) < 0 {
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("%s must be one of: %s", field, strings.Join(options, ", "))}
	}
	if err := m.controller.Dispatch(m.ctx, form.Event{Field: field, Kind: form.EventChange, Value: a.Value}); err != nil {
		return commands.Result{}, err
	}
	return commands.Result{Message: fmt.Sprintf("%s set to %s", field, a.Value)}, nil
}

func (m *Model) showSubject(subject string) (commands.Result, error) {
	switch subject {
	case "total", "summary":
		agg := m.controller.Aggregate()
		return commands.Result{Message: fmt.Sprintf("%s across %d activities", agg.CostLabel(), agg.TotalSelected)}, nil
	case "conflicts", "blocked":
		names := m.blockedNames()
		if len(names) == 0 {
			return commands.Result{Message: "no blocked activities"}, nil
		}
		return commands.Result{Message: fmt.Sprintf("blocked: %s", strings.Join(names, ", "))}, nil
	case "invalid", "errors":
		invalid := m.controller.InvalidFields()
		if len(invalid) == 0 {
			return commands.Result{Message: "no invalid fields"}, nil
		}
		names := make([]string, 0, len(invalid))
		for _, f := range invalid {
			names = append(names, string(f))
		}
		return commands.Result{Message: fmt.Sprintf("invalid: %s", strings.Join(names, ", "))}, nil
	case "colors":
		options := m.selectOptions(form.FieldColor)
		if len(options) == 0 {
			return commands.Result{Message: "choose a design to see colors"}, nil
		}
		return commands.Result{Message: fmt.Sprintf("colors: %s", strings.Join(options, ", "))}, nil
	case "help":
		m.HelpVisible = true
		return commands.Result{Message: "help shown"}, nil
	default:
		return commands.Result{}, &commands.CommandError{Code: commands.ErrCodeInvalidArgument, Message: fmt.Sprintf("unknown show subject: %s", subject)}
	}
}
