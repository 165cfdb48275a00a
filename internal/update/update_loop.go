package update

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/regform/internal/form"
	"github.com/sandeepkv93/regform/internal/views"
)

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		keyStr := typed.String()
		if keyStr == "ctrl+c" {
			m.Quitting = true
			return m, tea.Quit
		}
		if m.Palette.Active {
			return m.handlePaletteKey(typed), nil
		}

		switch keyStr {
		case m.Keys.Next, "down":
			return m.moveFocus(1), nil
		case m.Keys.Prev, "up":
			return m.moveFocus(-1), nil
		case m.Keys.Submit:
			return m.submit(), nil
		case "ctrl+p":
			return m.openPalette(), nil
		case "f1":
			return m.toggleHelp(), nil
		}

		row := m.currentRow()
		if row.kind == rowText {
			if keyStr == "enter" {
				return m.moveFocus(1), nil
			}
			return m.handleTextKey(row, typed), nil
		}

		switch keyStr {
		case m.Keys.Palette:
			return m.openPalette(), nil
		case m.Keys.Help:
			return m.toggleHelp(), nil
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		}
		switch row.kind {
		case rowSelect:
			switch keyStr {
			case "left", "h":
				return m.cycleSelect(row, -1), nil
			case "right", "l", " ", "enter":
				return m.cycleSelect(row, 1), nil
			}
		case rowActivity:
			switch keyStr {
			case " ", "x", "enter":
				return m.toggleActivity(row), nil
			}
		case rowSubmit:
			if keyStr == "enter" || keyStr == " " {
				return m.submit(), nil
			}
		}
	case tea.WindowSizeMsg:
		m.width = typed.Width
		return m, nil
	case FormEventMsg:
		m.dispatchReport(typed.Event)
		return m, nil
	case SubmitMsg:
		return m.submit(), nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		m.notify("Status", typed.Text, levelFromError(typed.IsError))
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		m.LastError = typed.Err
		if typed.Err != nil {
			m.Status = StatusBar{Text: typed.Err.Error(), IsError: true}
			m.notify("Error", typed.Err.Error(), "error")
		}
		return m, nil
	}

	return m, nil
}

func (m Model) submit() Model {
	text, err := m.submitForm()
	if err != nil {
		m.Status = StatusBar{Text: err.Error(), IsError: true}
		m.notify("Registration", err.Error(), "error")
		return m
	}
	m.Status = StatusBar{Text: text, IsError: false}
	m.notify("Registration", text, "info")
	return m
}

// submitForm runs the controller's submit flow. A rejected form moves the
// cursor to the first invalid field.
func (m *Model) submitForm() (string, error) {
	if m.Submitted {
		return "", ErrAlreadySubmitted
	}
	err := m.controller.Submit(m.ctx)
	if err != nil {
		if errors.Is(err, form.ErrInvalidForm) {
			m.focusFirstInvalid()
		} else {
			m.LastError = err
			log.Printf("submit failed: %v", err)
		}
		return "", err
	}
	data := m.confirmationData()
	m.Submitted = true
	m.Confirmation = views.RenderMarkdown(views.ConfirmationMarkdown(data))
	return fmt.Sprintf("registration submitted: %s", data.CostLabel), nil
}

func (m Model) confirmationData() views.ConfirmationData {
	data := views.ConfirmationData{
		Name:      strings.TrimSpace(m.controller.Value(form.FieldName)),
		Email:     strings.TrimSpace(m.controller.Value(form.FieldEmail)),
		Payment:   string(m.controller.PaymentMethod()),
		CostLabel: m.controller.Aggregate().CostLabel(),
	}
	for _, e := range m.controller.Entries() {
		if e.Checked {
			data.Activities = append(data.Activities, e.Name)
		}
	}
	if r, ok := m.transport.(lastIDReporter); ok {
		data.ID = r.LastRegistrationID()
	}
	return data
}

func (m Model) View() string {
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	right := []string{m.renderSummary()}
	if m.Submitted && m.Confirmation != "" {
		right = append([]string{m.Confirmation}, right...)
	}
	if palette := views.RenderCommandPalette(m.Palette.Active, m.Palette.Input); palette != "" {
		right = append(right, palette)
	}
	if help := m.renderHelpIfVisible(); help != "" {
		right = append(right, help)
	}

	return views.RenderApp(views.AppData{
		Header:       fmt.Sprintf("regform | focus: %s | %s", m.Surface.Focused, m.Surface.TextOf(string(form.FieldActivitiesCost))),
		LeftPane:     views.RenderFormPanel(m.formRows()),
		RightPane:    strings.Join(right, "\n\n"),
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Width:        m.width,
		Notification: m.renderNotificationsView(),
		Footer:       fmt.Sprintf("keys: %s/%s move | space toggle | left/right choose | %s submit | %s cmd | %s help | ctrl+c quit", m.Keys.Next, m.Keys.Prev, m.Keys.Submit, m.Keys.Palette, m.Keys.Help),
	})
}

func (m Model) renderSummary() string {
	agg := m.controller.Aggregate()
	data := views.SummaryPanelData{
		CostLabel:     m.Surface.TextOf(string(form.FieldActivitiesCost)),
		SelectedCount: agg.TotalSelected,
		Payment:       string(m.controller.PaymentMethod()),
		Submissions:   m.controller.Submissions(),
	}
	data.Blocked = m.blockedNames()
	for _, f := range m.controller.InvalidFields() {
		data.Invalid = append(data.Invalid, string(f))
	}
	return views.RenderSummaryPanel(data)
}

func (m Model) blockedNames() []string {
	out := make([]string, 0)
	for _, e := range m.controller.Entries() {
		if m.controller.Blocked(e.ID) {
			out = append(out, e.Name)
		}
	}
	return out
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	last := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(last.Level, fmt.Sprintf("%s: %s", last.Title, last.Body))
}
