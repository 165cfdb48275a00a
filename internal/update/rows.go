package update

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/regform/internal/form"
	"github.com/sandeepkv93/regform/internal/model"
	"github.com/sandeepkv93/regform/internal/views"
)

type rowKind int

const (
	rowText rowKind = iota
	rowSelect
	rowActivity
	rowSubmit
)

// focusRow is one stop of the tab order.
type focusRow struct {
	kind       rowKind
	field      form.FieldID
	activityID string
	label      string
}

var paymentNotes = map[model.PaymentMethod]string{
	model.PaymentPayPal:  "You will finish the payment on PayPal once the form is submitted.",
	model.PaymentBitcoin: "You will finish the payment with your Coinbase account once the form is submitted.",
}

// focusRows lists the rows that are currently reachable. Rows whose element
// the controller hid are skipped.
func (m Model) focusRows() []focusRow {
	rows := []focusRow{
		{kind: rowText, field: form.FieldName, label: "Name"},
		{kind: rowText, field: form.FieldEmail, label: "Email"},
		{kind: rowSelect, field: form.FieldJobRole, label: "Job Role"},
	}
	if !m.Surface.IsHidden(string(form.FieldOtherJobRole)) {
		rows = append(rows, focusRow{kind: rowText, field: form.FieldOtherJobRole, label: "Other Job Role"})
	}
	rows = append(rows,
		focusRow{kind: rowSelect, field: form.FieldDesign, label: "Design"},
		focusRow{kind: rowSelect, field: form.FieldColor, label: "Color"},
	)
	for _, e := range m.controller.Entries() {
		rows = append(rows, focusRow{kind: rowActivity, field: form.FieldActivities, activityID: e.ID, label: e.Name})
	}
	rows = append(rows, focusRow{kind: rowSelect, field: form.FieldPayment, label: "I'm going to pay with"})
	if !m.Surface.IsHidden(string(form.SectionCreditCard)) {
		rows = append(rows,
			focusRow{kind: rowText, field: form.FieldCardNumber, label: "Card Number"},
			focusRow{kind: rowText, field: form.FieldZip, label: "Zip Code"},
			focusRow{kind: rowText, field: form.FieldCVV, label: "CVV"},
		)
	}
	return append(rows, focusRow{kind: rowSubmit, field: form.FieldForm, label: "Register"})
}

func (m Model) currentRow() focusRow {
	rows := m.focusRows()
	return rows[clampIndex(m.Cursor, len(rows))]
}

func (m Model) moveFocus(delta int) Model {
	rows := m.focusRows()
	return m.jumpTo(wrapIndex(clampIndex(m.Cursor, len(rows))+delta, len(rows)))
}

// jumpTo blurs the current row and focuses the row at idx.
func (m Model) jumpTo(idx int) Model {
	m.leaveRow(m.currentRow())
	rows := m.focusRows()
	m.Cursor = clampIndex(idx, len(rows))
	m.enterRow(rows[m.Cursor])
	return m
}

func (m *Model) leaveRow(row focusRow) {
	switch row.kind {
	case rowText:
		in := m.inputs[row.field]
		in.Blur()
		m.inputs[row.field] = in
		m.dispatchQuiet(form.Event{Field: row.field, Kind: form.EventBlur})
	case rowActivity:
		m.dispatchQuiet(form.Event{Field: form.FieldActivities, Kind: form.EventBlur, Target: row.activityID})
	}
}

func (m *Model) enterRow(row focusRow) {
	switch row.kind {
	case rowText:
		in := m.inputs[row.field]
		in.Focus()
		m.inputs[row.field] = in
		m.Surface.Focus(string(row.field))
	case rowActivity:
		m.dispatchQuiet(form.Event{Field: form.FieldActivities, Kind: form.EventFocus, Target: row.activityID})
		m.Surface.Focus(row.activityID)
	default:
		m.Surface.Focus(string(row.field))
	}
}

func (m *Model) syncCursorToSurfaceFocus() {
	for i, row := range m.focusRows() {
		if string(row.field) == m.Surface.Focused || (row.kind == rowActivity && row.activityID == m.Surface.Focused) {
			m.Cursor = i
			m.enterRow(row)
			return
		}
	}
}

func (m *Model) focusFirstInvalid() {
	invalid := m.controller.InvalidFields()
	if len(invalid) == 0 {
		return
	}
	for i, row := range m.focusRows() {
		if row.field == invalid[0] {
			*m = m.jumpTo(i)
			return
		}
	}
}

func (m Model) handleTextKey(row focusRow, msg tea.KeyMsg) Model {
	in := m.inputs[row.field]
	before := in.Value()
	switch msg.Type {
	case tea.KeyRunes:
		in.SetValue(before + string(msg.Runes))
		in.CursorEnd()
	case tea.KeySpace:
		in.SetValue(before + " ")
		in.CursorEnd()
	default:
		in, _ = in.Update(msg)
	}
	m.inputs[row.field] = in
	if in.Value() != before {
		m.dispatchReport(form.Event{Field: row.field, Kind: form.EventChange, Value: in.Value()})
	}
	return m
}

func (m Model) selectOptions(field form.FieldID) []string {
	switch field {
	case form.FieldJobRole:
		return model.JobRoles
	case form.FieldDesign:
		out := make([]string, 0, len(m.controller.Designs()))
		for _, d := range m.controller.Designs() {
			out = append(out, d.Value)
		}
		return out
	case form.FieldColor:
		colors := m.controller.VisibleColors()
		out := make([]string, 0, len(colors))
		for _, c := range colors {
			out = append(out, c.Value)
		}
		return out
	case form.FieldPayment:
		out := make([]string, 0, len(model.PaymentMethods))
		for _, p := range model.PaymentMethods {
			out = append(out, string(p))
		}
		return out
	default:
		return nil
	}
}

func (m Model) cycleSelect(row focusRow, delta int) Model {
	if m.Surface.IsDisabled(string(row.field)) {
		m.Status = StatusBar{Text: fmt.Sprintf("%s is unavailable until a design is chosen", strings.ToLower(row.label)), IsError: true}
		return m
	}
	options := m.selectOptions(row.field)
	if len(options) == 0 {
		return m
	}
	idx := indexOf(options, m.controller.Value(row.field))
	switch {
	case idx < 0 && delta > 0:
		idx = 0
	case idx < 0:
		idx = len(options) - 1
	default:
		idx = wrapIndex(idx+delta, len(options))
	}
	m.dispatchReport(form.Event{Field: row.field, Kind: form.EventChange, Value: options[idx]})
	return m
}

func (m Model) toggleActivity(row focusRow) Model {
	entry, ok := m.activityEntry(row.activityID)
	if !ok {
		return m
	}
	m.dispatchReport(form.Event{
		Field:   form.FieldActivities,
		Kind:    form.EventChange,
		Target:  entry.ID,
		Checked: !entry.Checked,
	})
	return m
}

func (m Model) activityEntry(id string) (model.ActivityEntry, bool) {
	for _, e := range m.controller.Entries() {
		if e.ID == id {
			return e, true
		}
	}
	return model.ActivityEntry{}, false
}

// dispatchQuiet forwards focus bookkeeping events. Fields without a handler
// for the event are skipped.
func (m *Model) dispatchQuiet(ev form.Event) {
	if err := m.controller.Dispatch(m.ctx, ev); err != nil && !errors.Is(err, form.ErrUnhandledEvent) {
		m.reportError(err)
	}
}

func (m *Model) dispatchReport(ev form.Event) bool {
	if err := m.controller.Dispatch(m.ctx, ev); err != nil {
		m.reportError(err)
		return false
	}
	return true
}

func (m *Model) reportError(err error) {
	text := err.Error()
	if errors.Is(err, model.ErrActivityBlocked) {
		text = "that activity overlaps one you already picked"
	}
	m.LastError = err
	m.Status = StatusBar{Text: text, IsError: true}
	m.notify("Form", text, "error")
}

func (m Model) selectLabel(field form.FieldID) string {
	value := m.controller.Value(field)
	switch field {
	case form.FieldDesign:
		for _, d := range m.controller.Designs() {
			if d.Value == value {
				return "< " + d.Label + " >"
			}
		}
		return "< Select Theme >"
	case form.FieldColor:
		for _, c := range m.controller.VisibleColors() {
			if c.Value == value {
				return "< " + c.Label + " >"
			}
		}
		if m.Surface.IsDisabled(string(form.FieldColor)) {
			return "Please select a T-shirt theme"
		}
		return "< Select Color >"
	}
	if value == "" {
		return "< Select Job Role >"
	}
	return "< " + value + " >"
}

func (m Model) visibleHint(field form.FieldID) string {
	ref := form.HintRef(field)
	if m.Surface.IsHidden(ref) {
		return ""
	}
	return m.Surface.TextOf(ref)
}

func (m Model) fieldRow(field form.FieldID, label, value string, focused bool) views.RowData {
	ref := string(field)
	return views.RowData{
		Kind:     views.RowField,
		Label:    label,
		Value:    value,
		Focused:  focused,
		Disabled: m.Surface.IsDisabled(ref),
		Valid:    m.Surface.HasClass(ref, form.ClassValid),
		Invalid:  m.Surface.HasClass(ref, form.ClassNotValid),
		Hint:     m.visibleHint(field),
	}
}

func sectionHeading(row focusRow, firstActivity bool) string {
	switch {
	case row.field == form.FieldName:
		return "Basic Info"
	case row.field == form.FieldDesign:
		return "T-Shirt Info"
	case row.kind == rowActivity && firstActivity:
		return "Register for Activities"
	case row.field == form.FieldPayment:
		return "Payment Info"
	default:
		return ""
	}
}

func (m Model) formRows() []views.RowData {
	rows := m.focusRows()
	out := make([]views.RowData, 0, len(rows)+6)
	seenActivity := false
	for i, row := range rows {
		focused := i == m.Cursor
		if heading := sectionHeading(row, !seenActivity); heading != "" {
			out = append(out, views.RowData{Kind: views.RowHeading, Label: heading})
		}
		switch row.kind {
		case rowText:
			out = append(out, m.fieldRow(row.field, row.label, m.inputs[row.field].View(), focused))
		case rowSelect:
			out = append(out, m.fieldRow(row.field, row.label, m.selectLabel(row.field), focused))
			if row.field == form.FieldPayment {
				for _, p := range model.PaymentMethods {
					if note, ok := paymentNotes[p]; ok && !m.Surface.IsHidden(string(form.PaymentSection(p))) {
						out = append(out, views.RowData{Kind: views.RowField, Label: "note", Value: note})
					}
				}
			}
		case rowActivity:
			seenActivity = true
			entry, _ := m.activityEntry(row.activityID)
			label := form.LabelRef(row.activityID)
			out = append(out, views.RowData{
				Kind:     views.RowActivity,
				Label:    entry.Name,
				Detail:   activityDetail(entry),
				Checked:  entry.Checked,
				Focused:  focused || m.Surface.HasClass(label, form.ClassFocus),
				Disabled: m.Surface.HasClass(label, form.ClassDisabled),
			})
			if i+1 < len(rows) && rows[i+1].kind != rowActivity {
				cost := m.fieldRow(form.FieldActivities, "Cost", m.Surface.TextOf(string(form.FieldActivitiesCost)), false)
				out = append(out, cost)
			}
		case rowSubmit:
			out = append(out, views.RowData{Kind: views.RowButton, Label: row.label, Focused: focused})
		}
	}
	return out
}
