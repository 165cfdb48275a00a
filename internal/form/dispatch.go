package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/regform/internal/model"
)

type handlerKey struct {
	field FieldID
	kind  EventKind
}

type handlerFunc func(c *Controller, ctx context.Context, ev Event) error

func dispatchTable() map[handlerKey]handlerFunc {
	return map[handlerKey]handlerFunc{
		{FieldName, EventChange}:         (*Controller).storeValue,
		{FieldName, EventBlur}:           (*Controller).validateOnBlur,
		{FieldEmail, EventChange}:        (*Controller).storeValue,
		{FieldEmail, EventBlur}:          (*Controller).validateOnBlur,
		{FieldJobRole, EventChange}:      (*Controller).onJobRoleChange,
		{FieldOtherJobRole, EventChange}: (*Controller).storeValue,
		{FieldDesign, EventChange}:       (*Controller).onDesignChange,
		{FieldColor, EventChange}:        (*Controller).onColorChange,
		{FieldActivities, EventChange}:   (*Controller).onActivityChange,
		{FieldActivities, EventFocus}:    (*Controller).onActivityFocus,
		{FieldActivities, EventBlur}:     (*Controller).onActivityBlur,
		{FieldPayment, EventChange}:      (*Controller).onPaymentChange,
		{FieldCardNumber, EventChange}:   (*Controller).storeValue,
		{FieldCardNumber, EventBlur}:     (*Controller).validateCardOnBlur,
		{FieldZip, EventChange}:          (*Controller).storeValue,
		{FieldZip, EventBlur}:            (*Controller).validateCardOnBlur,
		{FieldCVV, EventChange}:          (*Controller).storeValue,
		{FieldCVV, EventBlur}:            (*Controller).validateCardOnBlur,
		{FieldForm, EventSubmit}:         (*Controller).onSubmit,
	}
}

func (c *Controller) storeValue(_ context.Context, ev Event) error {
	c.values[ev.Field] = ev.Value
	return nil
}

func (c *Controller) validateOnBlur(_ context.Context, ev Event) error {
	c.validateField(ev.Field)
	return nil
}

// validateCardOnBlur only checks card fields while credit card is the chosen
// payment method.
func (c *Controller) validateCardOnBlur(_ context.Context, ev Event) error {
	if c.creditCardSelected() {
		c.validateField(ev.Field)
	}
	return nil
}

func (c *Controller) onJobRoleChange(_ context.Context, ev Event) error {
	c.values[FieldJobRole] = ev.Value
	c.surface.SetHidden(string(FieldOtherJobRole), ev.Value != model.JobRoleOther)
	return nil
}

func (c *Controller) onDesignChange(_ context.Context, ev Event) error {
	if !c.offersDesign(ev.Value) {
		return fmt.Errorf("form: design %q not offered", ev.Value)
	}
	c.values[FieldDesign] = ev.Value
	c.surface.SetDisabled(string(FieldColor), false)
	for _, color := range c.colors {
		matching := color.Theme == ev.Value
		if !matching && c.values[FieldColor] == color.Value {
			c.values[FieldColor] = ""
		}
		c.surface.SetHidden(ColorRef(color.Value), !matching)
	}
	c.surface.SetText(string(FieldColor), c.values[FieldColor])
	return nil
}

func (c *Controller) offersDesign(value string) bool {
	for _, d := range c.designs {
		if d.Value == value {
			return true
		}
	}
	return false
}

func (c *Controller) onColorChange(_ context.Context, ev Event) error {
	for _, color := range c.VisibleColors() {
		if color.Value == ev.Value {
			c.values[FieldColor] = ev.Value
			c.surface.SetText(string(FieldColor), ev.Value)
			return nil
		}
	}
	return fmt.Errorf("form: color %q not offered for design %q", ev.Value, c.values[FieldDesign])
}

func (c *Controller) onActivityChange(_ context.Context, ev Event) error {
	if err := c.selection.Toggle(ev.Target, ev.Checked); err != nil {
		return err
	}
	c.refreshActivities()
	c.validateField(FieldActivities)
	return nil
}

func (c *Controller) onActivityFocus(_ context.Context, ev Event) error {
	c.surface.SetClass(LabelRef(ev.Target), ClassFocus, true)
	return nil
}

func (c *Controller) onActivityBlur(_ context.Context, ev Event) error {
	c.surface.SetClass(LabelRef(ev.Target), ClassFocus, false)
	return nil
}

func (c *Controller) onPaymentChange(_ context.Context, ev Event) error {
	p, err := model.ParsePaymentMethod(ev.Value)
	if err != nil {
		return err
	}
	c.values[FieldPayment] = string(p)
	c.showPaymentSection(p)
	return nil
}

// onSubmit validates every applicable field before calling the transport.
// Every field is checked even after the first failure so each one reflects
// its own state.
func (c *Controller) onSubmit(ctx context.Context, _ Event) error {
	valid := c.validateField(FieldName)
	valid = c.validateField(FieldEmail) && valid
	valid = c.validateField(FieldActivities) && valid
	if c.creditCardSelected() {
		valid = c.validateField(FieldCardNumber) && valid
		valid = c.validateField(FieldZip) && valid
		valid = c.validateField(FieldCVV) && valid
	}
	if !valid {
		names := make([]string, 0)
		for _, f := range c.InvalidFields() {
			names = append(names, string(f))
		}
		return fmt.Errorf("%w: %s", ErrInvalidForm, strings.Join(names, ", "))
	}
	if err := c.transport.SubmitForm(ctx, c.snapshot()); err != nil {
		return fmt.Errorf("submit form: %w", err)
	}
	c.submissions++
	return nil
}
