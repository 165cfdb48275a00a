package form

import (
	"context"
	"fmt"
	"strings"

	"github.com/sandeepkv93/regform/internal/catalog"
	"github.com/sandeepkv93/regform/internal/model"
	"github.com/sandeepkv93/regform/internal/validate"
)

// Controller reconciles form state after every event and reflects the result
// onto a Surface. It is not safe for concurrent use; events are expected to
// arrive one at a time from a single loop.
type Controller struct {
	cfg         Config
	surface     Surface
	transport   Transport
	selection   *model.Selection
	designs     []model.ShirtDesign
	colors      []model.ShirtColor
	values      map[FieldID]string
	states      map[FieldID]model.FieldState
	conflicts   model.ConflictSet
	zip         validate.Func
	handlers    map[handlerKey]handlerFunc
	submissions int
}

func New(cfg Config, cat catalog.Catalog, surface Surface, transport Transport) (*Controller, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}
	if transport == nil {
		return nil, ErrNilTransport
	}
	sel, err := model.NewSelection(cat.Activities)
	if err != nil {
		return nil, fmt.Errorf("build selection: %w", err)
	}
	if !cfg.DefaultPayment.IsValid() {
		cfg.DefaultPayment = model.PaymentCreditCard
	}

	c := &Controller{
		cfg:       cfg,
		surface:   surface,
		transport: transport,
		selection: sel,
		designs:   cat.Designs,
		colors:    cat.Colors,
		values:    make(map[FieldID]string),
		states:    make(map[FieldID]model.FieldState),
		conflicts: make(model.ConflictSet),
		zip:       validate.Zip(cfg.StrictZip),
		handlers:  dispatchTable(),
	}
	c.values[FieldPayment] = string(cfg.DefaultPayment)

	c.surface.Focus(string(FieldName))
	c.surface.SetHidden(string(FieldOtherJobRole), true)
	c.surface.SetDisabled(string(FieldColor), true)
	for _, color := range c.colors {
		c.surface.SetHidden(ColorRef(color.Value), true)
	}
	c.showPaymentSection(cfg.DefaultPayment)
	c.refreshActivities()
	return c, nil
}

// Dispatch routes one event to its handler.
func (c *Controller) Dispatch(ctx context.Context, ev Event) error {
	h, ok := c.handlers[handlerKey{field: ev.Field, kind: ev.Kind}]
	if !ok {
		return fmt.Errorf("%w: %s/%s", ErrUnhandledEvent, ev.Field, ev.Kind)
	}
	return h(c, ctx, ev)
}

// Submit is shorthand for dispatching the form submit event.
func (c *Controller) Submit(ctx context.Context) error {
	return c.Dispatch(ctx, Event{Field: FieldForm, Kind: EventSubmit})
}

func (c *Controller) Value(field FieldID) string {
	return c.values[field]
}

func (c *Controller) FieldState(field FieldID) (model.FieldState, bool) {
	st, ok := c.states[field]
	return st, ok
}

func (c *Controller) PaymentMethod() model.PaymentMethod {
	return model.PaymentMethod(c.values[FieldPayment])
}

func (c *Controller) Aggregate() model.SelectionAggregate {
	return c.selection.Aggregate()
}

func (c *Controller) Entries() []model.ActivityEntry {
	return c.selection.Entries()
}

// Conflicts returns a copy of the current conflict set.
func (c *Controller) Conflicts() model.ConflictSet {
	out := make(model.ConflictSet, len(c.conflicts))
	for id, blocked := range c.conflicts {
		out[id] = blocked
	}
	return out
}

func (c *Controller) Blocked(id string) bool {
	return c.conflicts.Blocked(id)
}

func (c *Controller) Designs() []model.ShirtDesign {
	return c.designs
}

// VisibleColors lists the colors offered for the current design. It is empty
// until a design is chosen.
func (c *Controller) VisibleColors() []model.ShirtColor {
	design := c.values[FieldDesign]
	if design == "" {
		return nil
	}
	return model.ColorsForDesign(c.colors, design)
}

// Submissions counts successful transport calls.
func (c *Controller) Submissions() int {
	return c.submissions
}

// InvalidFields lists fields whose last validation failed, in form order.
// Card fields are skipped unless credit card is the chosen payment method.
func (c *Controller) InvalidFields() []FieldID {
	out := make([]FieldID, 0)
	for _, f := range validationOrder {
		if isCardField(f) && !c.creditCardSelected() {
			continue
		}
		if st, ok := c.states[f]; ok && !st.Valid {
			out = append(out, f)
		}
	}
	return out
}

var validationOrder = []FieldID{FieldName, FieldEmail, FieldActivities, FieldCardNumber, FieldZip, FieldCVV}

func isCardField(f FieldID) bool {
	return f == FieldCardNumber || f == FieldZip || f == FieldCVV
}

func (c *Controller) creditCardSelected() bool {
	return c.PaymentMethod() == model.PaymentCreditCard
}

func (c *Controller) validateField(field FieldID) bool {
	var r validate.Result
	switch field {
	case FieldName:
		r = validate.Name(c.values[FieldName])
	case FieldEmail:
		r = validate.Email(c.values[FieldEmail])
	case FieldActivities:
		r = validate.Activities(c.selection.Aggregate().TotalSelected)
	case FieldCardNumber:
		r = validate.CreditCard(c.values[FieldCardNumber])
	case FieldZip:
		r = c.zip(c.values[FieldZip])
	case FieldCVV:
		r = validate.CVV(c.values[FieldCVV])
	default:
		return true
	}
	c.reflectValidity(field, r)
	return r.Valid
}

func (c *Controller) reflectValidity(field FieldID, r validate.Result) {
	c.states[field] = model.FieldState{Valid: r.Valid, Hint: r.Hint}
	ref := string(field)
	c.surface.SetClass(ref, ClassNotValid, !r.Valid)
	c.surface.SetClass(ref, ClassValid, r.Valid)
	c.surface.SetHidden(HintRef(field), r.Valid)
	if !r.Valid && r.Hint != "" {
		c.surface.SetText(HintRef(field), r.Hint)
	}
}

func (c *Controller) showPaymentSection(p model.PaymentMethod) {
	for _, m := range model.PaymentMethods {
		c.surface.SetHidden(string(PaymentSection(m)), m != p)
	}
}

// refreshActivities rebuilds the aggregate and the conflict set from the
// selection and reflects only the entries whose blocked state changed.
func (c *Controller) refreshActivities() {
	entries := c.selection.Entries()
	agg := model.Recompute(entries)
	next := model.ResolveConflicts(entries)
	for _, ch := range model.DiffConflicts(entries, c.conflicts, next) {
		c.surface.SetDisabled(ch.ID, ch.Blocked)
		c.surface.SetClass(LabelRef(ch.ID), ClassDisabled, ch.Blocked)
	}
	c.conflicts = next
	c.surface.SetText(string(FieldActivitiesCost), agg.CostLabel())
}

func (c *Controller) snapshot() Submission {
	return Submission{
		Name:          c.values[FieldName],
		Email:         c.values[FieldEmail],
		JobRole:       c.values[FieldJobRole],
		OtherJobRole:  strings.TrimSpace(c.values[FieldOtherJobRole]),
		Design:        c.values[FieldDesign],
		Color:         c.values[FieldColor],
		PaymentMethod: c.PaymentMethod(),
		CardNumber:    c.values[FieldCardNumber],
		Zip:           c.values[FieldZip],
		CVV:           c.values[FieldCVV],
		ActivityIDs:   c.selection.CheckedIDs(),
		Aggregate:     c.selection.Aggregate(),
	}
}
