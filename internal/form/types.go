package form

import (
	"context"
	"errors"

	"github.com/sandeepkv93/regform/internal/model"
)

var (
	ErrInvalidForm    = errors.New("form: invalid form")
	ErrUnhandledEvent = errors.New("form: unhandled event")
	ErrNilSurface     = errors.New("form: nil surface")
	ErrNilTransport   = errors.New("form: nil transport")
)

// FieldID names an input or a reflected element of the form.
type FieldID string

const (
	FieldName           FieldID = "name"
	FieldEmail          FieldID = "email"
	FieldJobRole        FieldID = "title"
	FieldOtherJobRole   FieldID = "other-job-role"
	FieldDesign         FieldID = "design"
	FieldColor          FieldID = "color"
	FieldActivities     FieldID = "activities-box"
	FieldActivitiesCost FieldID = "activities-cost"
	FieldPayment        FieldID = "payment"
	FieldCardNumber     FieldID = "cc-num"
	FieldZip            FieldID = "zip"
	FieldCVV            FieldID = "cvv"
	FieldForm           FieldID = "form"

	SectionCreditCard FieldID = "credit-card"
	SectionPayPal     FieldID = "paypal"
	SectionBitcoin    FieldID = "bitcoin"
)

const (
	ClassValid    = "valid"
	ClassNotValid = "not-valid"
	ClassDisabled = "disabled"
	ClassFocus    = "focus"
)

// HintRef is the element that carries the hint text of a field.
func HintRef(field FieldID) string { return string(field) + "-hint" }

// LabelRef is the container element of an activity checkbox.
func LabelRef(activityID string) string { return activityID + "-label" }

// ColorRef is the option element of a shirt color.
func ColorRef(value string) string { return "color:" + value }

// PaymentSection maps a payment method to the section that describes it.
func PaymentSection(p model.PaymentMethod) FieldID {
	return FieldID(p)
}

type EventKind string

const (
	EventChange EventKind = "change"
	EventFocus  EventKind = "focus"
	EventBlur   EventKind = "blur"
	EventSubmit EventKind = "submit"
)

// Event is one notification from the input surface. Target and Checked are
// only used by activity events.
type Event struct {
	Field   FieldID
	Kind    EventKind
	Value   string
	Target  string
	Checked bool
}

// Surface receives every presentation decision the controller makes. The
// controller never reads from it.
type Surface interface {
	SetHidden(ref string, hidden bool)
	SetDisabled(ref string, disabled bool)
	SetText(ref string, text string)
	SetClass(ref string, class string, on bool)
	Focus(ref string)
}

// Submission is the snapshot handed to the transport once the form is valid.
type Submission struct {
	Name          string
	Email         string
	JobRole       string
	OtherJobRole  string
	Design        string
	Color         string
	PaymentMethod model.PaymentMethod
	CardNumber    string
	Zip           string
	CVV           string
	ActivityIDs   []string
	Aggregate     model.SelectionAggregate
}

type Transport interface {
	SubmitForm(ctx context.Context, s Submission) error
}

// TransportFunc adapts a function to Transport.
type TransportFunc func(ctx context.Context, s Submission) error

func (f TransportFunc) SubmitForm(ctx context.Context, s Submission) error { return f(ctx, s) }

type Config struct {
	StrictZip      bool
	DefaultPayment model.PaymentMethod
}

func DefaultConfig() Config {
	return Config{DefaultPayment: model.PaymentCreditCard}
}
