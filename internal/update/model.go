package update

import (
	"context"
	"errors"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/sandeepkv93/regform/internal/catalog"
	"github.com/sandeepkv93/regform/internal/form"
)

var ErrAlreadySubmitted = errors.New("update: registration already submitted")

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Next    string
	Prev    string
	Submit  string
	Palette string
	Help    string
	Quit    string
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type Model struct {
	Surface       *SurfaceState
	Cursor        int
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error
	Submitted     bool
	Confirmation  string

	controller        *form.Controller
	transport         form.Transport
	ctx               context.Context
	notificationLimit int
	width             int
	// Bubble components used for text entry and help
	inputs       map[form.FieldID]textinput.Model
	commandInput textinput.Model
	helpModel    help.Model
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// FormEventMsg feeds a single form event straight into the controller.
type FormEventMsg struct {
	Event form.Event
}

type SubmitMsg struct{}

// lastIDReporter is implemented by transports that assign a reference to
// each stored registration.
type lastIDReporter interface {
	LastRegistrationID() string
}

func NewModel(cfg RuntimeConfig, cat catalog.Catalog, transport form.Transport) (Model, error) {
	surface := NewSurfaceState()
	ctrl, err := form.New(cfg.FormConfig(), cat, surface, transport)
	if err != nil {
		return Model{}, err
	}
	limit := cfg.NotificationLimit
	if limit <= 0 {
		limit = DefaultRuntimeConfig().NotificationLimit
	}
	m := Model{
		Surface: surface,
		Status:  StatusBar{Text: "ready", IsError: false},
		Keys: GlobalKeyMap{
			Next:    "tab",
			Prev:    "shift+tab",
			Submit:  "ctrl+s",
			Palette: "/",
			Help:    "?",
			Quit:    "q",
		},
		controller:        ctrl,
		transport:         transport,
		ctx:               context.Background(),
		notificationLimit: limit,
	}
	m.initBubbleComponents()
	m.syncCursorToSurfaceFocus()
	return m, nil
}

func (m Model) Controller() *form.Controller {
	return m.controller
}

// Input returns the current text of a text field's input widget.
func (m Model) Input(field form.FieldID) string {
	return m.inputs[field].Value()
}

func (m *Model) initBubbleComponents() {
	m.inputs = map[form.FieldID]textinput.Model{
		form.FieldName:         newFieldInput("Your full name", 64),
		form.FieldEmail:        newFieldInput("you@example.com", 128),
		form.FieldOtherJobRole: newFieldInput("Your job role", 64),
		form.FieldCardNumber:   newFieldInput("13 to 16 digits", 16),
		form.FieldZip:          newFieldInput("5 digits", 10),
		form.FieldCVV:          newFieldInput("3 digits", 3),
	}
	cvv := m.inputs[form.FieldCVV]
	cvv.EchoMode = textinput.EchoPassword
	cvv.EchoCharacter = '*'
	m.inputs[form.FieldCVV] = cvv

	m.commandInput = textinput.New()
	m.commandInput.Prompt = "/"
	m.commandInput.CharLimit = 256
	m.commandInput.Width = 48

	m.helpModel = help.New()
}

func newFieldInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Prompt = ""
	in.Placeholder = placeholder
	in.CharLimit = limit
	in.Width = 32
	return in
}
