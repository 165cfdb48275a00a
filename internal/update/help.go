package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/sandeepkv93/regform/internal/views"
)

type KeyBinding struct {
	Key    string
	Action string
}

type helpKeyMap struct {
	short []key.Binding
	full  [][]key.Binding
}

func (k helpKeyMap) ShortHelp() []key.Binding  { return k.short }
func (k helpKeyMap) FullHelp() [][]key.Binding { return k.full }

func (m Model) toggleHelp() Model {
	m.HelpVisible = !m.HelpVisible
	if m.HelpVisible {
		m.Status = StatusBar{Text: "help shown", IsError: false}
	} else {
		m.Status = StatusBar{Text: "help hidden", IsError: false}
	}
	return m
}

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	bindings := m.helpBindings()
	var plain []string
	for _, kb := range m.rowBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	return views.RenderHelpPanel(views.HelpPanelData{
		Bindings: plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: bindings,
			full:  [][]key.Binding{bindings},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Next, Action: "next field"},
		{Key: m.Keys.Prev, Action: "previous field"},
		{Key: m.Keys.Submit, Action: "submit registration"},
		{Key: "ctrl+p", Action: "open command palette"},
		{Key: "f1", Action: "toggle help panel"},
		{Key: "ctrl+c", Action: "quit app"},
	}
}

func (m Model) rowBindings() []KeyBinding {
	switch m.currentRow().kind {
	case rowText:
		return []KeyBinding{
			{Key: "type", Action: "edit field"},
			{Key: "enter", Action: "next field"},
		}
	case rowSelect:
		return []KeyBinding{
			{Key: "left/right", Action: "previous/next option"},
			{Key: m.Keys.Palette, Action: "open command palette"},
			{Key: m.Keys.Quit, Action: "quit app"},
		}
	case rowActivity:
		return []KeyBinding{
			{Key: "space", Action: "check/uncheck activity"},
			{Key: m.Keys.Palette, Action: "open command palette"},
			{Key: m.Keys.Quit, Action: "quit app"},
		}
	default:
		return []KeyBinding{
			{Key: "enter", Action: "submit registration"},
			{Key: m.Keys.Quit, Action: "quit app"},
		}
	}
}

func (m Model) helpBindings() []key.Binding {
	out := make([]key.Binding, 0, len(m.globalBindings())+len(m.rowBindings()))
	for _, kb := range m.globalBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	for _, kb := range m.rowBindings() {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
