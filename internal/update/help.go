package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"github.com/sandeepkv93/dayboard/internal/views"
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

func (m Model) renderHelpIfVisible() string {
	if !m.HelpVisible {
		return ""
	}
	return m.renderHelpView()
}

func (m Model) renderHelpView() string {
	var plain []string
	for _, kb := range m.viewBindings() {
		plain = append(plain, fmt.Sprintf("- %s: %s", kb.Key, kb.Action))
	}
	global := m.bindingsFor(m.globalBindings())
	return views.RenderHelpPanel(views.HelpPanelData{
		CurrentView: string(m.CurrentView),
		Bindings:    plain,
		HelpView: m.helpModel.View(helpKeyMap{
			short: global,
			full:  [][]key.Binding{global, m.bindingsFor(m.viewBindings())},
		}),
	})
}

func (m Model) globalBindings() []KeyBinding {
	return []KeyBinding{
		{Key: m.Keys.Dashboard, Action: "dashboard"},
		{Key: m.Keys.Tasks, Action: "tasks"},
		{Key: m.Keys.Study, Action: "study"},
		{Key: m.Keys.Notes, Action: "notes"},
		{Key: m.Keys.Stats, Action: "stats"},
		{Key: m.Keys.Profile, Action: "profile"},
		{Key: "/", Action: "command palette"},
		{Key: m.Keys.Theme, Action: "toggle theme"},
		{Key: m.Keys.Help, Action: "toggle help"},
		{Key: m.Keys.Quit, Action: "quit"},
	}
}

func (m Model) viewBindings() []KeyBinding {
	switch m.CurrentView {
	case ViewDashboard:
		return []KeyBinding{
			{Key: "space", Action: "complete the current task"},
		}
	case ViewTasks:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "f", Action: "cycle active/missed/archive"},
			{Key: "space", Action: "mark done"},
			{Key: "v", Action: "toggle select mode"},
			{Key: "x/a", Action: "mark one / mark all"},
			{Key: "d", Action: "delete (marked or current)"},
		}
	case ViewStudy:
		return []KeyBinding{
			{Key: "tab", Action: "switch between plans and sessions"},
			{Key: "j/k", Action: "move cursor"},
			{Key: "d", Action: "delete plan and its sessions, or sessions"},
			{Key: "space", Action: "complete session"},
			{Key: "v/x", Action: "select mode / mark session"},
		}
	case ViewNotes:
		return []KeyBinding{
			{Key: "j/k", Action: "move cursor"},
			{Key: "e", Action: "edit note body"},
			{Key: "ctrl+s/esc", Action: "save / cancel edit"},
			{Key: "d", Action: "delete note"},
		}
	case ViewProfile:
		return []KeyBinding{
			{Key: "n", Action: "toggle notifications"},
			{Key: "L", Action: "log out and clear data"},
		}
	default:
		return []KeyBinding{{Key: "-", Action: "no contextual bindings"}}
	}
}

func (m Model) bindingsFor(kbs []KeyBinding) []key.Binding {
	out := make([]key.Binding, 0, len(kbs))
	for _, kb := range kbs {
		out = append(out, key.NewBinding(key.WithKeys(kb.Key), key.WithHelp(kb.Key, kb.Action)))
	}
	return out
}
