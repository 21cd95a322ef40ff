package update

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/notify"
)

func (m Model) handleProfileKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "n":
		m.setNotifications(!m.State.NotificationsEnabled())
	case "L":
		m.logout()
	}
	return m
}

func (m *Model) setNotifications(enabled bool) {
	next, keys, err := m.State.SetNotifications(enabled)
	if !m.apply(next, keys, err) {
		return
	}
	if !enabled {
		m.Status = StatusBar{Text: "notifications off"}
		return
	}
	if m.notifier.RequestPermission() != notify.PermissionGranted {
		m.Status = StatusBar{Text: "notifications on, but the system denied permission"}
		return
	}
	m.Status = StatusBar{Text: "notifications on"}
}

func (m *Model) login() {
	next, keys, err := m.State.Login(m.newID())
	if !m.apply(next, keys, err) {
		return
	}
	m.logger.Info("profile created", "id", m.State.User.ID)
	if m.notifier.Permission() == notify.PermissionDefault {
		m.notifier.RequestPermission()
	}
	m.CurrentView = ViewDashboard
	m.Status = StatusBar{Text: "welcome"}
}

func (m *Model) logout() {
	m.State = m.State.Logout()
	m.Status = StatusBar{Text: "logged out"}
	m.clearStore()
	m.refreshBoard()
	m.Tasks = TasksState{Filter: m.Tasks.Filter, Marked: make(map[string]bool)}
	m.Notes = NotesState{}
	m.Study = StudyState{}
	m.CurrentView = ViewDashboard
}
