package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

func (m Model) handleDashboardKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case " ", "c":
		primary, ok := m.Board.Primary()
		if !ok {
			m.Status = StatusBar{Text: "nothing in progress"}
			return m
		}
		next, keys := m.State.ToggleTaskStatus(primary.ID)
		if m.apply(next, keys, nil) {
			m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", primary.Title)}
		}
	}
	return m
}

func (m Model) greeting() string {
	name := m.profile().Name
	switch h := m.Now.Hour(); {
	case h < 12:
		return fmt.Sprintf("Good morning, %s", name)
	case h < 17:
		return fmt.Sprintf("Good afternoon, %s", name)
	default:
		return fmt.Sprintf("Good evening, %s", name)
	}
}
