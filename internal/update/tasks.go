package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
)

func (m Model) visibleTasks() []model.TaskInstance {
	return planner.List(m.State.DailyTasks, planner.ScopeGeneral, m.Tasks.Filter, m.State.CurrentDate, m.nowClock())
}

func (m Model) currentTask() (model.TaskInstance, bool) {
	items := m.visibleTasks()
	if len(items) == 0 || m.Tasks.Cursor < 0 || m.Tasks.Cursor >= len(items) {
		return model.TaskInstance{}, false
	}
	return items[m.Tasks.Cursor], true
}

func (m Model) handleTasksKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "up", "k":
		if m.Tasks.Cursor > 0 {
			m.Tasks.Cursor--
		}
	case "down", "j":
		if m.Tasks.Cursor < len(m.visibleTasks())-1 {
			m.Tasks.Cursor++
		}
	case "f":
		m.Tasks.Filter = m.Tasks.Filter.Next()
		m.Tasks.Cursor = 0
		m.Status = StatusBar{Text: fmt.Sprintf("showing %s tasks", m.Tasks.Filter)}
	case " ":
		m.completeCurrentTask()
	case "v":
		m.Tasks.SelectMode = !m.Tasks.SelectMode
		m.Tasks.Marked = make(map[string]bool)
		if m.Tasks.SelectMode {
			m.Status = StatusBar{Text: "select mode: [x] mark, [d] delete marked, [v] cancel"}
		} else {
			m.Status = StatusBar{Text: "select mode off"}
		}
	case "x":
		if m.Tasks.SelectMode {
			m.toggleMarkAtCursor()
		}
	case "a":
		if m.Tasks.SelectMode {
			for _, t := range m.visibleTasks() {
				m.Tasks.Marked[t.ID] = true
			}
		}
	case "d":
		m.deleteTasksFromList()
	}
	m.Tasks.Cursor = clampCursor(m.Tasks.Cursor, len(m.visibleTasks()))
	return m
}

func (m *Model) toggleMarkAtCursor() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	if m.Tasks.Marked[t.ID] {
		delete(m.Tasks.Marked, t.ID)
		return
	}
	m.Tasks.Marked[t.ID] = true
}

func (m *Model) completeCurrentTask() {
	t, ok := m.currentTask()
	if !ok {
		return
	}
	if t.IsDone() {
		m.Status = StatusBar{Text: fmt.Sprintf("%s is already done", t.Title)}
		return
	}
	next, keys := m.State.ToggleTaskStatus(t.ID)
	if m.apply(next, keys, nil) {
		m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", t.Title)}
	}
}

// deleteTasksFromList removes the marked tasks in select mode, otherwise the
// task under the cursor.
func (m *Model) deleteTasksFromList() {
	var ids []string
	if m.Tasks.SelectMode {
		for id, marked := range m.Tasks.Marked {
			if marked {
				ids = append(ids, id)
			}
		}
		if len(ids) == 0 {
			m.Status = StatusBar{Text: "no tasks marked"}
			return
		}
	} else {
		t, ok := m.currentTask()
		if !ok {
			return
		}
		ids = []string{t.ID}
	}
	before := len(m.State.DailyTasks)
	next, keys := m.State.DeleteTasks(ids)
	m.apply(next, keys, nil)
	m.Tasks.Marked = make(map[string]bool)
	m.Tasks.SelectMode = false
	m.Status = StatusBar{Text: fmt.Sprintf("deleted %d task(s)", before-len(m.State.DailyTasks))}
}
