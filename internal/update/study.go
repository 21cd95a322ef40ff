package update

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
)

func (m Model) studySessions() []model.TaskInstance {
	var out []model.TaskInstance
	for _, f := range []planner.ListFilter{planner.ListActive, planner.ListMissed} {
		out = append(out, planner.List(m.State.DailyTasks, planner.ScopeStudy, f, m.State.CurrentDate, m.nowClock())...)
	}
	for _, t := range m.State.TodayTasks() {
		if t.SourceType == model.SourceStudyPlan && t.IsDone() {
			out = append(out, t)
		}
	}
	return out
}

func (m Model) currentSession() (model.TaskInstance, bool) {
	sessions := m.studySessions()
	if len(sessions) == 0 || m.Study.SessionCursor < 0 || m.Study.SessionCursor >= len(sessions) {
		return model.TaskInstance{}, false
	}
	return sessions[m.Study.SessionCursor], true
}

// handleStudyKey drives two lists: plans and today's sessions. tab moves
// focus between them; completion and batch selection act on sessions only.
func (m Model) handleStudyKey(msg tea.KeyMsg) Model {
	if msg.String() == "tab" {
		m.Study.OnSessions = !m.Study.OnSessions
		m.Study.SelectMode = false
		m.Study.Marked = make(map[string]bool)
		return m
	}
	if m.Study.OnSessions {
		return m.handleSessionKey(msg)
	}
	switch msg.String() {
	case "up", "k":
		if m.Study.Cursor > 0 {
			m.Study.Cursor--
		}
	case "down", "j":
		if m.Study.Cursor < len(m.State.StudyPlans)-1 {
			m.Study.Cursor++
		}
	case "d":
		if len(m.State.StudyPlans) == 0 {
			return m
		}
		plan := m.State.StudyPlans[clampCursor(m.Study.Cursor, len(m.State.StudyPlans))]
		next, keys := m.State.DeleteStudyPlan(plan.ID)
		if m.apply(next, keys, nil) {
			m.Status = StatusBar{Text: fmt.Sprintf("deleted study plan %s and its sessions", plan.Subject)}
		}
	}
	m.Study.Cursor = clampCursor(m.Study.Cursor, len(m.State.StudyPlans))
	m.Study.SessionCursor = clampCursor(m.Study.SessionCursor, len(m.studySessions()))
	return m
}

func (m Model) handleSessionKey(msg tea.KeyMsg) Model {
	if m.Study.Marked == nil {
		m.Study.Marked = make(map[string]bool)
	}
	switch msg.String() {
	case "up", "k":
		if m.Study.SessionCursor > 0 {
			m.Study.SessionCursor--
		}
	case "down", "j":
		if m.Study.SessionCursor < len(m.studySessions())-1 {
			m.Study.SessionCursor++
		}
	case " ":
		s, ok := m.currentSession()
		if !ok {
			return m
		}
		if s.IsDone() {
			m.Status = StatusBar{Text: fmt.Sprintf("%s is already done", s.Title)}
			return m
		}
		next, keys := m.State.ToggleTaskStatus(s.ID)
		if m.apply(next, keys, nil) {
			m.Status = StatusBar{Text: fmt.Sprintf("completed: %s", s.Title)}
		}
	case "v":
		m.Study.SelectMode = !m.Study.SelectMode
		m.Study.Marked = make(map[string]bool)
	case "x":
		if s, ok := m.currentSession(); ok && m.Study.SelectMode {
			if m.Study.Marked[s.ID] {
				delete(m.Study.Marked, s.ID)
			} else {
				m.Study.Marked[s.ID] = true
			}
		}
	case "d":
		var ids []string
		if m.Study.SelectMode {
			for id := range m.Study.Marked {
				ids = append(ids, id)
			}
		} else if s, ok := m.currentSession(); ok {
			ids = []string{s.ID}
		}
		if len(ids) == 0 {
			m.Status = StatusBar{Text: "no sessions selected"}
			return m
		}
		before := len(m.State.DailyTasks)
		next, keys := m.State.DeleteTasks(ids)
		m.apply(next, keys, nil)
		m.Study.SelectMode = false
		m.Study.Marked = make(map[string]bool)
		m.Status = StatusBar{Text: fmt.Sprintf("deleted %d session(s)", before-len(m.State.DailyTasks))}
	}
	m.Study.SessionCursor = clampCursor(m.Study.SessionCursor, len(m.studySessions()))
	return m
}

func planSchedule(p model.StudyPlanTemplate) string {
	if p.Frequency == model.FrequencyDaily {
		return "daily"
	}
	names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
	out := "weekly:"
	for i, d := range p.DaysOfWeek {
		if i > 0 {
			out += ","
		}
		if d >= 0 && d < len(names) {
			out += names[d]
		}
	}
	return out
}
