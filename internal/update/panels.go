package update

import (
	"fmt"
	"math"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) theme() string {
	return string(m.State.Theme)
}

func (m Model) span(t model.TaskInstance) string {
	p := m.profile()
	return fmt.Sprintf("%s-%s", p.FormatClock(t.StartTime), p.FormatClock(t.EndTime))
}

func (m Model) taskRow(t model.TaskInstance) views.TaskRow {
	return views.TaskRow{
		ID:      t.ID,
		ShortID: shortID(t.ID),
		Title:   t.Title,
		Span:    m.span(t),
		Date:    t.Date,
		Phase:   string(planner.PhaseOf(t, m.nowClock())),
		Source:  string(t.SourceType),
	}
}

func (m Model) renderDashboardView() string {
	data := views.DashboardData{
		Theme:       m.theme(),
		Greeting:    m.greeting(),
		Date:        m.State.CurrentDate,
		Clock:       m.profile().FormatClock(m.nowClock()),
		MissedCount: len(m.Board.Missed),
		DoneCount:   len(m.Board.Done),
	}
	secs := planner.NowSeconds(m.Now)
	if primary, ok := m.Board.Primary(); ok {
		row := m.taskRow(primary)
		data.Primary = &row
		data.PrimaryCountdown = planner.FormatCountdown(planner.Countdown(primary.EndTime, secs))
		for _, t := range m.Board.ConcurrentOthers() {
			data.Concurrent = append(data.Concurrent, m.taskRow(t))
		}
	}
	if next, ok := m.Board.Next(); ok {
		row := m.taskRow(next)
		data.Next = &row
		data.NextCountdown = planner.FormatCountdown(planner.Countdown(next.StartTime, secs))
	}
	return views.RenderDashboard(data)
}

func (m Model) renderAgendaView() string {
	rows := make([]views.TaskRow, 0)
	for _, t := range m.Board.Agenda() {
		rows = append(rows, m.taskRow(t))
	}
	return views.RenderAgenda(m.theme(), rows)
}

func (m Model) renderTasksView() string {
	rows := make([]views.TaskRow, 0)
	for i, t := range m.visibleTasks() {
		row := m.taskRow(t)
		row.Selected = i == m.Tasks.Cursor
		row.Marked = m.Tasks.Marked[t.ID]
		rows = append(rows, row)
	}
	return views.RenderTaskList(views.TaskListData{
		Theme:       m.theme(),
		Filter:      string(m.Tasks.Filter),
		SelectMode:  m.Tasks.SelectMode,
		MarkedCount: len(m.Tasks.Marked),
		Rows:        rows,
	})
}

func (m Model) renderTaskDetail() string {
	t, ok := m.currentTask()
	if !ok {
		return m.taskList.View()
	}
	return fmt.Sprintf("%s\n\nselected: %s\nsource: %s\nstatus: %s\nid: %s",
		m.taskList.View(), t.Title, t.SourceType, t.Status, t.ID)
}

func (m Model) renderStudyView() string {
	plans := make([]views.StudyPlanRow, 0, len(m.State.StudyPlans))
	for i, p := range m.State.StudyPlans {
		plans = append(plans, views.StudyPlanRow{
			ShortID:  shortID(p.ID),
			Subject:  p.Subject,
			Start:    m.profile().FormatClock(p.StartTime),
			Duration: p.DurationMinutes,
			Schedule: planSchedule(p),
			Selected: !m.Study.OnSessions && i == m.Study.Cursor,
		})
	}
	sessions := make([]views.TaskRow, 0)
	for i, t := range m.studySessions() {
		row := m.taskRow(t)
		row.Selected = m.Study.OnSessions && i == m.Study.SessionCursor
		row.Marked = m.Study.Marked[t.ID]
		sessions = append(sessions, row)
	}
	done := planner.StudyMinutesDone(m.State.DailyTasks, m.State.CurrentDate)
	target := int(math.Round(m.profile().DailyStudyTarget * 60))
	return views.RenderStudyPanel(views.StudyPanelData{
		Theme:         m.theme(),
		Plans:         plans,
		Sessions:      sessions,
		OnSessions:    m.Study.OnSessions,
		SelectMode:    m.Study.SelectMode,
		MinutesDone:   done,
		TargetMinutes: target,
		ProgressView:  m.studyBar.ViewAs(ratio(done, target)),
	})
}

func (m Model) notesData() views.NotesPanelData {
	rows := make([]views.NoteRow, 0, len(m.State.Notes))
	for i, n := range m.State.NotesByRecent() {
		rows = append(rows, views.NoteRow{
			ShortID:  shortID(n.ID),
			Title:    n.Title,
			Updated:  n.UpdatedAt.Local().Format("Jan 2 15:04"),
			Selected: i == m.Notes.Cursor,
		})
	}
	return views.NotesPanelData{
		Rows:        rows,
		Editing:     m.Notes.Editing,
		EditorView:  m.noteEditor.View(),
		PreviewView: m.notePreview.View(),
	}
}

func (m Model) renderStatsView() string {
	sum := planner.Summarize(m.State.DailyTasks, m.State.CurrentDate)
	shares := planner.Distribution(m.State.DailyTasks)
	total := 0
	for _, s := range shares {
		total += s.Count
	}
	dist := make([]views.ShareRow, 0, len(shares))
	for _, s := range shares {
		dist = append(dist, views.ShareRow{Source: string(s.Source), Count: s.Count, Pct: percent(s.Count, total)})
	}
	return views.RenderStatsPanel(views.StatsPanelData{
		TableView:    m.statsTable.View(),
		Completed:    sum.Completed,
		Total:        sum.Total,
		Consistency:  sum.Consistency,
		Streak:       sum.CurrentStreak,
		ProgressView: m.statsBar.ViewAs(float64(sum.Consistency) / 100),
		Distribution: dist,
	})
}

func (m Model) renderProfileView() string {
	p := m.profile()
	lastSaved := ""
	if m.LastSaved != nil {
		lastSaved = m.LastSaved.Local().Format("Jan 2 15:04:05")
	}
	return views.RenderProfilePanel(views.ProfilePanelData{
		Name:          p.Name,
		Email:         p.Email,
		StudyLevel:    string(p.StudyLevel),
		TargetHours:   p.DailyStudyTarget,
		Goals:         p.PersonalGoals,
		TimeFormat:    string(p.TimeFormat),
		Theme:         m.theme(),
		Notifications: p.NotificationsEnabled,
		Permission:    string(m.notifier.Permission()),
		LastSaved:     lastSaved,
	})
}

func (m Model) renderCommandPalette() string {
	return views.RenderCommandPalette(m.Palette.Active, m.Palette.Input)
}

func (m Model) renderNotificationsView() string {
	if len(m.Notifications) == 0 {
		return ""
	}
	n := m.Notifications[len(m.Notifications)-1]
	return views.RenderNotification(n.Level, fmt.Sprintf("%s: %s", n.Title, n.Body))
}

func ratio(part, total int) float64 {
	if total <= 0 {
		return 0
	}
	r := float64(part) / float64(total)
	if r > 1 {
		return 1
	}
	return r
}
