package views

import (
	"fmt"
	"strings"
)

type TaskRow struct {
	ID       string
	ShortID  string
	Title    string
	Span     string
	Date     string
	Phase    string
	Source   string
	Selected bool
	Marked   bool
}

type DashboardData struct {
	Theme            string
	Greeting         string
	Date             string
	Clock            string
	Primary          *TaskRow
	PrimaryCountdown string
	Concurrent       []TaskRow
	Next             *TaskRow
	NextCountdown    string
	MissedCount      int
	DoneCount        int
	Agenda           []TaskRow
}

type TaskListData struct {
	Theme       string
	Filter      string
	SelectMode  bool
	MarkedCount int
	ListView    string
	Rows        []TaskRow
}

type StudyPlanRow struct {
	ShortID  string
	Subject  string
	Start    string
	Duration int
	Schedule string
	Selected bool
}

type StudyPanelData struct {
	Theme         string
	Plans         []StudyPlanRow
	Sessions      []TaskRow
	OnSessions    bool
	SelectMode    bool
	MinutesDone   int
	TargetMinutes int
	ProgressView  string
}

type NoteRow struct {
	ShortID  string
	Title    string
	Updated  string
	Selected bool
}

type NotesPanelData struct {
	Rows        []NoteRow
	Editing     bool
	EditorView  string
	PreviewView string
}

type ShareRow struct {
	Source string
	Count  int
	Pct    int
}

type StatsPanelData struct {
	TableView    string
	Completed    int
	Total        int
	Consistency  int
	Streak       int
	ProgressView string
	Distribution []ShareRow
}

type ProfilePanelData struct {
	Name          string
	Email         string
	StudyLevel    string
	TargetHours   float64
	Goals         string
	TimeFormat    string
	Theme         string
	Notifications bool
	Permission    string
	LastSaved     string
}

type HelpPanelData struct {
	CurrentView string
	Bindings    []string
	HelpView    string
}

func RenderLogin(theme string) string {
	st := stylesFor(theme)
	var b strings.Builder
	b.WriteString(st.header.Render("Welcome to dayboard") + "\n\n")
	b.WriteString("Plan your day with routines, study sessions and tasks.\n")
	b.WriteString("Reminders fire 5 minutes before, at the start and at the end of each task.\n\n")
	b.WriteString(st.muted.Render("press [enter] to start, [q] to quit"))
	return b.String()
}

func RenderDashboard(data DashboardData) string {
	st := stylesFor(data.Theme)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("%s\n%s  %s\n", data.Greeting, data.Date, data.Clock))

	b.WriteString("\nnow:\n")
	if data.Primary == nil {
		b.WriteString(st.muted.Render("  nothing in progress") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s %s\n", st.active.Render(data.Primary.Title), data.Primary.Span))
		b.WriteString(fmt.Sprintf("  ends in %s\n", data.PrimaryCountdown))
		for _, other := range data.Concurrent {
			b.WriteString(fmt.Sprintf("  + %s %s\n", other.Title, other.Span))
		}
	}

	b.WriteString("\nnext:\n")
	if data.Next == nil {
		b.WriteString(st.muted.Render("  nothing left today") + "\n")
	} else {
		b.WriteString(fmt.Sprintf("  %s %s, starts in %s\n", st.upcoming.Render(data.Next.Title), data.Next.Span, data.NextCountdown))
	}

	b.WriteString(fmt.Sprintf("\nmissed: %s  done: %d\n", st.missed.Render(fmt.Sprint(data.MissedCount)), data.DoneCount))
	b.WriteString("actions: [space]complete current\n")
	return strings.TrimSpace(b.String())
}

func RenderAgenda(theme string, rows []TaskRow) string {
	st := stylesFor(theme)
	var b strings.Builder
	b.WriteString("agenda:\n")
	if len(rows) == 0 {
		b.WriteString("  (no tasks today)")
		return b.String()
	}
	for _, row := range rows {
		b.WriteString(fmt.Sprintf("  %s %s %s\n", row.Span, phaseBadge(st, row.Phase), row.Title))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderTaskList(data TaskListData) string {
	st := stylesFor(data.Theme)
	var b strings.Builder
	b.WriteString(fmt.Sprintf("tasks: %s", strings.ToUpper(data.Filter)))
	if data.SelectMode {
		b.WriteString(fmt.Sprintf(" | select mode, %d marked", data.MarkedCount))
	}
	b.WriteString("\nactions: [f]filter [space]done [v]select [x]mark [d]delete\n")
	if data.ListView != "" {
		b.WriteString(data.ListView + "\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("\n  (empty)")
		return b.String()
	}
	b.WriteString("\n")
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		mark := ""
		if data.SelectMode {
			mark = "[ ] "
			if row.Marked {
				mark = "[x] "
			}
		}
		line := fmt.Sprintf("%s %s%s %s %s", cursor, mark, row.Span, phaseBadge(st, row.Phase), row.Title)
		if data.Filter == "archive" {
			line += " " + st.muted.Render(row.Date)
		}
		b.WriteString(line + " " + st.muted.Render(row.ShortID) + "\n")
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderStudyPanel(data StudyPanelData) string {
	st := stylesFor(data.Theme)
	var b strings.Builder
	b.WriteString("study plans:\n")
	if data.OnSessions {
		b.WriteString("actions: [tab]plans [space]done [v]select [x]mark [d]delete sessions\n")
	} else {
		b.WriteString("actions: [tab]sessions [j/k]move [d]delete plan and sessions\n")
	}
	if len(data.Plans) == 0 {
		b.WriteString("  (no plans, try /study add 16:00 60 daily Math)\n")
	}
	for _, p := range data.Plans {
		cursor := " "
		if p.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s %s %dm %s %s\n", cursor, p.Start, p.Subject, p.Duration, p.Schedule, st.muted.Render(p.ShortID)))
	}

	b.WriteString("\ntoday's sessions:\n")
	if len(data.Sessions) == 0 {
		b.WriteString("  (none)\n")
	}
	for _, s := range data.Sessions {
		cursor := " "
		if s.Selected {
			cursor = ">"
		}
		mark := ""
		if data.SelectMode {
			mark = "[ ] "
			if s.Marked {
				mark = "[x] "
			}
		}
		b.WriteString(fmt.Sprintf("%s %s%s %s %s\n", cursor, mark, s.Span, phaseBadge(st, s.Phase), s.Title))
	}
	b.WriteString(fmt.Sprintf("\nstudied %dm of %dm target\n", data.MinutesDone, data.TargetMinutes))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView)
	}
	return strings.TrimSpace(b.String())
}

func RenderNotesPanel(data NotesPanelData) string {
	var b strings.Builder
	b.WriteString("notes:\n")
	if data.Editing {
		b.WriteString("editing: [ctrl+s]save [esc]cancel\n")
	} else {
		b.WriteString("actions: [j/k]move [e]edit [d]delete\n")
	}
	if len(data.Rows) == 0 {
		b.WriteString("  (no notes, try /note add Ideas)")
		return b.String()
	}
	for _, row := range data.Rows {
		cursor := " "
		if row.Selected {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf("%s %s (%s) %s\n", cursor, row.Title, row.Updated, row.ShortID))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func RenderNoteDetail(data NotesPanelData) string {
	if data.Editing {
		return "note-editor:\n" + data.EditorView
	}
	if strings.TrimSpace(data.PreviewView) == "" {
		return "preview:\n(empty note)"
	}
	return "preview:\n" + data.PreviewView
}

func RenderStatsPanel(data StatsPanelData) string {
	var b strings.Builder
	b.WriteString("last 7 days:\n")
	b.WriteString(data.TableView + "\n")
	b.WriteString(fmt.Sprintf("\ncompleted %d of %d\n", data.Completed, data.Total))
	b.WriteString(fmt.Sprintf("consistency %d%%\n", data.Consistency))
	if data.ProgressView != "" {
		b.WriteString(data.ProgressView + "\n")
	}
	b.WriteString(fmt.Sprintf("current streak: %d day(s)\n", data.Streak))
	b.WriteString("\ndistribution:\n")
	if len(data.Distribution) == 0 {
		b.WriteString("  (no tasks yet)")
	}
	for _, share := range data.Distribution {
		b.WriteString(fmt.Sprintf("  %-10s %3d %3d%%\n", share.Source, share.Count, share.Pct))
	}
	return strings.TrimSpace(b.String())
}

func RenderProfilePanel(data ProfilePanelData) string {
	notifications := "off"
	if data.Notifications {
		notifications = "on"
	}
	var b strings.Builder
	b.WriteString("profile:\n")
	b.WriteString(fmt.Sprintf("name: %s\n", data.Name))
	if data.Email != "" {
		b.WriteString(fmt.Sprintf("email: %s\n", data.Email))
	}
	b.WriteString(fmt.Sprintf("level: %s\n", data.StudyLevel))
	b.WriteString(fmt.Sprintf("daily study target: %gh\n", data.TargetHours))
	b.WriteString(fmt.Sprintf("goals: %s\n", data.Goals))
	b.WriteString(fmt.Sprintf("clock: %s\n", data.TimeFormat))
	b.WriteString(fmt.Sprintf("theme: %s\n", data.Theme))
	b.WriteString(fmt.Sprintf("notifications: %s (permission: %s)\n", notifications, data.Permission))
	if data.LastSaved != "" {
		b.WriteString(fmt.Sprintf("last saved: %s\n", data.LastSaved))
	}
	b.WriteString("actions: [n]toggle notifications [t]theme [L]log out\n")
	b.WriteString("commands: /profile name|target|clock|level|goals <value>")
	return b.String()
}

func RenderCommandPalette(active bool, input string) string {
	if !active {
		return ""
	}
	return fmt.Sprintf("command: /%s", input)
}

func RenderNotification(level string, body string) string {
	if strings.TrimSpace(body) == "" {
		return ""
	}
	return fmt.Sprintf("notification: [%s] %s", strings.ToUpper(level), body)
}

func RenderHelpPanel(data HelpPanelData) string {
	return fmt.Sprintf("help:\n%s view:\n%s\n%s",
		strings.ToLower(data.CurrentView),
		strings.Join(data.Bindings, "\n"),
		data.HelpView,
	)
}

func phaseBadge(st styles, phase string) string {
	switch phase {
	case "active":
		return st.active.Render("[NOW]")
	case "upcoming":
		return st.upcoming.Render("[NEXT]")
	case "missed":
		return st.missed.Render("[MISSED]")
	case "done":
		return st.done.Render("[DONE]")
	default:
		return ""
	}
}
