package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/sandeepkv93/dayboard/internal/planner"
	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m *Model) initBubbleComponents() {
	m.taskList = list.New([]list.Item{}, list.NewDefaultDelegate(), 56, 10)
	m.taskList.Title = "Tasks"
	m.taskList.SetShowHelp(false)
	m.taskList.SetFilteringEnabled(false)
	m.taskList.SetShowStatusBar(false)

	cols := []table.Column{
		{Title: "Day", Width: 5},
		{Title: "Date", Width: 12},
		{Title: "Done", Width: 6},
		{Title: "Total", Width: 6},
		{Title: "%", Width: 5},
	}
	m.statsTable = table.New(table.WithColumns(cols), table.WithRows([]table.Row{}), table.WithHeight(8))

	m.studyBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))
	m.statsBar = progress.New(progress.WithDefaultGradient(), progress.WithWidth(40))

	m.commandIn = textinput.New()
	m.commandIn.Prompt = "/"
	m.commandIn.CharLimit = 256
	m.commandIn.Width = 48

	m.noteEditor = textarea.New()
	m.noteEditor.SetWidth(54)
	m.noteEditor.SetHeight(10)
	m.noteEditor.ShowLineNumbers = false
	m.noteEditor.Placeholder = "Note body (markdown)"

	m.helpModel = help.New()
	m.helpModel.ShowAll = true
	m.notePreview = viewport.New(54, 14)
}

// syncBubbleData copies the current state into the widgets before a render.
func (m *Model) syncBubbleData() {
	items := make([]list.Item, 0)
	for _, t := range m.visibleTasks() {
		desc := fmt.Sprintf("%s-%s | %s", m.profile().FormatClock(t.StartTime), m.profile().FormatClock(t.EndTime), t.SourceType)
		items = append(items, listItem{title: t.Title, description: desc})
	}
	m.taskList.SetItems(items)
	if len(items) > 0 {
		m.taskList.Select(clampCursor(m.Tasks.Cursor, len(items)))
	}

	rows := make([]table.Row, 0, 7)
	if week, err := planner.WeeklyProgress(m.State.DailyTasks, m.State.CurrentDate); err == nil {
		for _, d := range week {
			rows = append(rows, table.Row{d.Weekday, d.Date, fmt.Sprint(d.Completed), fmt.Sprint(d.Total), fmt.Sprintf("%d", percent(d.Completed, d.Total))})
		}
	}
	m.statsTable.SetRows(rows)

	m.commandIn.SetValue(m.Palette.Input)
	if m.Palette.Active {
		m.commandIn.Focus()
	}

	m.syncNotePreview()
}

// syncNotePreview re-renders the markdown preview only while the notes view
// is showing and the selected note, its body or the theme has changed.
func (m *Model) syncNotePreview() {
	if m.CurrentView != ViewNotes {
		return
	}
	note, ok := m.currentNote()
	key := ""
	if ok {
		key = note.ID + "\x00" + string(m.State.Theme) + "\x00" + note.Content
	}
	if key == m.previewKey {
		return
	}
	m.previewKey = key
	if !ok {
		m.notePreview.SetContent("")
		return
	}
	m.notePreview.SetContent(views.RenderMarkdown(note.Content, string(m.State.Theme)))
}
