package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/views"
)

func (m Model) Init() tea.Cmd {
	return m.nextEventCmd()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.syncBubbleData()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(typed)
	case TickMsg:
		m.onTick(typed.At)
		return m, m.nextEventCmd()
	case RolloverMsg:
		m.onRollover(typed.At)
		return m, m.nextEventCmd()
	case SwitchViewMsg:
		if isKnownView(typed.View) {
			m.CurrentView = typed.View
		}
		return m, nil
	case SetStatusMsg:
		m.Status = StatusBar{Text: typed.Text, IsError: typed.IsError}
		return m, nil
	case ClearStatusMsg:
		m.Status = StatusBar{}
		return m, nil
	case AppErrorMsg:
		if typed.Err != nil {
			m.fail(typed.Err)
			m.logger.Error("app error", "err", typed.Err)
		}
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	keyStr := msg.String()
	if keyStr == "ctrl+c" {
		m.Quitting = true
		return m, tea.Quit
	}
	if m.Palette.Active {
		return m.handlePaletteKey(msg), nil
	}
	if m.CurrentView == ViewNotes && m.Notes.Editing {
		return m.handleNoteEditorKey(msg)
	}

	if !m.State.LoggedIn() {
		switch keyStr {
		case "enter":
			m.login()
		case m.Keys.Quit:
			m.Quitting = true
			return m, tea.Quit
		case m.Keys.Theme:
			next, keys := m.State.ToggleTheme()
			m.apply(next, keys, nil)
		}
		return m, nil
	}

	switch keyStr {
	case "/":
		m.Palette.Active = true
		m.Palette.Input = ""
		m.commandIn.SetValue("")
		m.Status = StatusBar{Text: "command palette active"}
		return m, m.commandIn.Focus()
	case m.Keys.Dashboard:
		m.CurrentView = ViewDashboard
		return m, nil
	case m.Keys.Tasks:
		m.CurrentView = ViewTasks
		return m, nil
	case m.Keys.Study:
		m.CurrentView = ViewStudy
		return m, nil
	case m.Keys.Notes:
		m.CurrentView = ViewNotes
		return m, nil
	case m.Keys.Stats:
		m.CurrentView = ViewStats
		return m, nil
	case m.Keys.Profile:
		m.CurrentView = ViewProfile
		return m, nil
	case m.Keys.Theme:
		next, keys := m.State.ToggleTheme()
		if m.apply(next, keys, nil) {
			m.Status = StatusBar{Text: fmt.Sprintf("theme: %s", m.State.Theme)}
		}
		return m, nil
	case m.Keys.Help:
		m.HelpVisible = !m.HelpVisible
		return m, nil
	case m.Keys.Quit:
		m.Quitting = true
		return m, tea.Quit
	}

	switch m.CurrentView {
	case ViewDashboard:
		return m.handleDashboardKey(msg), nil
	case ViewTasks:
		return m.handleTasksKey(msg), nil
	case ViewStudy:
		return m.handleStudyKey(msg), nil
	case ViewNotes:
		return m.handleNotesKey(msg)
	case ViewProfile:
		return m.handleProfileKey(msg), nil
	}
	return m, nil
}

func (m Model) View() string {
	if m.Quitting {
		return ""
	}
	status := ""
	if m.Status.Text != "" {
		if m.Status.IsError {
			status = fmt.Sprintf("status: error: %s", m.Status.Text)
		} else {
			status = fmt.Sprintf("status: %s", m.Status.Text)
		}
	}

	if !m.State.LoggedIn() {
		return views.RenderApp(views.AppData{
			Theme:       m.theme(),
			Header:      "dayboard",
			LeftPane:    views.RenderLogin(m.theme()),
			StatusLine:  status,
			StatusError: m.Status.IsError,
		})
	}

	leftPane := ""
	rightPane := ""
	switch m.CurrentView {
	case ViewDashboard:
		leftPane = m.renderDashboardView()
		rightPane = m.renderAgendaView()
	case ViewTasks:
		leftPane = m.renderTasksView()
		rightPane = m.renderTaskDetail()
	case ViewStudy:
		leftPane = m.renderStudyView()
	case ViewNotes:
		data := m.notesData()
		leftPane = views.RenderNotesPanel(data)
		rightPane = views.RenderNoteDetail(data)
	case ViewStats:
		leftPane = m.renderStatsView()
	case ViewProfile:
		leftPane = m.renderProfileView()
	}
	extras := strings.TrimSpace(strings.Join([]string{m.renderCommandPalette(), m.renderHelpIfVisible()}, "\n"))
	if extras != "" {
		rightPane = strings.TrimSpace(rightPane + "\n\n" + extras)
	}

	tabs := make([]string, 0, len(allViews))
	for _, v := range allViews {
		tabs = append(tabs, string(v))
	}
	return views.RenderApp(views.AppData{
		Theme:        m.theme(),
		Header:       fmt.Sprintf("dayboard | %s | %d pending", m.State.CurrentDate, m.Board.Pending()),
		Tabs:         tabs,
		ActiveTab:    string(m.CurrentView),
		LeftPane:     leftPane,
		RightPane:    rightPane,
		StatusLine:   status,
		StatusError:  m.Status.IsError,
		Notification: m.renderNotificationsView(),
		Footer: fmt.Sprintf("keys: %s-%s views | / cmd | %s theme | %s help | %s quit",
			m.Keys.Dashboard, m.Keys.Profile, m.Keys.Theme, m.Keys.Help, m.Keys.Quit),
	})
}

func isKnownView(v View) bool {
	for _, known := range allViews {
		if v == known {
			return true
		}
	}
	return false
}
