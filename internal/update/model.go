package update

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/jonboulle/clockwork"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/notify"
	"github.com/sandeepkv93/dayboard/internal/planner"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
	"github.com/sandeepkv93/dayboard/internal/state"
	"github.com/sandeepkv93/dayboard/internal/storage"
)

type View string

const (
	ViewDashboard View = "Dashboard"
	ViewTasks     View = "Tasks"
	ViewStudy     View = "Study"
	ViewNotes     View = "Notes"
	ViewStats     View = "Stats"
	ViewProfile   View = "Profile"
)

var allViews = []View{ViewDashboard, ViewTasks, ViewStudy, ViewNotes, ViewStats, ViewProfile}

type StatusBar struct {
	Text    string
	IsError bool
}

type GlobalKeyMap struct {
	Dashboard string
	Tasks     string
	Study     string
	Notes     string
	Stats     string
	Profile   string
	Theme     string
	Help      string
	Quit      string
}

type TasksState struct {
	Filter     planner.ListFilter
	Cursor     int
	SelectMode bool
	Marked     map[string]bool
}

type StudyState struct {
	Cursor        int
	OnSessions    bool
	SessionCursor int
	SelectMode    bool
	Marked        map[string]bool
}

type NotesState struct {
	Cursor  int
	Editing bool
}

type CommandPaletteState struct {
	Active bool
	Input  string
}

// Notification is the last reminder shown, kept for the in-app banner.
type Notification struct {
	Title string
	Body  string
	Level string
	At    time.Time
}

type listItem struct {
	title       string
	description string
}

func (i listItem) FilterValue() string { return i.title + " " + i.description }
func (i listItem) Title() string       { return i.title }
func (i listItem) Description() string { return i.description }

// Deps are the collaborators the model drives. Zero values fall back to a
// real clock, no store, no notifications and a discarding logger.
type Deps struct {
	Clock    clockwork.Clock
	Store    storage.Store
	Engine   *scheduler.Engine
	Notifier notify.Notifier
	Logger   *slog.Logger
	NewID    func() string
}

type Model struct {
	State         state.State
	Board         planner.Board
	Now           time.Time
	CurrentView   View
	Tasks         TasksState
	Study         StudyState
	Notes         NotesState
	Palette       CommandPaletteState
	HelpVisible   bool
	Notifications []Notification
	Status        StatusBar
	Keys          GlobalKeyMap
	Quitting      bool
	LastError     error
	LastSaved     *time.Time

	ctx      context.Context
	clock    clockwork.Clock
	store    storage.Store
	engine   *scheduler.Engine
	notifier notify.Notifier
	trigger  planner.Trigger
	logger   *slog.Logger
	newID    func() string

	taskList    list.Model
	statsTable  table.Model
	studyBar    progress.Model
	statsBar    progress.Model
	commandIn   textinput.Model
	noteEditor  textarea.Model
	notePreview viewport.Model
	previewKey  string
	helpModel   help.Model
}

type SwitchViewMsg struct {
	View View
}

type SetStatusMsg struct {
	Text    string
	IsError bool
}

type ClearStatusMsg struct{}

type AppErrorMsg struct {
	Err error
}

// TickMsg drives reclassification and reminder checks.
type TickMsg struct {
	At time.Time
}

// RolloverMsg asks the model to compare the clock date with the active date.
type RolloverMsg struct {
	At time.Time
}

func NewModel(s state.State, deps Deps) Model {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}
	if deps.Notifier == nil {
		deps.Notifier = notify.NoopNotifier{}
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if deps.NewID == nil {
		deps.NewID = newUUID
	}
	m := Model{
		State:       s,
		CurrentView: ViewDashboard,
		Tasks: TasksState{
			Filter: planner.ListActive,
			Marked: make(map[string]bool),
		},
		Keys: GlobalKeyMap{
			Dashboard: "1",
			Tasks:     "2",
			Study:     "3",
			Notes:     "4",
			Stats:     "5",
			Profile:   "6",
			Theme:     "t",
			Help:      "?",
			Quit:      "q",
		},
		ctx:      context.Background(),
		clock:    deps.Clock,
		store:    deps.Store,
		engine:   deps.Engine,
		notifier: deps.Notifier,
		trigger:  planner.NewTrigger(deps.Notifier, deps.Logger),
		logger:   deps.Logger,
		newID:    deps.NewID,
	}
	if s.NotificationsEnabled() && m.notifier.Permission() == notify.PermissionDefault {
		m.notifier.RequestPermission()
	}
	m.initBubbleComponents()
	m.refreshLastSaved(state.KeyCurrentDate)
	m.Now = m.clock.Now()
	m.refreshBoard()
	m.syncBubbleData()
	return m
}

func (m *Model) refreshBoard() {
	m.Board = planner.Classify(m.State.DailyTasks, m.State.CurrentDate, m.nowClock())
}

func (m Model) nowClock() model.ClockTime {
	return model.ClockOf(m.Now)
}

func (m Model) profile() model.UserProfile {
	if m.State.User == nil {
		return model.DefaultProfile("")
	}
	return *m.State.User
}
