package update

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/commands"
	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/state"
)

func (m Model) handlePaletteKey(msg tea.KeyMsg) Model {
	switch msg.String() {
	case "esc":
		m.closePalette()
		m.Status = StatusBar{Text: "command palette closed"}
	case "enter":
		m.Palette.Input = m.commandIn.Value()
		m = m.executePaletteCommand()
	default:
		if msg.Type == tea.KeyRunes {
			m.commandIn.SetValue(m.commandIn.Value() + string(msg.Runes))
			m.Palette.Input = m.commandIn.Value()
			return m
		}
		m.commandIn, _ = m.commandIn.Update(msg)
		m.Palette.Input = m.commandIn.Value()
	}
	return m
}

func (m *Model) closePalette() {
	m.Palette.Active = false
	m.Palette.Input = ""
	m.commandIn.SetValue("")
	m.commandIn.Blur()
}

func taskIDs(tasks []model.TaskInstance) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func (m Model) executePaletteCommand() Model {
	raw := strings.TrimSpace(m.Palette.Input)
	defer m.logger.Debug("palette command", "raw", raw)

	cmd, err := commands.Parse(raw)
	if err != nil {
		m.closePalette()
		m.fail(err)
		return m
	}
	if !m.State.LoggedIn() {
		m.closePalette()
		m.fail(fmt.Errorf("press enter to create a profile first"))
		return m
	}

	ok := func(format string, args ...any) (commands.Result, error) {
		return commands.Result{Message: fmt.Sprintf(format, args...)}, nil
	}
	applied := func(next state.State, keys []state.Key, err error) error {
		if err != nil {
			return err
		}
		m.State = next
		m.save(keys)
		return nil
	}

	res, err := commands.Execute(cmd, commands.Handlers{
		TaskAdd: func(a commands.TaskAddArgs) (commands.Result, error) {
			t := model.TaskInstance{ID: m.newID(), Title: a.Title, StartTime: a.Start, EndTime: a.End}
			if err := applied(m.State.AddTask(t)); err != nil {
				return commands.Result{}, err
			}
			return ok("added task: %s", a.Title)
		},
		TaskEdit: func(a commands.TaskEditArgs) (commands.Result, error) {
			id, err := resolveID(taskIDs(m.State.DailyTasks), a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			edit := state.TaskEdit{StartTime: &a.Start, EndTime: &a.End}
			if a.Title != "" {
				edit.Title = &a.Title
			}
			if err := applied(m.State.UpdateTask(id, edit)); err != nil {
				return commands.Result{}, err
			}
			return ok("updated task %s", shortID(id))
		},
		TaskDone: func(a commands.IDArgs) (commands.Result, error) {
			id, err := resolveID(taskIDs(m.State.DailyTasks), a.IDs[0])
			if err != nil {
				return commands.Result{}, err
			}
			next, keys := m.State.ToggleTaskStatus(id)
			if len(keys) == 0 {
				return ok("task %s is already done", shortID(id))
			}
			_ = applied(next, keys, nil)
			return ok("completed task %s", shortID(id))
		},
		TaskRemove: func(a commands.IDArgs) (commands.Result, error) {
			ids := make([]string, 0, len(a.IDs))
			for _, ref := range a.IDs {
				if id, err := resolveID(taskIDs(m.State.DailyTasks), ref); err == nil {
					ids = append(ids, id)
				}
			}
			before := len(m.State.DailyTasks)
			next, keys := m.State.DeleteTasks(ids)
			_ = applied(next, keys, nil)
			return ok("deleted %d task(s)", before-len(m.State.DailyTasks))
		},
		RoutineAdd: func(a commands.RoutineAddArgs) (commands.Result, error) {
			r := model.RoutineTemplate{ID: m.newID(), Title: a.Title, StartTime: a.Start, EndTime: a.End}
			if err := applied(m.State.AddRoutine(r)); err != nil {
				return commands.Result{}, err
			}
			return ok("added routine: %s", a.Title)
		},
		RoutineEdit: func(a commands.RoutineEditArgs) (commands.Result, error) {
			r, err := m.findRoutine(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			r.StartTime = a.Start
			r.EndTime = a.End
			if a.Title != "" {
				r.Title = a.Title
			}
			if err := applied(m.State.UpdateRoutine(r)); err != nil {
				return commands.Result{}, err
			}
			return ok("updated routine: %s", r.Title)
		},
		RoutineRemove: func(a commands.IDArgs) (commands.Result, error) {
			r, err := m.findRoutine(a.IDs[0])
			if err != nil {
				return commands.Result{}, err
			}
			id := r.ID
			next, keys := m.State.DeleteRoutine(id)
			_ = applied(next, keys, nil)
			return ok("deleted routine %s", shortID(id))
		},
		StudyAdd: func(a commands.StudyAddArgs) (commands.Result, error) {
			p := model.StudyPlanTemplate{
				ID:              m.newID(),
				Subject:         a.Subject,
				StartTime:       a.Start,
				DurationMinutes: a.Duration,
				Frequency:       a.Frequency,
				DaysOfWeek:      a.Days,
			}
			if err := applied(m.State.AddStudyPlan(p)); err != nil {
				return commands.Result{}, err
			}
			return ok("added study plan: %s", a.Subject)
		},
		StudyEdit: func(a commands.StudyEditArgs) (commands.Result, error) {
			p, err := m.findStudyPlan(a.ID)
			if err != nil {
				return commands.Result{}, err
			}
			p.StartTime = a.Start
			p.DurationMinutes = a.Duration
			if err := applied(m.State.UpdateStudyPlan(p)); err != nil {
				return commands.Result{}, err
			}
			return ok("updated study plan: %s", p.Subject)
		},
		StudyRemove: func(a commands.IDArgs) (commands.Result, error) {
			p, err := m.findStudyPlan(a.IDs[0])
			if err != nil {
				return commands.Result{}, err
			}
			next, keys := m.State.DeleteStudyPlan(p.ID)
			_ = applied(next, keys, nil)
			return ok("deleted study plan %s and its sessions", p.Subject)
		},
		NoteAdd: func(a commands.NoteAddArgs) (commands.Result, error) {
			n := model.Note{ID: m.newID(), Title: a.Title}
			if err := applied(m.State.AddNote(n, m.clock.Now())); err != nil {
				return commands.Result{}, err
			}
			m.Notes.Cursor = 0
			return ok("added note: %s", a.Title)
		},
		NoteRemove: func(a commands.IDArgs) (commands.Result, error) {
			ids := make([]string, 0, len(m.State.Notes))
			for _, n := range m.State.Notes {
				ids = append(ids, n.ID)
			}
			id, err := resolveID(ids, a.IDs[0])
			if err != nil {
				return commands.Result{}, err
			}
			next, keys := m.State.DeleteNote(id)
			_ = applied(next, keys, nil)
			return ok("deleted note %s", shortID(id))
		},
		Theme: func() (commands.Result, error) {
			next, keys := m.State.ToggleTheme()
			_ = applied(next, keys, nil)
			return ok("theme: %s", m.State.Theme)
		},
		Notify: func(a commands.NotifyArgs) (commands.Result, error) {
			m.setNotifications(a.Enabled)
			if m.Status.IsError {
				return commands.Result{}, m.LastError
			}
			return commands.Result{Message: m.Status.Text}, nil
		},
		Profile: func(a commands.ProfileArgs) (commands.Result, error) {
			next, keys, err := m.State.UpdateProfile(func(p *model.UserProfile) {
				switch a.Field {
				case commands.ProfileName:
					p.Name = a.Name
				case commands.ProfileTarget:
					p.DailyStudyTarget = a.TargetHours
				case commands.ProfileClock:
					p.TimeFormat = a.TimeFormat
				case commands.ProfileLevel:
					p.StudyLevel = a.StudyLevel
				case commands.ProfileGoals:
					p.PersonalGoals = a.Goals
				}
			})
			if err := applied(next, keys, err); err != nil {
				return commands.Result{}, err
			}
			return ok("profile %s updated", a.Field)
		},
	})
	if err != nil {
		m.fail(err)
	} else {
		m.Status = StatusBar{Text: res.Message}
	}

	m.refreshBoard()
	m.closePalette()
	return m
}

func (m Model) findRoutine(ref string) (model.RoutineTemplate, error) {
	ids := make([]string, 0, len(m.State.Routines))
	for _, r := range m.State.Routines {
		ids = append(ids, r.ID)
	}
	id, err := resolveID(ids, ref)
	if err != nil {
		return model.RoutineTemplate{}, err
	}
	for _, r := range m.State.Routines {
		if r.ID == id {
			return r, nil
		}
	}
	return model.RoutineTemplate{}, fmt.Errorf("no routine with id %q", ref)
}

func (m Model) findStudyPlan(ref string) (model.StudyPlanTemplate, error) {
	ids := make([]string, 0, len(m.State.StudyPlans))
	for _, p := range m.State.StudyPlans {
		ids = append(ids, p.ID)
	}
	id, err := resolveID(ids, ref)
	if err != nil {
		return model.StudyPlanTemplate{}, err
	}
	for _, p := range m.State.StudyPlans {
		if p.ID == id {
			return p, nil
		}
	}
	return model.StudyPlanTemplate{}, fmt.Errorf("no study plan with id %q", ref)
}
