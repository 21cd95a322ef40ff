// Package state holds the application state as one explicit value. Every
// mutator has a value receiver, leaves the receiver untouched and returns the
// next State together with the storage keys it changed.
package state

import (
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/planner"
)

var (
	ErrDuplicateID = errors.New("state: duplicate id")
	ErrNotFound    = errors.New("state: not found")
	ErrLoggedOut   = errors.New("state: no active profile")
)

// Key names one persisted aggregate.
type Key string

const (
	KeyUser        Key = "user"
	KeyRoutines    Key = "routines"
	KeyStudyPlans  Key = "studyPlans"
	KeyDailyTasks  Key = "dailyTasks"
	KeyNotes       Key = "notes"
	KeyNotifiedIDs Key = "notifiedIds"
	KeyTheme       Key = "theme"
	KeyCurrentDate Key = "currentDate"
)

var AllKeys = []Key{KeyUser, KeyRoutines, KeyStudyPlans, KeyDailyTasks, KeyNotes, KeyNotifiedIDs, KeyTheme, KeyCurrentDate}

type State struct {
	User        *model.UserProfile
	Routines    []model.RoutineTemplate
	StudyPlans  []model.StudyPlanTemplate
	DailyTasks  []model.TaskInstance
	Notes       []model.Note
	NotifiedIDs []string
	Theme       model.Theme
	CurrentDate string
}

func New(today string) State {
	return State{Theme: model.ThemeLight, CurrentDate: today}
}

// clone copies every slice so the returned value shares no backing array
// with s.
func (s State) clone() State {
	out := s
	out.Routines = slices.Clone(s.Routines)
	out.StudyPlans = slices.Clone(s.StudyPlans)
	out.DailyTasks = slices.Clone(s.DailyTasks)
	out.Notes = slices.Clone(s.Notes)
	out.NotifiedIDs = slices.Clone(s.NotifiedIDs)
	for i := range out.StudyPlans {
		out.StudyPlans[i].DaysOfWeek = slices.Clone(s.StudyPlans[i].DaysOfWeek)
	}
	if s.User != nil {
		u := *s.User
		out.User = &u
	}
	return out
}

func (s State) LoggedIn() bool { return s.User != nil }

func (s State) NotificationsEnabled() bool {
	return s.User != nil && s.User.NotificationsEnabled
}

func (s State) NotifiedSet() map[string]bool {
	out := make(map[string]bool, len(s.NotifiedIDs))
	for _, id := range s.NotifiedIDs {
		out[id] = true
	}
	return out
}

func (s State) FindTask(id string) (model.TaskInstance, bool) {
	for _, t := range s.DailyTasks {
		if t.ID == id {
			return t, true
		}
	}
	return model.TaskInstance{}, false
}

func (s State) TodayTasks() []model.TaskInstance {
	out := make([]model.TaskInstance, 0)
	for _, t := range s.DailyTasks {
		if t.Date == s.CurrentDate {
			out = append(out, t)
		}
	}
	return out
}

// Materialize appends the current date's missing template instances.
func (s State) Materialize() (State, []Key, error) {
	fresh, err := planner.Materialize(s.CurrentDate, s.Routines, s.StudyPlans, s.DailyTasks)
	if err != nil {
		return s, nil, fmt.Errorf("materialize %s: %w", s.CurrentDate, err)
	}
	if len(fresh) == 0 {
		return s, nil, nil
	}
	next := s.clone()
	next.DailyTasks = append(next.DailyTasks, fresh...)
	return next, []Key{KeyDailyTasks}, nil
}

// Rollover advances to today, forgets which reminders fired and generates
// the new day's instances. It is a no-op when the date has not changed.
func (s State) Rollover(today string) (State, []Key, error) {
	if today == s.CurrentDate {
		return s, nil, nil
	}
	if !model.ValidDate(today) {
		return s, nil, fmt.Errorf("rollover: %w: %q", model.ErrInvalidDate, today)
	}
	next := s.clone()
	next.CurrentDate = today
	next.NotifiedIDs = nil
	keys := []Key{KeyCurrentDate, KeyNotifiedIDs}
	if !next.LoggedIn() {
		return next, keys, nil
	}
	next, more, err := next.Materialize()
	if err != nil {
		return next, keys, err
	}
	return next, append(keys, more...), nil
}

// withMaterialized re-runs materialization after a template change. The
// template change itself has already been applied to s.
func (s State) withMaterialized(keys ...Key) (State, []Key, error) {
	if !s.LoggedIn() {
		return s, keys, nil
	}
	next, more, err := s.Materialize()
	if err != nil {
		return s, keys, err
	}
	return next, append(keys, more...), nil
}

func (s State) AddRoutine(r model.RoutineTemplate) (State, []Key, error) {
	if err := r.Validate(); err != nil {
		return s, nil, err
	}
	for _, existing := range s.Routines {
		if existing.ID == r.ID {
			return s, nil, fmt.Errorf("%w: routine %s", ErrDuplicateID, r.ID)
		}
	}
	if r.Category == "" {
		r.Category = model.CategoryFor(r.StartTime)
	}
	next := s.clone()
	next.Routines = append(next.Routines, r)
	return next.withMaterialized(KeyRoutines)
}

// UpdateRoutine changes the template only; instances already generated keep
// the values they were created with.
func (s State) UpdateRoutine(r model.RoutineTemplate) (State, []Key, error) {
	if err := r.Validate(); err != nil {
		return s, nil, err
	}
	idx := slices.IndexFunc(s.Routines, func(x model.RoutineTemplate) bool { return x.ID == r.ID })
	if idx < 0 {
		return s, nil, fmt.Errorf("%w: routine %s", ErrNotFound, r.ID)
	}
	next := s.clone()
	next.Routines[idx] = r
	return next.withMaterialized(KeyRoutines)
}

func (s State) DeleteRoutine(id string) (State, []Key) {
	if !slices.ContainsFunc(s.Routines, func(x model.RoutineTemplate) bool { return x.ID == id }) {
		return s, nil
	}
	next := s.clone()
	next.Routines = slices.DeleteFunc(next.Routines, func(x model.RoutineTemplate) bool { return x.ID == id })
	return next, []Key{KeyRoutines}
}

func (s State) AddStudyPlan(p model.StudyPlanTemplate) (State, []Key, error) {
	if err := p.Validate(); err != nil {
		return s, nil, err
	}
	for _, existing := range s.StudyPlans {
		if existing.ID == p.ID {
			return s, nil, fmt.Errorf("%w: study plan %s", ErrDuplicateID, p.ID)
		}
	}
	next := s.clone()
	next.StudyPlans = append(next.StudyPlans, p)
	return next.withMaterialized(KeyStudyPlans)
}

func (s State) UpdateStudyPlan(p model.StudyPlanTemplate) (State, []Key, error) {
	if err := p.Validate(); err != nil {
		return s, nil, err
	}
	idx := slices.IndexFunc(s.StudyPlans, func(x model.StudyPlanTemplate) bool { return x.ID == p.ID })
	if idx < 0 {
		return s, nil, fmt.Errorf("%w: study plan %s", ErrNotFound, p.ID)
	}
	next := s.clone()
	next.StudyPlans[idx] = p
	return next.withMaterialized(KeyStudyPlans)
}

// DeleteStudyPlan removes the plan and every instance generated from it, on
// every date.
func (s State) DeleteStudyPlan(id string) (State, []Key) {
	hasPlan := slices.ContainsFunc(s.StudyPlans, func(x model.StudyPlanTemplate) bool { return x.ID == id })
	owned := func(t model.TaskInstance) bool { return planner.BelongsToStudyPlan(t, id) }
	hasTasks := slices.ContainsFunc(s.DailyTasks, owned)
	if !hasPlan && !hasTasks {
		return s, nil
	}
	next := s.clone()
	next.StudyPlans = slices.DeleteFunc(next.StudyPlans, func(x model.StudyPlanTemplate) bool { return x.ID == id })
	next.DailyTasks = slices.DeleteFunc(next.DailyTasks, owned)
	return next, []Key{KeyStudyPlans, KeyDailyTasks}
}

func (s State) AddTask(t model.TaskInstance) (State, []Key, error) {
	if t.Status == "" {
		t.Status = model.TaskStatusPending
	}
	if t.SourceType == "" {
		t.SourceType = model.SourceManual
	}
	if t.Date == "" {
		t.Date = s.CurrentDate
	}
	if err := t.Validate(); err != nil {
		return s, nil, err
	}
	if _, exists := s.FindTask(t.ID); exists {
		return s, nil, fmt.Errorf("%w: task %s", ErrDuplicateID, t.ID)
	}
	next := s.clone()
	next.DailyTasks = append(next.DailyTasks, t)
	return next, []Key{KeyDailyTasks}, nil
}

// TaskEdit carries the editable fields of an instance; nil leaves a field as
// it is.
type TaskEdit struct {
	Title     *string
	StartTime *model.ClockTime
	EndTime   *model.ClockTime
}

func (s State) UpdateTask(id string, edit TaskEdit) (State, []Key, error) {
	idx := slices.IndexFunc(s.DailyTasks, func(x model.TaskInstance) bool { return x.ID == id })
	if idx < 0 {
		return s, nil, fmt.Errorf("%w: task %s", ErrNotFound, id)
	}
	updated := s.DailyTasks[idx]
	if edit.Title != nil {
		updated.Title = strings.TrimSpace(*edit.Title)
	}
	if edit.StartTime != nil {
		updated.StartTime = *edit.StartTime
	}
	if edit.EndTime != nil {
		updated.EndTime = *edit.EndTime
	}
	if err := updated.Validate(); err != nil {
		return s, nil, err
	}
	next := s.clone()
	next.DailyTasks[idx] = updated
	return next, []Key{KeyDailyTasks}, nil
}

func (s State) DeleteTask(id string) (State, []Key) {
	return s.DeleteTasks([]string{id})
}

// DeleteTasks removes every listed id in one pass; unknown ids are ignored.
func (s State) DeleteTasks(ids []string) (State, []Key) {
	drop := make(map[string]bool, len(ids))
	for _, id := range ids {
		drop[id] = true
	}
	if !slices.ContainsFunc(s.DailyTasks, func(t model.TaskInstance) bool { return drop[t.ID] }) {
		return s, nil
	}
	next := s.clone()
	next.DailyTasks = slices.DeleteFunc(next.DailyTasks, func(t model.TaskInstance) bool { return drop[t.ID] })
	return next, []Key{KeyDailyTasks}
}

// ToggleTaskStatus completes a pending task. Completion is final: a done task
// stays done.
func (s State) ToggleTaskStatus(id string) (State, []Key) {
	idx := slices.IndexFunc(s.DailyTasks, func(x model.TaskInstance) bool { return x.ID == id })
	if idx < 0 || s.DailyTasks[idx].IsDone() {
		return s, nil
	}
	next := s.clone()
	next.DailyTasks[idx].Status = model.TaskStatusDone
	return next, []Key{KeyDailyTasks}
}

func (s State) MarkNotified(keys ...string) (State, []Key) {
	known := s.NotifiedSet()
	var add []string
	for _, k := range keys {
		if !known[k] {
			known[k] = true
			add = append(add, k)
		}
	}
	if len(add) == 0 {
		return s, nil
	}
	next := s.clone()
	next.NotifiedIDs = append(next.NotifiedIDs, add...)
	return next, []Key{KeyNotifiedIDs}
}

// AddNote puts the newest note first.
func (s State) AddNote(n model.Note, now time.Time) (State, []Key, error) {
	if n.UpdatedAt.IsZero() {
		n.UpdatedAt = now
	}
	if err := n.Validate(); err != nil {
		return s, nil, err
	}
	if slices.ContainsFunc(s.Notes, func(x model.Note) bool { return x.ID == n.ID }) {
		return s, nil, fmt.Errorf("%w: note %s", ErrDuplicateID, n.ID)
	}
	next := s.clone()
	next.Notes = append([]model.Note{n}, next.Notes...)
	return next, []Key{KeyNotes}, nil
}

type NoteEdit struct {
	Title   *string
	Content *string
}

func (s State) UpdateNote(id string, edit NoteEdit, now time.Time) (State, []Key, error) {
	idx := slices.IndexFunc(s.Notes, func(x model.Note) bool { return x.ID == id })
	if idx < 0 {
		return s, nil, fmt.Errorf("%w: note %s", ErrNotFound, id)
	}
	updated := s.Notes[idx]
	if edit.Title != nil {
		updated.Title = *edit.Title
	}
	if edit.Content != nil {
		updated.Content = *edit.Content
	}
	updated.UpdatedAt = now
	if err := updated.Validate(); err != nil {
		return s, nil, err
	}
	next := s.clone()
	next.Notes[idx] = updated
	return next, []Key{KeyNotes}, nil
}

func (s State) DeleteNote(id string) (State, []Key) {
	if !slices.ContainsFunc(s.Notes, func(x model.Note) bool { return x.ID == id }) {
		return s, nil
	}
	next := s.clone()
	next.Notes = slices.DeleteFunc(next.Notes, func(x model.Note) bool { return x.ID == id })
	return next, []Key{KeyNotes}
}

// NotesByRecent orders notes by last update, newest first.
func (s State) NotesByRecent() []model.Note {
	out := slices.Clone(s.Notes)
	sort.SliceStable(out, func(i, j int) bool { return out[i].UpdatedAt.After(out[j].UpdatedAt) })
	return out
}

// Login creates the default profile and generates today's instances.
func (s State) Login(profileID string) (State, []Key, error) {
	if s.LoggedIn() {
		return s, nil, nil
	}
	next := s.clone()
	p := model.DefaultProfile(profileID)
	next.User = &p
	return next.withMaterialized(AllKeys...)
}

// Logout drops everything except the theme; the caller clears the store.
func (s State) Logout() State {
	return State{Theme: s.Theme, CurrentDate: s.CurrentDate}
}

func (s State) UpdateProfile(update func(*model.UserProfile)) (State, []Key, error) {
	if !s.LoggedIn() {
		return s, nil, ErrLoggedOut
	}
	next := s.clone()
	update(next.User)
	return next, []Key{KeyUser}, nil
}

func (s State) SetNotifications(enabled bool) (State, []Key, error) {
	return s.UpdateProfile(func(p *model.UserProfile) { p.NotificationsEnabled = enabled })
}

func (s State) ToggleTheme() (State, []Key) {
	next := s.clone()
	next.Theme = s.Theme.Toggle()
	return next, []Key{KeyTheme}
}
