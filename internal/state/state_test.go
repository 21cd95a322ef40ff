package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/dayboard/internal/model"
)

const today = "2024-06-05"

func clock(s string) model.ClockTime { return model.MustParseClock(s) }

func loggedIn(t *testing.T) State {
	t.Helper()
	s, _, err := New(today).Login("u1")
	require.NoError(t, err)
	return s
}

func taskIDs(tasks []model.TaskInstance) []string {
	out := make([]string, 0, len(tasks))
	for _, tk := range tasks {
		out = append(out, tk.ID)
	}
	return out
}

func manual(id, start, end string) model.TaskInstance {
	return model.TaskInstance{ID: id, Title: id, StartTime: clock(start), EndTime: clock(end)}
}

func TestAddRoutineMaterializesToday(t *testing.T) {
	s := loggedIn(t)
	next, keys, err := s.AddRoutine(model.RoutineTemplate{ID: "gym", Title: "Gym", StartTime: clock("07:00"), EndTime: clock("08:00")})
	require.NoError(t, err)
	assert.ElementsMatch(t, []Key{KeyRoutines, KeyDailyTasks}, keys)
	assert.Equal(t, []string{"routine-gym-2024-06-05"}, taskIDs(next.DailyTasks))
	assert.Equal(t, model.CategoryMorning, next.Routines[0].Category)
	assert.Empty(t, s.Routines, "receiver must not change")

	_, _, err = next.AddRoutine(model.RoutineTemplate{ID: "gym", Title: "Again", StartTime: clock("07:00"), EndTime: clock("08:00")})
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestUpdateRoutineLeavesExistingInstances(t *testing.T) {
	s := loggedIn(t)
	s, _, err := s.AddRoutine(model.RoutineTemplate{ID: "gym", Title: "Gym", StartTime: clock("07:00"), EndTime: clock("08:00")})
	require.NoError(t, err)

	s, _, err = s.UpdateRoutine(model.RoutineTemplate{ID: "gym", Title: "Run", StartTime: clock("06:00"), EndTime: clock("06:30")})
	require.NoError(t, err)
	require.Len(t, s.DailyTasks, 1)
	assert.Equal(t, "Gym", s.DailyTasks[0].Title)
	assert.Equal(t, "Run", s.Routines[0].Title)

	_, _, err = s.UpdateRoutine(model.RoutineTemplate{ID: "nope", Title: "x", StartTime: clock("06:00"), EndTime: clock("06:30")})
	assert.ErrorIs(t, err, ErrNotFound)

	s, keys := s.DeleteRoutine("gym")
	assert.Equal(t, []Key{KeyRoutines}, keys)
	assert.Empty(t, s.Routines)
	assert.Len(t, s.DailyTasks, 1, "deleting a routine keeps its instances")
}

func TestDeleteStudyPlanCascadesAcrossDates(t *testing.T) {
	s := loggedIn(t)
	s, _, err := s.AddStudyPlan(model.StudyPlanTemplate{ID: "1", Subject: "Math", StartTime: clock("16:00"), DurationMinutes: 60, Frequency: model.FrequencyDaily})
	require.NoError(t, err)
	s, _, err = s.AddTask(model.TaskInstance{ID: model.StudyInstanceID("1", "2024-06-01"), Title: "Math", StartTime: clock("16:00"), EndTime: clock("17:00"), Date: "2024-06-01", SourceType: model.SourceStudyPlan})
	require.NoError(t, err)
	s, _, err = s.AddTask(model.TaskInstance{ID: model.StudyInstanceID("12", today), Title: "Bio", StartTime: clock("10:00"), EndTime: clock("11:00"), SourceType: model.SourceStudyPlan})
	require.NoError(t, err)
	require.Len(t, s.DailyTasks, 3)

	s, keys := s.DeleteStudyPlan("1")
	assert.ElementsMatch(t, []Key{KeyStudyPlans, KeyDailyTasks}, keys)
	assert.Empty(t, s.StudyPlans)
	assert.Equal(t, []string{"study-12-2024-06-05"}, taskIDs(s.DailyTasks))

	_, keys = s.DeleteStudyPlan("1")
	assert.Nil(t, keys)
}

func TestAddTaskDefaultsAndRejectsDuplicates(t *testing.T) {
	s := loggedIn(t)
	s, keys, err := s.AddTask(manual("m1", "09:00", "10:00"))
	require.NoError(t, err)
	assert.Equal(t, []Key{KeyDailyTasks}, keys)
	got, ok := s.FindTask("m1")
	require.True(t, ok)
	assert.Equal(t, today, got.Date)
	assert.Equal(t, model.TaskStatusPending, got.Status)
	assert.Equal(t, model.SourceManual, got.SourceType)

	_, _, err = s.AddTask(manual("m1", "11:00", "12:00"))
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestUpdateTaskEditsOnlyGivenFields(t *testing.T) {
	s := loggedIn(t)
	s, _, err := s.AddTask(manual("m1", "09:00", "10:00"))
	require.NoError(t, err)

	title := "Write report"
	end := clock("11:15")
	s, _, err = s.UpdateTask("m1", TaskEdit{Title: &title, EndTime: &end})
	require.NoError(t, err)
	got, _ := s.FindTask("m1")
	assert.Equal(t, "Write report", got.Title)
	assert.Equal(t, "09:00", got.StartTime.String())
	assert.Equal(t, "11:15", got.EndTime.String())

	blank := "  "
	_, _, err = s.UpdateTask("m1", TaskEdit{Title: &blank})
	assert.Error(t, err)
	_, _, err = s.UpdateTask("missing", TaskEdit{Title: &title})
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteTasksIgnoresUnknownIDs(t *testing.T) {
	s := loggedIn(t)
	for _, id := range []string{"a", "b", "c"} {
		var err error
		s, _, err = s.AddTask(manual(id, "09:00", "10:00"))
		require.NoError(t, err)
	}

	next, keys := s.DeleteTasks([]string{"a", "c", "zzz"})
	assert.Equal(t, []Key{KeyDailyTasks}, keys)
	assert.Equal(t, []string{"b"}, taskIDs(next.DailyTasks))
	assert.Len(t, s.DailyTasks, 3)

	_, keys = next.DeleteTasks([]string{"zzz"})
	assert.Nil(t, keys)

	next, _ = next.DeleteTask("b")
	assert.Empty(t, next.DailyTasks)
}

func TestToggleTaskStatusIsOneWay(t *testing.T) {
	s := loggedIn(t)
	s, _, err := s.AddTask(manual("m1", "09:00", "10:00"))
	require.NoError(t, err)

	s, keys := s.ToggleTaskStatus("m1")
	assert.Equal(t, []Key{KeyDailyTasks}, keys)
	got, _ := s.FindTask("m1")
	assert.True(t, got.IsDone())

	s, keys = s.ToggleTaskStatus("m1")
	assert.Nil(t, keys)
	got, _ = s.FindTask("m1")
	assert.True(t, got.IsDone())
}

func TestRolloverClearsMarkersAndMaterializes(t *testing.T) {
	s := loggedIn(t)
	s, _, err := s.AddRoutine(model.RoutineTemplate{ID: "gym", Title: "Gym", StartTime: clock("07:00"), EndTime: clock("08:00")})
	require.NoError(t, err)
	s, _ = s.MarkNotified("routine-gym-2024-06-05-start")

	same, keys, err := s.Rollover(today)
	require.NoError(t, err)
	assert.Nil(t, keys)
	assert.Len(t, same.NotifiedIDs, 1)

	next, keys, err := s.Rollover("2024-06-06")
	require.NoError(t, err)
	assert.ElementsMatch(t, []Key{KeyCurrentDate, KeyNotifiedIDs, KeyDailyTasks}, keys)
	assert.Equal(t, "2024-06-06", next.CurrentDate)
	assert.Empty(t, next.NotifiedIDs)
	assert.Equal(t, []string{"routine-gym-2024-06-05", "routine-gym-2024-06-06"}, taskIDs(next.DailyTasks))

	_, _, err = s.Rollover("tomorrow")
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestRolloverWhileLoggedOutOnlyAdvancesDate(t *testing.T) {
	s := New(today)
	s.Routines = []model.RoutineTemplate{{ID: "gym", Title: "Gym", StartTime: clock("07:00"), EndTime: clock("08:00")}}
	next, _, err := s.Rollover("2024-06-06")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-06", next.CurrentDate)
	assert.Empty(t, next.DailyTasks)
}

func TestMarkNotifiedSkipsKnownKeys(t *testing.T) {
	s := New(today)
	s, keys := s.MarkNotified("a-start", "a-start", "a-end")
	assert.Equal(t, []Key{KeyNotifiedIDs}, keys)
	assert.Equal(t, []string{"a-start", "a-end"}, s.NotifiedIDs)

	_, keys = s.MarkNotified("a-end")
	assert.Nil(t, keys)
	assert.True(t, s.NotifiedSet()["a-start"])
}

func TestNotesLifecycle(t *testing.T) {
	t0 := time.Date(2024, 6, 5, 9, 0, 0, 0, time.Local)
	s := New(today)
	s, _, err := s.AddNote(model.Note{ID: "n1", Title: "First"}, t0)
	require.NoError(t, err)
	s, _, err = s.AddNote(model.Note{ID: "n2", Title: "Second"}, t0.Add(time.Minute))
	require.NoError(t, err)
	assert.Equal(t, "n2", s.Notes[0].ID, "new notes go first")

	content := "body"
	s, _, err = s.UpdateNote("n1", NoteEdit{Content: &content}, t0.Add(time.Hour))
	require.NoError(t, err)
	recent := s.NotesByRecent()
	assert.Equal(t, "n1", recent[0].ID)
	assert.Equal(t, "body", recent[0].Content)

	_, _, err = s.AddNote(model.Note{ID: "n1", Title: "dup"}, t0)
	assert.ErrorIs(t, err, ErrDuplicateID)

	s, keys := s.DeleteNote("n1")
	assert.Equal(t, []Key{KeyNotes}, keys)
	assert.Len(t, s.Notes, 1)
}

func TestProfileThemeAndLogout(t *testing.T) {
	s := New(today)
	_, _, err := s.SetNotifications(false)
	assert.ErrorIs(t, err, ErrLoggedOut)
	assert.False(t, s.NotificationsEnabled())

	s = loggedIn(t)
	assert.True(t, s.NotificationsEnabled())
	s, _, err = s.SetNotifications(false)
	require.NoError(t, err)
	assert.False(t, s.NotificationsEnabled())

	s, keys := s.ToggleTheme()
	assert.Equal(t, []Key{KeyTheme}, keys)
	assert.Equal(t, model.ThemeDark, s.Theme)

	out := s.Logout()
	assert.False(t, out.LoggedIn())
	assert.Equal(t, model.ThemeDark, out.Theme)
	assert.Equal(t, today, out.CurrentDate)
}
