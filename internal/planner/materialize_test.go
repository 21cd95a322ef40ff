package planner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/dayboard/internal/model"
)

func clock(s string) model.ClockTime { return model.MustParseClock(s) }

func gymRoutine() model.RoutineTemplate {
	return model.RoutineTemplate{ID: "tid", Title: "Gym", StartTime: clock("07:00"), EndTime: clock("08:00")}
}

func mathPlan() model.StudyPlanTemplate {
	return model.StudyPlanTemplate{
		ID:              "math",
		Subject:         "Math",
		StartTime:       clock("16:00"),
		DurationMinutes: 90,
		Frequency:       model.FrequencyWeekly,
		DaysOfWeek:      []int{1, 3},
	}
}

func TestMaterializeRoutine(t *testing.T) {
	got, err := Materialize("2024-06-01", []model.RoutineTemplate{gymRoutine()}, nil, nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "routine-tid-2024-06-01", got[0].ID)
	assert.Equal(t, model.TaskStatusPending, got[0].Status)
	assert.Equal(t, model.SourceRoutine, got[0].SourceType)
	assert.Equal(t, "07:00", got[0].StartTime.String())
	assert.Equal(t, "08:00", got[0].EndTime.String())

	again, err := Materialize("2024-06-01", []model.RoutineTemplate{gymRoutine()}, nil, got)
	require.NoError(t, err)
	assert.Empty(t, again, "second run for the same date must add nothing")
}

func TestMaterializeIsIdempotent(t *testing.T) {
	routines := []model.RoutineTemplate{gymRoutine(), {ID: "r2", Title: "Read", StartTime: clock("21:00"), EndTime: clock("22:00")}}
	plans := []model.StudyPlanTemplate{mathPlan(), {ID: "bio", Subject: "Biology", StartTime: clock("10:00"), DurationMinutes: 30, Frequency: model.FrequencyDaily}}

	var tasks []model.TaskInstance
	for i := 0; i < 3; i++ {
		fresh, err := Materialize("2024-06-05", routines, plans, tasks)
		require.NoError(t, err)
		tasks = append(tasks, fresh...)
		assert.Len(t, tasks, 4, "run %d", i)
	}
}

func TestMaterializeWeeklyStudyPlan(t *testing.T) {
	// 2024-06-04 is a Tuesday, 2024-06-05 a Wednesday.
	tue, err := Materialize("2024-06-04", nil, []model.StudyPlanTemplate{mathPlan()}, nil)
	require.NoError(t, err)
	assert.Empty(t, tue)

	wed, err := Materialize("2024-06-05", nil, []model.StudyPlanTemplate{mathPlan()}, nil)
	require.NoError(t, err)
	require.Len(t, wed, 1)
	assert.Equal(t, "study-math-2024-06-05", wed[0].ID)
	assert.Equal(t, "17:30", wed[0].EndTime.String())
	assert.Equal(t, model.SourceStudyPlan, wed[0].SourceType)
}

func TestMaterializeIgnoresOtherDatesAndDoesNotMutate(t *testing.T) {
	existing := []model.TaskInstance{
		{ID: "routine-tid-2024-05-31", Title: "Gym", Date: "2024-05-31", Status: model.TaskStatusDone, SourceType: model.SourceRoutine},
	}
	snapshot := append([]model.TaskInstance(nil), existing...)

	got, err := Materialize("2024-06-01", []model.RoutineTemplate{gymRoutine()}, nil, existing)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, snapshot, existing)
}

func TestMaterializeEmptyTemplates(t *testing.T) {
	got, err := Materialize("2024-06-01", nil, nil, nil)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestMaterializeRejectsBadDate(t *testing.T) {
	_, err := Materialize("06/01/2024", []model.RoutineTemplate{gymRoutine()}, nil, nil)
	assert.ErrorIs(t, err, model.ErrInvalidDate)
}

func TestMaterializeRejectsOutOfRangeTemplateTime(t *testing.T) {
	bad := gymRoutine()
	bad.EndTime = model.ClockTime(model.MinutesPerDay)
	got, err := Materialize("2024-06-01", []model.RoutineTemplate{bad}, nil, nil)
	assert.ErrorIs(t, err, model.ErrInvalidClock)
	assert.Empty(t, got)
}

func TestBelongsToStudyPlan(t *testing.T) {
	own := model.TaskInstance{ID: model.StudyInstanceID("1", "2024-06-01")}
	longer := model.TaskInstance{ID: model.StudyInstanceID("12", "2024-06-01")}
	routine := model.TaskInstance{ID: model.RoutineInstanceID("1", "2024-06-01")}

	assert.True(t, BelongsToStudyPlan(own, "1"))
	assert.False(t, BelongsToStudyPlan(longer, "1"))
	assert.False(t, BelongsToStudyPlan(routine, "1"))
}
