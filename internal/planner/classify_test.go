package planner

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sandeepkv93/dayboard/internal/model"
)

const day = "2024-06-01"

func task(id, start, end string) model.TaskInstance {
	return model.TaskInstance{
		ID:         id,
		Title:      id,
		StartTime:  clock(start),
		EndTime:    clock(end),
		Status:     model.TaskStatusPending,
		Date:       day,
		SourceType: model.SourceManual,
	}
}

func ids(tasks []model.TaskInstance) []string {
	out := make([]string, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestClassifyPartitionsPendingTasks(t *testing.T) {
	done := task("done", "09:00", "10:00")
	done.Status = model.TaskStatusDone
	other := task("other-day", "09:00", "11:00")
	other.Date = "2024-05-31"

	tasks := []model.TaskInstance{
		task("late", "11:00", "12:00"),
		task("b-active", "09:30", "10:30"),
		task("a-active", "09:00", "10:15"),
		task("gone", "07:00", "08:00"),
		task("edge-end", "08:00", "10:00"),
		done,
		other,
	}

	b := Classify(tasks, day, clock("10:00"))
	assert.Equal(t, []string{"a-active", "b-active"}, ids(b.Active))
	assert.Equal(t, []string{"late"}, ids(b.Upcoming))
	assert.Equal(t, []string{"gone", "edge-end"}, ids(b.Missed))
	assert.Equal(t, []string{"done"}, ids(b.Done))

	primary, ok := b.Primary()
	require.True(t, ok)
	assert.Equal(t, "a-active", primary.ID)
	assert.Equal(t, []string{"b-active"}, ids(b.ConcurrentOthers()))

	next, ok := b.Next()
	require.True(t, ok)
	assert.Equal(t, "late", next.ID)

	assert.Equal(t, []string{"a-active", "b-active", "gone", "edge-end", "late"}, ids(b.Agenda()))
}

func TestClassifyEveryPendingTaskLandsInExactlyOnePhase(t *testing.T) {
	var tasks []model.TaskInstance
	for i, span := range [][2]string{
		{"00:00", "00:30"}, {"06:00", "06:01"}, {"12:00", "13:00"}, {"23:30", "00:30"}, {"18:00", "18:00"}, {"23:00", "23:59"},
	} {
		tasks = append(tasks, task(fmt.Sprintf("t%d", i), span[0], span[1]))
	}
	for now := 0; now < model.MinutesPerDay; now += 7 {
		b := Classify(tasks, day, model.ClockTime(now))
		seen := make(map[string]int)
		for _, group := range [][]model.TaskInstance{b.Active, b.Upcoming, b.Missed} {
			for _, tk := range group {
				seen[tk.ID]++
			}
		}
		require.Len(t, seen, len(tasks), "now=%d", now)
		for id, n := range seen {
			require.Equal(t, 1, n, "task %s classified %d times at %d", id, n, now)
		}
	}
}

func TestPhaseBoundaries(t *testing.T) {
	tk := task("t", "09:00", "10:00")
	assert.Equal(t, PhaseUpcoming, PhaseOf(tk, clock("08:59")))
	assert.Equal(t, PhaseActive, PhaseOf(tk, clock("09:00")))
	assert.Equal(t, PhaseActive, PhaseOf(tk, clock("09:59")))
	assert.Equal(t, PhaseMissed, PhaseOf(tk, clock("10:00")))

	tk.Status = model.TaskStatusDone
	assert.Equal(t, PhaseDone, PhaseOf(tk, clock("09:30")))
}

func TestCountdownClampsAtZero(t *testing.T) {
	now := time.Date(2024, 6, 1, 9, 58, 30, 0, time.Local)
	secs := NowSeconds(now)
	assert.Equal(t, 90*time.Second, Countdown(clock("10:00"), secs))
	assert.Equal(t, "00:01:30", FormatCountdown(Countdown(clock("10:00"), secs)))
	assert.Equal(t, time.Duration(0), Countdown(clock("09:00"), secs))
	assert.Equal(t, "00:00:00", FormatCountdown(Countdown(clock("09:58"), secs)))
	assert.Equal(t, "02:01:30", FormatCountdown(Countdown(clock("12:00"), secs)))
}
