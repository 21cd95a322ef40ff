package planner

import (
	"fmt"
	"sort"
	"time"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type Phase string

const (
	PhaseActive   Phase = "active"
	PhaseUpcoming Phase = "upcoming"
	PhaseMissed   Phase = "missed"
	PhaseDone     Phase = "done"
)

// PhaseOf places a task relative to now. Checks run in a fixed order so a
// pending task always lands in exactly one of active, upcoming or missed,
// including tasks whose end wrapped past midnight.
func PhaseOf(t model.TaskInstance, now model.ClockTime) Phase {
	if t.IsDone() {
		return PhaseDone
	}
	start, end, n := t.StartMinutes(), t.EndMinutes(), now.Minutes()
	switch {
	case start <= n && n < end:
		return PhaseActive
	case start > n:
		return PhaseUpcoming
	default:
		return PhaseMissed
	}
}

// Board is the derived view of one day at one minute. It is never persisted.
type Board struct {
	Date     string
	Now      model.ClockTime
	Active   []model.TaskInstance
	Upcoming []model.TaskInstance
	Missed   []model.TaskInstance
	Done     []model.TaskInstance
}

// Classify partitions the instances dated date. Pending instances are
// ordered by start time before partitioning, so Active keeps that order.
func Classify(tasks []model.TaskInstance, date string, now model.ClockTime) Board {
	b := Board{Date: date, Now: now}
	for _, t := range sortedByStart(forDate(tasks, date)) {
		switch PhaseOf(t, now) {
		case PhaseActive:
			b.Active = append(b.Active, t)
		case PhaseUpcoming:
			b.Upcoming = append(b.Upcoming, t)
		case PhaseMissed:
			b.Missed = append(b.Missed, t)
		default:
			b.Done = append(b.Done, t)
		}
	}
	return b
}

func (b Board) Primary() (model.TaskInstance, bool) {
	if len(b.Active) == 0 {
		return model.TaskInstance{}, false
	}
	return b.Active[0], true
}

func (b Board) ConcurrentOthers() []model.TaskInstance {
	if len(b.Active) < 2 {
		return nil
	}
	return b.Active[1:]
}

func (b Board) Next() (model.TaskInstance, bool) {
	if len(b.Upcoming) == 0 {
		return model.TaskInstance{}, false
	}
	return b.Upcoming[0], true
}

// Agenda lists active tasks first, then every other pending task by start.
func (b Board) Agenda() []model.TaskInstance {
	rest := append(append([]model.TaskInstance(nil), b.Upcoming...), b.Missed...)
	rest = sortedByStart(rest)
	return append(append([]model.TaskInstance(nil), b.Active...), rest...)
}

func (b Board) Pending() int {
	return len(b.Active) + len(b.Upcoming) + len(b.Missed)
}

// NowSeconds is the number of seconds since local midnight.
func NowSeconds(t time.Time) int {
	return t.Hour()*3600 + t.Minute()*60 + t.Second()
}

// Countdown is the time left until target, zero once it has passed.
func Countdown(target model.ClockTime, nowSeconds int) time.Duration {
	diff := target.Minutes()*60 - nowSeconds
	if diff <= 0 {
		return 0
	}
	return time.Duration(diff) * time.Second
}

func FormatCountdown(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int(d / time.Second)
	return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
}

func forDate(tasks []model.TaskInstance, date string) []model.TaskInstance {
	out := make([]model.TaskInstance, 0, len(tasks))
	for _, t := range tasks {
		if t.Date == date {
			out = append(out, t)
		}
	}
	return out
}

func sortedByStart(tasks []model.TaskInstance) []model.TaskInstance {
	out := append([]model.TaskInstance(nil), tasks...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].StartTime < out[j].StartTime })
	return out
}
