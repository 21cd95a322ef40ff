package planner

import (
	"sort"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type ListFilter string

const (
	ListActive  ListFilter = "active"
	ListMissed  ListFilter = "missed"
	ListArchive ListFilter = "archive"
)

func (f ListFilter) Next() ListFilter {
	switch f {
	case ListActive:
		return ListMissed
	case ListMissed:
		return ListArchive
	default:
		return ListActive
	}
}

// Scope selects which instances a list screen shows: study sessions have
// their own screen and are kept out of the general task list.
type Scope int

const (
	ScopeGeneral Scope = iota
	ScopeStudy
)

func (s Scope) includes(t model.TaskInstance) bool {
	if s == ScopeStudy {
		return t.SourceType == model.SourceStudyPlan
	}
	return t.SourceType != model.SourceStudyPlan
}

// List is the filtered task list. Active holds today's pending tasks that
// have not ended yet, Missed today's pending tasks whose end has passed, and
// Archive everything done or dated another day, newest first.
func List(tasks []model.TaskInstance, scope Scope, filter ListFilter, date string, now model.ClockTime) []model.TaskInstance {
	out := make([]model.TaskInstance, 0)
	for _, t := range tasks {
		if !scope.includes(t) {
			continue
		}
		today := t.Date == date && !t.IsDone()
		switch filter {
		case ListActive:
			if today && t.EndMinutes() > now.Minutes() {
				out = append(out, t)
			}
		case ListMissed:
			if today && t.EndMinutes() <= now.Minutes() {
				out = append(out, t)
			}
		case ListArchive:
			if !today {
				out = append(out, t)
			}
		}
	}
	if filter == ListArchive {
		sort.SliceStable(out, func(i, j int) bool {
			if out[i].Date != out[j].Date {
				return out[i].Date > out[j].Date
			}
			return out[i].StartTime > out[j].StartTime
		})
		return out
	}
	return sortedByStart(out)
}
