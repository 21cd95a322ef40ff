// Package planner holds the daily task engine: it expands routine and study
// plan templates into dated task instances, classifies instances against the
// current time of day and decides when reminders fire. Everything here is a
// pure function of its arguments.
package planner

import (
	"fmt"

	"github.com/sandeepkv93/dayboard/internal/model"
)

// Materialize returns the instances missing for date. existing is only read;
// callers append the result. Running it again with the result appended yields
// nothing new.
func Materialize(date string, routines []model.RoutineTemplate, plans []model.StudyPlanTemplate, existing []model.TaskInstance) ([]model.TaskInstance, error) {
	day, err := model.ParseDate(date)
	if err != nil {
		return nil, err
	}
	if len(routines) == 0 && len(plans) == 0 {
		return nil, nil
	}

	present := make(map[string]bool)
	for _, t := range existing {
		if t.Date == date {
			present[t.ID] = true
		}
	}

	out := make([]model.TaskInstance, 0, len(routines)+len(plans))
	for _, r := range routines {
		id := model.RoutineInstanceID(r.ID, date)
		if present[id] {
			continue
		}
		if !r.StartTime.Valid() || !r.EndTime.Valid() {
			return nil, fmt.Errorf("routine %s: %w", r.ID, model.ErrInvalidClock)
		}
		present[id] = true
		out = append(out, model.TaskInstance{
			ID:         id,
			Title:      r.Title,
			StartTime:  r.StartTime,
			EndTime:    r.EndTime,
			Status:     model.TaskStatusPending,
			Date:       date,
			SourceType: model.SourceRoutine,
		})
	}

	weekday := day.Weekday()
	for _, p := range plans {
		id := model.StudyInstanceID(p.ID, date)
		if present[id] || !p.ScheduledOn(weekday) {
			continue
		}
		if !p.StartTime.Valid() {
			return nil, fmt.Errorf("study plan %s: %w", p.ID, model.ErrInvalidClock)
		}
		present[id] = true
		out = append(out, model.TaskInstance{
			ID:         id,
			Title:      p.Subject,
			StartTime:  p.StartTime,
			EndTime:    p.EndTime(),
			Status:     model.TaskStatusPending,
			Date:       date,
			SourceType: model.SourceStudyPlan,
		})
	}
	return out, nil
}

// BelongsToStudyPlan reports whether the instance was generated from the plan
// with the given id, on any date.
func BelongsToStudyPlan(t model.TaskInstance, planID string) bool {
	source, tmpl, _, ok := model.ParseInstanceID(t.ID)
	return ok && source == model.SourceStudyPlan && tmpl == planID
}
