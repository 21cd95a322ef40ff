package planner

import (
	"math"

	"github.com/sandeepkv93/dayboard/internal/model"
)

type DayProgress struct {
	Date      string
	Weekday   string
	Completed int
	Total     int
}

type Summary struct {
	Total         int
	Completed     int
	Consistency   int
	CurrentStreak int
}

type Share struct {
	Source model.SourceType
	Count  int
}

// WeeklyProgress covers the seven days ending on today, oldest first.
func WeeklyProgress(tasks []model.TaskInstance, today string) ([]DayProgress, error) {
	out := make([]DayProgress, 0, 7)
	for i := 6; i >= 0; i-- {
		date, err := model.AddDays(today, -i)
		if err != nil {
			return nil, err
		}
		day, _ := model.ParseDate(date)
		p := DayProgress{Date: date, Weekday: day.Weekday().String()[:3]}
		for _, t := range tasks {
			if t.Date != date {
				continue
			}
			p.Total++
			if t.IsDone() {
				p.Completed++
			}
		}
		out = append(out, p)
	}
	return out, nil
}

func Summarize(tasks []model.TaskInstance, today string) Summary {
	s := Summary{Total: len(tasks)}
	doneDates := make(map[string]bool)
	for _, t := range tasks {
		if t.IsDone() {
			s.Completed++
			doneDates[t.Date] = true
		}
	}
	if s.Total > 0 {
		s.Consistency = int(math.Round(float64(s.Completed) / float64(s.Total) * 100))
	}
	s.CurrentStreak = streak(doneDates, today)
	return s
}

// streak counts consecutive days with at least one completed task. A streak
// stays alive through today as long as yesterday was completed.
func streak(doneDates map[string]bool, today string) int {
	cursor := today
	if !doneDates[cursor] {
		prev, err := model.AddDays(today, -1)
		if err != nil || !doneDates[prev] {
			return 0
		}
		cursor = prev
	}
	n := 0
	for doneDates[cursor] {
		n++
		prev, err := model.AddDays(cursor, -1)
		if err != nil {
			break
		}
		cursor = prev
	}
	return n
}

// Distribution counts instances per source, skipping empty sources.
func Distribution(tasks []model.TaskInstance) []Share {
	counts := make(map[model.SourceType]int)
	for _, t := range tasks {
		counts[t.SourceType]++
	}
	out := make([]Share, 0, 3)
	for _, src := range []model.SourceType{model.SourceStudyPlan, model.SourceRoutine, model.SourceManual} {
		if counts[src] > 0 {
			out = append(out, Share{Source: src, Count: counts[src]})
		}
	}
	return out
}

// StudyMinutesDone sums the length of completed study sessions on date.
func StudyMinutesDone(tasks []model.TaskInstance, date string) int {
	total := 0
	for _, t := range tasks {
		if t.Date != date || !t.IsDone() || t.SourceType != model.SourceStudyPlan {
			continue
		}
		span := t.EndMinutes() - t.StartMinutes()
		if span < 0 {
			span += model.MinutesPerDay
		}
		total += span
	}
	return total
}
