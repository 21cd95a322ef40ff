package model

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"
)

type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
)

var (
	ErrInvalidFrequency = errors.New("model: invalid study frequency")
	ErrInvalidDuration  = errors.New("model: invalid study duration")
	ErrInvalidWeekday   = errors.New("model: invalid weekday")
)

type RoutineCategory string

const (
	CategoryMorning   RoutineCategory = "Morning"
	CategoryAfternoon RoutineCategory = "Afternoon"
	CategoryEvening   RoutineCategory = "Evening"
	CategoryNight     RoutineCategory = "Night"
)

type RoutineKind string

const (
	KindStudy    RoutineKind = "Study"
	KindRest     RoutineKind = "Rest"
	KindWork     RoutineKind = "Work"
	KindPersonal RoutineKind = "Personal"
)

// RoutineTemplate recurs every day unconditionally.
type RoutineTemplate struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	StartTime ClockTime       `json:"startTime"`
	EndTime   ClockTime       `json:"endTime"`
	Category  RoutineCategory `json:"category,omitempty"`
	Kind      RoutineKind     `json:"type,omitempty"`
}

func (r RoutineTemplate) Validate() error {
	if strings.TrimSpace(r.ID) == "" {
		return errors.New("model: routine id is required")
	}
	if strings.TrimSpace(r.Title) == "" {
		return errors.New("model: routine title is required")
	}
	if !r.StartTime.Valid() || !r.EndTime.Valid() {
		return fmt.Errorf("%w: routine %s", ErrInvalidClock, r.ID)
	}
	return nil
}

// CategoryFor buckets a start time the way the routine editor suggests a
// category when none is given.
func CategoryFor(start ClockTime) RoutineCategory {
	switch h := start.Hour(); {
	case h >= 5 && h < 12:
		return CategoryMorning
	case h >= 12 && h < 17:
		return CategoryAfternoon
	case h >= 17 && h < 21:
		return CategoryEvening
	default:
		return CategoryNight
	}
}

// StudyPlanTemplate recurs daily, or weekly on the listed weekdays
// (0 = Sunday ... 6 = Saturday).
type StudyPlanTemplate struct {
	ID              string    `json:"id"`
	Subject         string    `json:"subject"`
	StartTime       ClockTime `json:"startTime"`
	DurationMinutes int       `json:"duration"`
	Frequency       Frequency `json:"frequency"`
	DaysOfWeek      []int     `json:"daysOfWeek"`
}

func (p StudyPlanTemplate) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("model: study plan id is required")
	}
	if strings.TrimSpace(p.Subject) == "" {
		return errors.New("model: study plan subject is required")
	}
	if !p.StartTime.Valid() {
		return fmt.Errorf("%w: study plan %s", ErrInvalidClock, p.ID)
	}
	if p.DurationMinutes <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidDuration, p.DurationMinutes)
	}
	switch p.Frequency {
	case FrequencyDaily, FrequencyWeekly:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFrequency, p.Frequency)
	}
	days := append([]int(nil), p.DaysOfWeek...)
	sort.Ints(days)
	for i, d := range days {
		if d < 0 || d > 6 {
			return fmt.Errorf("%w: %d", ErrInvalidWeekday, d)
		}
		if i > 0 && days[i-1] == d {
			return errors.New("model: duplicate weekday in study plan")
		}
	}
	return nil
}

// ScheduledOn reports whether the plan produces a session on the weekday.
func (p StudyPlanTemplate) ScheduledOn(day time.Weekday) bool {
	if p.Frequency == FrequencyDaily {
		return true
	}
	for _, d := range p.DaysOfWeek {
		if d == int(day) {
			return true
		}
	}
	return false
}

// EndTime wraps past midnight; a session is never split across two dates.
func (p StudyPlanTemplate) EndTime() ClockTime {
	return p.StartTime.AddMinutes(p.DurationMinutes)
}

var weekdayNames = map[string]int{
	"sun": 0, "sunday": 0,
	"mon": 1, "monday": 1,
	"tue": 2, "tuesday": 2,
	"wed": 3, "wednesday": 3,
	"thu": 4, "thursday": 4,
	"fri": 5, "friday": 5,
	"sat": 6, "saturday": 6,
}

// ParseWeekdays accepts "1,3", "mon,wed", "weekdays" or "weekends".
func ParseWeekdays(raw string) ([]int, error) {
	seen := make(map[int]bool)
	out := make([]int, 0, 7)
	add := func(d int) {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	for _, token := range strings.Split(strings.ToLower(raw), ",") {
		token = strings.TrimSpace(token)
		switch token {
		case "":
			continue
		case "weekdays", "weekday":
			for d := 1; d <= 5; d++ {
				add(d)
			}
			continue
		case "weekends", "weekend":
			add(0)
			add(6)
			continue
		}
		if d, ok := weekdayNames[token]; ok {
			add(d)
			continue
		}
		if len(token) == 1 && token[0] >= '0' && token[0] <= '6' {
			add(int(token[0] - '0'))
			continue
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidWeekday, token)
	}
	sort.Ints(out)
	return out, nil
}
