package model

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidStatus = errors.New("model: invalid task status")
	ErrInvalidSource = errors.New("model: invalid task source")
)

type TaskStatus string

const (
	TaskStatusPending TaskStatus = "PENDING"
	TaskStatusDone    TaskStatus = "DONE"
)

func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusDone:
		return true
	default:
		return false
	}
}

type SourceType string

const (
	SourceRoutine   SourceType = "Routine"
	SourceStudyPlan SourceType = "StudyPlan"
	SourceManual    SourceType = "Manual"
)

func (s SourceType) IsValid() bool {
	switch s {
	case SourceRoutine, SourceStudyPlan, SourceManual:
		return true
	default:
		return false
	}
}

// TaskInstance is a concrete, dated task. Instances generated from templates
// carry a deterministic id; manual ones carry whatever id the caller chose.
type TaskInstance struct {
	ID         string     `json:"id"`
	Title      string     `json:"title"`
	StartTime  ClockTime  `json:"startTime"`
	EndTime    ClockTime  `json:"endTime"`
	Status     TaskStatus `json:"status"`
	Date       string     `json:"date"`
	SourceType SourceType `json:"sourceType"`
}

func (t TaskInstance) Validate() error {
	if strings.TrimSpace(t.ID) == "" {
		return errors.New("model: task id is required")
	}
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("model: task title is required")
	}
	if !t.StartTime.Valid() || !t.EndTime.Valid() {
		return fmt.Errorf("%w: %d-%d", ErrInvalidClock, t.StartTime, t.EndTime)
	}
	if !ValidDate(t.Date) {
		return fmt.Errorf("%w: %q", ErrInvalidDate, t.Date)
	}
	if !t.Status.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, t.Status)
	}
	if !t.SourceType.IsValid() {
		return fmt.Errorf("%w: %q", ErrInvalidSource, t.SourceType)
	}
	return nil
}

func (t TaskInstance) StartMinutes() int { return t.StartTime.Minutes() }

func (t TaskInstance) EndMinutes() int { return t.EndTime.Minutes() }

func (t TaskInstance) IsDone() bool { return t.Status == TaskStatusDone }

const (
	routinePrefix = "routine"
	studyPrefix   = "study"
)

func RoutineInstanceID(templateID, date string) string {
	return routinePrefix + "-" + templateID + "-" + date
}

func StudyInstanceID(templateID, date string) string {
	return studyPrefix + "-" + templateID + "-" + date
}

// ParseInstanceID splits a template-derived id into its parts. Manual ids
// and anything not ending in a valid date report ok=false.
func ParseInstanceID(id string) (source SourceType, templateID string, date string, ok bool) {
	var rest string
	switch {
	case strings.HasPrefix(id, routinePrefix+"-"):
		source, rest = SourceRoutine, strings.TrimPrefix(id, routinePrefix+"-")
	case strings.HasPrefix(id, studyPrefix+"-"):
		source, rest = SourceStudyPlan, strings.TrimPrefix(id, studyPrefix+"-")
	default:
		return "", "", "", false
	}
	n := len(DateLayout)
	if len(rest) < n+2 || rest[len(rest)-n-1] != '-' {
		return "", "", "", false
	}
	date = rest[len(rest)-n:]
	if !ValidDate(date) {
		return "", "", "", false
	}
	return source, rest[:len(rest)-n-1], date, true
}
