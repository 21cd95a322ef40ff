package model

import (
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidMoment = errors.New("model: invalid reminder moment")

// ReminderMoment is one of the three fixed points around a task at which a
// reminder fires.
type ReminderMoment string

const (
	MomentPreStart ReminderMoment = "pre"
	MomentStart    ReminderMoment = "start"
	MomentEnd      ReminderMoment = "end"
)

// PreStartLead is how long before the start the first reminder fires.
const PreStartLead = 5

var Moments = []ReminderMoment{MomentPreStart, MomentStart, MomentEnd}

func (r ReminderMoment) IsValid() bool {
	switch r {
	case MomentPreStart, MomentStart, MomentEnd:
		return true
	default:
		return false
	}
}

// TargetMinutes is the minute of day at which the moment fires for t. The
// pre-start target may be negative for tasks starting before 00:05; such
// reminders never fire.
func (r ReminderMoment) TargetMinutes(t TaskInstance) int {
	switch r {
	case MomentPreStart:
		return t.StartMinutes() - PreStartLead
	case MomentStart:
		return t.StartMinutes()
	default:
		return t.EndMinutes()
	}
}

func (r ReminderMoment) Title() string {
	switch r {
	case MomentPreStart:
		return "Upcoming Task"
	case MomentStart:
		return "Task Starting!"
	default:
		return "Task Finished"
	}
}

func (r ReminderMoment) Body(t TaskInstance) string {
	switch r {
	case MomentPreStart:
		return fmt.Sprintf("%s starts in %d minutes.", t.Title, PreStartLead)
	case MomentStart:
		return fmt.Sprintf("%s is starting now.", t.Title)
	default:
		return fmt.Sprintf("Time is up for: %s. Check your next task!", t.Title)
	}
}

// NotifiedKey is the marker recorded once a moment has fired for a task.
func NotifiedKey(taskID string, moment ReminderMoment) string {
	return taskID + "-" + string(moment)
}

// ParseNotifiedKey splits a marker produced by NotifiedKey. Task ids may
// themselves contain dashes, so the moment is taken after the last one.
func ParseNotifiedKey(key string) (string, ReminderMoment, error) {
	cut := strings.LastIndex(key, "-")
	if cut <= 0 {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidMoment, key)
	}
	moment := ReminderMoment(key[cut+1:])
	if !moment.IsValid() {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidMoment, key)
	}
	return key[:cut], moment, nil
}
