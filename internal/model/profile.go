package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

type StudyLevel string

const (
	StudyLevelSchool     StudyLevel = "School"
	StudyLevelCollege    StudyLevel = "College"
	StudyLevelUniversity StudyLevel = "University"
)

var ErrInvalidStudyLevel = errors.New("model: invalid study level")

// ParseStudyLevel matches raw against the known levels ignoring case.
func ParseStudyLevel(raw string) (StudyLevel, error) {
	for _, l := range []StudyLevel{StudyLevelSchool, StudyLevelCollege, StudyLevelUniversity} {
		if strings.EqualFold(raw, string(l)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidStudyLevel, raw)
}

type TimeFormat string

const (
	TimeFormat12h TimeFormat = "12h"
	TimeFormat24h TimeFormat = "24h"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

type UserProfile struct {
	ID                   string     `json:"id"`
	Name                 string     `json:"name"`
	Email                string     `json:"email"`
	StudyLevel           StudyLevel `json:"studyLevel"`
	DailyStudyTarget     float64    `json:"dailyStudyTarget"`
	PersonalGoals        string     `json:"personalGoals"`
	NotificationsEnabled bool       `json:"notificationsEnabled"`
	TimeFormat           TimeFormat `json:"timeFormat"`
}

func DefaultProfile(id string) UserProfile {
	return UserProfile{
		ID:                   id,
		Name:                 "User",
		StudyLevel:           StudyLevelUniversity,
		DailyStudyTarget:     4,
		PersonalGoals:        "Achieve my goals",
		NotificationsEnabled: true,
		TimeFormat:           TimeFormat12h,
	}
}

// FormatClock renders c using the profile's preferred clock.
func (p UserProfile) FormatClock(c ClockTime) string {
	if p.TimeFormat == TimeFormat24h {
		return c.String()
	}
	return c.Format12h()
}

type Note struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (n Note) Validate() error {
	if strings.TrimSpace(n.ID) == "" {
		return errors.New("model: note id is required")
	}
	if strings.TrimSpace(n.Title) == "" {
		return errors.New("model: note title is required")
	}
	return nil
}
