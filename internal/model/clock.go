package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

const (
	MinutesPerDay = 24 * 60
	DateLayout    = "2006-01-02"
)

var (
	ErrInvalidClock = errors.New("model: invalid clock time")
	ErrInvalidDate  = errors.New("model: invalid date")
)

// ClockTime is a wall-clock time of day at minute resolution, stored as
// minutes since midnight.
type ClockTime int

// ParseClock accepts strict 24-hour "HH:mm" only.
func ParseClock(s string) (ClockTime, error) {
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, okH := twoDigits(s[0], s[1])
	m, okM := twoDigits(s[3], s[4])
	if !okH || !okM || h > 23 || m > 59 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return ClockTime(h*60 + m), nil
}

// MustParseClock panics on malformed input. Intended for literals and tests.
func MustParseClock(s string) ClockTime {
	c, err := ParseClock(s)
	if err != nil {
		panic(err)
	}
	return c
}

func ClockOf(t time.Time) ClockTime {
	return ClockTime(t.Hour()*60 + t.Minute())
}

func twoDigits(a, b byte) (int, bool) {
	if a < '0' || a > '9' || b < '0' || b > '9' {
		return 0, false
	}
	return int(a-'0')*10 + int(b-'0'), true
}

func (c ClockTime) Minutes() int { return int(c) }

func (c ClockTime) Hour() int { return int(c) / 60 }

func (c ClockTime) Minute() int { return int(c) % 60 }

func (c ClockTime) Valid() bool { return c >= 0 && c < MinutesPerDay }

// AddMinutes wraps around midnight; there is no notion of the next day.
func (c ClockTime) AddMinutes(n int) ClockTime {
	v := (int(c) + n) % MinutesPerDay
	if v < 0 {
		v += MinutesPerDay
	}
	return ClockTime(v)
}

func (c ClockTime) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour(), c.Minute())
}

func (c ClockTime) Format12h() string {
	suffix := "AM"
	if c.Hour() >= 12 {
		suffix = "PM"
	}
	h := c.Hour() % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, c.Minute(), suffix)
}

func (c ClockTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ClockTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidClock, string(b))
	}
	parsed, err := ParseClock(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func DateOf(t time.Time) string {
	return t.Format(DateLayout)
}

func ParseDate(s string) (time.Time, error) {
	t, err := time.ParseInLocation(DateLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return t, nil
}

func ValidDate(s string) bool {
	_, err := time.Parse(DateLayout, s)
	return err == nil && len(s) == len(DateLayout)
}

// AddDays shifts a date key; the input must already be valid.
func AddDays(date string, days int) (string, error) {
	t, err := ParseDate(date)
	if err != nil {
		return "", err
	}
	return DateOf(t.AddDate(0, 0, days)), nil
}
