package model

import (
	"encoding/json"
	"errors"
	"testing"
)

func TestReminderMomentTargets(t *testing.T) {
	task := TaskInstance{ID: "t1", Title: "Gym", StartTime: MustParseClock("07:00"), EndTime: MustParseClock("08:00")}
	if got := MomentPreStart.TargetMinutes(task); got != 7*60-5 {
		t.Fatalf("unexpected pre target: %d", got)
	}
	if got := MomentStart.TargetMinutes(task); got != 7*60 {
		t.Fatalf("unexpected start target: %d", got)
	}
	if got := MomentEnd.TargetMinutes(task); got != 8*60 {
		t.Fatalf("unexpected end target: %d", got)
	}
	if NotifiedKey(task.ID, MomentEnd) != "t1-end" {
		t.Fatalf("unexpected key: %s", NotifiedKey(task.ID, MomentEnd))
	}
	if ReminderMoment("later").IsValid() {
		t.Fatal("expected invalid moment")
	}
}

func TestParseClockStrict(t *testing.T) {
	valid := map[string]int{"00:00": 0, "07:05": 425, "23:59": 1439}
	for in, want := range valid {
		got, err := ParseClock(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		if got.Minutes() != want {
			t.Fatalf("parse %q = %d, want %d", in, got, want)
		}
		if got.String() != in {
			t.Fatalf("format %q = %q", in, got.String())
		}
	}

	for _, in := range []string{"7:05", "24:00", "12:60", "ab:cd", "12-30", "", "12:300"} {
		if _, err := ParseClock(in); !errors.Is(err, ErrInvalidClock) {
			t.Fatalf("expected ErrInvalidClock for %q, got %v", in, err)
		}
	}
}

func TestClockFormat12h(t *testing.T) {
	cases := map[string]string{"00:15": "12:15 AM", "09:00": "9:00 AM", "12:00": "12:00 PM", "18:45": "6:45 PM"}
	for in, want := range cases {
		if got := MustParseClock(in).Format12h(); got != want {
			t.Fatalf("format12h(%s) = %s, want %s", in, got, want)
		}
	}
}

func TestClockJSONUsesHHMM(t *testing.T) {
	raw, err := json.Marshal(RoutineTemplate{ID: "r1", Title: "Gym", StartTime: MustParseClock("07:00"), EndTime: MustParseClock("08:00")})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	want := `{"id":"r1","title":"Gym","startTime":"07:00","endTime":"08:00"}`
	if string(raw) != want {
		t.Fatalf("unexpected json %s", raw)
	}

	var back RoutineTemplate
	if err := json.Unmarshal([]byte(`{"id":"r1","title":"Gym","startTime":"7:00","endTime":"08:00"}`), &back); !errors.Is(err, ErrInvalidClock) {
		t.Fatalf("expected ErrInvalidClock on malformed json, got %v", err)
	}
}

func TestAddMinutesWraps(t *testing.T) {
	if got := MustParseClock("23:50").AddMinutes(20).String(); got != "00:10" {
		t.Fatalf("unexpected wrap: %s", got)
	}
	if got := MustParseClock("00:10").AddMinutes(-20).String(); got != "23:50" {
		t.Fatalf("unexpected negative wrap: %s", got)
	}
}

func TestParseNotifiedKey(t *testing.T) {
	id, moment, err := ParseNotifiedKey(NotifiedKey("study-12-2026-03-02", MomentPreStart))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if id != "study-12-2026-03-02" || moment != MomentPreStart {
		t.Fatalf("unexpected split: %q %q", id, moment)
	}

	for _, in := range []string{"t1", "t1-later", "-start", ""} {
		if _, _, err := ParseNotifiedKey(in); !errors.Is(err, ErrInvalidMoment) {
			t.Fatalf("expected ErrInvalidMoment for %q, got %v", in, err)
		}
	}
}

func TestParseStudyLevel(t *testing.T) {
	for in, want := range map[string]StudyLevel{"school": StudyLevelSchool, "College": StudyLevelCollege, "UNIVERSITY": StudyLevelUniversity} {
		got, err := ParseStudyLevel(in)
		if err != nil || got != want {
			t.Fatalf("parse %q = %q, %v", in, got, err)
		}
	}
	if _, err := ParseStudyLevel("PhD"); !errors.Is(err, ErrInvalidStudyLevel) {
		t.Fatalf("expected ErrInvalidStudyLevel, got %v", err)
	}
}
