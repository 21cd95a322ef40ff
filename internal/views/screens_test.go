package views

import (
	"strings"
	"testing"
)

func TestRenderDashboardShowsPrimaryAndNext(t *testing.T) {
	out := RenderDashboard(DashboardData{
		Theme:            "light",
		Greeting:         "Good morning, User",
		Date:             "2026-03-02",
		Clock:            "9:15 AM",
		Primary:          &TaskRow{Title: "Gym", Span: "9:00 AM-10:00 AM"},
		PrimaryCountdown: "00:45:00",
		Concurrent:       []TaskRow{{Title: "Podcast", Span: "9:00 AM-9:30 AM"}},
		Next:             &TaskRow{Title: "Math", Span: "4:00 PM-5:00 PM"},
		NextCountdown:    "06:45:00",
		MissedCount:      2,
	})
	for _, want := range []string{"Gym", "ends in 00:45:00", "+ Podcast", "Math", "starts in 06:45:00"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in dashboard:\n%s", want, out)
		}
	}
}

func TestRenderDashboardEmpty(t *testing.T) {
	out := RenderDashboard(DashboardData{Theme: "dark"})
	if !strings.Contains(out, "nothing in progress") || !strings.Contains(out, "nothing left today") {
		t.Fatalf("unexpected empty dashboard:\n%s", out)
	}
}

func TestRenderTaskListSelectMode(t *testing.T) {
	out := RenderTaskList(TaskListData{
		Theme:       "light",
		Filter:      "active",
		SelectMode:  true,
		MarkedCount: 1,
		Rows: []TaskRow{
			{Title: "One", Span: "10:00-10:30", Phase: "upcoming", Selected: true, Marked: true},
			{Title: "Two", Span: "11:00-11:30", Phase: "upcoming"},
		},
	})
	if !strings.Contains(out, "select mode, 1 marked") {
		t.Fatalf("expected select mode header:\n%s", out)
	}
	if !strings.Contains(out, "> [x] 10:00-10:30") || !strings.Contains(out, "  [ ] 11:00-11:30") {
		t.Fatalf("expected marked rows:\n%s", out)
	}
}

func TestRenderNotification(t *testing.T) {
	if got := RenderNotification("info", "  "); got != "" {
		t.Fatalf("expected blank notification to render nothing, got %q", got)
	}
	if got := RenderNotification("info", "Gym is starting now."); !strings.Contains(got, "[INFO]") {
		t.Fatalf("unexpected notification: %q", got)
	}
}

func TestRenderAppShowsTabsAndStatus(t *testing.T) {
	out := RenderApp(AppData{
		Theme:      "light",
		Header:     "dayboard",
		Tabs:       []string{"Dashboard", "Tasks"},
		ActiveTab:  "Tasks",
		LeftPane:   "left",
		StatusLine: "status: ok",
	})
	for _, want := range []string{"dayboard", "Dashboard", "Tasks", "left", "status: ok"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in app view:\n%s", want, out)
		}
	}
}
