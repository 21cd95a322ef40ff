package scheduler

import (
	"context"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

var epoch = time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

func advance(t *testing.T, clock *clockwork.FakeClock, d time.Duration) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("engine never armed its timer: %v", err)
	}
	clock.Advance(d)
}

func TestEngineEmitsPeriodicEvents(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	engine := NewEngine(clock, 8)
	if err := engine.Every(KindTick, time.Second); err != nil {
		t.Fatalf("every: %v", err)
	}
	engine.Start()
	defer engine.Stop()

	for i := 1; i <= 3; i++ {
		advance(t, clock, time.Second)
		ev := waitEvent(t, engine.C(), time.Second)
		if ev.Kind != KindTick {
			t.Fatalf("unexpected kind %q", ev.Kind)
		}
		if want := epoch.Add(time.Duration(i) * time.Second); !ev.At.Equal(want) {
			t.Fatalf("tick %d at %v, want %v", i, ev.At, want)
		}
	}
}

func TestEngineEmitsInTriggerOrder(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	engine := NewEngine(clock, 8)
	engine.Start()
	defer engine.Stop()

	if err := engine.Schedule("later", KindRollover, epoch.Add(80*time.Millisecond)); err != nil {
		t.Fatalf("schedule later: %v", err)
	}
	if err := engine.Schedule("sooner", KindRollover, epoch.Add(20*time.Millisecond)); err != nil {
		t.Fatalf("schedule sooner: %v", err)
	}

	advance(t, clock, 20*time.Millisecond)
	first := waitEvent(t, engine.C(), time.Second)
	advance(t, clock, 60*time.Millisecond)
	second := waitEvent(t, engine.C(), time.Second)
	if first.ID != "sooner" || second.ID != "later" {
		t.Fatalf("unexpected order: first=%s second=%s", first.ID, second.ID)
	}
}

func TestEngineCoalescesMissedIntervals(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	engine := NewEngine(clock, 8)
	if err := engine.Every(KindRollover, 10*time.Second); err != nil {
		t.Fatalf("every: %v", err)
	}
	engine.Start()
	defer engine.Stop()

	advance(t, clock, 35*time.Second)
	waitEvent(t, engine.C(), time.Second)
	select {
	case ev := <-engine.C():
		t.Fatalf("expected a single coalesced event, got extra %#v", ev)
	case <-time.After(50 * time.Millisecond):
	}

	advance(t, clock, 5*time.Second)
	ev := waitEvent(t, engine.C(), time.Second)
	if !ev.At.Equal(epoch.Add(40 * time.Second)) {
		t.Fatalf("next rollover at %v", ev.At)
	}
}

func TestEngineNonBlockingDropsWhenConsumerIsSlow(t *testing.T) {
	clock := clockwork.NewFakeClockAt(epoch)
	engine := NewEngine(clock, 1)
	if err := engine.Every(KindTick, time.Second); err != nil {
		t.Fatalf("every: %v", err)
	}
	engine.Start()
	defer engine.Stop()

	for i := 0; i < 5; i++ {
		advance(t, clock, time.Second)
	}
	// The last send happens after Advance returns; let the loop re-arm.
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := clock.BlockUntilContext(ctx, 1); err != nil {
		t.Fatalf("engine never re-armed: %v", err)
	}
	if engine.Dropped() != 4 {
		t.Fatalf("expected 4 dropped events, got %d", engine.Dropped())
	}
}

func TestScheduleValidatesInput(t *testing.T) {
	engine := NewEngine(clockwork.NewFakeClock(), 1)
	if err := engine.Schedule("bad", KindTick, time.Time{}); err != ErrInvalidTriggerTime {
		t.Fatalf("expected ErrInvalidTriggerTime, got %v", err)
	}
	if err := engine.Every(KindTick, 0); err != ErrInvalidInterval {
		t.Fatalf("expected ErrInvalidInterval, got %v", err)
	}
	engine.Stop()
	if err := engine.Every(KindTick, time.Second); err != ErrStopped {
		t.Fatalf("expected ErrStopped, got %v", err)
	}
}

func waitEvent(t *testing.T, ch <-chan Event, timeout time.Duration) Event {
	t.Helper()
	select {
	case ev := <-ch:
		return ev
	case <-time.After(timeout):
		t.Fatalf("timed out waiting for event")
		return Event{}
	}
}
