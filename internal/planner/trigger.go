package planner

import (
	"io"
	"log/slog"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/notify"
)

// Trigger fires the pre-start, start and end reminders.
//
// Matching is exact on the minute: a moment fires only if a check runs while
// the clock reads its target minute. A check skipped for a whole minute (host
// asleep, throttled timers) loses that reminder; this is accepted.
type Trigger struct {
	Notifier notify.Notifier
	Logger   *slog.Logger
}

func NewTrigger(n notify.Notifier, logger *slog.Logger) Trigger {
	if n == nil {
		n = notify.NoopNotifier{}
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return Trigger{Notifier: n, Logger: logger}
}

// Due lists the marker keys whose moment matches now and that are not yet in
// notified. Only pending instances dated date are considered.
func Due(tasks []model.TaskInstance, date string, now model.ClockTime, notified map[string]bool) []Reminder {
	var out []Reminder
	seen := make(map[string]bool)
	for _, t := range tasks {
		if t.Date != date || t.IsDone() {
			continue
		}
		for _, moment := range model.Moments {
			if moment.TargetMinutes(t) != now.Minutes() {
				continue
			}
			key := model.NotifiedKey(t.ID, moment)
			if notified[key] || seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, Reminder{Key: key, Moment: moment, Task: t})
		}
	}
	return out
}

type Reminder struct {
	Key    string
	Moment model.ReminderMoment
	Task   model.TaskInstance
}

// Check shows every due reminder and returns the keys it handled; the caller
// records them as notified. Nothing fires while reminders are switched off or
// permission is not granted, and nothing is marked either, so reminders still
// fire if permission arrives within the same minute.
func (tr Trigger) Check(tasks []model.TaskInstance, date string, now model.ClockTime, notified map[string]bool, enabled bool) []string {
	if !enabled || tr.Notifier == nil || tr.Notifier.Permission() != notify.PermissionGranted {
		return nil
	}
	due := Due(tasks, date, now, notified)
	keys := make([]string, 0, len(due))
	for _, r := range due {
		if err := tr.Notifier.Show(r.Moment.Title(), r.Moment.Body(r.Task)); err != nil {
			tr.logger().Warn("show reminder failed", "key", r.Key, "err", err)
		}
		tr.logger().Debug("reminder fired", "key", r.Key, "date", date, "now", now.String())
		keys = append(keys, r.Key)
	}
	return keys
}

func (tr Trigger) logger() *slog.Logger {
	if tr.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return tr.Logger
}
