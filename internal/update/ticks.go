package update

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/sandeepkv93/dayboard/internal/model"
	"github.com/sandeepkv93/dayboard/internal/scheduler"
)

func waitForEventCmd(ch <-chan scheduler.Event) tea.Cmd {
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return nil
		}
		switch ev.Kind {
		case scheduler.KindRollover:
			return RolloverMsg{At: ev.At}
		default:
			return TickMsg{At: ev.At}
		}
	}
}

func (m Model) nextEventCmd() tea.Cmd {
	if m.engine == nil {
		return nil
	}
	return waitForEventCmd(m.engine.C())
}

// onTick reclassifies the day and fires reminders that are due this minute.
func (m *Model) onTick(now time.Time) {
	m.Now = now
	if m.State.LoggedIn() {
		fired := m.trigger.Check(m.State.DailyTasks, m.State.CurrentDate, m.nowClock(), m.State.NotifiedSet(), m.State.NotificationsEnabled())
		if len(fired) > 0 {
			next, keys := m.State.MarkNotified(fired...)
			m.State = next
			m.save(keys)
			m.recordReminders(fired)
		}
	}
	m.refreshBoard()
}

// onRollover switches to the clock's date when it has moved on.
func (m *Model) onRollover(now time.Time) {
	m.Now = now
	today := model.DateOf(now)
	if today == m.State.CurrentDate {
		return
	}
	prev := m.State.CurrentDate
	next, keys, err := m.State.Rollover(today)
	if m.apply(next, keys, err) {
		m.Tasks.Marked = make(map[string]bool)
		m.Tasks.SelectMode = false
		m.logger.Info("day rollover", "from", prev, "to", today)
		m.Status = StatusBar{Text: fmt.Sprintf("new day: %s", today)}
	}
}

func (m *Model) recordReminders(keys []string) {
	for _, key := range keys {
		taskID, moment, err := model.ParseNotifiedKey(key)
		if err != nil {
			m.logger.Warn("skipping reminder", "key", key, "err", err)
			continue
		}
		task, ok := m.State.FindTask(taskID)
		if !ok {
			continue
		}
		m.Notifications = append(m.Notifications, Notification{
			Title: moment.Title(),
			Body:  moment.Body(task),
			Level: "info",
			At:    m.Now,
		})
	}
	if len(m.Notifications) > 40 {
		m.Notifications = m.Notifications[len(m.Notifications)-40:]
	}
}
