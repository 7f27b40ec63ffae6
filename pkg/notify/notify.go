// Package notify announces achievements, due maintenance and ride milestones.
// Delivery is fire and forget: failures are logged and never reach callers.
package notify

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
)

// Message is one notification.
type Message struct {
	Title string
	Body  string
	// Tag groups notifications of the same kind.
	Tag string
	// Sticky asks the notifier to keep the message until dismissed.
	Sticky bool
}

// Notifier delivers messages to the user.
type Notifier interface {
	Notify(ctx context.Context, m Message) error
}

// Permission is the delivery permission state.
type Permission string

const (
	Granted Permission = "granted"
	Denied  Permission = "denied"
)

// Manager gates delivery on the permission flag.
type Manager struct {
	mu       sync.Mutex
	granted  bool
	notifier Notifier
	log      *zap.Logger
}

// NewManager creates a Manager. A nil notifier denies every message.
func NewManager(n Notifier, granted bool, log *zap.Logger) *Manager {
	if log == nil {
		log = zap.NewNop()
	}
	return &Manager{granted: granted && n != nil, notifier: n, log: log}
}

// Permission reports whether delivery is allowed.
func (m *Manager) Permission() Permission {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.granted {
		return Granted
	}
	return Denied
}

// SetPermission grants or revokes delivery.
func (m *Manager) SetPermission(granted bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.granted = granted && m.notifier != nil
}

// Send delivers msg when permitted and reports whether it was handed to the
// notifier successfully.
func (m *Manager) Send(ctx context.Context, msg Message) bool {
	if m.Permission() != Granted {
		m.log.Debug("notification suppressed", zap.String("tag", msg.Tag))
		return false
	}
	if err := m.notifier.Notify(ctx, msg); err != nil {
		m.log.Warn("notification failed", zap.String("tag", msg.Tag), zap.Error(err))
		return false
	}
	return true
}

// Achievement announces an unlocked achievement.
func (m *Manager) Achievement(ctx context.Context, a model.Achievement) bool {
	return m.Send(ctx, Message{
		Title:  fmt.Sprintf("%s Achievement Unlocked!", a.Icon),
		Body:   a.Name + "\n" + a.Description,
		Tag:    "achievement",
		Sticky: true,
	})
}

// OverdueTasks announces maintenance past its due date. An empty list sends
// nothing.
func (m *Manager) OverdueTasks(ctx context.Context, tasks []state.OverdueTask) bool {
	if len(tasks) == 0 {
		return false
	}
	msg := Message{Tag: "overdue-tasks", Sticky: true}
	if len(tasks) == 1 {
		msg.Title = "🏍️ Maintenance Due!"
		msg.Body = fmt.Sprintf("%s is overdue by %d days", tasks[0].Task.Name, tasks[0].DaysOverdue)
	} else {
		msg.Title = fmt.Sprintf("🏍️ %d Maintenance Tasks Due!", len(tasks))
		lines := make([]string, len(tasks))
		for i, t := range tasks {
			lines[i] = "• " + t.Task.Name
		}
		msg.Body = strings.Join(lines, "\n")
	}
	return m.Send(ctx, msg)
}

// UpcomingEvents announces calendar events inside the look-ahead window.
func (m *Manager) UpcomingEvents(ctx context.Context, events []state.UpcomingEvent) bool {
	if len(events) == 0 {
		return false
	}
	lines := make([]string, len(events))
	for i, e := range events {
		lines[i] = fmt.Sprintf("• %s %s", e.Event.Title, DayText(e.DaysUntil))
	}
	return m.Send(ctx, Message{
		Title: "📅 Upcoming Maintenance Events",
		Body:  strings.Join(lines, "\n"),
		Tag:   "upcoming-events",
	})
}

// DayText renders a day offset as "today", "tomorrow" or "in N days".
func DayText(days int) string {
	switch days {
	case 0:
		return "today"
	case 1:
		return "tomorrow"
	default:
		return fmt.Sprintf("in %d days", days)
	}
}

// FuelEfficiency warns about a low km/L figure. Nothing is sent unless low.
func (m *Manager) FuelEfficiency(ctx context.Context, efficiency float64, low bool) bool {
	if !low {
		return false
	}
	return m.Send(ctx, Message{
		Title: "⛽ Fuel Efficiency Alert",
		Body:  fmt.Sprintf("Your fuel efficiency has dropped to %.1f km/L. Consider checking tire pressure and chain lubrication.", efficiency),
		Tag:   "fuel-efficiency",
	})
}

// TripMilestone celebrates the distance covered on a trip.
func (m *Manager) TripMilestone(ctx context.Context, distance float64) bool {
	return m.Send(ctx, Message{
		Title: "🎯 Trip Milestone!",
		Body:  fmt.Sprintf("You've traveled %.0f km on this trip!", distance),
		Tag:   "trip-milestone",
	})
}

// Schedule calls check immediately, then every interval and once a day at
// dailyHour local time, until ctx is done.
func Schedule(ctx context.Context, interval time.Duration, dailyHour int, check func(context.Context)) {
	check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	daily := time.NewTimer(untilHour(time.Now(), dailyHour))
	defer daily.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			check(ctx)
		case <-daily.C:
			check(ctx)
			daily.Reset(untilHour(time.Now(), dailyHour))
		}
	}
}

// untilHour is the wait from now until the next occurrence of hour:00.
func untilHour(now time.Time, hour int) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next.Sub(now)
}
