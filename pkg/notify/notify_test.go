package notify

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
)

type recorder struct {
	sent []Message
	err  error
}

func (r *recorder) Notify(_ context.Context, m Message) error {
	if r.err != nil {
		return r.err
	}
	r.sent = append(r.sent, m)
	return nil
}

func TestPermissionGatesDelivery(t *testing.T) {
	rec := &recorder{}
	m := NewManager(rec, false, nil)
	if m.Permission() != Denied {
		t.Fatalf("expected denied, got %s", m.Permission())
	}
	if m.TripMilestone(context.Background(), 120) {
		t.Fatalf("expected suppressed delivery")
	}
	m.SetPermission(true)
	if !m.TripMilestone(context.Background(), 120) {
		t.Fatalf("expected delivery")
	}
	if len(rec.sent) != 1 || rec.sent[0].Body != "You've traveled 120 km on this trip!" {
		t.Fatalf("unexpected messages %+v", rec.sent)
	}
}

func TestNilNotifierIsDenied(t *testing.T) {
	m := NewManager(nil, true, nil)
	if m.Permission() != Denied {
		t.Fatalf("expected denied without a notifier")
	}
}

func TestNotifierErrorsAreSwallowed(t *testing.T) {
	m := NewManager(&recorder{err: errors.New("boom")}, true, nil)
	if m.Achievement(context.Background(), model.Achievement{Name: "First Ride"}) {
		t.Fatalf("expected failed delivery to report false")
	}
}

func TestOverdueWording(t *testing.T) {
	rec := &recorder{}
	m := NewManager(rec, true, nil)
	ctx := context.Background()

	if m.OverdueTasks(ctx, nil) {
		t.Fatalf("expected nothing for an empty list")
	}
	m.OverdueTasks(ctx, []state.OverdueTask{{Task: model.MaintenanceTask{Name: "Chain Lubrication"}, DaysOverdue: 3}})
	m.OverdueTasks(ctx, []state.OverdueTask{
		{Task: model.MaintenanceTask{Name: "Wash"}},
		{Task: model.MaintenanceTask{Name: "Chain Cleaning"}},
	})

	if got := rec.sent[0].Body; got != "Chain Lubrication is overdue by 3 days" {
		t.Fatalf("unexpected single body %q", got)
	}
	if got := rec.sent[1].Title; got != "🏍️ 2 Maintenance Tasks Due!" {
		t.Fatalf("unexpected title %q", got)
	}
	if got := rec.sent[1].Body; got != "• Wash\n• Chain Cleaning" {
		t.Fatalf("unexpected list body %q", got)
	}
	if !rec.sent[0].Sticky {
		t.Fatalf("expected overdue notifications to be sticky")
	}
}

func TestUpcomingWording(t *testing.T) {
	rec := &recorder{}
	m := NewManager(rec, true, nil)
	m.UpcomingEvents(context.Background(), []state.UpcomingEvent{
		{Event: model.CalendarEvent{Title: "Wash"}, DaysUntil: 0},
		{Event: model.CalendarEvent{Title: "Oil"}, DaysUntil: 1},
		{Event: model.CalendarEvent{Title: "Tires"}, DaysUntil: 4},
	})
	want := "• Wash today\n• Oil tomorrow\n• Tires in 4 days"
	if got := rec.sent[0].Body; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFuelEfficiencyOnlyWhenLow(t *testing.T) {
	rec := &recorder{}
	m := NewManager(rec, true, nil)
	m.FuelEfficiency(context.Background(), 22, false)
	m.FuelEfficiency(context.Background(), 12.34, true)
	if len(rec.sent) != 1 || !strings.Contains(rec.sent[0].Body, "12.3 km/L") {
		t.Fatalf("unexpected messages %+v", rec.sent)
	}
}

func TestTerminalNotifier(t *testing.T) {
	color.NoColor = true
	var buf bytes.Buffer
	n := NewTerminal(&buf)
	err := n.Notify(context.Background(), Message{Title: "🏍️ Achievement Unlocked!", Body: "Century Club\nRide 100 kilometers"})
	if err != nil {
		t.Fatalf("notify: %v", err)
	}
	want := "🏍️ Achievement Unlocked!\n  Century Club\n  Ride 100 kilometers\n"
	if buf.String() != want {
		t.Fatalf("expected %q, got %q", want, buf.String())
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.Notify(ctx, Message{Title: "x"}); err == nil {
		t.Fatalf("expected cancelled context to fail")
	}
}

func TestUntilHour(t *testing.T) {
	at := func(h, m int) time.Time { return time.Date(2025, 6, 10, h, m, 0, 0, time.UTC) }
	if got := untilHour(at(8, 30), 9); got != 30*time.Minute {
		t.Fatalf("expected 30m, got %v", got)
	}
	if got := untilHour(at(9, 0), 9); got != 24*time.Hour {
		t.Fatalf("expected 24h, got %v", got)
	}
}

func TestScheduleRunsImmediately(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	Schedule(ctx, time.Hour, 9, func(context.Context) {
		calls++
		cancel()
	})
	if calls != 1 {
		t.Fatalf("expected one immediate check, got %d", calls)
	}
}
