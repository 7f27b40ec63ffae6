// Package calendar provides the month view of calendar events.
package calendar

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/printers"
)

// Calendar prints the month containing On, then Months-1 more.
type Calendar struct {
	App    *app.Service
	On     time.Time
	Months int
	Output string
}

func (n *Calendar) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not show calendar, no app")
	}
	now := n.App.Store.Now()
	on := n.On
	if on.IsZero() {
		on = now
	}
	months := n.Months
	if months < 1 {
		months = 1
	}
	first := time.Date(on.Year(), on.Month(), 1, 0, 0, 0, 0, time.Local)
	last := first.AddDate(0, months, 0)

	events := make([]model.CalendarEvent, 0)
	for _, e := range n.App.Data().CalendarEvents {
		if e.Date.Set() && !e.Date.Before(first) && e.Date.Before(last) {
			events = append(events, e)
		}
	}

	pp := printers.PrettyPrint{}
	return pp.Emit(n.Output, events, func(pp *printers.PrettyPrint) {
		then := first
		for i := 0; i < months; i++ {
			pp.Calendar(now, then, events...)
			then = printers.NextMonth(then)
		}
	})
}
