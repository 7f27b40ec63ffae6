// Package watch provides the long-running reminder runner.
package watch

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/notify"
)

const (
	// DefaultInterval is how often reminders are re-checked.
	DefaultInterval = time.Hour
	// DefaultDailyHour is the local hour of the daily reminder check.
	DefaultDailyHour = 9
)

// Watch follows the data file for external edits and sends overdue and
// upcoming reminders until ctx is done.
type Watch struct {
	App       *app.Service
	Window    time.Duration
	Interval  time.Duration
	DailyHour int
	Log       *zap.Logger
}

func (n *Watch) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not watch, no app")
	}
	log := n.Log
	if log == nil {
		log = zap.NewNop()
	}
	interval := n.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return n.App.Watch(ctx, func(d model.AppData) {
			log.Info("picked up external change", zap.Float64("totalKilometers", d.TotalKilometers))
		})
	})
	g.Go(func() error {
		notify.Schedule(ctx, interval, n.DailyHour, func(ctx context.Context) {
			log.Debug("checking reminders")
			n.App.CheckReminders(ctx, n.Window)
		})
		return nil
	})

	log.Info("watching", zap.String("path", n.App.Slot.Path()), zap.Duration("interval", interval))
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
