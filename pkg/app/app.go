package app

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/notify"
	"tableflip.dev/cyberride/pkg/state"
	"tableflip.dev/cyberride/pkg/store"
)

var (
	// ErrNotFound is returned when an operation names an unknown record.
	ErrNotFound = errors.New("app: not found")

	errNoSlot = errors.New("app: no persistence configured")
)

// Options tunes a Service.
type Options struct {
	Log *zap.Logger
	// Notify receives unlocks, trip milestones and fuel alerts. Optional.
	Notify *notify.Manager
	// LowEfficiency is the km/L figure below which a fuel alert is sent.
	LowEfficiency float64
	Clock         func() time.Time
	IDs           func(prefix string) string
}

// Service provides high-level operations over the rider's data. It loads the
// aggregate from the slot once, persists every committed change back to it
// and forwards notable changes to the notifier, so CLIs and the MCP server
// share one code path.
type Service struct {
	Slot  store.Slot
	Store *state.Store

	log    *zap.Logger
	notify *notify.Manager
	lowEff float64

	mu   sync.Mutex
	last []byte

	cancel []func()
}

// Open loads the aggregate from slot and wires the persistence writer and the
// notifier to the store.
func Open(slot store.Slot, opts Options) (*Service, error) {
	if slot == nil {
		return nil, errNoSlot
	}
	log := opts.Log
	if log == nil {
		log = zap.NewNop()
	}
	blob, err := slot.Read()
	if err != nil {
		return nil, fmt.Errorf("app: load data: %w", err)
	}

	s := &Service{
		Slot:   slot,
		log:    log,
		notify: opts.Notify,
		lowEff: opts.LowEfficiency,
		last:   blob,
	}
	s.Store = state.Open(blob,
		state.WithLogger(log),
		state.WithClock(opts.Clock),
		state.WithIDs(opts.IDs),
	)
	// The writer is attached only after the initial load so defaults are not
	// written back until something changes.
	s.cancel = append(s.cancel, s.Store.Subscribe(s.persist))
	if s.notify != nil {
		s.cancel = append(s.cancel, s.Store.Subscribe(s.announce))
	}
	return s, nil
}

// Close detaches the service listeners from the store.
func (s *Service) Close() {
	for _, c := range s.cancel {
		c()
	}
	s.cancel = nil
}

// Data returns a snapshot of the aggregate.
func (s *Service) Data() model.AppData {
	return s.Store.Data()
}

// persist writes every committed change to the slot. Failures are logged and
// the in-memory state stays authoritative.
func (s *Service) persist(c state.Change) {
	blob, err := state.Encode(c.Data)
	if err != nil {
		s.log.Error("error saving data", zap.String("op", string(c.Op)), zap.Error(err))
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if bytes.Equal(blob, s.last) {
		return
	}
	if err := s.Slot.Write(blob); err != nil {
		s.log.Error("error saving data", zap.String("op", string(c.Op)), zap.Error(err))
		return
	}
	s.last = blob
	s.log.Debug("data saved", zap.String("op", string(c.Op)), zap.Int("bytes", len(blob)))
}

func (s *Service) announce(c state.Change) {
	ctx := context.Background()
	for _, a := range c.Unlocked {
		s.notify.Achievement(ctx, a)
	}
	switch c.Op {
	case state.OpEndTrip:
		for _, t := range c.Data.TripEntries {
			if t.ID == c.Subject && t.Distance > 0 {
				s.notify.TripMilestone(ctx, t.Distance)
			}
		}
	case state.OpAddFuel, state.OpUpdateFuel:
		if s.lowEff <= 0 {
			return
		}
		eff := state.FuelStats(c.Data).AvgEfficiency
		s.notify.FuelEfficiency(ctx, eff, eff > 0 && eff < s.lowEff)
	}
}

// Reload re-reads the slot after an external change and swaps the aggregate
// in. It reports whether anything was replaced.
func (s *Service) Reload() (bool, error) {
	blob, err := s.Slot.Read()
	if err != nil {
		return false, fmt.Errorf("app: reload data: %w", err)
	}
	s.mu.Lock()
	same := bytes.Equal(blob, s.last)
	if !same {
		s.last = blob
	}
	s.mu.Unlock()
	if same {
		return false, nil
	}
	s.Store.Replace(state.Decode(blob, s.Store.Now(), s.log))
	return true, nil
}

// ResetData erases the slot and restores the defaults.
func (s *Service) ResetData() error {
	s.mu.Lock()
	err := s.Slot.Erase()
	if err == nil {
		s.last = nil
	}
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("app: reset data: %w", err)
	}
	s.Store.Reset()
	return nil
}

// Watch reloads the aggregate whenever the slot changes on disk, until ctx
// is done. onReload is called after every swap.
func (s *Service) Watch(ctx context.Context, onReload func(model.AppData)) error {
	events, err := s.Slot.Watch(ctx)
	if err != nil {
		return err
	}
	for ev := range events {
		changed, err := s.Reload()
		if err != nil {
			s.log.Warn("reload failed", zap.Stringer("event", ev.Type), zap.Error(err))
			continue
		}
		if !changed {
			continue
		}
		s.log.Info("data reloaded", zap.Stringer("event", ev.Type), zap.String("path", ev.Path))
		if onReload != nil {
			onReload(s.Store.Data())
		}
	}
	return ctx.Err()
}

// CheckReminders sends the overdue and upcoming notifications for now.
func (s *Service) CheckReminders(ctx context.Context, window time.Duration) {
	if s.notify == nil {
		return
	}
	d := s.Store.Data()
	now := s.Store.Now()
	s.notify.OverdueTasks(ctx, state.OverdueTasks(d, now))
	s.notify.UpcomingEvents(ctx, state.UpcomingEvents(d, now, window, upcomingLimit))
}
