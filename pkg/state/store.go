// Package state owns the cyberride aggregate. Every mutation is applied to a
// private copy, passed through the achievement evaluator and committed as a
// whole; listeners observe committed snapshots in commit order.
package state

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"tableflip.dev/cyberride/pkg/model"
)

// Op names the mutation that produced a Change.
type Op string

const (
	OpRecordMileage     Op = "mileage.record"
	OpCompleteTask      Op = "task.complete"
	OpResetTask         Op = "task.reset"
	OpUpdateComponent   Op = "component.update"
	OpAddGear           Op = "gear.add"
	OpUpdateGear        Op = "gear.update"
	OpDeleteGear        Op = "gear.delete"
	OpAddEvent          Op = "event.add"
	OpUpdateEvent       Op = "event.update"
	OpDeleteEvent       Op = "event.delete"
	OpAddFuel           Op = "fuel.add"
	OpUpdateFuel        Op = "fuel.update"
	OpDeleteFuel        Op = "fuel.delete"
	OpAddTrip           Op = "trip.add"
	OpUpdateTrip        Op = "trip.update"
	OpEndTrip           Op = "trip.end"
	OpDeleteTrip        Op = "trip.delete"
	OpUpdateBike        Op = "bike.update"
	OpCheckAchievements Op = "achievements.check"
	OpReset             Op = "reset"
	OpReplace           Op = "replace"
)

// Change describes one committed mutation. Data is a copy owned by the
// receiver. Subject is the id of the record the operation addressed, if any.
type Change struct {
	Op       Op
	Subject  string
	Data     model.AppData
	Unlocked []model.Achievement
}

// Listener is called after every committed mutation. Listeners run while the
// store holds its notification lock and must not mutate the store.
type Listener func(Change)

var (
	// ErrTripInProgress is returned when a second open trip would be created.
	ErrTripInProgress = errors.New("state: another trip is already in progress")
	// ErrTripEnded is returned when ending a trip that already has an end date.
	ErrTripEnded = errors.New("state: trip has already ended")
)

// Store holds the aggregate and serializes every mutation.
type Store struct {
	mu   sync.Mutex
	data model.AppData

	notifyMu  sync.Mutex
	lmu       sync.Mutex
	listeners map[int]Listener
	order     []int
	nextID    int

	now   func() time.Time
	newID func(prefix string) string
	log   *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithClock replaces time.Now for every timestamp the store produces.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithIDs replaces the identifier generator used by add operations.
func WithIDs(gen func(prefix string) string) Option {
	return func(s *Store) {
		if gen != nil {
			s.newID = gen
		}
	}
}

// WithLogger sets the logger. A nil logger disables logging.
func WithLogger(log *zap.Logger) Option {
	return func(s *Store) {
		if log != nil {
			s.log = log
		}
	}
}

// New creates a store owning a copy of data.
func New(data model.AppData, opts ...Option) *Store {
	s := &Store{
		data:      data.Clone(),
		listeners: make(map[int]Listener),
		now:       time.Now,
		newID:     NewID,
		log:       zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open decodes blob with the loader rules and returns a store over the result.
func Open(blob []byte, opts ...Option) *Store {
	s := New(model.AppData{}, opts...)
	s.data = Decode(blob, s.now(), s.log)
	return s
}

// NewID returns "<prefix>-<12 hex digits>" drawn from a random UUID.
func NewID(prefix string) string {
	raw := strings.ReplaceAll(uuid.NewString(), "-", "")
	return prefix + "-" + raw[:12]
}

// Data returns a copy of the current aggregate.
func (s *Store) Data() model.AppData {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Now reports the store clock.
func (s *Store) Now() time.Time {
	return s.now()
}

// Subscribe registers l and returns a function that removes it.
func (s *Store) Subscribe(l Listener) (cancel func()) {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = l
	s.order = append(s.order, id)
	var once sync.Once
	return func() {
		once.Do(func() {
			s.lmu.Lock()
			defer s.lmu.Unlock()
			delete(s.listeners, id)
			for i, v := range s.order {
				if v == id {
					s.order = append(s.order[:i], s.order[i+1:]...)
					break
				}
			}
		})
	}
}

func (s *Store) snapshotListeners() []Listener {
	s.lmu.Lock()
	defer s.lmu.Unlock()
	out := make([]Listener, 0, len(s.order))
	for _, id := range s.order {
		out = append(out, s.listeners[id])
	}
	return out
}

// mutation edits d in place. Returning false (or an error) discards the edit.
type mutation func(d *model.AppData, now time.Time) (bool, error)

func (s *Store) update(op Op, subject string, fn mutation) (Change, bool, error) {
	s.mu.Lock()
	now := s.now()
	next := s.data.Clone()
	ok, err := fn(&next, now)
	if err != nil || !ok {
		s.mu.Unlock()
		return Change{}, false, err
	}
	unlocked := Evaluate(&next, now)
	s.data = next
	change := Change{Op: op, Subject: subject, Data: next.Clone(), Unlocked: unlocked}

	s.notifyMu.Lock()
	s.mu.Unlock()
	defer s.notifyMu.Unlock()

	for _, a := range unlocked {
		s.log.Info("achievement unlocked", zap.String("id", a.ID), zap.String("name", a.Name))
	}
	for _, l := range s.snapshotListeners() {
		l(change)
	}
	return change, true, nil
}

func (s *Store) apply(op Op, subject string, fn func(d *model.AppData, now time.Time) bool) (Change, bool) {
	c, ok, _ := s.update(op, subject, func(d *model.AppData, now time.Time) (bool, error) {
		return fn(d, now), nil
	})
	return c, ok
}

// Replace swaps the whole aggregate, for example after an import or an
// external change to the durable slot.
func (s *Store) Replace(data model.AppData) {
	s.apply(OpReplace, "", func(d *model.AppData, _ time.Time) bool {
		*d = data.Clone()
		return true
	})
}

// Reset restores the compiled-in defaults.
func (s *Store) Reset() {
	s.apply(OpReset, "", func(d *model.AppData, now time.Time) bool {
		*d = Defaults(now)
		return true
	})
}

// CheckAchievements runs an evaluation pass on its own. It is idempotent.
func (s *Store) CheckAchievements() []model.Achievement {
	c, _ := s.apply(OpCheckAchievements, "", func(*model.AppData, time.Time) bool { return true })
	return c.Unlocked
}

func indexOf[T any](items []T, match func(T) bool) int {
	for i, it := range items {
		if match(it) {
			return i
		}
	}
	return -1
}
