package state

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// OpenTrip returns the trip currently in progress, if any.
func OpenTrip(d model.AppData) (model.TripEntry, bool) {
	i := indexOf(d.TripEntries, func(t model.TripEntry) bool { return t.InProgress() })
	if i < 0 {
		return model.TripEntry{}, false
	}
	return d.TripEntries[i].Clone(), true
}

func openTripOtherThan(d *model.AppData, id string) bool {
	return indexOf(d.TripEntries, func(t model.TripEntry) bool {
		return t.InProgress() && t.ID != id
	}) >= 0
}

func normalizeTrip(t *model.TripEntry) {
	if t.Locations == nil {
		t.Locations = []string{}
	}
	if t.EndOdometer != nil && t.Distance == 0 {
		t.Distance = *t.EndOdometer - t.StartOdometer
	}
}

// AddTripEntry prepends a trip under a new id. At most one trip may be in
// progress; a second open trip yields ErrTripInProgress.
func (s *Store) AddTripEntry(t model.TripEntry) (model.TripEntry, error) {
	t = t.Clone()
	t.ID = s.newID("trip")
	_, _, err := s.update(OpAddTrip, t.ID, func(d *model.AppData, now time.Time) (bool, error) {
		if !t.StartDate.Set() {
			t.StartDate = model.At(now)
		}
		if t.InProgress() && openTripOtherThan(d, t.ID) {
			return false, ErrTripInProgress
		}
		normalizeTrip(&t)
		d.TripEntries = append([]model.TripEntry{t}, d.TripEntries...)
		return true, nil
	})
	if err != nil {
		return model.TripEntry{}, err
	}
	return t, nil
}

// UpdateTripEntry replaces a trip by id. Reopening a trip while another one
// is in progress yields ErrTripInProgress.
func (s *Store) UpdateTripEntry(t model.TripEntry) (bool, error) {
	t = t.Clone()
	_, ok, err := s.update(OpUpdateTrip, t.ID, func(d *model.AppData, _ time.Time) (bool, error) {
		if t.InProgress() && openTripOtherThan(d, t.ID) {
			return false, ErrTripInProgress
		}
		normalizeTrip(&t)
		return replaceByID(d.TripEntries, t.ID, tripID, t), nil
	})
	return ok, err
}

// EndTrip closes an open trip at the given odometer reading and derives its
// distance.
func (s *Store) EndTrip(id string, endOdometer float64) (model.TripEntry, bool, error) {
	var trip model.TripEntry
	_, ok, err := s.update(OpEndTrip, id, func(d *model.AppData, now time.Time) (bool, error) {
		i := indexOf(d.TripEntries, func(t model.TripEntry) bool { return t.ID == id })
		if i < 0 {
			return false, nil
		}
		t := &d.TripEntries[i]
		if !t.InProgress() {
			return false, ErrTripEnded
		}
		t.EndDate = model.At(now)
		t.EndOdometer = model.Float(endOdometer)
		t.Distance = endOdometer - t.StartOdometer
		trip = t.Clone()
		return true, nil
	})
	return trip, ok, err
}

func (s *Store) DeleteTripEntry(id string) bool {
	_, ok := s.apply(OpDeleteTrip, id, func(d *model.AppData, _ time.Time) bool {
		return removeByID(&d.TripEntries, id, tripID)
	})
	return ok
}
