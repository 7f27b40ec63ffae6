package state

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

func replaceByID[T any](items []T, id string, key func(T) string, v T) bool {
	i := indexOf(items, func(it T) bool { return key(it) == id })
	if i < 0 {
		return false
	}
	items[i] = v
	return true
}

func removeByID[T any](items *[]T, id string, key func(T) string) bool {
	i := indexOf(*items, func(it T) bool { return key(it) == id })
	if i < 0 {
		return false
	}
	*items = append((*items)[:i], (*items)[i+1:]...)
	return true
}

func gearID(g model.RidingGear) string     { return g.ID }
func eventID(e model.CalendarEvent) string { return e.ID }
func fuelID(f model.FuelEntry) string      { return f.ID }
func tripID(t model.TripEntry) string      { return t.ID }

// AddRidingGear appends gear under a new id.
func (s *Store) AddRidingGear(g model.RidingGear) model.RidingGear {
	g.ID = s.newID("gear")
	s.apply(OpAddGear, g.ID, func(d *model.AppData, _ time.Time) bool {
		d.RidingGear = append(d.RidingGear, g)
		return true
	})
	return g
}

func (s *Store) UpdateRidingGear(g model.RidingGear) bool {
	_, ok := s.apply(OpUpdateGear, g.ID, func(d *model.AppData, _ time.Time) bool {
		return replaceByID(d.RidingGear, g.ID, gearID, g)
	})
	return ok
}

func (s *Store) DeleteRidingGear(id string) bool {
	_, ok := s.apply(OpDeleteGear, id, func(d *model.AppData, _ time.Time) bool {
		return removeByID(&d.RidingGear, id, gearID)
	})
	return ok
}

// AddCalendarEvent appends an event under a new id.
func (s *Store) AddCalendarEvent(e model.CalendarEvent) model.CalendarEvent {
	e.ID = s.newID("event")
	s.apply(OpAddEvent, e.ID, func(d *model.AppData, _ time.Time) bool {
		d.CalendarEvents = append(d.CalendarEvents, e)
		return true
	})
	return e
}

func (s *Store) UpdateCalendarEvent(e model.CalendarEvent) bool {
	_, ok := s.apply(OpUpdateEvent, e.ID, func(d *model.AppData, _ time.Time) bool {
		return replaceByID(d.CalendarEvents, e.ID, eventID, e)
	})
	return ok
}

// DeleteCalendarEvent removes the event. Deleted built-in events are
// remembered so the loader does not bring them back.
func (s *Store) DeleteCalendarEvent(id string) bool {
	_, ok := s.apply(OpDeleteEvent, id, func(d *model.AppData, _ time.Time) bool {
		if !removeByID(&d.CalendarEvents, id, eventID) {
			return false
		}
		if isBuiltinEvent(id) && indexOf(d.DismissedEvents, func(v string) bool { return v == id }) < 0 {
			d.DismissedEvents = append(d.DismissedEvents, id)
		}
		return true
	})
	return ok
}

// AddFuelEntry prepends a fill-up. TotalCost is computed here and the date
// defaults to now.
func (s *Store) AddFuelEntry(f model.FuelEntry) model.FuelEntry {
	f.ID = s.newID("fuel")
	s.apply(OpAddFuel, f.ID, func(d *model.AppData, now time.Time) bool {
		if !f.Date.Set() {
			f.Date = model.At(now)
		}
		f.TotalCost = f.Liters * f.PricePerLiter
		d.FuelEntries = append([]model.FuelEntry{f}, d.FuelEntries...)
		return true
	})
	return f
}

// UpdateFuelEntry replaces a fill-up, recomputing its TotalCost.
func (s *Store) UpdateFuelEntry(f model.FuelEntry) (model.FuelEntry, bool) {
	f.TotalCost = f.Liters * f.PricePerLiter
	_, ok := s.apply(OpUpdateFuel, f.ID, func(d *model.AppData, _ time.Time) bool {
		return replaceByID(d.FuelEntries, f.ID, fuelID, f)
	})
	return f, ok
}

func (s *Store) DeleteFuelEntry(id string) bool {
	_, ok := s.apply(OpDeleteFuel, id, func(d *model.AppData, _ time.Time) bool {
		return removeByID(&d.FuelEntries, id, fuelID)
	})
	return ok
}
