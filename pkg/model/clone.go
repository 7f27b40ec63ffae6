package model

import "slices"

// Clone returns a deep copy of the aggregate. Slices that are nil stay nil.
func (d AppData) Clone() AppData {
	out := d
	out.MaintenanceTasks = slices.Clone(d.MaintenanceTasks)
	out.ComponentChecks = slices.Clone(d.ComponentChecks)
	out.MileageEntries = slices.Clone(d.MileageEntries)
	out.Achievements = slices.Clone(d.Achievements)
	out.RidingGear = slices.Clone(d.RidingGear)
	out.CalendarEvents = slices.Clone(d.CalendarEvents)
	out.FuelEntries = slices.Clone(d.FuelEntries)
	out.DismissedEvents = slices.Clone(d.DismissedEvents)
	if d.TripEntries != nil {
		out.TripEntries = make([]TripEntry, len(d.TripEntries))
		for i, t := range d.TripEntries {
			out.TripEntries[i] = t.Clone()
		}
	}
	return out
}

// Clone copies the trip including its slices and end odometer.
func (t TripEntry) Clone() TripEntry {
	out := t
	out.Photos = slices.Clone(t.Photos)
	out.Locations = slices.Clone(t.Locations)
	if t.EndOdometer != nil {
		v := *t.EndOdometer
		out.EndOdometer = &v
	}
	return out
}

// Float returns a pointer to v.
func Float(v float64) *float64 {
	return &v
}
