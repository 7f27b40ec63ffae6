package state

import (
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// RecordMileage prepends a mileage entry and advances the running total.
// The distance is not validated.
func (s *Store) RecordMileage(km float64, notes string) model.MileageEntry {
	entry := model.MileageEntry{ID: s.newID("mile"), Kilometers: km, Notes: notes}
	s.apply(OpRecordMileage, entry.ID, func(d *model.AppData, now time.Time) bool {
		entry.Date = model.At(now)
		entry.TotalKilometers = d.TotalKilometers + km
		d.MileageEntries = append([]model.MileageEntry{entry}, d.MileageEntries...)
		d.TotalKilometers += km
		return true
	})
	return entry
}

// LoggedKilometers sums the deltas of every mileage entry.
func LoggedKilometers(d model.AppData) float64 {
	sum := 0.0
	for _, e := range d.MileageEntries {
		sum += e.Kilometers
	}
	return sum
}

// StartingOdometer is the odometer reading before any logged mileage.
func StartingOdometer(d model.AppData) float64 {
	return d.TotalKilometers - LoggedKilometers(d)
}
