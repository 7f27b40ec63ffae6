package state

import (
	"bytes"
	"encoding/json"
	"slices"
	"time"

	"go.uber.org/zap"

	"tableflip.dev/cyberride/pkg/model"
)

// Decode rebuilds the aggregate from a stored blob. An empty blob or one that
// does not parse yields Defaults(now); the failure is logged, never returned.
func Decode(blob []byte, now time.Time, log *zap.Logger) model.AppData {
	if log == nil {
		log = zap.NewNop()
	}
	if len(bytes.TrimSpace(blob)) == 0 {
		log.Debug("no saved data found, using defaults")
		return Defaults(now)
	}
	var d model.AppData
	if err := json.Unmarshal(blob, &d); err != nil {
		log.Warn("error loading data, using defaults", zap.Error(err))
		return Defaults(now)
	}
	Normalize(&d, now)
	return d
}

// Validate reports whether blob parses as an aggregate.
func Validate(blob []byte) error {
	var d model.AppData
	return json.Unmarshal(blob, &d)
}

// Encode serializes the aggregate for the durable slot.
func Encode(d model.AppData) ([]byte, error) {
	return json.Marshal(d)
}

// Normalize fills the fields a stored blob may lack. Template lists fall back
// to the compiled-in defaults; logs fall back to empty.
func Normalize(d *model.AppData, now time.Time) {
	if d.MaintenanceTasks == nil {
		d.MaintenanceTasks = defaultTasks()
	}
	if d.ComponentChecks == nil {
		d.ComponentChecks = defaultComponents()
	}
	if d.Achievements == nil {
		d.Achievements = defaultAchievements()
	} else {
		d.Achievements = mergeAchievements(d.Achievements)
	}
	if d.MileageEntries == nil {
		d.MileageEntries = []model.MileageEntry{}
	}
	if d.RidingGear == nil {
		d.RidingGear = []model.RidingGear{}
	}
	if d.CalendarEvents == nil {
		d.CalendarEvents = []model.CalendarEvent{}
	}
	if d.FuelEntries == nil {
		d.FuelEntries = []model.FuelEntry{}
	}
	if d.TripEntries == nil {
		d.TripEntries = []model.TripEntry{}
	}
	for i := range d.TripEntries {
		if d.TripEntries[i].Locations == nil {
			d.TripEntries[i].Locations = []string{}
		}
	}
	if d.DismissedEvents == nil {
		d.DismissedEvents = []string{}
	}
	if d.BikeModel == "" {
		d.BikeModel = DefaultBikeModel
	}
	if d.BikeYear == 0 {
		d.BikeYear = now.Year()
	}
	if !d.BikePurchaseDate.Set() {
		d.BikePurchaseDate = model.At(now)
	}
	d.CalendarEvents = mergeCalendarEvents(d.CalendarEvents, d.DismissedEvents, now)
}

// mergeAchievements appends built-in achievements the stored list lacks.
func mergeAchievements(stored []model.Achievement) []model.Achievement {
	for _, a := range defaultAchievements() {
		if indexOf(stored, func(s model.Achievement) bool { return s.ID == a.ID }) < 0 {
			stored = append(stored, a)
		}
	}
	return stored
}

// mergeCalendarEvents adds built-in events missing from stored. Dismissed
// events stay gone, and a linked event is skipped when its task already has
// one.
func mergeCalendarEvents(stored []model.CalendarEvent, dismissed []string, now time.Time) []model.CalendarEvent {
	for _, e := range DefaultCalendarEvents(now) {
		if slices.Contains(dismissed, e.ID) {
			continue
		}
		if indexOf(stored, func(s model.CalendarEvent) bool { return s.ID == e.ID }) >= 0 {
			continue
		}
		if e.LinkedTaskID != "" &&
			indexOf(stored, func(s model.CalendarEvent) bool { return s.LinkedTaskID == e.LinkedTaskID }) >= 0 {
			continue
		}
		stored = append(stored, e)
	}
	return stored
}
