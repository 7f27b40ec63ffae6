package state

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/cyberride/pkg/model"
)

var loadNow = time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)

func TestDecodeFallsBackToDefaults(t *testing.T) {
	tests := map[string]string{
		"empty":     "",
		"blank":     "  \n",
		"malformed": `{"maintenanceTasks": [`,
		"wrong":     `[1, 2, 3]`,
	}
	for name, blob := range tests {
		t.Run(name, func(t *testing.T) {
			got := Decode([]byte(blob), loadNow, nil)
			if diff := cmp.Diff(Defaults(loadNow), got); diff != "" {
				t.Fatalf("expected defaults (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDecodeFillsOmittedFields(t *testing.T) {
	got := Decode([]byte(`{"totalKilometers": 42, "bikeModel": "Scrambler"}`), loadNow, nil)

	if got.MileageEntries == nil || len(got.MileageEntries) != 0 {
		t.Fatalf("expected empty mileage log, got %#v", got.MileageEntries)
	}
	if got.TripEntries == nil || got.FuelEntries == nil || got.RidingGear == nil {
		t.Fatalf("expected empty logs, got %+v", got)
	}
	if len(got.MaintenanceTasks) != 3 || len(got.ComponentChecks) != 5 || len(got.Achievements) != 18 {
		t.Fatalf("expected template lists to fall back to defaults, got %d/%d/%d",
			len(got.MaintenanceTasks), len(got.ComponentChecks), len(got.Achievements))
	}
	if got.TotalKilometers != 42 || got.BikeModel != "Scrambler" {
		t.Fatalf("stored scalars lost: %+v", got)
	}
	if got.BikeYear != loadNow.Year() || !got.BikePurchaseDate.Equal(loadNow) {
		t.Fatalf("expected bike defaults, got year=%d purchase=%v", got.BikeYear, got.BikePurchaseDate)
	}
	if len(got.CalendarEvents) != 6 {
		t.Fatalf("expected built-in events, got %d", len(got.CalendarEvents))
	}
}

func TestDecodeNullDates(t *testing.T) {
	blob := `{
		"maintenanceTasks": [
			{"id": "wash-1", "name": "Wash", "type": "wash", "lastCompleted": null, "nextDue": "2025-03-20T08:00:00.000Z", "frequency": 30, "streak": 4}
		],
		"tripEntries": [
			{"id": "trip-1", "name": "Dolomites", "startDate": "2024-07-01T06:00:00.000Z", "endDate": null, "startOdometer": 1000}
		]
	}`
	got := Decode([]byte(blob), loadNow, nil)

	task := got.MaintenanceTasks[0]
	if task.LastCompleted.Set() {
		t.Fatalf("expected null lastCompleted to stay unset, got %v", task.LastCompleted)
	}
	want := time.Date(2025, 3, 20, 8, 0, 0, 0, time.UTC)
	if !task.NextDue.Equal(want) || task.Streak != 4 {
		t.Fatalf("unexpected task %+v", task)
	}
	trip := got.TripEntries[0]
	if !trip.InProgress() || trip.Locations == nil {
		t.Fatalf("expected open trip with empty locations, got %+v", trip)
	}
}

func TestDecodeKeepsUserScheduledLinkedEvents(t *testing.T) {
	blob := `{
		"calendarEvents": [
			{"id": "event-abc", "title": "Wash", "date": "2025-04-01T10:00:00.000Z", "type": "cleaning", "completed": false, "recurring": true, "linkedTaskId": "wash-1"}
		],
		"dismissedEvents": ["default-tire-check"]
	}`
	got := Decode([]byte(blob), loadNow, nil)

	ids := map[string]bool{}
	linked := 0
	for _, e := range got.CalendarEvents {
		ids[e.ID] = true
		if e.LinkedTaskID == "wash-1" {
			linked++
		}
	}
	if linked != 1 || !ids["event-abc"] {
		t.Fatalf("expected only the stored wash event, got %v", ids)
	}
	if ids["default-wash"] || ids["default-tire-check"] {
		t.Fatalf("unexpected built-in events restored: %v", ids)
	}
	for _, id := range []string{"default-chain-lube", "default-chain-clean", "default-engine-check", "default-brake-check"} {
		if !ids[id] {
			t.Fatalf("expected %s to be restored, got %v", id, ids)
		}
	}
}

func TestDecodeMergesAchievements(t *testing.T) {
	blob := `{"achievements": [
		{"id": "ach-1", "name": "First Ride", "description": "", "icon": "", "unlocked": true, "unlockedAt": "2024-05-01T09:00:00.000Z", "progress": 1, "target": 1, "category": "mileage"}
	]}`
	got := Decode([]byte(blob), loadNow, nil)
	if len(got.Achievements) != 18 {
		t.Fatalf("expected 18 achievements, got %d", len(got.Achievements))
	}
	first := got.Achievements[0]
	if first.ID != "ach-1" || !first.Unlocked || !first.UnlockedAt.Set() {
		t.Fatalf("stored achievement lost: %+v", first)
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	s := New(Defaults(loadNow), WithClock(func() time.Time { return loadNow }), WithIDs(sequentialIDs()))
	s.RecordMileage(120, "ring road")
	s.CompleteMaintenanceTask("chain-lube-1")
	s.AddFuelEntry(model.FuelEntry{Liters: 11, PricePerLiter: 1.9, Odometer: 120, FuelType: model.FuelPremium, FullTank: true})
	trip, err := s.AddTripEntry(model.TripEntry{Name: "Weekend", StartOdometer: 120, Locations: []string{"Bled"}})
	if err != nil {
		t.Fatalf("add trip: %v", err)
	}
	want := s.Data()

	blob, err := Encode(want)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if err := Validate(blob); err != nil {
		t.Fatalf("validate: %v", err)
	}
	got := Decode(blob, loadNow.AddDate(0, 1, 0), nil)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip changed the aggregate (-want +got):\n%s", diff)
	}
	if open, ok := OpenTrip(got); !ok || open.ID != trip.ID {
		t.Fatalf("expected %s still open after reload", trip.ID)
	}
}

func TestValidateRejectsGarbage(t *testing.T) {
	if err := Validate([]byte("not json")); err == nil {
		t.Fatalf("expected an error")
	}
}
