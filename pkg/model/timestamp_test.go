package model

import (
	"encoding/json"
	"testing"
	"time"
)

func TestTimestampNullRoundTrip(t *testing.T) {
	var task MaintenanceTask
	if err := json.Unmarshal([]byte(`{"id":"wash-1","lastCompleted":null}`), &task); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if task.LastCompleted.Set() || task.NextDue.Set() {
		t.Fatalf("expected unset timestamps, got %v / %v", task.LastCompleted, task.NextDue)
	}
	b, err := json.Marshal(task)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("unmarshal raw: %v", err)
	}
	if raw["lastCompleted"] != nil {
		t.Fatalf("expected null lastCompleted, got %v", raw["lastCompleted"])
	}
}

func TestTimestampParsesBrowserDates(t *testing.T) {
	var ts Timestamp
	if err := json.Unmarshal([]byte(`"2024-05-01T06:30:00.000Z"`), &ts); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := time.Date(2024, 5, 1, 6, 30, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("expected %v, got %v", want, ts.Time)
	}
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if string(b) != `"2024-05-01T06:30:00.000Z"` {
		t.Fatalf("unexpected encoding %s", b)
	}
}

func TestTimestampLenientInput(t *testing.T) {
	cases := map[string]bool{
		`""`:            false,
		`"not a date"`:  false,
		`"2024-02-28"`:  true,
		`1714545000000`: true,
		`null`:          false,
	}
	for in, set := range cases {
		var ts Timestamp
		if err := json.Unmarshal([]byte(in), &ts); err != nil {
			t.Fatalf("%s: unexpected error %v", in, err)
		}
		if ts.Set() != set {
			t.Fatalf("%s: expected set=%v, got %v", in, set, ts.Time)
		}
	}
}

func TestAppDataCloneIsDeep(t *testing.T) {
	d := AppData{
		TripEntries: []TripEntry{{ID: "trip-1", Locations: []string{"Alps"}, EndOdometer: Float(10)}},
		FuelEntries: []FuelEntry{{ID: "fuel-1"}},
	}
	c := d.Clone()
	c.TripEntries[0].Locations[0] = "Dolomites"
	*c.TripEntries[0].EndOdometer = 20
	c.FuelEntries[0].ID = "changed"
	if d.TripEntries[0].Locations[0] != "Alps" {
		t.Fatalf("locations aliased")
	}
	if *d.TripEntries[0].EndOdometer != 10 {
		t.Fatalf("end odometer aliased")
	}
	if d.FuelEntries[0].ID != "fuel-1" {
		t.Fatalf("fuel entries aliased")
	}
}
