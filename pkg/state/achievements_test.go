package state

import (
	"testing"
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

func achievementByID(t *testing.T, d model.AppData, id string) model.Achievement {
	t.Helper()
	for _, a := range d.Achievements {
		if a.ID == id {
			return a
		}
	}
	t.Fatalf("achievement %s missing", id)
	return model.Achievement{}
}

func TestNightRider(t *testing.T) {
	clock := &fakeClock{t: time.Date(2025, 6, 10, 3, 30, 0, 0, time.Local)}
	s := New(Defaults(clock.Now()), WithClock(clock.Now), WithIDs(sequentialIDs()))
	s.RecordMileage(15, "")
	if a := achievementByID(t, s.Data(), "ach-11"); !a.Unlocked {
		t.Fatalf("expected night rider unlocked, got %+v", a)
	}
}

func TestSpeedDemonNeedsOneLongEntry(t *testing.T) {
	s, _ := newTestStore(t)
	s.RecordMileage(150, "")
	s.RecordMileage(150, "")
	if a := achievementByID(t, s.Data(), "ach-15"); a.Unlocked {
		t.Fatalf("two short entries must not unlock, got %+v", a)
	}
	s.RecordMileage(200, "")
	if a := achievementByID(t, s.Data(), "ach-15"); !a.Unlocked {
		t.Fatalf("expected speed demon unlocked, got %+v", a)
	}
}

func TestAllTasksSameDay(t *testing.T) {
	s, clock := newTestStore(t)
	s.CompleteMaintenanceTask("wash-1")
	s.CompleteMaintenanceTask("chain-lube-1")
	clock.Advance(1)
	s.CompleteMaintenanceTask("chain-clean-1")
	if a := achievementByID(t, s.Data(), "ach-17"); a.Unlocked {
		t.Fatalf("tasks on different days must not unlock, got %+v", a)
	}

	s.CompleteMaintenanceTask("wash-1")
	s.CompleteMaintenanceTask("chain-lube-1")
	if a := achievementByID(t, s.Data(), "ach-17"); !a.Unlocked {
		t.Fatalf("expected unlock once every task was done today, got %+v", a)
	}
}

func TestBirthdayRide(t *testing.T) {
	s, clock := newTestStore(t)
	s.UpdateBikeInfo(BikeInfo{Model: "Bonneville", Year: 2023, PurchaseDate: time.Date(2023, 6, 11, 9, 0, 0, 0, time.Local)})

	s.RecordMileage(10, "")
	if a := achievementByID(t, s.Data(), "ach-18"); a.Unlocked {
		t.Fatalf("ride before the anniversary must not unlock, got %+v", a)
	}
	clock.Advance(1)
	s.RecordMileage(10, "")
	if a := achievementByID(t, s.Data(), "ach-18"); !a.Unlocked {
		t.Fatalf("expected birthday ride unlocked, got %+v", a)
	}
}

func TestGearAchievements(t *testing.T) {
	s, _ := newTestStore(t)
	essentials := []model.GearCategory{model.GearHelmet, model.GearJacket, model.GearGloves, model.GearBoots, model.GearPants}
	for i, c := range essentials {
		s.AddRidingGear(model.RidingGear{Name: string(c), Category: c, Owned: i < 4, Priority: model.PriorityHigh})
	}
	d := s.Data()
	if a := achievementByID(t, d, "ach-7"); !a.Unlocked {
		t.Fatalf("expected gear up unlocked, got %+v", a)
	}
	if a := achievementByID(t, d, "ach-8"); a.Unlocked || a.Progress != 4 {
		t.Fatalf("expected fully equipped at 4/5, got %+v", a)
	}

	pants := d.RidingGear[4]
	pants.Owned = true
	if !s.UpdateRidingGear(pants) {
		t.Fatalf("expected gear update to succeed")
	}
	if a := achievementByID(t, s.Data(), "ach-8"); !a.Unlocked {
		t.Fatalf("expected fully equipped unlocked, got %+v", a)
	}
}

func TestExpeditionLeaderCountsEndedTrips(t *testing.T) {
	s, _ := newTestStore(t)
	for i := 0; i < 3; i++ {
		trip, err := s.AddTripEntry(model.TripEntry{Name: "leg", StartOdometer: float64(i * 100)})
		if err != nil {
			t.Fatalf("add trip %d: %v", i, err)
		}
		if i < 2 {
			if _, _, err := s.EndTrip(trip.ID, float64(i*100+90)); err != nil {
				t.Fatalf("end trip %d: %v", i, err)
			}
		}
	}
	if a := achievementByID(t, s.Data(), "ach-14"); a.Unlocked || a.Progress != 2 {
		t.Fatalf("expected 2/3 while one trip is open, got %+v", a)
	}
}

func TestMaintenanceDayRun(t *testing.T) {
	day := func(n int) model.Timestamp {
		return model.At(time.Date(2025, 1, n, 18, 0, 0, 0, time.Local))
	}
	d := Defaults(time.Date(2025, 1, 1, 0, 0, 0, 0, time.Local))
	d.MaintenanceTasks[0].LastCompleted = day(1)
	d.MaintenanceTasks[1].LastCompleted = day(2)
	d.MaintenanceTasks[2].LastCompleted = day(3)
	d.CalendarEvents = nil
	for n := 4; n <= 7; n++ {
		d.CalendarEvents = append(d.CalendarEvents, model.CalendarEvent{Date: day(n), Type: model.EventMaintenance, Completed: true})
	}
	d.CalendarEvents = append(d.CalendarEvents,
		model.CalendarEvent{Date: day(9), Type: model.EventService, Completed: true},
		model.CalendarEvent{Date: day(8), Type: model.EventCleaning, Completed: false},
	)

	if got := maintenanceDayRun(&d); got != 7 {
		t.Fatalf("expected a 7 day run, got %v", got)
	}

	unlocked := Evaluate(&d, time.Date(2025, 1, 8, 0, 0, 0, 0, time.Local))
	found := false
	for _, a := range unlocked {
		if a.ID == "ach-9" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ach-9 to unlock, got %+v", unlocked)
	}
	if again := Evaluate(&d, time.Now()); len(again) != 0 {
		t.Fatalf("expected a second pass to unlock nothing, got %+v", again)
	}
}

func TestEvaluateLeavesUnknownAchievementsAlone(t *testing.T) {
	d := Defaults(loadNow)
	d.Achievements = append(d.Achievements, model.Achievement{ID: "custom", Progress: 2, Target: 5})
	Evaluate(&d, loadNow)
	if a := achievementByID(t, d, "custom"); a.Unlocked || a.Progress != 2 {
		t.Fatalf("unexpected custom achievement %+v", a)
	}
}
