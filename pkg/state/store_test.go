package state

import (
	"fmt"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/cyberride/pkg/model"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(days int) { c.t = c.t.AddDate(0, 0, days) }

func sequentialIDs() func(string) string {
	n := 0
	return func(prefix string) string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

func newTestStore(t *testing.T) (*Store, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 6, 10, 12, 0, 0, 0, time.Local)}
	s := New(Defaults(clock.Now()), WithClock(clock.Now), WithIDs(sequentialIDs()))
	return s, clock
}

func TestRecordMileageRunningTotal(t *testing.T) {
	s, _ := newTestStore(t)
	deltas := []float64{12.5, 40, 7.5, 100}
	want := 0.0
	for _, km := range deltas {
		e := s.RecordMileage(km, "commute")
		want += km
		if e.TotalKilometers != want {
			t.Fatalf("expected entry total %v, got %v", want, e.TotalKilometers)
		}
		if got := s.Data().TotalKilometers; got != want {
			t.Fatalf("expected running total %v, got %v", want, got)
		}
	}

	d := s.Data()
	if len(d.MileageEntries) != len(deltas) {
		t.Fatalf("expected %d entries, got %d", len(deltas), len(d.MileageEntries))
	}
	if d.MileageEntries[0].Kilometers != 100 {
		t.Fatalf("expected newest entry first, got %+v", d.MileageEntries[0])
	}
	for i := len(d.MileageEntries) - 2; i >= 0; i-- {
		prev, cur := d.MileageEntries[i+1], d.MileageEntries[i]
		if cur.TotalKilometers != prev.TotalKilometers+cur.Kilometers {
			t.Fatalf("entry %d breaks the running total: %+v after %+v", i, cur, prev)
		}
	}
}

func TestCompleteMaintenanceTaskSchedulesNextDue(t *testing.T) {
	s, clock := newTestStore(t)
	day0 := clock.Now()

	task, ok := s.CompleteMaintenanceTask("chain-lube-1")
	if !ok {
		t.Fatalf("expected task to be found")
	}
	if !task.NextDue.Equal(day0.AddDate(0, 0, 14)) {
		t.Fatalf("expected next due on day 14, got %v", task.NextDue)
	}
	if task.Streak != 1 || !task.Completed {
		t.Fatalf("unexpected task after first completion: %+v", task)
	}

	clock.Advance(14)
	task, _ = s.CompleteMaintenanceTask("chain-lube-1")
	if !task.NextDue.Equal(day0.AddDate(0, 0, 28)) {
		t.Fatalf("expected next due on day 28, got %v", task.NextDue)
	}
	if task.Streak != 2 {
		t.Fatalf("expected streak 2, got %d", task.Streak)
	}
	if !task.NextDue.Equal(task.LastCompleted.AddDate(0, 0, task.Frequency)) {
		t.Fatalf("next due is not last completed + frequency: %+v", task)
	}

	linked := 0
	for _, e := range s.Data().CalendarEvents {
		if e.LinkedTaskID != "chain-lube-1" {
			continue
		}
		linked++
		if !e.Date.Equal(task.NextDue.Time) {
			t.Fatalf("expected linked event on %v, got %v", task.NextDue, e.Date)
		}
		if e.Type != model.EventMaintenance || !e.Recurring {
			t.Fatalf("unexpected linked event %+v", e)
		}
	}
	if linked != 1 {
		t.Fatalf("expected exactly one linked event, got %d", linked)
	}
}

func TestCompleteWashSchedulesCleaningEvent(t *testing.T) {
	s, _ := newTestStore(t)
	if _, ok := s.CompleteMaintenanceTask("wash-1"); !ok {
		t.Fatalf("expected wash task")
	}
	for _, e := range s.Data().CalendarEvents {
		if e.LinkedTaskID == "wash-1" && e.Type != model.EventCleaning {
			t.Fatalf("expected cleaning event, got %s", e.Type)
		}
	}
}

func TestResetMaintenanceTaskKeepsStreak(t *testing.T) {
	s, _ := newTestStore(t)
	s.CompleteMaintenanceTask("wash-1")
	s.CompleteMaintenanceTask("wash-1")

	task, ok := s.ResetMaintenanceTask("wash-1")
	if !ok {
		t.Fatalf("expected task to be found")
	}
	if task.LastCompleted.Set() || task.NextDue.Set() || task.Completed {
		t.Fatalf("expected cleared cycle, got %+v", task)
	}
	if task.Streak != 2 {
		t.Fatalf("expected streak to stay 2, got %d", task.Streak)
	}
}

func TestUnknownIDsAreNoops(t *testing.T) {
	s, _ := newTestStore(t)
	calls := 0
	cancel := s.Subscribe(func(Change) { calls++ })
	defer cancel()
	before := s.Data()

	if _, ok := s.CompleteMaintenanceTask("nope"); ok {
		t.Fatalf("expected unknown task to report false")
	}
	if _, ok := s.ResetMaintenanceTask("nope"); ok {
		t.Fatalf("expected unknown task to report false")
	}
	if _, ok := s.UpdateComponentCheck(model.ComponentCheck{ID: "nope"}); ok {
		t.Fatalf("expected unknown component to report false")
	}
	if s.DeleteRidingGear("nope") || s.DeleteCalendarEvent("nope") || s.DeleteFuelEntry("nope") || s.DeleteTripEntry("nope") {
		t.Fatalf("expected deletes of unknown ids to report false")
	}
	if s.UpdateRidingGear(model.RidingGear{ID: "nope"}) || s.UpdateCalendarEvent(model.CalendarEvent{ID: "nope"}) {
		t.Fatalf("expected updates of unknown ids to report false")
	}
	if calls != 0 {
		t.Fatalf("expected no change notifications, got %d", calls)
	}
	if diff := cmp.Diff(before, s.Data()); diff != "" {
		t.Fatalf("aggregate changed (-before +after):\n%s", diff)
	}
}

func TestUpdateComponentCheckStampsNow(t *testing.T) {
	s, clock := newTestStore(t)
	stale := model.At(clock.Now().AddDate(-1, 0, 0))
	got, ok := s.UpdateComponentCheck(model.ComponentCheck{
		ID:          "comp-2",
		Name:        "Brake Pads",
		Category:    model.ComponentBrakes,
		Status:      model.StatusWarning,
		LastChecked: stale,
		Notes:       "2mm left",
	})
	if !ok {
		t.Fatalf("expected component to be found")
	}
	if !got.LastChecked.Equal(clock.Now()) {
		t.Fatalf("expected last checked now, got %v", got.LastChecked)
	}
	stored := s.Data().ComponentChecks[1]
	if stored.Status != model.StatusWarning || stored.Notes != "2mm left" {
		t.Fatalf("unexpected stored component %+v", stored)
	}
}

func TestDistanceAchievementUnlocksOnce(t *testing.T) {
	s, clock := newTestStore(t)
	century := func() model.Achievement {
		for _, a := range s.Data().Achievements {
			if a.ID == "ach-2" {
				return a
			}
		}
		t.Fatalf("ach-2 missing")
		return model.Achievement{}
	}

	s.RecordMileage(60, "")
	if a := century(); a.Unlocked || a.Progress != 60 {
		t.Fatalf("expected locked with progress 60, got %+v", a)
	}

	clock.Advance(1)
	crossing := clock.Now()
	var unlocked []model.Achievement
	cancel := s.Subscribe(func(c Change) { unlocked = append(unlocked, c.Unlocked...) })
	s.RecordMileage(45, "")
	cancel()

	a := century()
	if !a.Unlocked || !a.UnlockedAt.Equal(crossing) {
		t.Fatalf("expected unlock at %v, got %+v", crossing, a)
	}
	found := false
	for _, u := range unlocked {
		if u.ID == "ach-2" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected ach-2 in unlocked change, got %+v", unlocked)
	}

	clock.Advance(3)
	s.RecordMileage(500, "")
	s.CheckAchievements()
	if again := century(); !again.UnlockedAt.Equal(crossing) || again.Progress != a.Progress {
		t.Fatalf("unlocked achievement was re-evaluated: %+v", again)
	}
}

func TestUpdateBikeInfoRebuildsTotal(t *testing.T) {
	s, _ := newTestStore(t)
	s.RecordMileage(100, "")
	s.RecordMileage(150, "")

	purchased := time.Date(2021, 6, 1, 0, 0, 0, 0, time.Local)
	d := s.UpdateBikeInfo(BikeInfo{Model: "Tenere 700", Year: 2021, PurchaseDate: purchased, StartingOdometer: 5000})
	if d.TotalKilometers != 5250 {
		t.Fatalf("expected 5250, got %v", d.TotalKilometers)
	}
	if d.BikeModel != "Tenere 700" || d.BikeYear != 2021 || !d.BikePurchaseDate.Equal(purchased) {
		t.Fatalf("unexpected bike info %+v", d)
	}
	if got := StartingOdometer(d); got != 5000 {
		t.Fatalf("expected starting odometer 5000, got %v", got)
	}
}

func TestResetRestoresDefaults(t *testing.T) {
	s, clock := newTestStore(t)
	s.RecordMileage(250, "")
	s.CompleteMaintenanceTask("wash-1")
	s.AddRidingGear(model.RidingGear{Name: "Helmet", Category: model.GearHelmet})
	s.AddFuelEntry(model.FuelEntry{Liters: 10, PricePerLiter: 1.8})

	s.Reset()
	if diff := cmp.Diff(Defaults(clock.Now()), s.Data()); diff != "" {
		t.Fatalf("reset differs from defaults (-want +got):\n%s", diff)
	}
}

func TestSingleOpenTrip(t *testing.T) {
	s, _ := newTestStore(t)
	first, err := s.AddTripEntry(model.TripEntry{Name: "Alps", StartOdometer: 1000})
	if err != nil {
		t.Fatalf("add first trip: %v", err)
	}
	if _, err := s.AddTripEntry(model.TripEntry{Name: "Coast", StartOdometer: 1000}); err != ErrTripInProgress {
		t.Fatalf("expected ErrTripInProgress, got %v", err)
	}

	ended, ok, err := s.EndTrip(first.ID, 1420)
	if err != nil || !ok {
		t.Fatalf("end trip: ok=%v err=%v", ok, err)
	}
	if ended.Distance != 420 || ended.InProgress() {
		t.Fatalf("unexpected ended trip %+v", ended)
	}
	if _, _, err := s.EndTrip(first.ID, 1500); err != ErrTripEnded {
		t.Fatalf("expected ErrTripEnded, got %v", err)
	}

	second, err := s.AddTripEntry(model.TripEntry{Name: "Coast", StartOdometer: 1420})
	if err != nil {
		t.Fatalf("add second trip: %v", err)
	}
	reopened := ended
	reopened.EndDate = model.Timestamp{}
	reopened.EndOdometer = nil
	if _, err := s.UpdateTripEntry(reopened); err != ErrTripInProgress {
		t.Fatalf("expected reopening to fail, got %v", err)
	}
	if open, ok := OpenTrip(s.Data()); !ok || open.ID != second.ID {
		t.Fatalf("expected %s open, got %+v", second.ID, open)
	}
}

func TestFuelEntryTotalCost(t *testing.T) {
	s, clock := newTestStore(t)
	f := s.AddFuelEntry(model.FuelEntry{Liters: 12, PricePerLiter: 1.5, Odometer: 1200, FuelType: model.FuelPetrol, FullTank: true})
	if f.TotalCost != 18 {
		t.Fatalf("expected total cost 18, got %v", f.TotalCost)
	}
	if !f.Date.Equal(clock.Now()) {
		t.Fatalf("expected date to default to now, got %v", f.Date)
	}
	f.PricePerLiter = 2
	updated, ok := s.UpdateFuelEntry(f)
	if !ok || updated.TotalCost != 24 {
		t.Fatalf("expected recomputed cost 24, got %+v (ok=%v)", updated, ok)
	}
}

func TestDeleteBuiltinEventIsRemembered(t *testing.T) {
	s, clock := newTestStore(t)
	if !s.DeleteCalendarEvent("default-brake-check") {
		t.Fatalf("expected built-in event to exist")
	}
	d := s.Data()
	if len(d.DismissedEvents) != 1 || d.DismissedEvents[0] != "default-brake-check" {
		t.Fatalf("expected dismissal to be recorded, got %v", d.DismissedEvents)
	}

	blob, err := Encode(d)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	reloaded := Decode(blob, clock.Now(), nil)
	for _, e := range reloaded.CalendarEvents {
		if e.ID == "default-brake-check" {
			t.Fatalf("dismissed event came back")
		}
	}
}

func TestListenersRunInOrderAndCancel(t *testing.T) {
	s, _ := newTestStore(t)
	var got []string
	cancelA := s.Subscribe(func(c Change) { got = append(got, "a:"+string(c.Op)) })
	cancelB := s.Subscribe(func(c Change) { got = append(got, "b:"+string(c.Op)) })

	s.RecordMileage(1, "")
	cancelA()
	cancelA()
	s.AddRidingGear(model.RidingGear{Name: "Gloves"})
	cancelB()
	s.RecordMileage(1, "")

	want := []string{"a:mileage.record", "b:mileage.record", "b:gear.add"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected listener calls (-want +got):\n%s", diff)
	}
}

func TestChangeDataIsACopy(t *testing.T) {
	s, _ := newTestStore(t)
	cancel := s.Subscribe(func(c Change) {
		c.Data.MaintenanceTasks[0].Name = "mutated"
	})
	defer cancel()
	s.RecordMileage(1, "")
	if s.Data().MaintenanceTasks[0].Name == "mutated" {
		t.Fatalf("listener mutated the store")
	}
}
