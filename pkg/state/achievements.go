package state

import (
	"sort"
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// rule computes the progress of one achievement from the aggregate.
type rule func(d *model.AppData) float64

var rules = map[string]rule{
	"ach-1":  func(d *model.AppData) float64 { return flag(d.TotalKilometers > 0) },
	"ach-2":  totalKilometers,
	"ach-3":  totalKilometers,
	"ach-4":  streakOf(model.TaskWash),
	"ach-5":  streakOf(model.TaskChainLube),
	"ach-6":  checkedComponents,
	"ach-7":  func(d *model.AppData) float64 { return float64(len(d.RidingGear)) },
	"ach-8":  ownedGear,
	"ach-9":  maintenanceDayRun,
	"ach-10": totalKilometers,
	"ach-11": anyMileage(func(e model.MileageEntry) bool { return e.Date.Local().Hour() < 6 }),
	"ach-12": fuelFills,
	"ach-13": streakOf(model.TaskChainLube),
	"ach-14": completedTrips,
	"ach-15": anyMileage(func(e model.MileageEntry) bool { return e.Kilometers >= 200 }),
	"ach-16": fuelFills,
	"ach-17": allTasksSameDay,
	"ach-18": anniversaryRide,
}

// Evaluate recomputes progress for every locked achievement and unlocks those
// that reached their target. Unlocked achievements are left untouched. It
// returns the achievements unlocked by this pass.
func Evaluate(d *model.AppData, now time.Time) []model.Achievement {
	var unlocked []model.Achievement
	for i := range d.Achievements {
		a := &d.Achievements[i]
		if a.Unlocked {
			continue
		}
		if r, ok := rules[a.ID]; ok {
			a.Progress = r(d)
		}
		if a.Progress >= a.Target {
			a.Unlocked = true
			a.UnlockedAt = model.At(now)
			unlocked = append(unlocked, *a)
		}
	}
	return unlocked
}

func flag(b bool) float64 {
	if b {
		return 1
	}
	return 0
}

func totalKilometers(d *model.AppData) float64 {
	return d.TotalKilometers
}

func streakOf(typ model.TaskType) rule {
	return func(d *model.AppData) float64 {
		sum := 0
		for _, t := range d.MaintenanceTasks {
			if t.Type == typ {
				sum += t.Streak
			}
		}
		return float64(sum)
	}
}

func checkedComponents(d *model.AppData) float64 {
	n := 0
	for _, c := range d.ComponentChecks {
		if c.LastChecked.Set() {
			n++
		}
	}
	return float64(n)
}

func ownedGear(d *model.AppData) float64 {
	n := 0
	for _, g := range d.RidingGear {
		if g.Owned {
			n++
		}
	}
	return float64(n)
}

func fuelFills(d *model.AppData) float64 {
	return float64(len(d.FuelEntries))
}

func completedTrips(d *model.AppData) float64 {
	n := 0
	for _, t := range d.TripEntries {
		if !t.InProgress() {
			n++
		}
	}
	return float64(n)
}

func anyMileage(match func(model.MileageEntry) bool) rule {
	return func(d *model.AppData) float64 {
		for _, e := range d.MileageEntries {
			if e.Date.Set() && match(e) {
				return 1
			}
		}
		return 0
	}
}

func allTasksSameDay(d *model.AppData) float64 {
	if len(d.MaintenanceTasks) == 0 {
		return 0
	}
	first := d.MaintenanceTasks[0].LastCompleted
	for _, t := range d.MaintenanceTasks {
		if !t.LastCompleted.Set() || !first.SameDay(t.LastCompleted.Time) {
			return 0
		}
	}
	return 1
}

func anniversaryRide(d *model.AppData) float64 {
	if !d.BikePurchaseDate.Set() {
		return 0
	}
	bought := d.BikePurchaseDate.Local()
	return anyMileage(func(e model.MileageEntry) bool {
		rode := e.Date.Local()
		return rode.Year() > bought.Year() && rode.Month() == bought.Month() && rode.Day() == bought.Day()
	})(d)
}

// maintenanceDayRun is the longest run of consecutive days on which some
// maintenance was done, judged from task completions and completed
// maintenance or cleaning events.
func maintenanceDayRun(d *model.AppData) float64 {
	seen := map[time.Time]struct{}{}
	for _, t := range d.MaintenanceTasks {
		if t.LastCompleted.Set() {
			seen[t.LastCompleted.Midnight()] = struct{}{}
		}
	}
	for _, e := range d.CalendarEvents {
		if e.Completed && e.Date.Set() && (e.Type == model.EventMaintenance || e.Type == model.EventCleaning) {
			seen[e.Date.Midnight()] = struct{}{}
		}
	}
	if len(seen) == 0 {
		return 0
	}
	days := make([]time.Time, 0, len(seen))
	for day := range seen {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	best, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i-1].AddDate(0, 0, 1).Equal(days[i]) {
			run++
		} else {
			run = 1
		}
		if run > best {
			best = run
		}
	}
	return float64(best)
}
