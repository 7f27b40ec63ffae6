package state

import (
	"math"
	"sort"
	"time"

	"tableflip.dev/cyberride/pkg/model"
)

// FuelSummary aggregates the fuel log.
type FuelSummary struct {
	Fills            int     `json:"fills"`
	TotalSpent       float64 `json:"totalSpent"`
	TotalLiters      float64 `json:"totalLiters"`
	AvgPricePerLiter float64 `json:"avgPricePerLiter"`
	// AvgEfficiency is km per liter across consecutive full-tank fills; zero
	// until two usable full fills exist.
	AvgEfficiency float64 `json:"avgEfficiency"`
}

// FuelStats summarizes the fuel log. The log is stored newest first.
func FuelStats(d model.AppData) FuelSummary {
	var sum FuelSummary
	for _, f := range d.FuelEntries {
		sum.Fills++
		sum.TotalSpent += f.TotalCost
		sum.TotalLiters += f.Liters
	}
	if sum.TotalLiters > 0 {
		sum.AvgPricePerLiter = sum.TotalSpent / sum.TotalLiters
	}

	var full []model.FuelEntry
	for i := len(d.FuelEntries) - 1; i >= 0; i-- {
		if d.FuelEntries[i].FullTank {
			full = append(full, d.FuelEntries[i])
		}
	}
	total, count := 0.0, 0
	for i := 1; i < len(full); i++ {
		distance := full[i].Odometer - full[i-1].Odometer
		used := full[i-1].Liters
		if distance > 0 && used > 0 {
			total += distance / used
			count++
		}
	}
	if count > 0 {
		sum.AvgEfficiency = total / float64(count)
	}
	return sum
}

// OverdueTask is a task whose next due date has passed.
type OverdueTask struct {
	Task        model.MaintenanceTask `json:"task"`
	DaysOverdue int                   `json:"daysOverdue"`
}

// OverdueTasks lists tasks due before now, most overdue first.
func OverdueTasks(d model.AppData, now time.Time) []OverdueTask {
	var out []OverdueTask
	for _, t := range d.MaintenanceTasks {
		if !t.NextDue.Set() || !t.NextDue.Before(now) {
			continue
		}
		days := int(math.Floor(now.Sub(t.NextDue.Time).Hours() / 24))
		out = append(out, OverdueTask{Task: t, DaysOverdue: days})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].DaysOverdue > out[j].DaysOverdue })
	return out
}

// UpcomingEvent is a calendar event inside the look-ahead window.
type UpcomingEvent struct {
	Event     model.CalendarEvent `json:"event"`
	DaysUntil int                 `json:"daysUntil"`
}

// UpcomingEvents returns events dated from today through today+window,
// earliest first, capped at limit when limit is positive.
func UpcomingEvents(d model.AppData, now time.Time, window time.Duration, limit int) []UpcomingEvent {
	today := model.At(now).Midnight()
	last := today.AddDate(0, 0, int(window.Hours()/24))
	var out []UpcomingEvent
	for _, e := range d.CalendarEvents {
		if !e.Date.Set() {
			continue
		}
		day := e.Date.Midnight()
		if day.Before(today) || day.After(last) {
			continue
		}
		out = append(out, UpcomingEvent{Event: e, DaysUntil: DaysBetween(today, day)})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Event.Date.Before(out[j].Event.Date.Time) })
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// DaysBetween counts calendar days from a to b in local time.
func DaysBetween(a, b time.Time) int {
	from := model.At(a).Midnight()
	to := model.At(b).Midnight()
	return int(math.Round(to.Sub(from).Hours() / 24))
}

// CriticalComponents lists components whose status is critical.
func CriticalComponents(d model.AppData) []model.ComponentCheck {
	var out []model.ComponentCheck
	for _, c := range d.ComponentChecks {
		if c.Status == model.StatusCritical {
			out = append(out, c)
		}
	}
	return out
}

// RecentAchievements returns up to n unlocked achievements, newest first.
func RecentAchievements(d model.AppData, n int) []model.Achievement {
	var out []model.Achievement
	for _, a := range d.Achievements {
		if a.Unlocked {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].UnlockedAt.After(out[j].UnlockedAt.Time) })
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// RecentMileage returns the n newest mileage entries.
func RecentMileage(d model.AppData, n int) []model.MileageEntry {
	if n < 0 {
		n = 0
	}
	if n > len(d.MileageEntries) {
		n = len(d.MileageEntries)
	}
	return append([]model.MileageEntry(nil), d.MileageEntries[:n]...)
}
