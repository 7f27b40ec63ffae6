package printers

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/state"
)

var (
	good     = color.New(color.FgGreen)
	warning  = color.New(color.FgYellow)
	critical = color.New(color.FgRed, color.Bold)
)

func statusColor(s model.Status) *color.Color {
	switch s {
	case model.StatusWarning:
		return warning
	case model.StatusCritical:
		return critical
	default:
		return good
	}
}

func (pp *PrettyPrint) Mileage(entries ...model.MileageEntry) {
	pp.TitleWithCount("Mileage", len(entries), "entry")
	if len(entries) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("Date", "Distance", "Total", "Notes")
	for _, e := range entries {
		pp.row(tbl, e.ID, e.Date.String(), km(e.Kilometers), km(e.TotalKilometers), orDash(e.Notes))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Tasks(now time.Time, tasks ...model.MaintenanceTask) {
	pp.TitleWithCount("Maintenance", len(tasks), "task")
	if len(tasks) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("Task", "Every", "Last done", "Next due", "Streak")
	for _, t := range tasks {
		due := t.NextDue.String()
		if t.NextDue.Set() && t.NextDue.Before(now) {
			due = critical.Sprintf("%s (overdue)", due)
		}
		pp.row(tbl, t.ID, t.Name, fmt.Sprintf("%dd", t.Frequency), t.LastCompleted.String(), due, fmt.Sprintf("🔥 %d", t.Streak))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Components(checks ...model.ComponentCheck) {
	pp.TitleWithCount("Components", len(checks), "component")
	if len(checks) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("", "Component", "Category", "Checked", "Notes")
	for _, c := range checks {
		sc := statusColor(c.Status)
		pp.row(tbl, c.ID, sc.Sprint(c.Status.Symbol()), c.Name, string(c.Category), c.LastChecked.String(), orDash(c.Notes))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Gear(items ...model.RidingGear) {
	pp.TitleWithCount("Riding gear", len(items), "item")
	if len(items) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("", "Item", "Category", "Priority", "Price", "Target", "Notes")
	for _, g := range items {
		owned := faint.Sprint("○")
		if g.Owned {
			owned = good.Sprint("✔")
		}
		price := "-"
		if g.Price > 0 {
			price = fmt.Sprintf("%.2f", g.Price)
		}
		pp.row(tbl, g.ID, owned, g.Name, string(g.Category), string(g.Priority), price, g.TargetDate.String(), orDash(g.Notes))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Events(events ...model.CalendarEvent) {
	pp.TitleWithCount("Calendar", len(events), "event")
	if len(events) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("", "Date", "Event", "Type", "Task")
	for _, e := range events {
		done := faint.Sprint("○")
		if e.Completed {
			done = good.Sprint("✔")
		}
		title := e.String()
		if e.Recurring {
			title += faint.Sprint(" ↻")
		}
		pp.row(tbl, e.ID, done, e.Date.String(), title, string(e.Type), orDash(e.LinkedTaskID))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Fuel(entries ...model.FuelEntry) {
	pp.TitleWithCount("Fuel", len(entries), "fill")
	if len(entries) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("Date", "Liters", "Price/L", "Cost", "Odometer", "Type", "Full")
	for _, f := range entries {
		full := ""
		if f.FullTank {
			full = "✔"
		}
		pp.row(tbl, f.ID, f.Date.String(), fmt.Sprintf("%.2f", f.Liters), fmt.Sprintf("%.3f", f.PricePerLiter),
			fmt.Sprintf("%.2f", f.TotalCost), km(f.Odometer), string(f.FuelType), full)
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) FuelStats(s state.FuelSummary, lowEfficiency float64) {
	pp.Title("Fuel statistics")
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Fills", s.Fills)
	tbl.AddRow("Total spent", fmt.Sprintf("%.2f", s.TotalSpent))
	tbl.AddRow("Total liters", fmt.Sprintf("%.2f", s.TotalLiters))
	tbl.AddRow("Average price", fmt.Sprintf("%.3f /L", s.AvgPricePerLiter))
	eff := "-"
	if s.AvgEfficiency > 0 {
		eff = fmt.Sprintf("%.1f km/L", s.AvgEfficiency)
		if lowEfficiency > 0 && s.AvgEfficiency < lowEfficiency {
			eff = warning.Sprint(eff + " (low)")
		}
	}
	tbl.AddRow("Efficiency", eff)
	tbl.RightAlign(0)
	pp.flush(tbl)
}

func (pp *PrettyPrint) Trips(trips ...model.TripEntry) {
	pp.TitleWithCount("Trips", len(trips), "trip")
	if len(trips) == 0 {
		pp.None()
		return
	}
	tbl := pp.table("Trip", "Start", "End", "Distance", "Route", "Notes")
	for _, t := range trips {
		end := t.EndDate.String()
		if t.InProgress() {
			end = warning.Sprint("in progress")
		}
		distance := "-"
		if !t.InProgress() {
			distance = km(t.Distance)
		}
		pp.row(tbl, t.ID, t.Name, t.StartDate.String(), end, distance, orDash(strings.Join(t.Locations, " → ")), orDash(t.Notes))
	}
	pp.flush(tbl)
}

func (pp *PrettyPrint) Bike(info state.BikeInfo, total float64) {
	pp.Title(fmt.Sprintf("🏍️  %s (%d)", info.Model, info.Year))
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Purchased", model.At(info.PurchaseDate).String())
	tbl.AddRow("Starting odometer", km(info.StartingOdometer))
	tbl.AddRow("Odometer", km(total))
	tbl.RightAlign(0)
	pp.flush(tbl)
}

func (pp *PrettyPrint) Achievements(all ...model.Achievement) {
	unlocked := 0
	for _, a := range all {
		if a.Unlocked {
			unlocked++
		}
	}
	pp.Title(fmt.Sprintf("Achievements %d/%d", unlocked, len(all)))
	tbl := pp.table("", "Achievement", "Progress", "Category", "Unlocked")
	for _, a := range all {
		mark := faint.Sprint("🔒")
		name := faint.Sprint(a.Name)
		if a.Unlocked {
			mark = a.Icon
			name = bold.Sprint(a.Name)
		}
		pp.row(tbl, a.ID, mark, name+"\n"+faint.Sprint(a.Description), progressBar(a), string(a.Category), a.UnlockedAt.String())
	}
	pp.flush(tbl)
}

func progressBar(a model.Achievement) string {
	const width = 10
	filled := int(a.Percent() / 100 * width)
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return fmt.Sprintf("%s %.0f/%.0f", bar, min(a.Progress, a.Target), a.Target)
}
