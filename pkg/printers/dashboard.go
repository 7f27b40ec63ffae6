package printers

import (
	"fmt"

	"github.com/gosuri/uitable"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/notify"
	"tableflip.dev/cyberride/pkg/timeutil"
)

// Dashboard renders the report command output.
func (pp *PrettyPrint) Dashboard(r app.Dashboard) {
	pp.Title(fmt.Sprintf("🏍️  %s (%d) · %s", r.BikeModel, r.BikeYear, km(r.TotalKilometers)))
	_, _ = faint.Fprintf(pp.out(), "Achievements %d/%d", r.Unlocked, r.Achievements)
	if r.Fuel.AvgEfficiency > 0 {
		_, _ = faint.Fprintf(pp.out(), " · %.1f km/L", r.Fuel.AvgEfficiency)
	}
	pp.NewLine()
	if r.OpenTrip != nil {
		_, _ = warning.Fprintf(pp.out(), "Trip in progress: %s since %s\n", r.OpenTrip.Name, r.OpenTrip.StartDate.String())
	}
	pp.NewLine()

	section := func(title string, count int) bool {
		_, _ = bold.Fprintln(pp.out(), title)
		if count == 0 {
			pp.None()
			return false
		}
		return true
	}

	if section("Overdue", len(r.Overdue)) {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, o := range r.Overdue {
			tbl.AddRow(critical.Sprint("!"), o.Task.Name, fmt.Sprintf("%d days overdue", o.DaysOverdue))
		}
		pp.flush(tbl)
	}

	if section("Critical components", len(r.Critical)) {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, c := range r.Critical {
			tbl.AddRow(critical.Sprint(c.Status.Symbol()), c.Name, orDash(c.Notes))
		}
		pp.flush(tbl)
	}

	if section(fmt.Sprintf("Upcoming (%s)", timeutil.FormatWindow(r.Window)), len(r.Upcoming)) {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, u := range r.Upcoming {
			tbl.AddRow(u.Event.Date.String(), u.Event.String(), notify.DayText(u.DaysUntil))
		}
		pp.flush(tbl)
	}

	if section("Recent rides", len(r.RecentMileage)) {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, m := range r.RecentMileage {
			tbl.AddRow(m.Date.String(), km(m.Kilometers), orDash(m.Notes))
		}
		pp.flush(tbl)
	}

	if section("Recent achievements", len(r.RecentAchievements)) {
		tbl := uitable.New()
		tbl.Separator = "  "
		for _, a := range r.RecentAchievements {
			tbl.AddRow(a.String(), a.UnlockedAt.String())
		}
		pp.flush(tbl)
	}
}
