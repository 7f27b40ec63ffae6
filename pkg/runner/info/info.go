package info

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/store"
)

// Info prints where the data lives and how much of it there is.
type Info struct {
	Config store.Config
	App    *app.Service
}

func (n *Info) Do(ctx context.Context) error {
	out := color.Output

	if override := os.Getenv("CYBERRIDE_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(out, "CYBERRIDE_CONFIG_PATH found on env, using ", override)
	} else {
		_, _ = fmt.Fprintln(out, "CYBERRIDE_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	_, _ = fmt.Fprintln(out, "Config.path: ", n.Config.BasePath())
	_, _ = fmt.Fprintln(out, "Config.notifications: ", n.Config.Notifications())
	_, _ = fmt.Fprintln(out, "Config.low_efficiency: ", n.Config.LowEfficiency())
	_, _ = fmt.Fprintln(out, "Config.upcoming_window: ", n.Config.UpcomingWindow())

	if n.App == nil {
		return fmt.Errorf("failed to open the data slot")
	}
	_, _ = fmt.Fprintln(out, "Data file: ", n.App.Slot.Path())
	_, _ = fmt.Fprintln(out, "")

	d := n.App.Data()
	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow("Rides", len(d.MileageEntries))
	tbl.AddRow("Tasks", len(d.MaintenanceTasks))
	tbl.AddRow("Components", len(d.ComponentChecks))
	tbl.AddRow("Gear", len(d.RidingGear))
	tbl.AddRow("Events", len(d.CalendarEvents))
	tbl.AddRow("Fill-ups", len(d.FuelEntries))
	tbl.AddRow("Trips", len(d.TripEntries))
	tbl.AddRow("Achievements", len(d.Achievements))
	tbl.RightAlign(1)
	_, _ = fmt.Fprintln(out, tbl)

	return nil
}
