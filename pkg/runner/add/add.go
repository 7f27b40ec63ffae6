// Package add provides the runners that create and change records.
package add

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
)

// Add creates one record from whichever patch is set.
type Add struct {
	App *app.Service

	Gear  *app.GearPatch
	Event *app.EventPatch
	Fuel  *app.FuelPatch
	Trip  *app.TripPatch

	ShowID bool
	Output string
}

func (n *Add) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not add, no app")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch {
	case n.Gear != nil:
		g, err := n.App.NewGear(*n.Gear)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, g, func(pp *printers.PrettyPrint) {
			pp.Note("Added %s", g.Name)
			pp.Gear(n.App.Data().RidingGear...)
		})
	case n.Event != nil:
		e, err := n.App.NewEvent(*n.Event)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, e, func(pp *printers.PrettyPrint) {
			pp.Note("Scheduled %s on %s", e.Title, e.Date.String())
			pp.Events(e)
		})
	case n.Fuel != nil:
		f, err := n.App.NewFuel(*n.Fuel)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, f, func(pp *printers.PrettyPrint) {
			pp.Note("Logged %.2f L for %.2f", f.Liters, f.TotalCost)
			pp.Fuel(f)
		})
	case n.Trip != nil:
		t, err := n.App.NewTrip(*n.Trip)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, t, func(pp *printers.PrettyPrint) {
			pp.Note("Added trip %s", t.Name)
			pp.Trips(t)
		})
	}
	return errors.New("nothing to add")
}
