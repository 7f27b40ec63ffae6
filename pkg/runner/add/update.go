package add

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
)

// Update applies whichever patch is set to the record with ID.
type Update struct {
	App *app.Service
	ID  string

	Gear  *app.GearPatch
	Event *app.EventPatch
	Fuel  *app.FuelPatch
	Trip  *app.TripPatch

	ShowID bool
	Output string
}

func (n *Update) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not update, no app")
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}

	switch {
	case n.Gear != nil:
		g, err := n.App.PatchGear(n.ID, *n.Gear)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, g, func(pp *printers.PrettyPrint) { pp.Gear(g) })
	case n.Event != nil:
		e, err := n.App.PatchEvent(n.ID, *n.Event)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, e, func(pp *printers.PrettyPrint) { pp.Events(e) })
	case n.Fuel != nil:
		f, err := n.App.PatchFuel(n.ID, *n.Fuel)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, f, func(pp *printers.PrettyPrint) { pp.Fuel(f) })
	case n.Trip != nil:
		t, err := n.App.PatchTrip(n.ID, *n.Trip)
		if err != nil {
			return err
		}
		return pp.Emit(n.Output, t, func(pp *printers.PrettyPrint) { pp.Trips(t) })
	}
	return errors.New("nothing to update")
}
