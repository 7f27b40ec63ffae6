// Package track provides the runners that start and finish trips.
package track

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
	"tableflip.dev/cyberride/pkg/state"
)

// Track starts a trip at the current odometer.
type Track struct {
	App       *app.Service
	Name      string
	Notes     string
	Locations []string
	ShowID    bool
	Output    string
}

func (n *Track) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not track, no app")
	}
	t, err := n.App.StartTrip(n.Name, n.Notes, n.Locations)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	return pp.Emit(n.Output, t, func(pp *printers.PrettyPrint) {
		pp.Note("Started %s at %.1f km", t.Name, t.StartOdometer)
		pp.Trips(t)
	})
}

// Finish ends a trip. A zero Odometer uses the current total.
type Finish struct {
	App      *app.Service
	ID       string
	Odometer float64
	ShowID   bool
	Output   string
}

func (n *Finish) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not finish, no app")
	}
	id := n.ID
	if id == "" {
		open, ok := state.OpenTrip(n.App.Data())
		if !ok {
			return errors.New("no trip in progress")
		}
		id = open.ID
	}
	t, err := n.App.EndTrip(id, n.Odometer)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	return pp.Emit(n.Output, t, func(pp *printers.PrettyPrint) {
		pp.Note("Finished %s: %.1f km", t.Name, t.Distance)
		pp.Trips(t)
	})
}
