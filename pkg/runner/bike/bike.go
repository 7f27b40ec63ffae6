// Package bike provides the runner for the bike settings.
package bike

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
)

// Bike shows the bike settings, applying Patch first when set.
type Bike struct {
	App    *app.Service
	Patch  *app.BikePatch
	Output string
}

func (n *Bike) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not show bike, no app")
	}
	if n.Patch != nil {
		if _, err := n.App.PatchBike(*n.Patch); err != nil {
			return err
		}
	}
	info := n.App.Bike()
	total := n.App.Data().TotalKilometers
	pp := printers.PrettyPrint{}
	return pp.Emit(n.Output, app.NewBikeView(info, total), func(pp *printers.PrettyPrint) { pp.Bike(info, total) })
}
