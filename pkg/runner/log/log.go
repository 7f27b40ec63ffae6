// Package log provides the runner that records rides.
package log

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
	"tableflip.dev/cyberride/pkg/state"
)

// recent is how many rides are echoed after logging one.
const recent = 5

// Log records a ride and advances the odometer.
type Log struct {
	App        *app.Service
	Kilometers float64
	Notes      string
	ShowID     bool
	Output     string
}

func (n *Log) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not log, no app")
	}
	e, err := n.App.RecordMileage(n.Kilometers, n.Notes)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	return pp.Emit(n.Output, e, func(pp *printers.PrettyPrint) {
		pp.Note("Logged %.1f km, odometer at %.1f km", e.Kilometers, e.TotalKilometers)
		pp.NewLine()
		pp.Mileage(state.RecentMileage(n.App.Data(), recent)...)
	})
}
