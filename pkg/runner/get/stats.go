package get

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
	"tableflip.dev/cyberride/pkg/state"
)

// Stats summarizes fuel spending and efficiency.
type Stats struct {
	App *app.Service
	// LowEfficiency flags averages below it, km/L.
	LowEfficiency float64
	Output        string
}

func (n *Stats) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not get stats, no app")
	}
	s := state.FuelStats(n.App.Data())
	pp := printers.PrettyPrint{}
	return pp.Emit(n.Output, s, func(pp *printers.PrettyPrint) { pp.FuelStats(s, n.LowEfficiency) })
}
