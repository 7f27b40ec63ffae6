// Package strike provides the runner that deletes records.
package strike

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
	"tableflip.dev/cyberride/pkg/runner/get"
)

// Strike deletes one gear item, event, fill-up or trip.
type Strike struct {
	App    *app.Service
	Kind   get.Kind
	ID     string
	Output string
}

func (n *Strike) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not strike, no app")
	}

	var del func(string) error
	switch n.Kind {
	case get.Gear:
		del = n.App.DeleteGear
	case get.Events:
		del = n.App.DeleteEvent
	case get.Fuel:
		del = n.App.DeleteFuel
	case get.Trips:
		del = n.App.DeleteTrip
	default:
		return fmt.Errorf("can not delete from %q", n.Kind)
	}
	if err := del(n.ID); err != nil {
		return err
	}

	pp := printers.PrettyPrint{}
	return pp.Emit(n.Output, map[string]any{"id": n.ID, "deleted": true}, func(pp *printers.PrettyPrint) {
		pp.Note("Deleted %s", n.ID)
	})
}
