// Package inspect provides the runner that records component checks.
package inspect

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/printers"
)

// Inspect stamps a component as checked now. An empty Status keeps the
// current one; a nil Notes keeps the current notes.
type Inspect struct {
	App    *app.Service
	ID     string
	Status model.Status
	Notes  *string
	ShowID bool
	Output string
}

func (n *Inspect) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not inspect, no app")
	}
	c, err := n.App.SetComponent(n.ID, n.Status, n.Notes)
	if err != nil {
		return err
	}
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	return pp.Emit(n.Output, c, func(pp *printers.PrettyPrint) {
		pp.Note("Checked %s: %s %s", c.Name, c.Status.Symbol(), c.Status)
		pp.NewLine()
		pp.Components(n.App.Data().ComponentChecks...)
	})
}
