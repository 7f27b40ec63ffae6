// Package complete provides the runner logic for finishing maintenance tasks.
package complete

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/printers"
)

// Complete marks a maintenance task done, or clears it when Reset is set.
type Complete struct {
	App    *app.Service
	ID     string
	Reset  bool
	ShowID bool
	Output string
}

// Do executes the completion operation for the configured task ID.
func (n *Complete) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not complete, no app")
	}

	var (
		t   model.MaintenanceTask
		err error
	)
	if n.Reset {
		t, err = n.App.ResetTask(n.ID)
	} else {
		t, err = n.App.CompleteTask(n.ID)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	return pp.Emit(n.Output, t, func(pp *printers.PrettyPrint) {
		if n.Reset {
			pp.Note("Reset %s", t.Name)
		} else {
			pp.Note("Completed %s, next due %s, streak %d", t.Name, t.NextDue.String(), t.Streak)
		}
		pp.NewLine()
		pp.Tasks(n.App.Store.Now(), n.App.Data().MaintenanceTasks...)
	})
}
