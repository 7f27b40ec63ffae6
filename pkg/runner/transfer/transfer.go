// Package transfer provides the backup export and import runners.
package transfer

import (
	"context"
	"errors"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
)

// Export writes a backup to Path. An empty Format is guessed from the
// file extension.
type Export struct {
	App    *app.Service
	Path   string
	Format app.Format
}

func (n *Export) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not export, no app")
	}
	format := n.Format
	if format == "" {
		format = app.FormatFor(n.Path)
	}
	if err := n.App.Export(n.Path, format); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	pp.Note("Exported to %s (%s)", n.Path, format)
	return nil
}

// Import replaces all data with the backup at Path.
type Import struct {
	App  *app.Service
	Path string
}

func (n *Import) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not import, no app")
	}
	if err := n.App.Import(n.Path); err != nil {
		return err
	}
	d := n.App.Data()
	pp := printers.PrettyPrint{}
	pp.Note("Imported %s: %d rides, %.1f km", n.Path, len(d.MileageEntries), d.TotalKilometers)
	return nil
}
