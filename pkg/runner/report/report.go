// Package report provides the dashboard runner.
package report

import (
	"context"
	"errors"
	"time"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/printers"
)

// Report prints the dashboard with events due within Window.
type Report struct {
	App    *app.Service
	Window time.Duration
	ShowID bool
	Output string
}

func (n *Report) Do(ctx context.Context) error {
	if n.App == nil {
		return errors.New("can not report, no app")
	}
	d := n.App.Report(n.Window)
	pp := printers.PrettyPrint{ShowID: n.ShowID}
	return pp.Emit(n.Output, d, func(pp *printers.PrettyPrint) { pp.Dashboard(d) })
}
