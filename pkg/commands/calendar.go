package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/calendar"
)

func addCalendar(topLevel *cobra.Command) {
	on := &options.OnOptions{}
	months := 1

	cmd := &cobra.Command{
		Use:     "calendar",
		Aliases: []string{"cal"},
		Short:   "Show the calendar events of a month.",
		Example: `
cyberride calendar
cyberride calendar --on 2025-7-1 --months 2
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				r := &calendar.Calendar{App: s.app, Months: months, Output: s.format}
				t, err := on.GetOn(s.app.Store.Now())
				if err != nil {
					return nil, err
				}
				if t != nil {
					r.On = *t
				}
				return r, nil
			})
		},
	}

	options.AddOnArgs(cmd, on)
	cmd.Flags().IntVar(&months, "months", 1, "Number of months to show.")

	topLevel.AddCommand(cmd)
}
