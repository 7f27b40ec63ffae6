package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/report"
	"tableflip.dev/cyberride/pkg/timeutil"
)

func addReport(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	next := ""

	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"dash"},
		Short:   "Dashboard: overdue tasks, critical components, recent rides and upcoming events.",
		Example: `
cyberride report
cyberride report --next 2w
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				w := next
				if w == "" {
					w = s.cfg.UpcomingWindow()
				}
				window, _, err := timeutil.ParseWindow(w)
				if err != nil {
					return nil, err
				}
				return &report.Report{App: s.app, Window: window, ShowID: io.ShowID, Output: s.format}, nil
			})
		},
	}

	cmd.Flags().StringVar(&next, "next", "", "Look-ahead for upcoming events, for example 3d or 2w; defaults to upcoming_window from the config.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
