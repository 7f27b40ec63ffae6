package commands

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/watch"
	"tableflip.dev/cyberride/pkg/timeutil"
)

func addWatch(topLevel *cobra.Command) {
	var (
		interval time.Duration
		hour     int
		next     string
	)

	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Stay running: follow external edits and send maintenance reminders.",
		Long: options.Help(
			"Stay running until interrupted. Edits to the data file from another process are picked up as they happen.",
			"Overdue tasks and upcoming events are announced on start, after every --interval and once a day at --hour."),
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
				return &watch.Watch{
					App:       s.app,
					Window:    window,
					Interval:  interval,
					DailyHour: hour,
					Log:       logger,
				}, nil
			})
		},
	}

	cmd.Flags().DurationVar(&interval, "interval", watch.DefaultInterval, "How often to re-check reminders.")
	cmd.Flags().IntVar(&hour, "hour", watch.DefaultDailyHour, "Local hour of the daily reminder.")
	cmd.Flags().StringVar(&next, "next", "", "Look-ahead for upcoming events; defaults to upcoming_window from the config.")

	topLevel.AddCommand(cmd)
}
