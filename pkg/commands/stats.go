package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/get"
)

func addStats(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Fuel spending and efficiency.",
		Long: options.Help(
			"Summarize fill-ups. Efficiency is measured between consecutive full-tank fills and flagged when it falls below low_efficiency from the config."),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &get.Stats{
					App:           s.app,
					LowEfficiency: s.cfg.LowEfficiency(),
					Output:        s.format,
				}, nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
