package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/bike"
)

func addBike(topLevel *cobra.Command) {
	o := &options.BikeOptions{}

	cmd := &cobra.Command{
		Use:   "bike",
		Short: "Show or change the bike settings.",
		Long: `Show the bike settings. With flags, change them first.

Changing the starting odometer rebuilds the odometer as the starting value
plus every logged ride.`,
		Example: `
cyberride bike
cyberride bike --model "Duke 390" --year 2021 --starting-odometer 5000
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &bike.Bike{App: s.app, Patch: o.Patch(cmd), Output: s.format}, nil
			})
		},
	}

	options.AddBikeArgs(cmd, o)

	topLevel.AddCommand(cmd)
}
