package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/track"
)

func addTrack(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		name      string
		notes     string
		locations []string
	)

	cmd := &cobra.Command{
		Use:   "track <trip name...>",
		Short: "Start a trip at the current odometer. Only one trip can be in progress.",
		Example: `
cyberride track Alps loop --location Bern --location Chur
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a trip name")
			}
			name = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &track.Track{
					App:       s.app,
					Name:      name,
					Notes:     notes,
					Locations: locations,
					ShowID:    io.ShowID,
					Output:    s.format,
				}, nil
			})
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "Free-form notes.")
	cmd.Flags().StringSliceVar(&locations, "location", nil, "A place along the route; repeat for more.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}

func addFinish(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	odometer := 0.0

	cmd := &cobra.Command{
		Use:   "finish [trip-id]",
		Short: "Finish a trip; without an id the trip in progress is finished.",
		Example: `
cyberride finish
cyberride finish trip-1a2b3c4d5e6f --odometer 16120
`,
		Args: io.OptionalID("trip"),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &track.Finish{
					App:      s.app,
					ID:       io.ID,
					Odometer: odometer,
					ShowID:   io.ShowID,
					Output:   s.format,
				}, nil
			})
		},
	}

	cmd.Flags().Float64Var(&odometer, "odometer", 0, "Odometer at the end, km; defaults to the current total.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
