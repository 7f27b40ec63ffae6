package commands

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/get"
	"tableflip.dev/cyberride/pkg/runner/strike"
)

func addStrike(topLevel *cobra.Command) {
	var (
		kind get.Kind
		id   string
	)
	deletable := []string{string(get.Gear), string(get.Events), string(get.Fuel), string(get.Trips)}

	cmd := &cobra.Command{
		Use:     "delete <gear|events|fuel|trips> <id>",
		Aliases: []string{"strike", "rm"},
		Short:   "Delete gear, an event, a fill-up or a trip.",
		Long: options.Help(
			"Delete a record.",
			"Deleting one of the built-in calendar events keeps it from coming back when the data is next loaded."),
		Example: `
cyberride delete gear gear-1a2b3c4d5e6f
cyberride delete event default-tire-check
`,
		ValidArgs: deletable,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("requires a collection and an id")
			}
			var err error
			kind, err = get.ParseKind(args[0])
			id = args[1]
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &strike.Strike{App: s.app, Kind: kind, ID: id, Output: s.format}, nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
