package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/log"
)

func addLog(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		km    float64
		notes string
	)

	cmd := &cobra.Command{
		Use:     "log <km> [notes...]",
		Aliases: []string{"ride"},
		Short:   "Log a ride and advance the odometer.",
		Example: `
cyberride log 42.5 coast road
cyberride ride 12
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("requires a distance in km")
			}
			var err error
			km, err = strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid distance %q: %w", args[0], err)
			}
			notes = strings.Join(args[1:], " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &log.Log{
					App:        s.app,
					Kilometers: km,
					Notes:      notes,
					ShowID:     io.ShowID,
					Output:     s.format,
				}, nil
			})
		},
	}

	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
