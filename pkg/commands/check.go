package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/model"
	"tableflip.dev/cyberride/pkg/runner/inspect"
)

func addCheck(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	var (
		status string
		notes  string
	)

	cmd := &cobra.Command{
		Use:   "check [component-id]",
		Short: "Record an inspection of a component.",
		Example: `
cyberride check comp-2 --status warning --notes "pads at 3mm"
cyberride check comp-1
`,
		Args: io.OptionalID("component"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return componentCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				if io.ID == "" {
					id, err := pickComponent(s)
					if err != nil {
						return nil, err
					}
					io.ID = id
				}
				r := &inspect.Inspect{
					App:    s.app,
					ID:     io.ID,
					ShowID: io.ShowID,
					Output: s.format,
				}
				if cmd.Flags().Changed("status") {
					st, err := model.ParseStatus(status)
					if err != nil {
						return nil, err
					}
					r.Status = st
				}
				if cmd.Flags().Changed("notes") {
					r.Notes = &notes
				}
				return r, nil
			})
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "One of good, warning or critical; unset keeps the current status.")
	cmd.Flags().StringVar(&notes, "notes", "", "Inspection notes.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
