package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/complete"
)

func addComplete(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	reset := false

	cmd := &cobra.Command{
		Use:     "complete [task-id]",
		Aliases: []string{"done"},
		Short:   "Mark a maintenance task done and schedule the next one.",
		Example: `
cyberride complete chain-lube-1
cyberride complete wash-1 --reset
`,
		Long: options.Help(
			"Mark a maintenance task done now, schedule the next one and extend its streak.",
			"Run from a terminal without an id to pick the task from a list."),
		Args: io.OptionalID("task"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			return taskCompletions(), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				if io.ID == "" {
					id, err := pickTask(s)
					if err != nil {
						return nil, err
					}
					io.ID = id
				}
				return &complete.Complete{
					App:    s.app,
					ID:     io.ID,
					Reset:  reset,
					ShowID: io.ShowID,
					Output: s.format,
				}, nil
			})
		},
	}

	cmd.Flags().BoolVar(&reset, "reset", false, "Clear the completion instead; the streak is kept.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
