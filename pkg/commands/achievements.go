package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/achievements"
)

func addAchievements(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	check := false

	cmd := &cobra.Command{
		Use:     "achievements",
		Aliases: []string{"ach"},
		Short:   "List achievements and their progress.",
		Example: `
cyberride achievements
cyberride achievements --check
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &achievements.Achievements{
					App:    s.app,
					Check:  check,
					ShowID: io.ShowID,
					Output: s.format,
				}, nil
			})
		},
	}

	cmd.Flags().BoolVar(&check, "check", false, "Re-evaluate achievements first.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
