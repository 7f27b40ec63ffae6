package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/runner/info"
)

func addInfo(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Details about the config and where the data is stored.",
		Example: `
cyberride info
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &info.Info{Config: s.cfg, App: s.app}, nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
