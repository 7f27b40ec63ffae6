package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/runner/key"
)

func addKey(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Legend of statuses, priorities and accepted values.",
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{}
			return output.HandleError(k.Do(cmd.Context()))
		},
	}

	topLevel.AddCommand(cmd)
}
