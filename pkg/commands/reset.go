package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/printers"
	"tableflip.dev/cyberride/pkg/prompt"
)

type resetRunner struct {
	s *session
}

func (r *resetRunner) Do(ctx context.Context) error {
	if err := r.s.app.ResetData(); err != nil {
		return err
	}
	pp := printers.PrettyPrint{}
	return pp.Emit(r.s.format, map[string]any{"reset": true}, func(pp *printers.PrettyPrint) {
		pp.Note("All data erased; defaults restored.")
	})
}

func addReset(topLevel *cobra.Command) {
	yes := false

	cmd := &cobra.Command{
		Use:   "reset --yes",
		Short: "Erase all data and restore the defaults.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				p, err := prompt.Terminal()
				if err != nil {
					return output.HandleError(errors.New("reset erases all data; pass --yes to confirm"))
				}
				ok, err := p.Confirm("Erase all data and restore the defaults")
				if err != nil {
					return output.HandleError(err)
				}
				if !ok {
					return nil
				}
			}
			return withSession(cmd, func(s *session) (runner, error) {
				return &resetRunner{s: s}, nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "Confirm erasing all data.")

	topLevel.AddCommand(cmd)
}
