package commands

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/app"
	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/transfer"
)

func addExport(topLevel *cobra.Command) {
	format := ""

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Write a backup of all data.",
		Example: `
cyberride export backup.json
cyberride export backup.yaml
cyberride export backup.txt --format yaml
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				r := &transfer.Export{App: s.app, Path: args[0]}
				switch f := app.Format(format); f {
				case "":
				case app.FormatJSON, app.FormatYAML:
					r.Format = f
				default:
					return nil, fmt.Errorf("unknown format %q, expected json or yaml", format)
				}
				return r, nil
			})
		},
	}

	cmd.Flags().StringVar(&format, "format", "", "One of json or yaml; guessed from the file extension when unset.")

	topLevel.AddCommand(cmd)
}

func addImport(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Replace all data with a backup.",
		Long: options.Help(
			"Replace all data with a JSON or YAML backup.",
			"The backup is normalized the same way the data file is on load, so older or partial backups are accepted."),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires a file")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				return &transfer.Import{App: s.app, Path: args[0]}, nil
			})
		},
	}

	topLevel.AddCommand(cmd)
}
