package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/get"
)

func addGet(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	g := get.Get{}

	cmd := &cobra.Command{
		Use:   "get <collection>",
		Short: "List rides, tasks, components, gear, events, fuel, trips or achievements.",
		Long: fmt.Sprintf("List the records of one collection.\n\nCollections:\n  %s\n",
			strings.Join(get.Kinds(), "\n  ")),
		Example: `
cyberride get mileage --limit 10
cyberride get gear --wishlist
cyberride get events --pending -k
cyberride get trips -o yaml
`,
		ValidArgs: get.Kinds(),
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("requires exactly one collection")
			}
			var err error
			g.Kind, err = get.ParseKind(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				r := g
				r.App = s.app
				r.ShowID = io.ShowID
				r.Output = s.format
				return &r, nil
			})
		},
	}

	cmd.Flags().IntVar(&g.Limit, "limit", 0, "Show at most this many records (0 for all).")
	cmd.Flags().BoolVar(&g.Owned, "owned", false, "Gear: only owned items.")
	cmd.Flags().BoolVar(&g.Wishlist, "wishlist", false, "Gear: only items not owned yet.")
	cmd.Flags().BoolVar(&g.Pending, "pending", false, "Events: hide completed events.")
	options.AddShowIDArgs(cmd, io)

	topLevel.AddCommand(cmd)
}
