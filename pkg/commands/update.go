package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/add"
)

func addUpdate(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "update",
		Aliases: []string{"edit"},
		Short:   "Change fields of gear, an event, a fill-up or a trip. Only the flags given are changed.",
		Example: `
cyberride update gear gear-1a2b3c4d5e6f --owned
cyberride update event default-wash --on tomorrow
cyberride update fuel fuel-1a2b3c4d5e6f --price 1.85
cyberride update trip trip-1a2b3c4d5e6f --location Chur --location Davos
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	updateCmd(cmd, "gear", "Change a riding gear item.",
		func(c *cobra.Command) func(*add.Update) {
			o := &options.GearOptions{}
			options.AddGearArgs(c, o)
			return func(u *add.Update) { p := o.Patch(c); u.Gear = &p }
		})
	updateCmd(cmd, "event", "Change a calendar event.",
		func(c *cobra.Command) func(*add.Update) {
			o := &options.EventOptions{}
			options.AddEventArgs(c, o)
			return func(u *add.Update) { p := o.Patch(c); u.Event = &p }
		})
	updateCmd(cmd, "fuel", "Change a fill-up; the total cost is recomputed.",
		func(c *cobra.Command) func(*add.Update) {
			o := &options.FuelOptions{}
			options.AddFuelArgs(c, o)
			return func(u *add.Update) { p := o.Patch(c); u.Fuel = &p }
		})
	updateCmd(cmd, "trip", "Change a trip.",
		func(c *cobra.Command) func(*add.Update) {
			o := &options.TripOptions{}
			options.AddTripArgs(c, o)
			return func(u *add.Update) { p := o.Patch(c); u.Trip = &p }
		})

	topLevel.AddCommand(cmd)
}

// updateCmd wires one `update <kind> <id>` command. flags registers the
// kind's flags and returns the hook that sets its patch.
func updateCmd(parent *cobra.Command, kind, short string, flags func(*cobra.Command) func(*add.Update)) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   kind + " <id>",
		Short: short,
		Args:  io.RequireID(kind),
	}
	setPatch := flags(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		return withSession(cmd, func(s *session) (runner, error) {
			u := &add.Update{App: s.app, ID: io.ID, ShowID: io.ShowID, Output: s.format}
			setPatch(u)
			return u, nil
		})
	}

	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}
