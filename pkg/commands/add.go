package commands

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/commands/options"
	"tableflip.dev/cyberride/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add gear, a calendar event, a fill-up or a trip.",
		Example: `
cyberride add gear Touring Helmet --category helmet --price 320
cyberride add event Chain kit swap --on 7/14 --type service
cyberride add fuel -l 11.2 -p 1.79 --odometer 15230
cyberride add trip Alps loop --start 2025-6-1 --end-odometer 1800
`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	addGearCmd(cmd)
	addEventCmd(cmd)
	addFuelCmd(cmd)
	addTripCmd(cmd)

	topLevel.AddCommand(cmd)
}

// nameArgs joins the positional words into the record name.
func nameArgs(what string, dst *string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		*dst = strings.Join(args, " ")
		if strings.TrimSpace(*dst) == "" && !cmd.Flags().Changed(what) {
			return errors.New("requires a " + what)
		}
		return nil
	}
}

func addGearCmd(parent *cobra.Command) {
	io := &options.IDOptions{}
	o := &options.GearOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "gear <name...>",
		Short: "Add a riding gear item.",
		Args:  nameArgs("name", &name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				p := o.Patch(cmd)
				if name != "" {
					p.Name = &name
				}
				return &add.Add{App: s.app, Gear: &p, ShowID: io.ShowID, Output: s.format}, nil
			})
		},
	}

	options.AddGearArgs(cmd, o)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addEventCmd(parent *cobra.Command) {
	io := &options.IDOptions{}
	o := &options.EventOptions{}
	var title string

	cmd := &cobra.Command{
		Use:   "event <title...> --on <date>",
		Short: "Schedule a calendar event.",
		Args:  nameArgs("title", &title),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				p := o.Patch(cmd)
				if title != "" {
					p.Title = &title
				}
				if p.Date == nil {
					return nil, errors.New("requires --on")
				}
				return &add.Add{App: s.app, Event: &p, ShowID: io.ShowID, Output: s.format}, nil
			})
		},
	}

	options.AddEventArgs(cmd, o)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addFuelCmd(parent *cobra.Command) {
	io := &options.IDOptions{}
	o := &options.FuelOptions{}

	cmd := &cobra.Command{
		Use:   "fuel --liters <l> --price <per-liter>",
		Short: "Log a fill-up; the total cost is liters times price.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				p := o.Patch(cmd)
				if p.Liters == nil {
					return nil, errors.New("requires --liters")
				}
				return &add.Add{App: s.app, Fuel: &p, ShowID: io.ShowID, Output: s.format}, nil
			})
		},
	}

	options.AddFuelArgs(cmd, o)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}

func addTripCmd(parent *cobra.Command) {
	io := &options.IDOptions{}
	o := &options.TripOptions{}
	var name string

	cmd := &cobra.Command{
		Use:   "trip <name...>",
		Short: "Record a trip, in progress or already finished.",
		Args:  nameArgs("name", &name),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, func(s *session) (runner, error) {
				p := o.Patch(cmd)
				if name != "" {
					p.Name = &name
				}
				return &add.Add{App: s.app, Trip: &p, ShowID: io.ShowID, Output: s.format}, nil
			})
		},
	}

	options.AddTripArgs(cmd, o)
	options.AddShowIDArgs(cmd, io)
	parent.AddCommand(cmd)
}
