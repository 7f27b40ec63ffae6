package options

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// IDOptions holds the record id a command acts on and whether ids are shown
// in its output.
type IDOptions struct {
	ShowID bool
	ID     string
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each record.")
}

// RequireID accepts exactly one positional id and stores it in o.ID.
func (o *IDOptions) RequireID(noun string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("requires a %s id", noun)
		}
		return o.take(args[0])
	}
}

// OptionalID accepts at most one positional id. Without one o.ID stays empty
// and the command decides what to act on.
func (o *IDOptions) OptionalID(noun string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		switch len(args) {
		case 0:
			return nil
		case 1:
			return o.take(args[0])
		default:
			return fmt.Errorf("requires at most one %s id", noun)
		}
	}
}

func (o *IDOptions) take(arg string) error {
	id := strings.TrimSpace(arg)
	if id == "" {
		return fmt.Errorf("id must not be blank")
	}
	o.ID = id
	return nil
}
