package options

import (
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/cyberride/pkg/timeutil"
)

// OnOptions
type OnOptions struct {
	OnString string
}

func AddOnArgs(cmd *cobra.Command, o *OnOptions) {
	cmd.Flags().StringVar(&o.OnString, "on", "",
		`Specify a date, example: --on="2020-2-28", --on="2/28" or --on=tomorrow.`)
}

// GetOn returns nil when no date was given.
func (o *OnOptions) GetOn(now time.Time) (*time.Time, error) {
	if o.OnString == "" {
		return nil, nil
	}
	t, err := timeutil.ParseDate(o.OnString, now)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
