package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/timeutil"
)

// DateOptions
type DateOptions struct {
	Date        string
	AllowFuture bool
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions) {
	cmd.Flags().StringVar(&o.Date, "date", "",
		`Date of the entry, example: --date="15/03/24" or --date="2024-03-15".`)
	cmd.Flags().BoolVar(&o.AllowFuture, "allow-future", false,
		"Accept dates after today.")
}

func (o *DateOptions) Resolver() timeutil.Resolver {
	return timeutil.Resolver{AllowFuture: o.AllowFuture}
}
