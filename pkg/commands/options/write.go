package options

import "github.com/spf13/cobra"

// WriteOptions
type WriteOptions struct {
	Preview bool
	Plain   bool
	Form    bool
}

func AddWriteArgs(cmd *cobra.Command, o *WriteOptions) {
	cmd.Flags().BoolVar(&o.Preview, "preview", false,
		"Show the generated markup before saving.")
	cmd.Flags().BoolVar(&o.Form, "form", false,
		"Compose the entry in a full screen form.")
	AddPlainArg(cmd, &o.Plain)
}

func AddPlainArg(cmd *cobra.Command, plain *bool) {
	cmd.Flags().BoolVar(plain, "plain", false,
		"Print without colors or markdown rendering.")
}
