package options

import "github.com/spf13/cobra"

// CompileOptions
type CompileOptions struct {
	Open    bool
	Watch   bool
	Verbose bool
}

func AddCompileArgs(cmd *cobra.Command, o *CompileOptions) {
	cmd.Flags().BoolVar(&o.Open, "open", false,
		"Open the PDF once it is built.")
	cmd.Flags().BoolVarP(&o.Watch, "watch", "w", false,
		"Rebuild whenever a document in the diary changes.")
	cmd.Flags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Show the typesetter output.")
}
