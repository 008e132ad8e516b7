package commands

import (
	"os"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/runner/compile"
)

func addCompile(topLevel *cobra.Command) {
	co := &options.CompileOptions{}

	cmd := &cobra.Command{
		Use:   "compile",
		Short: "Typeset the main document into a PDF.",
		Example: `
diary compile
diary compile --open
diary compile --watch
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, j, err := openDiary()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			s := compile.Compile{
				Config:  cfg,
				Journal: j,
				Open:    co.Open,
				Watch:   co.Watch,
			}
			if co.Verbose {
				s.Log = os.Stderr
			}
			return s.Do(ctx)
		},
	}

	options.AddCompileArgs(cmd, co)

	topLevel.AddCommand(cmd)
}
