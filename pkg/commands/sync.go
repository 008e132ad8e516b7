package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/runner/index"
)

func addSync(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "sync",
		Short: "Reference every month document on disk from the main document.",
		Example: `
diary sync
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, j, err := openDiary()
			if err != nil {
				return err
			}
			s := index.Index{Journal: j}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
