package commands

import (
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/runner/moods"
)

func addMoods(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "moods",
		Short: "List the moods an entry can carry.",
		Example: `
diary moods
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s := moods.Moods{}
			return s.Do(cmd.Context())
		},
	}

	topLevel.AddCommand(cmd)
}
