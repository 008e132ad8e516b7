package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	plain := false

	cmd := &cobra.Command{
		Use:     "list [month]",
		Aliases: []string{"ls"},
		Short:   "Summarize every entry of a month.",
		Example: `
diary list
diary list 2024-03
diary list March 2024
`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, j, err := openDiary()
			if err != nil {
				return err
			}
			s := list.List{
				Month:   strings.Join(args, " "),
				Journal: j,
				Printer: &printers.PrettyPrint{Plain: plain},
			}
			return s.Do(cmd.Context())
		},
	}

	options.AddPlainArg(cmd, &plain)

	topLevel.AddCommand(cmd)
}
