package commands

import (
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/prompt"
	"tableflip.dev/diary/pkg/runner/search"
)

func addSearch(topLevel *cobra.Command) {
	output := &options.OutputOptions{}
	plain := false

	cmd := &cobra.Command{
		Use:     "search [date]",
		Aliases: []string{"show", "get"},
		Short:   "Show the entries written on a day.",
		Example: `
diary search
diary search 15/03/24
diary search 2024-03-15 --json
`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			_, j, err := openDiary()
			if err != nil {
				return output.HandleError(err)
			}
			s := search.Search{
				Date:    strings.Join(args, ""),
				Journal: j,
				Printer: &printers.PrettyPrint{Plain: plain},
				JSON:    output.JSON,
			}
			if len(args) == 0 && !output.JSON {
				s.Asker = prompt.NewConsole()
			}
			err = s.Do(cmd.Context())
			return output.HandleError(err)
		},
	}

	options.AddPlainArg(cmd, &plain)
	options.AddOutputArg(cmd, output)

	topLevel.AddCommand(cmd)
}
