package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	base "github.com/n3wscott/cli-base/pkg/commands/options"

	"tableflip.dev/diary/pkg/commands/options"
	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/prompt"
	"tableflip.dev/diary/pkg/runner/write"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/tui/form"
)

func New() *cobra.Command {
	do := &options.DateOptions{}
	wo := &options.WriteOptions{}

	cmd := &cobra.Command{
		Use:   "diary",
		Short: base.Wrap80("Keep a personal diary as LaTeX documents, one per month."),
		Long: base.Wrap80("Without a sub command, diary asks for the date, the entry, " +
			"up to two side notes and your mood, then files the entry in the month " +
			"document and keeps the main document referencing every month."),
		Example: `
diary
diary --date=14/03/24 --preview
diary --form
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			_, j, err := openDiary()
			if err != nil {
				return err
			}
			ctx, cancel := signalContext()
			defer cancel()

			console := prompt.NewConsole()
			s := write.Write{
				Asker:   console,
				Journal: j,
				Dates:   do.Resolver(),
				Printer: &printers.PrettyPrint{Plain: wo.Plain},
				Date:    do.Date,
				Preview: wo.Preview,
			}
			if console.Quiet {
				// Piped input can not be corrected interactively.
				s.Attempts = 1
			}
			if wo.Form {
				if console.Quiet {
					return errors.New("--form needs an interactive terminal")
				}
				f := form.New(s.Dates)
				f.SetDate(do.Date)
				s.Compose = func(context.Context) (*entry.Entry, error) {
					return form.Run(f)
				}
			}
			return s.Do(ctx)
		},
	}

	options.AddDateArgs(cmd, do)
	options.AddWriteArgs(cmd, wo)

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addSearch(topLevel)
	addList(topLevel)
	addSync(topLevel)
	addCompile(topLevel)
	addMoods(topLevel)
	addInfo(topLevel)
	addMCP(topLevel)
	addVersion(topLevel)
}

// openDiary loads the config and the diary it points at.
func openDiary() (store.Config, *journal.Journal, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	docs, err := store.Load(cfg)
	if err != nil {
		return cfg, nil, err
	}
	return cfg, journal.New(cfg, docs), nil
}

func signalContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt)
}

func init() {
	if os.Getenv("NO_COLOR") != "" {
		color.NoColor = true
	}
}
