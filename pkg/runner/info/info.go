package info

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/store"
)

type Info struct {
	Config  store.Config
	Journal *journal.Journal
	Out     io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Out == nil {
		n.Out = color.Output
	}

	if override := os.Getenv("DIARY_CONFIG_PATH"); override != "" {
		_, _ = fmt.Fprintln(n.Out, "DIARY_CONFIG_PATH found on env, using", override)
	} else {
		_, _ = fmt.Fprintln(n.Out, "DIARY_CONFIG_PATH env var not set")
	}

	if n.Config == nil {
		var err error
		n.Config, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	if file := store.ConfigFile(n.Config); file != "" {
		tbl.AddRow("config file:", file)
	}
	tbl.AddRow("path:", n.Config.BasePath())
	tbl.AddRow("extension:", n.Config.Extension())
	tbl.AddRow("main:", n.Config.MainName())
	tbl.AddRow("emoji_dir:", n.Config.EmojiDir())
	tbl.AddRow("typesetter:", fmt.Sprintf("%s (x%d)", n.Config.Typesetter(), n.Config.TypesetRuns()))
	tbl.AddRow("title:", n.Config.Title())
	tbl.AddRow("author:", n.Config.Author())
	_, _ = fmt.Fprintln(n.Out, tbl)

	if n.Journal == nil {
		return fmt.Errorf("failed to open the diary at %s", n.Config.BasePath())
	}

	if n.Journal.Aggregator.Exists() {
		_, _ = fmt.Fprintf(n.Out, "Aggregator: %s\n", n.Journal.Aggregator.Path())
	} else {
		_, _ = fmt.Fprintf(n.Out, "Aggregator: %s (not created yet)\n", n.Journal.Aggregator.Path())
	}

	_, _ = fmt.Fprintln(n.Out, "Months:")
	months := n.Journal.Months(ctx)
	for _, r := range months {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", r)
	}
	if len(months) == 0 {
		_, _ = fmt.Fprintf(n.Out, "  %s\n", "no months")
	}
	return nil
}
