// Package compile typesets the aggregator document into a PDF.
package compile

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/store"
)

// Runner runs name with args inside dir.
type Runner func(ctx context.Context, dir, name string, args ...string) error

type Compile struct {
	Config  store.Config
	Journal *journal.Journal
	Printer *printers.PrettyPrint
	// Open shows the PDF once it is built.
	Open bool
	// Watch rebuilds whenever a document changes, until ctx is done.
	Watch bool
	// Run defaults to executing the command with its output on Log.
	Run Runner
	Log io.Writer
}

func (n *Compile) Do(ctx context.Context) error {
	if n.Journal == nil || n.Config == nil {
		return errors.New("can not compile, no journal")
	}
	if n.Printer == nil {
		n.Printer = &printers.PrettyPrint{}
	}
	if n.Run == nil {
		n.Run = n.execute
	}
	if !n.Journal.Aggregator.Exists() {
		return fmt.Errorf("%s does not exist yet, write an entry or run sync first", n.Journal.Aggregator.Path())
	}

	if err := n.build(ctx); err != nil {
		return err
	}
	if n.Open {
		if err := n.Run(ctx, n.Config.BasePath(), opener(), n.PDF()); err != nil {
			return fmt.Errorf("open %s: %w", n.PDF(), err)
		}
	}
	if !n.Watch {
		return nil
	}

	events, err := store.Watch(ctx, n.Config.BasePath(), n.Config.Extension())
	if err != nil {
		return err
	}
	n.Printer.Faint("Watching %s for changes, interrupt to stop.", n.Config.BasePath())
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if ev.Key != "" {
				n.Printer.Faint("%s changed.", ev.Key)
			}
			if err := n.build(ctx); err != nil {
				if ctx.Err() != nil {
					return nil
				}
				// Keep watching; the next save may fix it.
				n.Printer.Faint("%v", err)
			}
		}
	}
}

// PDF is the path of the typeset document.
func (n *Compile) PDF() string {
	return filepath.Join(n.Config.BasePath(), n.Config.MainName()+".pdf")
}

func (n *Compile) build(ctx context.Context) error {
	main := n.Journal.Aggregator.Key
	runs := n.Config.TypesetRuns()
	for i := 1; i <= runs; i++ {
		n.Printer.Faint("%s %s (%d/%d)", n.Config.Typesetter(), main, i, runs)
		if err := n.Run(ctx, n.Config.BasePath(), n.Config.Typesetter(), "-interaction=nonstopmode", "-halt-on-error", main); err != nil {
			return fmt.Errorf("typeset %s: %w", main, err)
		}
	}
	n.Printer.Success("Built %s", n.PDF())
	return nil
}

func (n *Compile) execute(ctx context.Context, dir, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	out := n.Log
	if out == nil {
		out = io.Discard
	}
	cmd.Stdout = out
	cmd.Stderr = out
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("%s %s: %w", name, strings.Join(args, " "), err)
	}
	return nil
}

func opener() string {
	if v := os.Getenv("DIARY_PDF_VIEWER"); v != "" {
		return v
	}
	switch runtime.GOOS {
	case "darwin":
		return "open"
	case "windows":
		return "explorer"
	default:
		return "xdg-open"
	}
}
