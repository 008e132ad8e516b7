package search

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/prompt"
	"tableflip.dev/diary/pkg/timeutil"
)

// Search shows the entries written on one day.
type Search struct {
	// Date as typed by the user; asked for when empty and Asker is set.
	Date    string
	Asker   prompt.Asker
	Journal *journal.Journal
	Dates   timeutil.Resolver
	Printer *printers.PrettyPrint
	JSON    bool
	Out     io.Writer
}

func (n *Search) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not search, no journal")
	}
	if n.Printer == nil {
		n.Printer = &printers.PrettyPrint{Out: n.Out}
	}
	if n.Out == nil {
		n.Out = color.Output
	}

	input := n.Date
	if input == "" && n.Asker != nil {
		var err error
		if input, err = n.Asker.Ask("Date to look up (empty for today, dd/mm/yy):"); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	}
	// Looking up a day ahead is harmless.
	dates := n.Dates
	dates.AllowFuture = true
	on, err := dates.Resolve(input)
	if err != nil {
		return err
	}

	found, err := n.Journal.Find(on)
	if err != nil {
		return err
	}

	if n.JSON {
		if found == nil {
			found = []*entry.Entry{}
		}
		b, err := json.Marshal(found)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(n.Out, string(b))
		return nil
	}

	if len(found) == 0 {
		n.Printer.Faint("No entries for %s.", timeutil.FormatDate(on))
		return nil
	}
	return n.Printer.Day(found...)
}
