package list

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/errs"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/latex"
	"tableflip.dev/diary/pkg/printers"
)

var monthLayouts = []string{
	"2006-01",
	"2006-1",
	"1/2006",
	"1/06",
	"January 2006",
	"Jan 2006",
}

// List prints a summary of every entry of one month.
type List struct {
	// Month as typed by the user; empty means the current month.
	Month   string
	Journal *journal.Journal
	Printer *printers.PrettyPrint
	// Now defaults to time.Now.
	Now func() time.Time
}

func (n *List) Do(_ context.Context) error {
	if n.Journal == nil {
		return errors.New("can not list, no journal")
	}
	if n.Printer == nil {
		n.Printer = &printers.PrettyPrint{}
	}
	if n.Now == nil {
		n.Now = time.Now
	}

	ref, err := ParseMonth(n.Month, n.Now())
	if err != nil {
		return err
	}
	doc, err := n.Journal.Month(ref)
	if err != nil {
		return err
	}

	var all []*entry.Entry
	if doc != nil {
		for _, day := range doc.Days() {
			all = append(all, doc.Entries(day)...)
		}
	}
	n.Printer.Month(ref.String(), n.Now(), all...)
	return nil
}

// ParseMonth reads a month such as "2024-03", "03/2024" or "March 2024".
// Empty input is the month of now.
func ParseMonth(input string, now time.Time) (latex.Reference, error) {
	in := strings.TrimSpace(input)
	if in == "" {
		return journal.ReferenceFor(now), nil
	}
	if ref, ok := latex.ParseReference(strings.ReplaceAll(in, " ", "_")); ok {
		return ref, nil
	}
	for _, layout := range monthLayouts {
		if t, err := time.Parse(layout, in); err == nil {
			return journal.ReferenceFor(t), nil
		}
	}
	return latex.Reference{}, errs.Input(in, fmt.Sprintf("expected a month such as %s", now.Format("2006-01")), nil)
}
