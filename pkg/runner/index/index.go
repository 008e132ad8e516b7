package index

import (
	"context"
	"errors"

	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/printers"
)

// Index references every month document on disk from the aggregator,
// creating the aggregator when it is missing.
type Index struct {
	Journal *journal.Journal
	Printer *printers.PrettyPrint
}

func (n *Index) Do(ctx context.Context) error {
	if n.Journal == nil {
		return errors.New("can not sync, no journal")
	}
	if n.Printer == nil {
		n.Printer = &printers.PrettyPrint{}
	}
	pp := n.Printer

	existed := n.Journal.Aggregator.Exists()
	added, err := n.Journal.Sync(ctx)
	if err != nil {
		return err
	}
	if !existed {
		pp.Success("Created %s", n.Journal.Aggregator.Path())
	}
	if len(added) == 0 {
		pp.Faint("%s already references every month.", n.Journal.Aggregator.Key)
		return nil
	}
	for _, r := range added {
		pp.Faint("  + %s", r.Target())
	}
	pp.Success("Referenced %d month(s).", len(added))
	return nil
}
