package moods

import (
	"context"

	"tableflip.dev/diary/pkg/printers"
)

// Moods prints the mood legend.
type Moods struct {
	Printer *printers.PrettyPrint
}

func (n *Moods) Do(_ context.Context) error {
	if n.Printer == nil {
		n.Printer = &printers.PrettyPrint{}
	}
	n.Printer.Title("Moods")
	n.Printer.Moods()
	return nil
}
