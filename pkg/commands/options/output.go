package options

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/diary/pkg/errs"
)

// OutputOptions
type OutputOptions struct {
	JSON bool
	// Out defaults to color.Output.
	Out io.Writer
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().BoolVar(&po.JSON, "json", false,
		"Output as JSON.")
}

// HandleError prints err as a JSON object when JSON output was asked for,
// naming the kind of failure so scripts can tell bad input from a broken
// document.
func (o *OutputOptions) HandleError(err error) error {
	if !o.JSON || err == nil {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
		"kind":  Kind(err),
	}
	b, merr := json.Marshal(out)
	if merr != nil {
		return merr
	}
	w := o.Out
	if w == nil {
		w = color.Output
	}
	_, _ = fmt.Fprintln(w, string(b))
	return nil
}

// Kind classifies err by the diary error it wraps.
func Kind(err error) string {
	var (
		ie *errs.InputError
		ce *errs.ContentFormatError
		fe *errs.FilesystemError
	)
	switch {
	case errors.As(err, &ie):
		return "input"
	case errors.As(err, &ce):
		return "content_format"
	case errors.As(err, &fe):
		return "filesystem"
	default:
		return "other"
	}
}
