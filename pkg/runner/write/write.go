// Package write runs the interactive flow that adds one entry to the diary.
package write

import (
	"context"
	"errors"
	"io"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/errs"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/latex"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/prompt"
	"tableflip.dev/diary/pkg/timeutil"
)

// Write asks for a date, the entry text, two optional side boxes and a mood,
// then saves the entry.
type Write struct {
	Asker   prompt.Asker
	Journal *journal.Journal
	Dates   timeutil.Resolver
	Printer *printers.PrettyPrint

	// Compose replaces the questions about the entry itself, e.g. with a
	// full screen form.
	Compose func(ctx context.Context) (*entry.Entry, error)
	// Date skips the date question when set.
	Date string
	// Preview prints the generated markup before saving.
	Preview bool
	// Attempts bounds re-prompting on invalid input; zero means no limit.
	Attempts int

	saved *journal.Placement
}

// Placement reports where the last Do saved its entry.
func (w *Write) Placement() *journal.Placement {
	return w.saved
}

func (w *Write) Do(ctx context.Context) error {
	if w.Journal == nil {
		return errors.New("can not write, no journal")
	}
	if w.Printer == nil {
		w.Printer = &printers.PrettyPrint{}
	}

	if !w.Journal.Aggregator.Exists() {
		if err := w.createDiary(ctx); err != nil {
			return err
		}
	}

	e, err := w.compose(ctx)
	if err != nil {
		return err
	}

	if w.Preview {
		w.preview(e)
	}

	p, err := w.Journal.Save(ctx, e)
	if p != nil {
		w.saved = p
		w.report(p)
	}
	return err
}

func (w *Write) compose(ctx context.Context) (*entry.Entry, error) {
	if w.Compose != nil {
		return w.Compose(ctx)
	}
	pp := w.Printer

	on, err := w.date()
	if err != nil {
		return nil, err
	}

	body, err := retry(w.Attempts, pp, func() (string, error) {
		text, err := prompt.Multiline(w.Asker, "Diary entry (finish with an empty line):")
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(text) == "" {
			return "", errs.Input("", "entry text is empty", nil)
		}
		return text, nil
	})
	if err != nil {
		return nil, err
	}

	e := entry.New(on, body, mood.Fallback)
	if e.BoxA, err = w.optional("First side box (empty to skip):"); err != nil {
		return nil, err
	}
	if e.BoxB, err = w.optional("Second side box (empty to skip):"); err != nil {
		return nil, err
	}

	pp.NewLine()
	pp.Title("How are you feeling?")
	pp.Moods()
	answer, err := w.optional("Your mood (1-7 or keyword):")
	if err != nil {
		return nil, err
	}
	e.Mood = mood.Resolve(answer)
	return e, nil
}

func (w *Write) date() (time.Time, error) {
	if w.Date != "" {
		return w.Dates.Resolve(w.Date)
	}
	return retry(w.Attempts, w.Printer, func() (time.Time, error) {
		answer, err := w.Asker.Ask("Date of the entry (empty for today, dd/mm/yy):")
		if err != nil {
			return time.Time{}, err
		}
		return w.Dates.Resolve(answer)
	})
}

// optional asks a question whose answer may be empty; end of input counts as
// an empty answer.
func (w *Write) optional(question string) (string, error) {
	answer, err := w.Asker.Ask(question)
	if err != nil && !isEOF(err) {
		return "", err
	}
	return strings.TrimSpace(answer), nil
}

func (w *Write) createDiary(ctx context.Context) error {
	pp := w.Printer
	pp.Title("No existing diary found. Let's create a new one!")
	title, err := w.optional("Title for your diary:")
	if err != nil {
		return err
	}
	author, err := w.optional("Your name (author):")
	if err != nil {
		return err
	}

	refs, err := w.Journal.CreateAggregator(ctx, latex.Preamble{Title: title, Author: author})
	if err != nil {
		return err
	}
	pp.Success("Created %s", w.Journal.Aggregator.Path())
	if len(refs) > 0 {
		pp.Faint("Referenced %d existing month documents.", len(refs))
	}
	pp.Faint("Mood images are expected under %s:", w.Journal.Aggregator.Defaults.EmojiDir)
	for _, m := range mood.All() {
		pp.Faint("  - %s", m.Glyph().Image)
	}
	pp.NewLine()
	return nil
}

func (w *Write) report(p *journal.Placement) {
	pp := w.Printer
	pp.NewLine()
	if p.YearCreated {
		pp.Faint("Started year %d.", p.Ref.Year)
	}
	if p.Created {
		pp.Faint("Started %s.", p.Ref)
	}
	if p.Referenced {
		pp.Faint("Referenced %s from %s.", p.Ref.Name(), w.Journal.Aggregator.Key)
	}
	pp.Success("Saved to %s", p.Path)
}

// retry repeats ask while it fails with an InputError, telling the user why.
func retry[T any](attempts int, pp *printers.PrettyPrint, ask func() (T, error)) (T, error) {
	for i := 1; ; i++ {
		v, err := ask()
		var ie *errs.InputError
		if err == nil || !errors.As(err, &ie) || (attempts > 0 && i >= attempts) {
			return v, err
		}
		pp.Faint("%v, try again.", err)
	}
}

func isEOF(err error) bool {
	return errors.Is(err, io.EOF)
}

// preview shows the markup Save is about to add; a day that already has a
// section only gains a continuation.
func (w *Write) preview(e *entry.Entry) {
	frag := latex.DaySection(e)
	if existing, err := w.Journal.Find(e.Date); err == nil && len(existing) > 0 {
		frag = latex.Continuation(e)
	}
	w.Printer.NewLine()
	w.Printer.Markup(frag.String())
}
