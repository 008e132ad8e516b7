package printers

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
)

const width = 80

type PrettyPrint struct {
	Out io.Writer
	// Plain skips markdown rendering.
	Plain bool
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) Faint(format string, a ...interface{}) {
	f := color.New(color.Faint, color.Italic)
	_, _ = f.Fprintf(pp.out(), format+"\n", a...)
}

func (pp *PrettyPrint) Success(format string, a ...interface{}) {
	g := color.New(color.FgGreen)
	_, _ = g.Fprintf(pp.out(), format+"\n", a...)
}

// Markup prints generated document text, dimmed.
func (pp *PrettyPrint) Markup(text string) {
	y := color.New(color.FgHiYellow, color.Faint)
	_, _ = y.Fprint(pp.out(), text)
}

// Moods prints the mood legend.
func (pp *PrettyPrint) Moods() {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.AddRow(bold.Sprint("Code"), bold.Sprint("Mood"), bold.Sprint("Keywords"), bold.Sprint("Image"))
	for _, m := range mood.All() {
		g := m.Glyph()
		label := g.Emoji + " " + g.Label
		if m == mood.Fallback {
			label += " (default)"
		}
		tbl.AddRow(g.Code, label, strings.Join(g.Keywords, ", "), g.Image)
	}
	tbl.RightAlign(0)

	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Month prints one row per entry, marking the entries written on today.
func (pp *PrettyPrint) Month(title string, today time.Time, entries ...*entry.Entry) {
	pp.Title(title)
	if len(entries) == 0 {
		pp.Faint(" none")
		return
	}

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.Wrap = true
	for _, e := range entries {
		day := e.Date.Format("Mon 02")
		if e.SameDay(today) {
			day += "*"
			if !pp.Plain {
				day = color.New(color.Bold).Sprint(day)
			}
		}
		emoji, label, text := e.Row()
		tbl.AddRow(day, emoji, label, text)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Day prints every entry of one day.
func (pp *PrettyPrint) Day(entries ...*entry.Entry) error {
	if len(entries) == 0 {
		pp.Faint(" none")
		return nil
	}
	if pp.Plain {
		pp.plain(entries)
		return nil
	}

	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(width))
	if err != nil {
		return err
	}
	rendered, err := r.Render(Markdown(entries...))
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(pp.out(), rendered)
	return nil
}

func (pp *PrettyPrint) plain(entries []*entry.Entry) {
	pp.Title(entries[0].Title())
	for i, e := range entries {
		g := e.Mood.Glyph()
		if len(entries) > 1 {
			pp.Faint("Entry #%d", i+1)
		}
		_, _ = fmt.Fprintf(pp.out(), "Mood: %s %s\n\n", g.Emoji, g.Label)
		_, _ = fmt.Fprintln(pp.out(), wordwrap.String(e.Body, width))
		for j, box := range e.Boxes() {
			_, _ = fmt.Fprintf(pp.out(), "\nNote %d:\n%s\n", j+1, wordwrap.String(box, width))
		}
		pp.NewLine()
	}
}

// Markdown renders the entries of one day as a markdown document.
func Markdown(entries ...*entry.Entry) string {
	if len(entries) == 0 {
		return ""
	}
	b := &strings.Builder{}
	fmt.Fprintf(b, "# %s\n\n", entries[0].Title())
	for i, e := range entries {
		g := e.Mood.Glyph()
		if len(entries) > 1 {
			fmt.Fprintf(b, "## Entry %d\n\n", i+1)
		}
		fmt.Fprintf(b, "**Mood:** %s %s\n\n", g.Emoji, g.Label)
		fmt.Fprintf(b, "%s\n\n", e.Body)
		for j, box := range e.Boxes() {
			fmt.Fprintf(b, "> **Note %d:** %s\n\n", j+1, strings.ReplaceAll(box, "\n", " "))
		}
		if i < len(entries)-1 {
			b.WriteString("---\n\n")
		}
	}
	return b.String()
}
