package latex

import (
	"fmt"
	"strings"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/timeutil"
)

const (
	beginDiary   = `\begin{diary}`
	endDiary     = `\end{diary}`
	separator    = `\sep`
	moodPrefix   = `\mybox{`
	boxOpen      = `\fcolorbox{red}{yellow}{%`
	minipageOpen = `\minipage[t]{`
	minipageEnd  = `\endminipage}`
	indent       = "    "
)

// Fragment collects document lines. Text added with Text is escaped; every
// other method writes markup verbatim.
type Fragment struct {
	lines []string
}

func (f *Fragment) Raw(format string, a ...interface{}) *Fragment {
	f.lines = append(f.lines, fmt.Sprintf(format, a...))
	return f
}

func (f *Fragment) Comment(format string, a ...interface{}) *Fragment {
	return f.Raw("%% "+format, a...)
}

func (f *Fragment) Blank() *Fragment {
	f.lines = append(f.lines, "")
	return f
}

// Text escapes s and adds it line by line with the given prefix. Blank lines
// are kept unless skipBlank is set.
func (f *Fragment) Text(prefix, s string, skipBlank bool) *Fragment {
	for _, line := range strings.Split(Escape(strings.TrimSpace(s)), "\n") {
		line = strings.TrimRight(line, " \t")
		if line == "" {
			if !skipBlank {
				f.lines = append(f.lines, "")
			}
			continue
		}
		f.lines = append(f.lines, prefix+line)
	}
	return f
}

func (f *Fragment) Lines() []string {
	return append([]string(nil), f.lines...)
}

func (f *Fragment) String() string {
	return strings.Join(f.lines, "\n") + "\n"
}

// DaySection renders e as the first entry of its day: header comment, the
// opening of the diary environment, the entry and the closing line.
func DaySection(e *entry.Entry) *Fragment {
	f := &Fragment{}
	f.Comment("%s - %s Notes", timeutil.FormatDate(e.Date), e.Date.Format("2006 January"))
	f.Raw(`%s{%s}{%s}`, beginDiary, e.Date.Weekday(), timeutil.FormatDate(e.Date))
	writeEntry(f, e)
	f.Raw(endDiary)
	return f
}

// Continuation renders e for a day that already has a section. It is placed
// just before that section's closing line.
func Continuation(e *entry.Entry) *Fragment {
	f := &Fragment{}
	f.Blank().Raw(separator).Blank()
	writeEntry(f, e)
	return f
}

func writeEntry(f *Fragment, e *entry.Entry) {
	f.Raw(`%s%s\%s}`, indent, moodPrefix, e.Mood.Glyph().Macro)
	f.Text("", e.Body, false)

	boxes := e.Boxes()
	if len(boxes) == 0 {
		return
	}
	width := "0.98"
	if len(boxes) == 2 {
		width = "0.48"
	}
	f.Blank()
	for i, box := range boxes {
		if i == 0 {
			f.Raw(`\noindent%s`, boxOpen)
		} else {
			f.Raw("%s", boxOpen)
		}
		f.Raw(`%s%s\dimexpr%s\linewidth-2\fboxsep-2\fboxrule\relax}`, indent, minipageOpen, width)
		// Paragraph breaks are not allowed inside the box argument.
		f.Text(indent, box, true)
		if i < len(boxes)-1 {
			f.Raw(`%s%s\hfill`, indent, minipageEnd)
		} else {
			f.Raw(`%s%s`, indent, minipageEnd)
		}
	}
}
