package latex

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/errs"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/timeutil"
)

var beginPattern = regexp.MustCompile(`^\\begin\{diary\}\{([^{}]*)\}\{([^{}]*)\}\s*$`)

// MonthlySkeleton is the content of a month document before its first entry.
func MonthlySkeleton(year int, month time.Month) []byte {
	f := &Fragment{}
	f.Comment("%s %d", month, year)
	f.Raw(`\chapter{%s %d}`, month, year)
	return []byte(f.String())
}

// daySection spans every diary environment of one day. start is the first
// line that belongs to the section (its header comment when present), end is
// the closing line of its last environment.
type daySection struct {
	day    int
	start  int
	end    int
	blocks [][2]int
}

// MonthlyDocument is a parsed month document. Lines outside diary
// environments are kept as they are.
type MonthlyDocument struct {
	Path  string
	Year  int
	Month time.Month

	lines    []string
	sections []daySection
}

// ParseMonthly reads content as the document for year and month. Structure it
// does not recognize is reported as a ContentFormatError naming path.
func ParseMonthly(path string, year int, month time.Month, content []byte) (*MonthlyDocument, error) {
	d := &MonthlyDocument{Path: path, Year: year, Month: month}
	text := strings.TrimRight(string(content), "\n")
	if text != "" {
		d.lines = strings.Split(text, "\n")
	}
	if err := d.index(); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *MonthlyDocument) index() error {
	d.sections = nil

	open := -1
	openDay := 0
	lastEnd := -1
	for i, raw := range d.lines {
		line := strings.TrimSpace(raw)
		switch {
		case strings.HasPrefix(line, beginDiary):
			if open >= 0 {
				return errs.ContentFormat(d.Path, i+1, fmt.Sprintf("diary opened at line %d is not closed", open+1))
			}
			m := beginPattern.FindStringSubmatch(line)
			if m == nil {
				return errs.ContentFormat(d.Path, i+1, "malformed diary header")
			}
			on, err := timeutil.ParseDateIn(m[2], d.Year)
			if err != nil {
				return errs.ContentFormat(d.Path, i+1, fmt.Sprintf("unreadable date %q", m[2]))
			}
			if on.Year() != d.Year || on.Month() != d.Month {
				return errs.ContentFormat(d.Path, i+1, fmt.Sprintf("entry dated %s does not belong to %s %d", m[2], d.Month, d.Year))
			}
			open, openDay = i, on.Day()

		case line == endDiary:
			if open < 0 {
				return errs.ContentFormat(d.Path, i+1, "diary closed but never opened")
			}
			if err := d.addBlock(openDay, open, i, lastEnd); err != nil {
				return err
			}
			open, lastEnd = -1, i
		}
	}
	if open >= 0 {
		return errs.ContentFormat(d.Path, open+1, "diary is never closed")
	}
	return nil
}

func (d *MonthlyDocument) addBlock(day, begin, end, lastEnd int) error {
	start := begin
	if begin > 0 && begin-1 > lastEnd && strings.HasPrefix(strings.TrimSpace(d.lines[begin-1]), "%") {
		start = begin - 1
	}

	if n := len(d.sections); n > 0 {
		last := &d.sections[n-1]
		switch {
		case day == last.day:
			// Older files hold one environment per entry; consecutive ones
			// for the same day form a single section.
			last.end = end
			last.blocks = append(last.blocks, [2]int{begin, end})
			return nil
		case day < last.day:
			return errs.ContentFormat(d.Path, begin+1, fmt.Sprintf("day %d follows day %d", day, last.day))
		}
	}
	d.sections = append(d.sections, daySection{
		day:    day,
		start:  start,
		end:    end,
		blocks: [][2]int{{begin, end}},
	})
	return nil
}

// Days lists the days that have a section, ascending.
func (d *MonthlyDocument) Days() []int {
	days := make([]int, 0, len(d.sections))
	for _, s := range d.sections {
		days = append(days, s.day)
	}
	return days
}

func (d *MonthlyDocument) section(day int) (daySection, bool) {
	for _, s := range d.sections {
		if s.day == day {
			return s, true
		}
	}
	return daySection{}, false
}

func (d *MonthlyDocument) HasDay(day int) bool {
	_, ok := d.section(day)
	return ok
}

// Insert merges e into the document. A day that already has a section gets e
// appended inside it; otherwise a new section is placed before the first
// later day.
func (d *MonthlyDocument) Insert(e *entry.Entry) error {
	if err := e.Validate(); err != nil {
		return err
	}
	if !e.SameMonth(time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.Local)) {
		return fmt.Errorf("entry for %s does not belong in %s %d", timeutil.FormatDate(e.Date), d.Month, d.Year)
	}

	day := e.Date.Day()
	if s, ok := d.section(day); ok {
		d.splice(s.end, Continuation(e).Lines())
		return d.index()
	}

	lines := DaySection(e).Lines()
	for _, s := range d.sections {
		if s.day > day {
			lines = append(lines, "")
			if s.start > 0 && strings.TrimSpace(d.lines[s.start-1]) != "" {
				lines = append([]string{""}, lines...)
			}
			d.splice(s.start, lines)
			return d.index()
		}
	}
	if n := len(d.lines); n > 0 && strings.TrimSpace(d.lines[n-1]) != "" {
		lines = append([]string{""}, lines...)
	}
	d.splice(len(d.lines), lines)
	return d.index()
}

func (d *MonthlyDocument) splice(at int, lines []string) {
	out := make([]string, 0, len(d.lines)+len(lines))
	out = append(out, d.lines[:at]...)
	out = append(out, lines...)
	out = append(out, d.lines[at:]...)
	d.lines = out
}

func (d *MonthlyDocument) Bytes() []byte {
	if len(d.lines) == 0 {
		return nil
	}
	return []byte(strings.Join(d.lines, "\n") + "\n")
}

// Entries reads back the entries written for day, with text unescaped.
func (d *MonthlyDocument) Entries(day int) []*entry.Entry {
	s, ok := d.section(day)
	if !ok {
		return nil
	}
	on := time.Date(d.Year, d.Month, day, 0, 0, 0, 0, time.Local)

	var entries []*entry.Entry
	for _, b := range s.blocks {
		var chunk []string
		for _, raw := range d.lines[b[0]+1 : b[1]] {
			if strings.TrimSpace(raw) == separator {
				entries = append(entries, readEntry(on, chunk))
				chunk = nil
				continue
			}
			chunk = append(chunk, raw)
		}
		entries = append(entries, readEntry(on, chunk))
	}
	return entries
}

func readEntry(on time.Time, lines []string) *entry.Entry {
	e := &entry.Entry{Date: on, Mood: mood.Fallback}

	var (
		body, box []string
		boxes     []string
		inBox     bool
		boxed     bool
		moodRead  bool
	)
	for _, raw := range lines {
		line := strings.TrimSpace(raw)
		switch {
		case !moodRead && strings.HasPrefix(line, moodPrefix):
			if m, ok := mood.ForMacro(strings.TrimSuffix(strings.TrimPrefix(line, moodPrefix), "}")); ok {
				e.Mood = m
			}
			moodRead = true
		case strings.HasSuffix(line, boxOpen):
			boxed = true
		case strings.HasPrefix(line, minipageOpen):
			inBox, box = true, nil
		case strings.HasPrefix(line, minipageEnd):
			boxes = append(boxes, Unescape(strings.Join(box, "\n")))
			inBox = false
		case inBox:
			box = append(box, line)
		case !boxed:
			body = append(body, strings.TrimRight(raw, " \t"))
		}
	}

	e.Body = strings.TrimSpace(Unescape(strings.Join(body, "\n")))
	if len(boxes) > 0 {
		e.BoxA = boxes[0]
	}
	if len(boxes) > 1 {
		e.BoxB = boxes[1]
	}
	return e
}
