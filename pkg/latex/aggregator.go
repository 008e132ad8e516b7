package latex

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"tableflip.dev/diary/pkg/errs"
	"tableflip.dev/diary/pkg/mood"
)

const endDocument = `\end{document}`

var includePattern = regexp.MustCompile(`^\\include\{(?:\./)?(\d{4})/([A-Za-z]+)_(\d{4})\}\s*$`)

// Reference names one month document.
type Reference struct {
	Year  int
	Month time.Month
}

func (r Reference) Before(o Reference) bool {
	if r.Year != o.Year {
		return r.Year < o.Year
	}
	return r.Month < o.Month
}

// Name is the month document's file name without extension.
func (r Reference) Name() string {
	return fmt.Sprintf("%s_%d", r.Month, r.Year)
}

// Dir is the year directory holding the document.
func (r Reference) Dir() string {
	return strconv.Itoa(r.Year)
}

// Target is what the aggregator includes.
func (r Reference) Target() string {
	return "./" + r.Dir() + "/" + r.Name()
}

func (r Reference) String() string {
	return fmt.Sprintf("%s %d", r.Month, r.Year)
}

// ParseMonth accepts full English month names and their three letter forms.
func ParseMonth(s string) (time.Month, bool) {
	for m := time.January; m <= time.December; m++ {
		name := m.String()
		if strings.EqualFold(s, name) || strings.EqualFold(s, name[:3]) {
			return m, true
		}
	}
	return 0, false
}

// ParseReference reads a month document name such as "March_2024".
func ParseReference(name string) (Reference, bool) {
	i := strings.LastIndex(name, "_")
	if i < 0 {
		return Reference{}, false
	}
	month, ok := ParseMonth(name[:i])
	if !ok {
		return Reference{}, false
	}
	year, err := strconv.Atoi(name[i+1:])
	if err != nil || len(name[i+1:]) != 4 {
		return Reference{}, false
	}
	return Reference{Year: year, Month: month}, true
}

// Preamble holds what the aggregator is created with.
type Preamble struct {
	Title    string
	Author   string
	EmojiDir string
}

// AggregatorSkeleton is a complete top level document with no months yet.
func AggregatorSkeleton(p Preamble) []byte {
	if p.EmojiDir == "" {
		p.EmojiDir = "Emoji"
	}
	f := &Fragment{}
	f.Raw(`\documentclass[a4paper]{book}`)
	for _, pkg := range []string{"{lipsum}", "{xcolor}", "{framed}", "{datetime}", "[utf8]{inputenc}", "[T1]{fontenc}", "{fourier}", "{marginnote}", "{tikz}", "{hyperref}", "{graphicx}"} {
		f.Raw(`\usepackage%s`, pkg)
	}
	f.Blank()
	f.Raw(`\input{input}`)
	f.Blank()
	for _, m := range mood.All() {
		g := m.Glyph()
		f.Raw(`\newcommand{\%s}{\includegraphics[height=1.8ex]{"./%s/%s"}}`, g.Macro, p.EmojiDir, g.Image)
	}
	f.Raw(`\newcommand{\datestampcust}[3]{\dayofweekname{#1}{#2}{#3} {#1.#2.#3}}`)
	f.Raw(`\newcommand{\sep}{-----------------------------------------------------------}`)
	f.Blank()
	f.Raw(`\title{\Huge %s}`, Escape(p.Title))
	f.Raw(`\author{%s}`, Escape(p.Author))
	f.Raw(`\date{}`)
	f.Blank()
	f.Raw(`\begin{document}`)
	f.Raw(`\maketitle`)
	f.Blank()
	f.Raw(endDocument)
	return []byte(f.String())
}

// AggregatorDocument is the parsed top level document.
type AggregatorDocument struct {
	Path string

	lines []string
	refs  []Reference
	at    []int
	end   int
}

func ParseAggregator(path string, content []byte) (*AggregatorDocument, error) {
	a := &AggregatorDocument{Path: path}
	text := strings.TrimRight(string(content), "\n")
	if text != "" {
		a.lines = strings.Split(text, "\n")
	}
	if err := a.index(); err != nil {
		return nil, err
	}
	return a, nil
}

func (a *AggregatorDocument) index() error {
	a.refs, a.at, a.end = nil, nil, -1
	for i, raw := range a.lines {
		line := strings.TrimSpace(raw)
		if line == endDocument {
			if a.end >= 0 {
				return errs.ContentFormat(a.Path, i+1, "document ends twice")
			}
			a.end = i
			continue
		}
		m := includePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		ref, ok := ParseReference(m[2] + "_" + m[3])
		if !ok || m[1] != m[3] {
			return errs.ContentFormat(a.Path, i+1, fmt.Sprintf("unrecognized month reference %q", line))
		}
		if a.end >= 0 {
			return errs.ContentFormat(a.Path, i+1, "month included after the end of the document")
		}
		a.refs = append(a.refs, ref)
		a.at = append(a.at, i)
	}
	if a.end < 0 {
		return errs.ContentFormat(a.Path, 0, `missing \end{document}`)
	}
	return nil
}

// References lists the included months in document order.
func (a *AggregatorDocument) References() []Reference {
	return append([]Reference(nil), a.refs...)
}

func (a *AggregatorDocument) Has(r Reference) bool {
	for _, ref := range a.refs {
		if ref == r {
			return true
		}
	}
	return false
}

// Add includes r unless it is already there, reporting whether the document
// changed. The new line goes before the first later month, or after the last
// reference, so existing lines never move relative to each other.
func (a *AggregatorDocument) Add(r Reference) (bool, error) {
	if a.Has(r) {
		return false, nil
	}
	line := fmt.Sprintf(`\include{%s}`, r.Target())

	switch {
	case len(a.refs) == 0:
		insert := []string{line, ""}
		if a.end > 0 && strings.TrimSpace(a.lines[a.end-1]) != "" {
			insert = append([]string{""}, insert...)
		}
		a.splice(a.end, insert)
	default:
		at := a.at[len(a.at)-1] + 1
		for i, ref := range a.refs {
			if r.Before(ref) {
				at = a.at[i]
				break
			}
		}
		a.splice(at, []string{line})
	}
	return true, a.index()
}

func (a *AggregatorDocument) splice(at int, lines []string) {
	out := make([]string, 0, len(a.lines)+len(lines))
	out = append(out, a.lines[:at]...)
	out = append(out, lines...)
	out = append(out, a.lines[at:]...)
	a.lines = out
}

func (a *AggregatorDocument) Bytes() []byte {
	return []byte(strings.Join(a.lines, "\n") + "\n")
}
