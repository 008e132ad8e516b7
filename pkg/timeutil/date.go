package timeutil

import (
	"strings"
	"time"

	"tableflip.dev/diary/pkg/errs"
)

// DateLayout is how entry dates are written in documents and asked for.
const DateLayout = "02/01/06"

var (
	inputLayouts = []string{
		"2/1/06",
		"2/1/2006",
		"2006-1-2",
	}
	todayWords = map[string]bool{
		"":      true,
		"today": true,
		"t":     true,
		"y":     true,
		"yes":   true,
	}
)

// Resolver turns what the user typed at the date prompt into a calendar day.
type Resolver struct {
	// Now defaults to time.Now.
	Now func() time.Time
	// AllowFuture accepts dates after today.
	AllowFuture bool
}

func (r Resolver) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

// Resolve returns the day at local midnight. Empty input means today.
func (r Resolver) Resolve(input string) (time.Time, error) {
	in := strings.TrimSpace(input)
	today := Day(r.now())
	if todayWords[strings.ToLower(in)] {
		return today, nil
	}

	var (
		parsed time.Time
		err    error
	)
	for _, layout := range inputLayouts {
		parsed, err = time.Parse(layout, in)
		if err == nil {
			break
		}
	}
	if err != nil {
		return time.Time{}, errs.Input(in, "expected dd/mm/yy, dd/mm/yyyy or yyyy-mm-dd", err)
	}

	day := Day(parsed)
	if !r.AllowFuture && day.After(today) {
		return time.Time{}, errs.Input(in, "date is in the future", nil)
	}
	return day, nil
}

// Day drops the clock part of t, keeping its calendar date in local time.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

// FormatDate renders t the way entry headers carry it.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ParseDate reads a date written by FormatDate.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, err
	}
	return Day(t), nil
}

// ParseDateIn reads a date written by FormatDate inside the document for
// year. A two digit year matching year takes its century.
func ParseDateIn(s string, year int) (time.Time, error) {
	t, err := ParseDate(s)
	if err != nil {
		return time.Time{}, err
	}
	if t.Year() != year && t.Year()%100 == year%100 {
		t = time.Date(year, t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
	}
	return t, nil
}
