package entry

import (
	"strings"
	"time"

	"tableflip.dev/diary/pkg/errs"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/timeutil"
)

func New(on time.Time, body string, m mood.Mood) *Entry {
	return &Entry{
		Date: timeutil.Day(on),
		Body: body,
		Mood: m,
	}
}

// Entry is one diary submission. Side boxes are optional; an empty box is
// left out when the entry is rendered.
type Entry struct {
	Date time.Time `json:"date"`
	Body string    `json:"body"`
	BoxA string    `json:"boxA,omitempty"`
	BoxB string    `json:"boxB,omitempty"`
	Mood mood.Mood `json:"mood"`
}

// Validate is called before an entry is rendered.
func (e *Entry) Validate() error {
	if strings.TrimSpace(e.Body) == "" {
		return errs.Input("", "entry text is empty", nil)
	}
	if e.Date.IsZero() {
		return errs.Input("", "entry has no date", nil)
	}
	if !e.Mood.Valid() {
		e.Mood = mood.Fallback
	}
	return nil
}

// Boxes returns the non-empty side boxes in order.
func (e *Entry) Boxes() []string {
	boxes := make([]string, 0, 2)
	for _, b := range []string{e.BoxA, e.BoxB} {
		if strings.TrimSpace(b) != "" {
			boxes = append(boxes, strings.TrimSpace(b))
		}
	}
	return boxes
}

func (e *Entry) Title() string {
	return e.Date.Format("Monday, January 2, 2006")
}

func (e *Entry) SameDay(then time.Time) bool {
	y1, m1, d1 := e.Date.Date()
	y2, m2, d2 := then.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func (e *Entry) SameMonth(then time.Time) bool {
	y1, m1, _ := e.Date.Date()
	y2, m2, _ := then.Date()
	return y1 == y2 && m1 == m2
}
