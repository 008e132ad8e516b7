package entry

import (
	"fmt"
	"strings"
)

// Row is the one line summary of e: mood emoji, mood label and the text with
// its line breaks folded.
func (e *Entry) Row() (string, string, string) {
	g := e.Mood.Glyph()
	notes := ""
	if n := len(e.Boxes()); n > 0 {
		notes = fmt.Sprintf(" (+%d notes)", n)
	}
	return g.Emoji, g.Label, strings.Join(strings.Fields(e.Body), " ") + notes
}

func (e *Entry) String() string {
	emoji, label, text := e.Row()
	return fmt.Sprintf("%s %s  %s", emoji, label, text)
}
