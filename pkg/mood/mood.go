// Package mood maps what the user says about their day to one of the fixed
// mood symbols printed next to an entry.
package mood

import (
	"strconv"
	"strings"
)

type Mood int

const (
	Amazed Mood = iota + 1
	Relaxed
	Tired
	Confused
	Frustrated
	Focused
	Coding
)

// Fallback is used whenever the input matches nothing.
const Fallback = Tired

type Glyph struct {
	Code     int
	Label    string
	Keywords []string
	// Macro is the markup command defined by the aggregator preamble.
	Macro string
	// Image is the resource name under the emoji directory.
	Image string
	Emoji string
}

var glyphs = []Glyph{
	{Code: 1, Label: "amazed", Keywords: []string{"amazing", "happy", "excited"}, Macro: "emoamazed", Image: "amazed-smiley", Emoji: "😄"},
	{Code: 2, Label: "relaxed", Keywords: []string{"relaxed", "chill"}, Macro: "emobeer", Image: "beer-smiley", Emoji: "🍺"},
	{Code: 3, Label: "tired", Keywords: []string{"tired", "sleepy", "coffee"}, Macro: "emocoffee", Image: "coffee-smiley", Emoji: "☕"},
	{Code: 4, Label: "confused", Keywords: []string{"confused", "unsure"}, Macro: "emoconfused", Image: "confused-smiley", Emoji: "😕"},
	{Code: 5, Label: "frustrated", Keywords: []string{"frustrated", "angry"}, Macro: "emoheadbang", Image: "headbang-smiley", Emoji: "😠"},
	{Code: 6, Label: "focused", Keywords: []string{"focused", "calc"}, Macro: "emoshutcalc", Image: "shutupandcalc", Emoji: "🧮"},
	{Code: 7, Label: "coding", Keywords: []string{"productive", "coding", "code"}, Macro: "emocode", Image: "code-smiley", Emoji: "💻"},
}

// All returns the moods in code order.
func All() []Mood {
	all := make([]Mood, 0, len(glyphs))
	for _, g := range glyphs {
		all = append(all, Mood(g.Code))
	}
	return all
}

func (m Mood) Valid() bool {
	return m >= Amazed && m <= Coding
}

func (m Mood) Glyph() Glyph {
	if !m.Valid() {
		return glyphs[Fallback-1]
	}
	return glyphs[m-1]
}

func (m Mood) String() string {
	return m.Glyph().Label
}

// Resolve picks the mood for a user token. Numeric codes and keywords match
// case-insensitively; failing that, the first keyword found inside the text
// wins. Anything else resolves to Fallback.
func Resolve(input string) Mood {
	in := strings.ToLower(strings.TrimSpace(input))
	if in == "" {
		return Fallback
	}
	if n, err := strconv.Atoi(in); err == nil {
		if m := Mood(n); m.Valid() {
			return m
		}
		return Fallback
	}
	for _, g := range glyphs {
		if in == g.Label {
			return Mood(g.Code)
		}
		for _, k := range g.Keywords {
			if in == k {
				return Mood(g.Code)
			}
		}
	}
	for _, g := range glyphs {
		for _, k := range g.Keywords {
			if strings.Contains(in, k) {
				return Mood(g.Code)
			}
		}
	}
	return Fallback
}

// ForMacro finds the mood whose markup command is macro, with or without the
// leading backslash.
func ForMacro(macro string) (Mood, bool) {
	macro = strings.TrimPrefix(macro, `\`)
	for _, g := range glyphs {
		if g.Macro == macro {
			return Mood(g.Code), true
		}
	}
	return 0, false
}
