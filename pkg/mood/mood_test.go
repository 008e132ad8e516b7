package mood

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	tests := map[string]struct {
		in   string
		want Mood
	}{
		"code one":         {in: "1", want: Amazed},
		"code seven":       {in: "7", want: Coding},
		"padded code":      {in: "  4 ", want: Confused},
		"keyword":          {in: "tired", want: Tired},
		"keyword coffee":   {in: "coffee", want: Tired},
		"keyword case":     {in: "ANGRY", want: Frustrated},
		"label":            {in: "focused", want: Focused},
		"description":      {in: "Feeling very chill tonight", want: Relaxed},
		"out of range":     {in: "9", want: Fallback},
		"zero":             {in: "0", want: Fallback},
		"negative":         {in: "-2", want: Fallback},
		"unknown keyword":  {in: "banana", want: Fallback},
		"empty":            {in: "", want: Fallback},
		"productive words": {in: "super productive", want: Coding},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.in))
		})
	}
}

func TestFallbackIsTheNeutralMood(t *testing.T) {
	assert.Equal(t, Mood(3), Fallback)
	assert.Equal(t, "coffee-smiley", Fallback.Glyph().Image)
}

func TestTableIsClosed(t *testing.T) {
	all := All()
	assert.Len(t, all, 7)

	images := map[string]bool{}
	for i, m := range all {
		assert.Equal(t, i+1, int(m))
		images[m.Glyph().Image] = true
	}
	for _, want := range []string{"amazed-smiley", "beer-smiley", "coffee-smiley", "confused-smiley", "headbang-smiley", "shutupandcalc", "code-smiley"} {
		assert.True(t, images[want], want)
	}

	assert.False(t, Mood(8).Valid())
	assert.Equal(t, Fallback.Glyph(), Mood(8).Glyph())
}

func TestForMacro(t *testing.T) {
	m, ok := ForMacro(`\emocode`)
	assert.True(t, ok)
	assert.Equal(t, Coding, m)

	m, ok = ForMacro("emoshutcalc")
	assert.True(t, ok)
	assert.Equal(t, Focused, m)

	_, ok = ForMacro("emobanana")
	assert.False(t, ok)
}
