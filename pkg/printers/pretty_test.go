package printers

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/mood"
)

func day() []*entry.Entry {
	on := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local)
	first := entry.New(on, "Fixed the bug", mood.Coding)
	first.BoxA = "root cause: off by one"
	second := entry.New(on, "Went home", mood.Relaxed)
	return []*entry.Entry{first, second}
}

func TestMarkdown(t *testing.T) {
	md := Markdown(day()...)
	assert.True(t, strings.HasPrefix(md, "# Friday, March 15, 2024\n\n## Entry 1\n\n**Mood:** 💻 coding\n\nFixed the bug\n\n"))
	assert.Contains(t, md, "> **Note 1:** root cause: off by one\n\n---\n\n## Entry 2")
	assert.Empty(t, Markdown())
}

func TestPlainDay(t *testing.T) {
	out := &bytes.Buffer{}
	pp := PrettyPrint{Out: out, Plain: true}
	require.NoError(t, pp.Day(day()...))

	text := out.String()
	assert.Contains(t, text, "Friday, March 15, 2024")
	assert.Contains(t, text, "Mood: 💻 coding")
	assert.Contains(t, text, "Note 1:\nroot cause: off by one")
	assert.Contains(t, text, "Went home")
}

func TestMoodsLegend(t *testing.T) {
	out := &bytes.Buffer{}
	pp := PrettyPrint{Out: out}
	pp.Moods()

	text := out.String()
	assert.Contains(t, text, "tired (default)")
	assert.Contains(t, text, "shutupandcalc")
	assert.Contains(t, text, "productive, coding, code")
}
