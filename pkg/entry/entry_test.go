package entry

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/errs"
	"tableflip.dev/diary/pkg/mood"
)

func TestNewNormalizesDate(t *testing.T) {
	e := New(time.Date(2024, time.March, 15, 18, 4, 5, 0, time.Local), "Fixed the bug", mood.Coding)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), e.Date)
	assert.Equal(t, "Friday, March 15, 2024", e.Title())
	require.NoError(t, e.Validate())
}

func TestValidateRejectsEmptyBody(t *testing.T) {
	e := New(time.Now(), "  \n ", mood.Coding)
	err := e.Validate()
	require.Error(t, err)
	var ie *errs.InputError
	assert.True(t, errors.As(err, &ie))
}

func TestValidateFallsBackOnUnknownMood(t *testing.T) {
	e := New(time.Now(), "hello", mood.Mood(42))
	require.NoError(t, e.Validate())
	assert.Equal(t, mood.Fallback, e.Mood)
}

func TestBoxes(t *testing.T) {
	e := New(time.Now(), "body", mood.Amazed)
	assert.Empty(t, e.Boxes())

	e.BoxB = " second "
	assert.Equal(t, []string{"second"}, e.Boxes())

	e.BoxA = "first"
	assert.Equal(t, []string{"first", "second"}, e.Boxes())
}

func TestSameDayAndMonth(t *testing.T) {
	e := New(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), "body", mood.Amazed)
	assert.True(t, e.SameDay(time.Date(2024, time.March, 15, 23, 0, 0, 0, time.Local)))
	assert.False(t, e.SameDay(time.Date(2024, time.March, 16, 0, 0, 0, 0, time.Local)))
	assert.True(t, e.SameMonth(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.Local)))
	assert.False(t, e.SameMonth(time.Date(2023, time.March, 15, 0, 0, 0, 0, time.Local)))
}

func TestRow(t *testing.T) {
	e := New(time.Date(2024, time.March, 15, 0, 0, 0, 0, time.Local), "long day\n  at the   desk", mood.Focused)
	emoji, label, text := e.Row()
	g := mood.Focused.Glyph()
	assert.Equal(t, g.Emoji, emoji)
	assert.Equal(t, g.Label, label)
	assert.Equal(t, "long day at the desk", text)

	e.BoxA = "todo"
	e.BoxB = "done"
	_, _, text = e.Row()
	assert.Equal(t, "long day at the desk (+2 notes)", text)
	assert.Equal(t, g.Emoji+" "+g.Label+"  long day at the desk (+2 notes)", e.String())
}
