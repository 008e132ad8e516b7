package search

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/entry"
	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/mood"
	"tableflip.dev/diary/pkg/printers"
	"tableflip.dev/diary/pkg/prompt"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/timeutil"
)

func newSearch(t *testing.T) (*Search, *bytes.Buffer) {
	t.Helper()
	cfg := store.StaticConfig{Path: t.TempDir()}
	docs, err := store.Load(cfg)
	require.NoError(t, err)
	j := journal.New(cfg, docs)

	day := time.Date(2024, time.May, 2, 0, 0, 0, 0, time.Local)
	e := entry.New(day, "went for a walk", mood.Relaxed)
	e.BoxA = "bring an umbrella"
	_, err = j.Save(context.Background(), e)
	require.NoError(t, err)
	_, err = j.Save(context.Background(), entry.New(day, "50% done & counting", mood.Coding))
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return &Search{
		Journal: j,
		Dates:   timeutil.Resolver{Now: func() time.Time { return day }},
		Printer: &printers.PrettyPrint{Out: out, Plain: true},
		Out:     out,
	}, out
}

func TestSearchPrintsDay(t *testing.T) {
	s, out := newSearch(t)
	s.Date = "02/05/24"
	require.NoError(t, s.Do(context.Background()))

	assert.Contains(t, out.String(), "Thursday, May 2, 2024")
	assert.Contains(t, out.String(), "went for a walk")
	assert.Contains(t, out.String(), "bring an umbrella")
	assert.Contains(t, out.String(), "50% done & counting")
}

func TestSearchAsksForDate(t *testing.T) {
	s, out := newSearch(t)
	script := &prompt.Script{Answers: []string{""}}
	s.Asker = script
	require.NoError(t, s.Do(context.Background()))
	assert.Len(t, script.Asked, 1)
	assert.Contains(t, out.String(), "went for a walk")
}

func TestSearchJSON(t *testing.T) {
	s, out := newSearch(t)
	s.Date = "2024-05-02"
	s.JSON = true
	require.NoError(t, s.Do(context.Background()))

	var found []*entry.Entry
	require.NoError(t, json.Unmarshal(out.Bytes(), &found))
	require.Len(t, found, 2)
	assert.Equal(t, "went for a walk", found[0].Body)
	assert.Equal(t, mood.Relaxed, found[0].Mood)
	assert.Equal(t, "50% done & counting", found[1].Body)
}

func TestSearchEmptyDay(t *testing.T) {
	s, out := newSearch(t)
	s.Date = "03/05/24"
	require.NoError(t, s.Do(context.Background()))
	assert.Contains(t, out.String(), "No entries for 03/05/24.")

	out.Reset()
	s.Date = "01/01/23"
	s.JSON = true
	require.NoError(t, s.Do(context.Background()))
	assert.Equal(t, "[]\n", out.String())
}

func TestSearchBadDate(t *testing.T) {
	s, _ := newSearch(t)
	s.Date = "someday"
	require.Error(t, s.Do(context.Background()))
}
