package mcp

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/journal"
	"tableflip.dev/diary/pkg/store"
	"tableflip.dev/diary/pkg/timeutil"
)

func newService(t *testing.T) *Service {
	t.Helper()
	cfg := store.StaticConfig{Path: t.TempDir()}
	docs, err := store.Load(cfg)
	require.NoError(t, err)
	svc := NewService(journal.New(cfg, docs))
	svc.Dates = timeutil.Resolver{Now: func() time.Time {
		return time.Date(2024, time.March, 15, 20, 0, 0, 0, time.Local)
	}}
	return svc
}

func TestServiceWriteEntry(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	dto, err := svc.WriteEntry(ctx, WriteEntryOptions{Body: "Fixed the bug", Mood: "7"})
	require.NoError(t, err)
	assert.Equal(t, "March_2024", dto.Month)
	assert.True(t, dto.Created)
	assert.True(t, dto.Referenced)
	assert.Equal(t, "15/03/24", dto.Entry.Date)
	assert.Equal(t, "Friday", dto.Entry.Weekday)
	assert.Equal(t, "coding", dto.Entry.MoodLabel)

	again, err := svc.WriteEntry(ctx, WriteEntryOptions{Date: "15/03/2024", Body: "and another", BoxA: "note"})
	require.NoError(t, err)
	assert.False(t, again.NewDay)
	assert.Equal(t, "tired", again.Entry.MoodLabel)

	day, err := svc.Day(ctx, "2024-03-15")
	require.NoError(t, err)
	require.Len(t, day, 2)
	assert.Equal(t, "Fixed the bug", day[0].Body)
	assert.Equal(t, "note", day[1].BoxA)
}

func TestServiceWriteEntryRejects(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	_, err := svc.WriteEntry(ctx, WriteEntryOptions{Body: "  "})
	assert.Error(t, err)
	_, err = svc.WriteEntry(ctx, WriteEntryOptions{Body: "later", Date: "01/01/25"})
	assert.Error(t, err)
	_, err = svc.WriteEntry(ctx, WriteEntryOptions{Body: "x", Date: "not a date"})
	assert.Error(t, err)

	months, err := svc.ListMonths(ctx)
	require.NoError(t, err)
	assert.Empty(t, months)
}

func TestServiceMonths(t *testing.T) {
	ctx := context.Background()
	svc := newService(t)

	for _, date := range []string{"03/02/24", "14/03/24", "01/03/24"} {
		_, err := svc.WriteEntry(ctx, WriteEntryOptions{Date: date, Body: "entry " + date})
		require.NoError(t, err)
	}

	months, err := svc.ListMonths(ctx)
	require.NoError(t, err)
	require.Len(t, months, 2)
	assert.Equal(t, "February_2024", months[0].Name)
	assert.Equal(t, []int{3}, months[0].Days)
	assert.Equal(t, "./2024/March_2024", months[1].Target)
	assert.Equal(t, []int{1, 14}, months[1].Days)
	assert.True(t, months[1].Referenced)

	text, err := svc.MonthDocument(ctx, "2024", "March")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(text, "% March 2024\n"))

	_, err = svc.MonthDocument(ctx, "2023", "March")
	assert.Error(t, err)
	_, err = svc.MonthDocument(ctx, "2024", "Smarch")
	assert.Error(t, err)

	main, err := svc.MainDocument(ctx)
	require.NoError(t, err)
	assert.Less(t, strings.Index(main, "February_2024"), strings.Index(main, "March_2024"))

	added, err := svc.Sync(ctx)
	require.NoError(t, err)
	assert.Empty(t, added)
}

func TestMoods(t *testing.T) {
	moods := Moods()
	require.Len(t, moods, 7)
	defaults := 0
	for _, m := range moods {
		if m.Default {
			defaults++
			assert.Equal(t, 3, m.Code)
		}
	}
	assert.Equal(t, 1, defaults)
}

func TestRunnerHTTPStopsWithContext(t *testing.T) {
	svc := newService(t)
	ctx, cancel := context.WithCancel(context.Background())
	listening := make(chan net.Addr, 1)
	r := Runner{
		Journal:         svc.Journal,
		Transport:       TransportHTTP,
		HTTPListenAddr:  "127.0.0.1:0",
		OnHTTPListening: func(a net.Addr) { listening <- a },
	}

	done := make(chan error, 1)
	go func() { done <- r.Do(ctx) }()

	select {
	case addr := <-listening:
		assert.NotEmpty(t, addr.String())
	case err := <-done:
		t.Fatalf("runner stopped early: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not start listening")
	}
	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("runner did not stop")
	}
}

func TestRunnerRequiresJournal(t *testing.T) {
	assert.Error(t, Runner{}.Do(context.Background()))
}
