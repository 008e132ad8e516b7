package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestWatchEmitsDocumentChanges(t *testing.T) {
	base := t.TempDir()
	docs, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ch, err := Watch(ctx, base, "tex")
	require.NoError(t, err)

	// Allow watcher goroutine to subscribe to directories before writing.
	time.Sleep(50 * time.Millisecond)

	require.NoError(t, docs.Write("MainFile.tex", []byte("main\n")))

	deadline := time.After(2 * time.Second)
	for {
		select {
		case evt, ok := <-ch:
			require.True(t, ok, "watch channel closed early")
			if evt.Key == "MainFile.tex" {
				return
			}
		case <-deadline:
			t.Fatal("timed out waiting for document change event")
		}
	}
}

func TestWatchClosesOnCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	ch, err := Watch(ctx, t.TempDir(), "tex")
	require.NoError(t, err)
	cancel()

	select {
	case _, ok := <-ch:
		if ok {
			// A pending event may still drain first.
			for range ch {
			}
		}
	case <-time.After(2 * time.Second):
		t.Fatal("watch channel not closed after cancel")
	}
}

func TestKeyForPath(t *testing.T) {
	require.Equal(t, "2024/March_2024.tex", keyForPath("/d", "/d/2024/March_2024.tex"))
	require.Equal(t, "", keyForPath("/d", "/d"))
	require.Equal(t, "", keyForPath("/d", "/elsewhere/x.tex"))
	require.Equal(t, "", keyForPath("/d", "/d/.diary-tmp/123"))
}
