package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/errs"
)

func TestDocumentsReadWrite(t *testing.T) {
	base := t.TempDir()
	docs, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)

	assert.False(t, docs.Has("2024/March_2024.tex"))
	assert.False(t, docs.HasDir("2024"))

	require.NoError(t, docs.Write("2024/March_2024.tex", []byte("march\n")))
	require.NoError(t, docs.Write("MainFile.tex", []byte("main\n")))

	assert.True(t, docs.Has("2024/March_2024.tex"))
	assert.True(t, docs.HasDir("2024"))

	onDisk, err := os.ReadFile(filepath.Join(base, "2024", "March_2024.tex"))
	require.NoError(t, err)
	assert.Equal(t, "march\n", string(onDisk))

	got, err := docs.Read("MainFile.tex")
	require.NoError(t, err)
	assert.Equal(t, "main\n", string(got))

	assert.Equal(t, filepath.Join(base, "2024", "March_2024.tex"), docs.Path("2024/March_2024.tex"))
	assert.Equal(t, []string{"2024/March_2024.tex", "MainFile.tex"}, docs.Keys(context.Background()))
}

func TestDocumentsReadMissing(t *testing.T) {
	docs, err := Load(StaticConfig{Path: t.TempDir()})
	require.NoError(t, err)

	_, err = docs.Read("2030/May_2030.tex")
	require.Error(t, err)
	var fe *errs.FilesystemError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, docs.Path("2030/May_2030.tex"), fe.Path)
}

func TestDocumentsKeysSkipTempDir(t *testing.T) {
	base := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(base, tempDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(base, tempDir, "partial"), []byte("x"), 0o644))

	docs, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)
	require.NoError(t, docs.Write("2023/June_2023.tex", []byte("june\n")))

	assert.Equal(t, []string{"2023/June_2023.tex"}, docs.Keys(context.Background()))
}

func TestKeyTransformsRoundTrip(t *testing.T) {
	for _, key := range []string{"MainFile.tex", "2024/March_2024.tex", "Emoji/code-smiley.png"} {
		assert.Equal(t, key, pathToKeyTransform(keyToPathTransform(key)))
	}
}

func TestDocumentsReadSeesOutsideEdits(t *testing.T) {
	base := t.TempDir()
	docs, err := Load(StaticConfig{Path: base})
	require.NoError(t, err)

	require.NoError(t, docs.Write("2024/March_2024.tex", []byte("first\n")))
	got, err := docs.Read("2024/March_2024.tex")
	require.NoError(t, err)
	assert.Equal(t, "first\n", string(got))

	require.NoError(t, os.WriteFile(filepath.Join(base, "2024", "March_2024.tex"), []byte("first, edited\n"), 0o644))
	got, err = docs.Read("2024/March_2024.tex")
	require.NoError(t, err)
	assert.Equal(t, "first, edited\n", string(got))
}
