package commands

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandTree(t *testing.T) {
	root := New()
	assert.Equal(t, "diary", root.Name())
	for _, name := range []string{"search", "list", "sync", "compile", "moods", "info", "mcp", "version"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err, name)
		assert.Equal(t, name, cmd.Name())
	}
	for _, flag := range []string{"date", "allow-future", "preview", "plain", "form"} {
		assert.NotNil(t, root.Flags().Lookup(flag), flag)
	}
	cmd, _, err := root.Find([]string{"show"})
	require.NoError(t, err)
	assert.Equal(t, "search", cmd.Name())
}

func TestVersion(t *testing.T) {
	root := New()
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetArgs([]string{"version"})
	require.NoError(t, root.Execute())
	assert.True(t, json.Valid(out.Bytes()), out.String())
	assert.Contains(t, out.String(), "dev")
}

func TestRootRejectsArgs(t *testing.T) {
	root := New()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"unexpected"})
	assert.Error(t, root.Execute())
}
