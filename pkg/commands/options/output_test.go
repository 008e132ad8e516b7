package options

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tableflip.dev/diary/pkg/errs"
)

func TestHandleErrorJSON(t *testing.T) {
	out := &bytes.Buffer{}
	o := &OutputOptions{JSON: true, Out: out}

	err := fmt.Errorf("save: %w", errs.ContentFormat("2024/March_2024.tex", 3, "nested diary environment"))
	require.NoError(t, o.HandleError(err))

	var got map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "content_format", got["kind"])
	assert.Contains(t, got["error"], "nested diary environment")
}

func TestHandleErrorPassesThrough(t *testing.T) {
	o := &OutputOptions{}
	err := errors.New("boom")
	assert.Equal(t, err, o.HandleError(err))
	assert.NoError(t, (&OutputOptions{JSON: true}).HandleError(nil))
}

func TestKind(t *testing.T) {
	assert.Equal(t, "input", Kind(errs.Input("x", "bad", nil)))
	assert.Equal(t, "filesystem", Kind(errs.Filesystem("read", "/tmp/x", errors.New("denied"))))
	assert.Equal(t, "other", Kind(errors.New("x")))
}
