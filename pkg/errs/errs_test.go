package errs

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("save entry: %w", Filesystem("write", "2024/March_2024.tex", os.ErrPermission))

	var fe *FilesystemError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, "2024/March_2024.tex", fe.Path)
	assert.ErrorIs(t, err, os.ErrPermission)

	var ie *InputError
	assert.False(t, errors.As(err, &ie))
}

func TestMessages(t *testing.T) {
	assert.Equal(t, `invalid input "31/02/24": no such day`, Input("31/02/24", "no such day", nil).Error())
	assert.Equal(t, "invalid input: entry text is empty", Input("", "entry text is empty", nil).Error())
	assert.Equal(t, "a.tex:4: unexpected document structure: unclosed diary", ContentFormat("a.tex", 4, "unclosed diary").Error())
	assert.Equal(t, "a.tex: unexpected document structure: no end", ContentFormat("a.tex", 0, "no end").Error())
}
