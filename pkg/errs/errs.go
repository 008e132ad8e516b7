// Package errs holds the error kinds a diary run can end with.
package errs

import (
	"fmt"
)

// InputError reports user input that could not be understood. Callers in the
// interactive flow re-prompt on it.
type InputError struct {
	Input  string
	Reason string
	Err    error
}

func Input(input, reason string, err error) error {
	return &InputError{Input: input, Reason: reason, Err: err}
}

func (e *InputError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("invalid input: %s", e.Reason)
	}
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// ContentFormatError reports an existing document whose structure does not
// match what the diary writes. The document is never modified when this is
// returned.
type ContentFormatError struct {
	Path   string
	Line   int
	Reason string
}

func ContentFormat(path string, line int, reason string) error {
	return &ContentFormatError{Path: path, Line: line, Reason: reason}
}

func (e *ContentFormatError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: unexpected document structure: %s", e.Path, e.Line, e.Reason)
	}
	return fmt.Sprintf("%s: unexpected document structure: %s", e.Path, e.Reason)
}

// FilesystemError wraps a failed create, read or write of Path.
type FilesystemError struct {
	Op   string
	Path string
	Err  error
}

func Filesystem(op, path string, err error) error {
	return &FilesystemError{Op: op, Path: path, Err: err}
}

func (e *FilesystemError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FilesystemError) Unwrap() error {
	return e.Err
}
