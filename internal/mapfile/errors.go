package mapfile

import (
	"errors"
	"fmt"
)

// ErrUnknownNewline is returned by ParseNewline for an unrecognized name.
var ErrUnknownNewline = errors.New("unknown newline name")

// FormatError reports a line DecodeStrict could not use.
type FormatError struct {
	Line    int // 1-based
	Text    string
	Message string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: %s: %q", e.Line, e.Message, e.Text)
}
