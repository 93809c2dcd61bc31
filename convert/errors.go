package convert

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned before any traversal starts when the input text
// is empty after trimming. It is a validation failure, not a conversion one.
var ErrEmptyInput = errors.New("empty input text")

// ConversionError wraps any failure surfaced during traversal or style
// resolution. A conversion is all-or-nothing: when this error is returned no
// partial document model is handed out.
type ConversionError struct {
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("conversion failed: %v", e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
