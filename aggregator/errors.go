package aggregator

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidSource is matched by every [SourceValidationError].
	ErrInvalidSource = errors.New("invalid config source")
	// ErrLoadSource is returned when a source cannot be read or parsed.
	ErrLoadSource = errors.New("error loading config source")
)

// SourceValidationError reports the source whose validator rejected it.
type SourceValidationError struct {
	Source string
}

func (e *SourceValidationError) Error() string {
	return fmt.Sprintf("invalid config source: %s", e.Source)
}

func (e *SourceValidationError) Unwrap() error {
	return ErrInvalidSource
}
