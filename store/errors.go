package store

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/confmerge/models"
)

// ErrInvalidShape is matched by every [ShapeValidationError].
var ErrInvalidShape = errors.New("invalid config")

// ShapeValidationError reports the violations found while materialising a
// lookup into a shape.
type ShapeValidationError struct {
	Shape      string
	Path       string
	Violations []models.Violation
}

func (e *ShapeValidationError) Error() string {
	details, err := json.Marshal(e.Violations)
	if err != nil {
		details = []byte(fmt.Sprint(e.Violations))
	}
	return fmt.Sprintf("invalid config: shape %q at %q: %s", e.Shape, e.Path, details)
}

func (e *ShapeValidationError) Unwrap() error {
	return ErrInvalidShape
}
