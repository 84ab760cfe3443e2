package store

import (
	"context"

	"github.com/MKhiriev/confmerge/models"
)

// Getter looks a path up, optionally materialising the value into shape.
//
// An empty path addresses the whole configuration; a nil shape returns the
// raw value.
type Getter interface {
	Get(ctx context.Context, path string, shape *models.Shape) (any, error)
}
