package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cast"

	"github.com/MKhiriev/confmerge/models"
)

// ErrUnexpectedType is returned by the typed helpers when the value found
// cannot be presented as the requested type.
var ErrUnexpectedType = errors.New("unexpected config value type")

// GetAs looks path up materialised into target and returns the instance
// as *T. It returns nil, nil when the path does not exist.
func GetAs[T any](ctx context.Context, g Getter, path string, target *models.Shape) (*T, error) {
	value, err := g.Get(ctx, path, target)
	if err != nil || value == nil {
		return nil, err
	}

	typed, ok := value.(*T)
	if !ok {
		return nil, fmt.Errorf("%w: %q holds %T, want %T", ErrUnexpectedType, path, value, typed)
	}
	return typed, nil
}

// GetString returns the value at path as a string; "" when absent.
func GetString(ctx context.Context, g Getter, path string) (string, error) {
	return scalar(ctx, g, path, cast.ToStringE)
}

// GetInt returns the value at path as an int; 0 when absent.
func GetInt(ctx context.Context, g Getter, path string) (int, error) {
	return scalar(ctx, g, path, cast.ToIntE)
}

// GetBool returns the value at path as a bool; false when absent.
func GetBool(ctx context.Context, g Getter, path string) (bool, error) {
	return scalar(ctx, g, path, cast.ToBoolE)
}

// GetDuration returns the value at path as a time.Duration; 0 when absent.
func GetDuration(ctx context.Context, g Getter, path string) (time.Duration, error) {
	return scalar(ctx, g, path, cast.ToDurationE)
}

func scalar[T any](ctx context.Context, g Getter, path string, convert func(any) (T, error)) (T, error) {
	var zero T

	value, err := g.Get(ctx, path, nil)
	if err != nil || value == nil {
		return zero, err
	}

	out, err := convert(value)
	if err != nil {
		return zero, fmt.Errorf("%w: %q: %w", ErrUnexpectedType, path, err)
	}
	return out, nil
}
