package shape

import "errors"

var (
	// ErrInstantiate is returned when coerced values cannot be decoded into
	// the shape's Go type, which points at a mismatch between a field's
	// declared Kind and the Go type backing it.
	ErrInstantiate = errors.New("cannot instantiate shape")
	// ErrConversion is returned by Coerce internals for values that have no
	// sensible representation in the requested Kind.
	ErrConversion = errors.New("cannot convert value")
)
