package loader

import "errors"

// Errors returned by the file loaders. They are wrapped with the path of
// the offending file; match them with [errors.Is].
var (
	// ErrParse indicates a file whose content the format parser rejected.
	ErrParse = errors.New("error parsing config file")
	// ErrNotMapping indicates a file whose top-level value is not a
	// mapping (a JSON array or a bare YAML scalar, for example).
	ErrNotMapping = errors.New("config file is not a mapping")
)
