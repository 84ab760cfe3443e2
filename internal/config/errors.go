package config

import "errors"

// Errors returned while parsing and validating [Settings].
var (
	// ErrInvalidSource indicates a malformed source entry
	// (for example, a file kind without a path).
	ErrInvalidSource = errors.New("invalid source")
	// ErrUnsupportedSourceKind indicates a source kind other than json,
	// yaml, dotenv and env.
	ErrUnsupportedSourceKind = errors.New("unsupported source kind")
	// ErrNoSources indicates that no source was given at all.
	ErrNoSources = errors.New("no sources configured")
	// ErrInvalidOutput indicates an output format other than json and yaml.
	ErrInvalidOutput = errors.New("invalid output format")
	// ErrInvalidLogLevel indicates a log level zerolog does not know.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
