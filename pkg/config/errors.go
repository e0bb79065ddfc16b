package config

import "errors"

var (
	// ErrNilPointer is returned when Load receives a nil destination.
	ErrNilPointer = errors.New("config: destination cannot be nil")

	// ErrParsingConfig wraps env parsing failures (missing required
	// variables, unparseable values).
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
