package config

import "errors"

var (
	// ErrNilPointer is returned when Load is given a nil destination.
	ErrNilPointer = errors.New("config: nil pointer passed to Load")

	// ErrParsingConfig is returned when the environment cannot be parsed
	// into the destination struct.
	ErrParsingConfig = errors.New("config: failed to parse environment")
)
