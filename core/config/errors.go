package config

import "errors"

var (
	// ErrInvalidConfigType is returned when Load receives anything other than a
	// non-nil pointer to a struct.
	ErrInvalidConfigType = errors.New("config must be a non-nil struct pointer")

	// ErrParsingFailed is returned when environment variables cannot be parsed
	// into the config struct.
	ErrParsingFailed = errors.New("failed to parse environment variables")
)
