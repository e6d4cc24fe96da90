package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() so callers can use
// errors.Is() for programmatic handling.
var (
	// ErrEmptyOutputDir is returned when the output directory is blank.
	ErrEmptyOutputDir = errors.New("invalid output directory: must not be empty")

	// ErrOutputDirNotFound is returned when the output directory does not exist
	// or is not a directory.
	ErrOutputDirNotFound = errors.New("invalid output directory: not an existing directory")
)
