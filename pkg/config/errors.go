package config

import "errors"

var (
	// ErrNilPointer is returned when a nil pointer is passed to a loader
	ErrNilPointer = errors.New("config.nil_pointer")

	// ErrParsingConfig is returned when environment variables cannot be
	// parsed into the config struct
	ErrParsingConfig = errors.New("config.parsing_failed")

	// ErrReadingFile is returned when a config file cannot be read
	ErrReadingFile = errors.New("config.reading_file_failed")

	// ErrParsingFile is returned when a config file is not valid YAML for
	// the target struct
	ErrParsingFile = errors.New("config.parsing_file_failed")
)
