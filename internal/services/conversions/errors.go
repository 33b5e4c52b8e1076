package conversions

import "errors"

var (
	// ErrConversionNotFound is returned when no record exists for a source path or ID
	ErrConversionNotFound = errors.New("conversion not found")

	// ErrInvalidSourcePath is returned when a source path is empty
	ErrInvalidSourcePath = errors.New("invalid source path")

	// ErrInvalidOutputPath is returned when an output path is empty
	ErrInvalidOutputPath = errors.New("invalid output path")
)
