package waveforms

import "errors"

var (
	// ErrWaveformNotFound is returned when a waveform is not found
	ErrWaveformNotFound = errors.New("waveform not found")

	// ErrInvalidConversionID is returned when a conversion ID is invalid
	ErrInvalidConversionID = errors.New("invalid conversion ID")

	// ErrInvalidPeaksData is returned when peaks data is invalid
	ErrInvalidPeaksData = errors.New("invalid peaks data")
)
