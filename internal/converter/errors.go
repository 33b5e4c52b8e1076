package converter

import "errors"

var (
	// ErrInvalidDestination is returned by Submit when the destination
	// directory is missing or not writable
	ErrInvalidDestination = errors.New("destination is not a writable directory")

	// ErrJobNotFound is returned by Cancel when no queued or running job
	// exists for the given source path
	ErrJobNotFound = errors.New("no job found for source path")

	// ErrBatchNotFound is returned when a batch ID is unknown
	ErrBatchNotFound = errors.New("batch not found")
)

// FailureReason classifies why a job failed
type FailureReason string

const (
	// ReasonSourceUnavailable means the source file was missing or
	// unreadable when the job ran
	ReasonSourceUnavailable FailureReason = "source_unavailable"

	// ReasonTranscodeFailed means the transcode collaborator rejected the
	// input or errored during conversion
	ReasonTranscodeFailed FailureReason = "transcode_failed"

	// ReasonWriteFailed means the output could not be written
	ReasonWriteFailed FailureReason = "write_failed"

	// ReasonTimeout means the transcode exceeded its deadline
	ReasonTimeout FailureReason = "timeout"
)
