package models

// JobState represents where a conversion job is in its lifecycle
type JobState string

const (
	JobStateQueued    JobState = "queued"
	JobStateRunning   JobState = "running"
	JobStateSucceeded JobState = "succeeded"
	JobStateFailed    JobState = "failed"
	JobStateCancelled JobState = "cancelled"
)

// ConversionJob is one unit of conversion work. Jobs live in memory only:
// they are created at submission, advance through their states exactly once,
// and are discarded when terminal. Only the output path of a succeeded job
// survives, in the converter's cache and the conversions table.
type ConversionJob struct {
	BatchID         string   `json:"batch_id"`
	SourcePath      string   `json:"source_path"`
	DestinationPath string   `json:"destination_path"`
	State           JobState `json:"state"`
}

// IsTerminal returns true if the job has reached a final state
func (j *ConversionJob) IsTerminal() bool {
	return j.State == JobStateSucceeded ||
		j.State == JobStateFailed ||
		j.State == JobStateCancelled
}

// CanTransitionTo reports whether moving to next is a legal forward
// transition. States are monotonic; no state is ever revisited.
func (s JobState) CanTransitionTo(next JobState) bool {
	switch s {
	case JobStateQueued:
		return next == JobStateRunning || next == JobStateCancelled
	case JobStateRunning:
		return next == JobStateSucceeded || next == JobStateFailed
	default:
		return false
	}
}
