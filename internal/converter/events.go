package converter

// EventType identifies what happened in the conversion pipeline
type EventType string

const (
	EventJobStarted    EventType = "job_started"
	EventJobSucceeded  EventType = "job_succeeded"
	EventJobFailed     EventType = "job_failed"
	EventJobCancelled  EventType = "job_cancelled"
	EventBatchProgress EventType = "batch_progress"
	EventBatchFinished EventType = "batch_finished"
)

// Event is a single notification from the conversion worker. Events are
// delivered to every registered observer in the order they are produced;
// the progress counters are monotonic within a batch.
type Event struct {
	Type    EventType `json:"type"`
	BatchID string    `json:"batch_id"`

	// Set for job-level events
	SourcePath      string        `json:"source_path,omitempty"`
	DestinationPath string        `json:"destination_path,omitempty"`
	Reason          FailureReason `json:"reason,omitempty"`

	// Set for batch-level events. Completed counts attempts, not successes,
	// so a batch with failures still reaches Total.
	Completed int `json:"completed,omitempty"`
	Total     int `json:"total,omitempty"`
}

// Observer receives conversion events. HandleEvent is called synchronously
// from the converter; implementations that block will stall the worker, and
// implementations must not call back into the converter.
type Observer interface {
	HandleEvent(event Event)
}

// ObserverFunc adapts a function to the Observer interface
type ObserverFunc func(event Event)

// HandleEvent calls f(event)
func (f ObserverFunc) HandleEvent(event Event) {
	f(event)
}
