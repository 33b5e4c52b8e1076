package types

import "github.com/wavebatch/converter-api/internal/models"

// Status constants for API responses
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusProcessing = "processing"
	StatusQueued     = "queued"
)

// BaseResponse contains fields common to all API responses
type BaseResponse struct {
	Status  string `json:"status"`  // One of the Status constants above
	Message string `json:"message"` // Human-readable message
}

// ErrorResponse for detailed error information
type ErrorResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"` // Additional error details
}

// SubmitResponse is returned when a batch has been accepted
type SubmitResponse struct {
	BaseResponse
	BatchID string `json:"batch_id"`
	Queued  int    `json:"queued"` // Number of jobs queued
}

// BatchStatusResponse reports a batch's progress
type BatchStatusResponse struct {
	BaseResponse
	BatchID   string `json:"batch_id"`
	Completed int    `json:"completed"` // Attempted jobs, including failures and cancellations
	Total     int    `json:"total"`
	Finished  bool   `json:"finished"`
}

// ConversionsResponse for conversion record lists
type ConversionsResponse struct {
	BaseResponse
	Conversions []models.Conversion `json:"conversions"`
	Count       int                 `json:"count"`
}

// CacheResponse for the converted-files cache
type CacheResponse struct {
	BaseResponse
	Files map[string]string `json:"files"` // source path -> output path
	Count int               `json:"count"`
}

// WaveformResponse for waveform peak data
type WaveformResponse struct {
	BaseResponse
	ConversionID uint      `json:"conversion_id"`
	Peaks        []float32 `json:"peaks"`
	Duration     float64   `json:"duration"`   // Duration in seconds
	Resolution   int       `json:"resolution"` // Number of peaks
	SampleRate   int       `json:"sample_rate,omitempty"`
}

// StatsResponse for aggregate conversion statistics
type StatsResponse struct {
	BaseResponse
	TotalConversions int64   `json:"total_conversions"`
	TotalOutputBytes int64   `json:"total_output_bytes"`
	AverageDuration  float64 `json:"average_duration_seconds"`
}
