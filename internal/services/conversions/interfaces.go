package conversions

import (
	"context"

	"github.com/wavebatch/converter-api/internal/models"
)

// ConversionService defines the interface for conversion record operations
type ConversionService interface {
	// RecordConversion stores or replaces the record for a source path
	RecordConversion(ctx context.Context, conversion *models.Conversion) error

	// GetBySourcePath retrieves the record for a source path
	GetBySourcePath(ctx context.Context, sourcePath string) (*models.Conversion, error)

	// GetByID retrieves a record by primary key
	GetByID(ctx context.Context, id uint) (*models.Conversion, error)

	// ListConversions returns all conversion records, newest first
	ListConversions(ctx context.Context, limit, offset int) ([]models.Conversion, error)

	// RemoveBySourcePath deletes the record for a source path
	RemoveBySourcePath(ctx context.Context, sourcePath string) error

	// GetStats returns aggregate statistics about recorded conversions
	GetStats(ctx context.Context) (*ConversionStats, error)
}

// ConversionRepository defines the interface for conversion data access
type ConversionRepository interface {
	// Upsert inserts a record or replaces the existing row for the same source path
	Upsert(ctx context.Context, conversion *models.Conversion) error

	// GetBySourcePath retrieves a record by source path
	GetBySourcePath(ctx context.Context, sourcePath string) (*models.Conversion, error)

	// GetByID retrieves a record by primary key
	GetByID(ctx context.Context, id uint) (*models.Conversion, error)

	// List returns records ordered by most recent conversion first
	List(ctx context.Context, limit, offset int) ([]models.Conversion, error)

	// DeleteBySourcePath removes the record for a source path
	DeleteBySourcePath(ctx context.Context, sourcePath string) error

	// GetStats retrieves aggregate statistics
	GetStats(ctx context.Context) (*ConversionStats, error)
}

// ConversionStats represents aggregate statistics over recorded conversions
type ConversionStats struct {
	TotalConversions int64   `json:"total_conversions"`
	TotalOutputBytes int64   `json:"total_output_bytes"`
	AverageDuration  float64 `json:"average_duration_seconds"`
	OldestEntry      string  `json:"oldest_entry,omitempty"`
	NewestEntry      string  `json:"newest_entry,omitempty"`
}
