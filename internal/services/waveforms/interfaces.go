package waveforms

import (
	"context"

	"github.com/wavebatch/converter-api/internal/models"
)

// WaveformService defines the interface for waveform operations
type WaveformService interface {
	// GetWaveform retrieves waveform data for a conversion
	GetWaveform(ctx context.Context, conversionID uint) (*models.Waveform, error)

	// SaveWaveform stores waveform data for a conversion
	SaveWaveform(ctx context.Context, waveform *models.Waveform) error

	// DeleteWaveform removes waveform data for a conversion
	DeleteWaveform(ctx context.Context, conversionID uint) error

	// WaveformExists checks if waveform data exists for a conversion
	WaveformExists(ctx context.Context, conversionID uint) (bool, error)
}

// WaveformRepository defines the interface for waveform data access
type WaveformRepository interface {
	// GetByConversionID retrieves waveform by conversion ID
	GetByConversionID(ctx context.Context, conversionID uint) (*models.Waveform, error)

	// Create saves a new waveform
	Create(ctx context.Context, waveform *models.Waveform) error

	// Update modifies an existing waveform
	Update(ctx context.Context, waveform *models.Waveform) error

	// Delete removes a waveform by conversion ID
	Delete(ctx context.Context, conversionID uint) error

	// Exists checks if a waveform exists for a conversion
	Exists(ctx context.Context, conversionID uint) (bool, error)
}
