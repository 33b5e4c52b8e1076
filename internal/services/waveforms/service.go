package waveforms

import (
	"context"
	"log"
	"strings"

	"github.com/wavebatch/converter-api/internal/models"
)

// service implements WaveformService
type service struct {
	repo WaveformRepository
}

// NewService creates a new waveform service
func NewService(repo WaveformRepository) WaveformService {
	return &service{
		repo: repo,
	}
}

// GetWaveform retrieves waveform data for a conversion
func (s *service) GetWaveform(ctx context.Context, conversionID uint) (*models.Waveform, error) {
	if conversionID == 0 {
		return nil, ErrInvalidConversionID
	}

	waveform, err := s.repo.GetByConversionID(ctx, conversionID)
	if err != nil {
		log.Printf("[DEBUG] Failed to get waveform for conversion %d: %v", conversionID, err)
		return nil, err
	}

	log.Printf("[DEBUG] Found waveform for conversion %d: resolution=%d, duration=%.2f",
		conversionID, waveform.Resolution, waveform.Duration)

	return waveform, nil
}

// SaveWaveform stores waveform data for a conversion
func (s *service) SaveWaveform(ctx context.Context, waveform *models.Waveform) error {
	if waveform.ConversionID == 0 {
		return ErrInvalidConversionID
	}

	if len(waveform.PeaksData) == 0 {
		return ErrInvalidPeaksData
	}

	exists, err := s.repo.Exists(ctx, waveform.ConversionID)
	if err != nil {
		return err
	}

	if exists {
		log.Printf("[DEBUG] Updating existing waveform for conversion %d", waveform.ConversionID)
		return s.repo.Update(ctx, waveform)
	}

	log.Printf("[DEBUG] Creating new waveform for conversion %d", waveform.ConversionID)
	err = s.repo.Create(ctx, waveform)
	if err != nil {
		// UNIQUE constraint violation means another writer beat us to it
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return s.repo.Update(ctx, waveform)
		}
		return err
	}
	return nil
}

// DeleteWaveform removes waveform data for a conversion
func (s *service) DeleteWaveform(ctx context.Context, conversionID uint) error {
	if conversionID == 0 {
		return ErrInvalidConversionID
	}

	return s.repo.Delete(ctx, conversionID)
}

// WaveformExists checks if waveform data exists for a conversion
func (s *service) WaveformExists(ctx context.Context, conversionID uint) (bool, error) {
	if conversionID == 0 {
		return false, ErrInvalidConversionID
	}

	return s.repo.Exists(ctx, conversionID)
}
