package conversions

import (
	"context"
	"log"

	"github.com/wavebatch/converter-api/internal/models"
)

const defaultListLimit = 100

// service implements ConversionService
type service struct {
	repo ConversionRepository
}

// NewService creates a new conversion service
func NewService(repo ConversionRepository) ConversionService {
	return &service{
		repo: repo,
	}
}

// RecordConversion stores or replaces the record for a source path
func (s *service) RecordConversion(ctx context.Context, conversion *models.Conversion) error {
	if conversion.SourcePath == "" {
		return ErrInvalidSourcePath
	}
	if conversion.OutputPath == "" {
		return ErrInvalidOutputPath
	}

	log.Printf("[DEBUG] Recording conversion: %s -> %s", conversion.SourcePath, conversion.OutputPath)
	return s.repo.Upsert(ctx, conversion)
}

// GetBySourcePath retrieves the record for a source path
func (s *service) GetBySourcePath(ctx context.Context, sourcePath string) (*models.Conversion, error) {
	if sourcePath == "" {
		return nil, ErrInvalidSourcePath
	}

	return s.repo.GetBySourcePath(ctx, sourcePath)
}

// GetByID retrieves a record by primary key
func (s *service) GetByID(ctx context.Context, id uint) (*models.Conversion, error) {
	if id == 0 {
		return nil, ErrConversionNotFound
	}

	return s.repo.GetByID(ctx, id)
}

// ListConversions returns all conversion records, newest first
func (s *service) ListConversions(ctx context.Context, limit, offset int) ([]models.Conversion, error) {
	if limit <= 0 || limit > defaultListLimit {
		limit = defaultListLimit
	}
	if offset < 0 {
		offset = 0
	}

	return s.repo.List(ctx, limit, offset)
}

// RemoveBySourcePath deletes the record for a source path
func (s *service) RemoveBySourcePath(ctx context.Context, sourcePath string) error {
	if sourcePath == "" {
		return ErrInvalidSourcePath
	}

	log.Printf("[DEBUG] Removing conversion record for %s", sourcePath)
	return s.repo.DeleteBySourcePath(ctx, sourcePath)
}

// GetStats returns aggregate statistics about recorded conversions
func (s *service) GetStats(ctx context.Context) (*ConversionStats, error) {
	return s.repo.GetStats(ctx)
}
