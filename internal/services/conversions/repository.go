package conversions

import (
	"context"
	"errors"
	"time"

	"github.com/wavebatch/converter-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RepositoryImpl implements the ConversionRepository interface using GORM
type RepositoryImpl struct {
	db *gorm.DB
}

// NewRepository creates a new conversion repository
func NewRepository(db *gorm.DB) ConversionRepository {
	return &RepositoryImpl{db: db}
}

// Upsert inserts a record or replaces the existing row for the same source path.
// Re-converting a source overwrites its previous record.
func (r *RepositoryImpl) Upsert(ctx context.Context, conversion *models.Conversion) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "source_path"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"output_path", "output_size", "duration_seconds",
				"sample_rate", "channels", "codec", "converted_at", "updated_at",
			}),
		}).
		Create(conversion).Error
}

// GetBySourcePath retrieves a record by source path
func (r *RepositoryImpl) GetBySourcePath(ctx context.Context, sourcePath string) (*models.Conversion, error) {
	var conversion models.Conversion
	err := r.db.WithContext(ctx).
		Where("source_path = ?", sourcePath).
		First(&conversion).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversionNotFound
		}
		return nil, err
	}

	return &conversion, nil
}

// GetByID retrieves a record by primary key
func (r *RepositoryImpl) GetByID(ctx context.Context, id uint) (*models.Conversion, error) {
	var conversion models.Conversion
	err := r.db.WithContext(ctx).First(&conversion, id).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrConversionNotFound
		}
		return nil, err
	}

	return &conversion, nil
}

// List returns records ordered by most recent conversion first
func (r *RepositoryImpl) List(ctx context.Context, limit, offset int) ([]models.Conversion, error) {
	var conversions []models.Conversion
	err := r.db.WithContext(ctx).
		Order("converted_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&conversions).Error
	return conversions, err
}

// DeleteBySourcePath removes the record for a source path
func (r *RepositoryImpl) DeleteBySourcePath(ctx context.Context, sourcePath string) error {
	result := r.db.WithContext(ctx).
		Where("source_path = ?", sourcePath).
		Delete(&models.Conversion{})

	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return ErrConversionNotFound
	}

	return nil
}

// GetStats retrieves aggregate statistics
func (r *RepositoryImpl) GetStats(ctx context.Context) (*ConversionStats, error) {
	stats := &ConversionStats{}

	if err := r.db.WithContext(ctx).
		Model(&models.Conversion{}).
		Count(&stats.TotalConversions).Error; err != nil {
		return nil, err
	}

	r.db.WithContext(ctx).Model(&models.Conversion{}).
		Select("COALESCE(SUM(output_size), 0)").
		Scan(&stats.TotalOutputBytes)

	r.db.WithContext(ctx).Model(&models.Conversion{}).
		Select("COALESCE(AVG(duration_seconds), 0)").
		Scan(&stats.AverageDuration)

	var oldest, newest models.Conversion
	r.db.WithContext(ctx).Model(&models.Conversion{}).Order("converted_at ASC").First(&oldest)
	r.db.WithContext(ctx).Model(&models.Conversion{}).Order("converted_at DESC").First(&newest)

	if oldest.ID > 0 {
		stats.OldestEntry = oldest.ConvertedAt.Format(time.RFC3339)
	}
	if newest.ID > 0 {
		stats.NewestEntry = newest.ConvertedAt.Format(time.RFC3339)
	}

	return stats, nil
}
