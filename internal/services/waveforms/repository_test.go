package waveforms

import (
	"context"
	"errors"
	"testing"

	"github.com/wavebatch/converter-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Conversion{}, &models.Waveform{}); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func createTestConversion(t *testing.T, db *gorm.DB) *models.Conversion {
	conversion := &models.Conversion{
		SourcePath: "/music/song.m4a",
		OutputPath: "/converted/song.wav",
		Codec:      "pcm_s16le",
	}

	if err := db.Create(conversion).Error; err != nil {
		t.Fatalf("Failed to create test conversion: %v", err)
	}

	return conversion
}

func newTestWaveform(t *testing.T, conversionID uint, peaks []float32) *models.Waveform {
	waveform := &models.Waveform{
		ConversionID: conversionID,
		Duration:     300.0,
		SampleRate:   44100,
	}
	if err := waveform.SetPeaks(peaks); err != nil {
		t.Fatalf("Failed to set peaks: %v", err)
	}
	return waveform
}

func TestNewRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	if repo == nil {
		t.Error("NewRepository() returned nil")
	}
}

func TestRepository_CreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	conversion := createTestConversion(t, db)
	waveform := newTestWaveform(t, conversion.ID, []float32{0.1, 0.5, 0.8, 0.3, 0.9})

	if err := repo.Create(ctx, waveform); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if waveform.ID == 0 {
		t.Error("Create() did not set ID")
	}

	retrieved, err := repo.GetByConversionID(ctx, conversion.ID)
	if err != nil {
		t.Fatalf("GetByConversionID() error = %v", err)
	}

	if retrieved.ConversionID != conversion.ID {
		t.Errorf("Retrieved waveform ConversionID = %v, want %v", retrieved.ConversionID, conversion.ID)
	}

	peaks, err := retrieved.Peaks()
	if err != nil {
		t.Fatalf("Peaks() error = %v", err)
	}

	expected := []float32{0.1, 0.5, 0.8, 0.3, 0.9}
	if len(peaks) != len(expected) {
		t.Fatalf("Retrieved peaks length = %v, want %v", len(peaks), len(expected))
	}
	for i, peak := range peaks {
		if peak != expected[i] {
			t.Errorf("Retrieved peaks[%d] = %v, want %v", i, peak, expected[i])
		}
	}
}

func TestRepository_GetByConversionID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	_, err := repo.GetByConversionID(context.Background(), 42)
	if !errors.Is(err, ErrWaveformNotFound) {
		t.Errorf("GetByConversionID() error = %v, want %v", err, ErrWaveformNotFound)
	}
}

func TestRepository_Update(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	conversion := createTestConversion(t, db)
	waveform := newTestWaveform(t, conversion.ID, []float32{0.1, 0.5, 0.8})

	if err := repo.Create(ctx, waveform); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	waveform.Duration = 400.0
	waveform.SampleRate = 48000
	if err := waveform.SetPeaks([]float32{0.2, 0.6, 0.9}); err != nil {
		t.Fatalf("SetPeaks() error = %v", err)
	}

	if err := repo.Update(ctx, waveform); err != nil {
		t.Fatalf("Update() error = %v", err)
	}

	retrieved, err := repo.GetByConversionID(ctx, conversion.ID)
	if err != nil {
		t.Fatalf("GetByConversionID() after Update() error = %v", err)
	}

	if retrieved.Duration != 400.0 {
		t.Errorf("Updated waveform Duration = %v, want %v", retrieved.Duration, 400.0)
	}
	if retrieved.SampleRate != 48000 {
		t.Errorf("Updated waveform SampleRate = %v, want %v", retrieved.SampleRate, 48000)
	}
}

func TestRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	conversion := createTestConversion(t, db)

	err := repo.Delete(ctx, conversion.ID)
	if !errors.Is(err, ErrWaveformNotFound) {
		t.Errorf("Delete() error = %v, want %v", err, ErrWaveformNotFound)
	}

	waveform := newTestWaveform(t, conversion.ID, []float32{0.1, 0.5, 0.8})
	if err := repo.Create(ctx, waveform); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, conversion.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	_, err = repo.GetByConversionID(ctx, conversion.ID)
	if !errors.Is(err, ErrWaveformNotFound) {
		t.Errorf("GetByConversionID() after Delete() error = %v, want %v", err, ErrWaveformNotFound)
	}
}

func TestRepository_Exists(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	conversion := createTestConversion(t, db)

	exists, err := repo.Exists(ctx, conversion.ID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if exists {
		t.Error("Exists() = true for non-existent waveform, want false")
	}

	waveform := newTestWaveform(t, conversion.ID, []float32{0.1, 0.5, 0.8})
	if err := repo.Create(ctx, waveform); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	exists, err = repo.Exists(ctx, conversion.ID)
	if err != nil {
		t.Fatalf("Exists() error = %v", err)
	}
	if !exists {
		t.Error("Exists() = false for existing waveform, want true")
	}
}

func TestRepository_UniqueConstraint(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	conversion := createTestConversion(t, db)

	first := newTestWaveform(t, conversion.ID, []float32{0.1, 0.5, 0.8})
	if err := repo.Create(ctx, first); err != nil {
		t.Fatalf("Create() first waveform error = %v", err)
	}

	second := newTestWaveform(t, conversion.ID, []float32{0.2, 0.6, 0.9})
	if err := repo.Create(ctx, second); err == nil {
		t.Error("Create() second waveform expected unique constraint error, got nil")
	}
}
