package workers

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/wavebatch/converter-api/internal/models"
	"github.com/wavebatch/converter-api/internal/services/conversions"
	"github.com/wavebatch/converter-api/pkg/ffmpeg"
)

// MetadataProber probes audio metadata from a file. *ffmpeg.FFmpeg
// satisfies this.
type MetadataProber interface {
	GetMetadata(ctx context.Context, inputFile string) (*ffmpeg.AudioMetadata, error)
}

// ConversionRecorder persists a durable record for each converted file.
// It probes the produced WAV and upserts the conversions row keyed by
// source path, so re-converting a file replaces its previous record.
type ConversionRecorder struct {
	conversionService conversions.ConversionService
	prober            MetadataProber
}

// NewConversionRecorder creates a new conversion recorder
func NewConversionRecorder(conversionService conversions.ConversionService, prober MetadataProber) *ConversionRecorder {
	return &ConversionRecorder{
		conversionService: conversionService,
		prober:            prober,
	}
}

// Name returns the processor identifier
func (r *ConversionRecorder) Name() string {
	return "conversion_recorder"
}

// Process records the conversion in the database
func (r *ConversionRecorder) Process(ctx context.Context, task Task) error {
	conversion := &models.Conversion{
		SourcePath:  task.SourcePath,
		OutputPath:  task.OutputPath,
		ConvertedAt: time.Now(),
	}

	if info, err := os.Stat(task.OutputPath); err == nil {
		conversion.OutputSize = info.Size()
	}

	// Metadata is best-effort: a record without probe data is still useful
	metadata, err := r.prober.GetMetadata(ctx, task.OutputPath)
	if err != nil {
		log.Printf("[WARN] Could not probe %s: %v", task.OutputPath, err)
	} else {
		conversion.DurationSeconds = metadata.Duration
		conversion.SampleRate = metadata.SampleRate
		conversion.Channels = metadata.Channels
		conversion.Codec = metadata.Codec
	}

	if err := r.conversionService.RecordConversion(ctx, conversion); err != nil {
		return fmt.Errorf("failed to record conversion for %s: %w", task.SourcePath, err)
	}

	log.Printf("[DEBUG] Recorded conversion %s -> %s", task.SourcePath, task.OutputPath)
	return nil
}
