package workers

import (
	"context"
	"fmt"
	"log"

	"github.com/wavebatch/converter-api/internal/models"
	"github.com/wavebatch/converter-api/internal/services/conversions"
	"github.com/wavebatch/converter-api/internal/services/waveforms"
	"github.com/wavebatch/converter-api/pkg/ffmpeg"
)

// PeaksExtractor extracts waveform peak data from an audio file.
// *ffmpeg.FFmpeg satisfies this.
type PeaksExtractor interface {
	ExtractPeaks(ctx context.Context, inputFile string, options ffmpeg.ProcessingOptions) (*ffmpeg.WaveformData, error)
}

// WaveformProcessor generates and stores waveform peaks for each converted
// file. It must run after ConversionRecorder, which creates the conversion
// row the waveform is keyed on.
type WaveformProcessor struct {
	conversionService conversions.ConversionService
	waveformService   waveforms.WaveformService
	extractor         PeaksExtractor
	options           ffmpeg.ProcessingOptions
}

// NewWaveformProcessor creates a new waveform processor
func NewWaveformProcessor(
	conversionService conversions.ConversionService,
	waveformService waveforms.WaveformService,
	extractor PeaksExtractor,
	options ffmpeg.ProcessingOptions,
) *WaveformProcessor {
	return &WaveformProcessor{
		conversionService: conversionService,
		waveformService:   waveformService,
		extractor:         extractor,
		options:           options,
	}
}

// Name returns the processor identifier
func (p *WaveformProcessor) Name() string {
	return "waveform_processor"
}

// Process extracts peaks from the output WAV and stores them
func (p *WaveformProcessor) Process(ctx context.Context, task Task) error {
	conversion, err := p.conversionService.GetBySourcePath(ctx, task.SourcePath)
	if err != nil {
		return fmt.Errorf("no conversion record for %s: %w", task.SourcePath, err)
	}

	data, err := p.extractor.ExtractPeaks(ctx, task.OutputPath, p.options)
	if err != nil {
		return fmt.Errorf("failed to extract peaks from %s: %w", task.OutputPath, err)
	}

	waveform := &models.Waveform{
		ConversionID: conversion.ID,
		Duration:     data.Duration,
		SampleRate:   data.SampleRate,
	}
	if err := waveform.SetPeaks(data.Peaks); err != nil {
		return fmt.Errorf("failed to encode peaks for %s: %w", task.OutputPath, err)
	}

	if err := p.waveformService.SaveWaveform(ctx, waveform); err != nil {
		return fmt.Errorf("failed to save waveform for conversion %d: %w", conversion.ID, err)
	}

	log.Printf("[DEBUG] Stored waveform for conversion %d (%d peaks)", conversion.ID, data.Resolution)
	return nil
}
