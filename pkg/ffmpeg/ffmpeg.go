package ffmpeg

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
	"time"
)

// FFmpeg wraps ffmpeg and ffprobe functionality
type FFmpeg struct {
	ffmpegPath  string
	ffprobePath string
	timeout     time.Duration
}

// New creates a new FFmpeg instance
func New(ffmpegPath, ffprobePath string, timeout time.Duration) *FFmpeg {
	return &FFmpeg{
		ffmpegPath:  ffmpegPath,
		ffprobePath: ffprobePath,
		timeout:     timeout,
	}
}

// ValidateBinaries checks if ffmpeg and ffprobe are available
func (f *FFmpeg) ValidateBinaries() error {
	if _, err := exec.LookPath(f.ffmpegPath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFmpegNotFound, f.ffmpegPath)
	}
	if _, err := exec.LookPath(f.ffprobePath); err != nil {
		return fmt.Errorf("%w: %s", ErrFFprobeNotFound, f.ffprobePath)
	}
	return nil
}

// Transcode converts the source audio file to a 16-bit PCM WAV at the
// destination path. The call blocks until ffmpeg exits or the configured
// timeout elapses. Returned errors wrap context.DeadlineExceeded on
// timeout and os.ErrPermission / syscall.ENOSPC when the output could not
// be written, so callers can classify failures with errors.Is.
func (f *FFmpeg) Transcode(ctx context.Context, sourcePath, destinationPath string) error {
	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	args := []string{
		"-i", sourcePath,
		"-vn", // Drop any cover-art video stream
		"-acodec", "pcm_s16le",
		"-y", // Overwrite output
		destinationPath,
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		if ctx.Err() == context.DeadlineExceeded {
			return NewProcessingError("transcode", sourcePath, context.DeadlineExceeded, stderr.String())
		}
		return NewProcessingError("transcode", sourcePath, classifyRunError(err, stderr.String()), stderr.String())
	}
	return nil
}

// classifyRunError surfaces filesystem failures hidden in ffmpeg's stderr
// as wrapped sentinels
func classifyRunError(err error, stderr string) error {
	switch {
	case strings.Contains(stderr, "Permission denied"):
		return fmt.Errorf("%w: %v", os.ErrPermission, err)
	case strings.Contains(stderr, "No space left on device"):
		return fmt.Errorf("%w: %v", syscall.ENOSPC, err)
	}
	return err
}

// ExtractPeaks generates normalized waveform peak data from an audio file
func (f *FFmpeg) ExtractPeaks(ctx context.Context, inputFile string, options ProcessingOptions) (*WaveformData, error) {
	if err := f.ValidateAudioFile(ctx, inputFile); err != nil {
		return nil, err
	}

	metadata, err := f.GetMetadata(ctx, inputFile)
	if err != nil {
		return nil, err
	}

	if options.MaxDuration > 0 && time.Duration(metadata.Duration)*time.Second > options.MaxDuration {
		return nil, fmt.Errorf("%w: duration %.1fs exceeds limit %.1fs",
			ErrAudioTooLong, metadata.Duration, options.MaxDuration.Seconds())
	}

	peaks, err := f.extractWaveformPeaks(ctx, inputFile, options)
	if err != nil {
		return nil, err
	}

	return &WaveformData{
		Peaks:      peaks,
		Duration:   metadata.Duration,
		Resolution: len(peaks),
		SampleRate: metadata.SampleRate,
	}, nil
}

// extractWaveformPeaks converts the audio to raw mono PCM and reduces it to
// peak values
func (f *FFmpeg) extractWaveformPeaks(ctx context.Context, inputFile string, options ProcessingOptions) ([]float32, error) {
	tempDir := options.TempDir
	if tempDir == "" {
		tempDir = filepath.Dir(inputFile)
	}
	rawFile, err := os.CreateTemp(tempDir, "waveform_*.raw")
	if err != nil {
		return nil, NewProcessingError("temp_file_creation", inputFile, err, "")
	}
	rawPath := rawFile.Name()
	rawFile.Close()
	defer os.Remove(rawPath)

	args := []string{
		"-i", inputFile,
		"-f", "f32le", // 32-bit float little-endian
		"-ac", "1", // Convert to mono
		"-ar", "44100", // Resample to 44.1kHz
		"-y",
		rawPath,
	}

	cmd := exec.CommandContext(ctx, f.ffmpegPath, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, NewProcessingError("pcm_conversion", inputFile, err, stderr.String())
	}

	return analyzePCMData(rawPath, options.WaveformResolution)
}

// analyzePCMData reads raw PCM data and generates normalized peak values
func analyzePCMData(rawPath string, resolution int) ([]float32, error) {
	file, err := os.Open(rawPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, err
	}

	totalBytes := stat.Size()
	totalSamples := totalBytes / 4 // 4 bytes per float32 sample
	samplesPerPeak := totalSamples / int64(resolution)
	if samplesPerPeak < 1 {
		samplesPerPeak = 1
	}

	buffer := make([]byte, 4*samplesPerPeak)
	tempPeaks := make([]float32, 0, resolution)
	var globalMaxPeak float32

	for i := 0; i < resolution; i++ {
		n, err := file.Read(buffer)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var maxPeak float32
		for j := 0; j+4 <= n; j += 4 {
			sample := bytesToFloat32(buffer[j : j+4])
			if abs(sample) > abs(maxPeak) {
				maxPeak = sample
			}
		}

		peakValue := abs(maxPeak)
		tempPeaks = append(tempPeaks, peakValue)
		if peakValue > globalMaxPeak {
			globalMaxPeak = peakValue
		}
	}

	// Normalize peaks to [0,1]
	if globalMaxPeak > 0 {
		peaks := make([]float32, 0, len(tempPeaks))
		for _, peak := range tempPeaks {
			peaks = append(peaks, peak/globalMaxPeak)
		}
		return peaks, nil
	}

	// All silence
	return tempPeaks, nil
}

// bytesToFloat32 converts 4 bytes to a float32 in little-endian format
func bytesToFloat32(b []byte) float32 {
	var f float32
	buf := bytes.NewReader(b)
	if err := binary.Read(buf, binary.LittleEndian, &f); err != nil {
		return 0
	}
	return f
}

// abs returns the absolute value of a float32
func abs(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}
