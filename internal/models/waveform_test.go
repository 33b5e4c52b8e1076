package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaveformPeaksRoundTrip(t *testing.T) {
	w := &Waveform{ConversionID: 7, Duration: 12.5}

	peaks := []float32{0.0, 0.25, 0.5, 0.75, 1.0}
	require.NoError(t, w.SetPeaks(peaks))

	assert.Equal(t, len(peaks), w.Resolution)
	assert.NotEmpty(t, w.PeaksData)

	decoded, err := w.Peaks()
	require.NoError(t, err)
	assert.Equal(t, peaks, decoded)
}

func TestWaveformPeaks_InvalidData(t *testing.T) {
	w := &Waveform{PeaksData: []byte("not json")}

	_, err := w.Peaks()
	assert.Error(t, err)
}
