package types

import (
	"github.com/wavebatch/converter-api/internal/converter"
	"github.com/wavebatch/converter-api/internal/database"
	"github.com/wavebatch/converter-api/internal/services/conversions"
	"github.com/wavebatch/converter-api/internal/services/waveforms"
	"github.com/wavebatch/converter-api/pkg/download"
)

// Dependencies holds all the dependencies needed by handlers
type Dependencies struct {
	DB                *database.DB
	Converter         *converter.BatchConverter
	ConversionService conversions.ConversionService
	WaveformService   waveforms.WaveformService
	Downloader        *download.Downloader
	OutputDir         string
}
