package conversions

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/services/waveforms"
)

// GetWaveform returns waveform peak data for a conversion
// @Summary      Get waveform
// @Description  Returns normalized waveform peaks for a converted file
// @Tags         conversions
// @Produce      json
// @Param        id path int true "Conversion ID"
// @Success      200 {object} types.WaveformResponse "Waveform peaks"
// @Failure      400 {object} types.ErrorResponse "Invalid conversion ID"
// @Failure      404 {object} types.ErrorResponse "Waveform not found"
// @Router       /api/v1/conversions/{id}/waveform [get]
func GetWaveform(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		conversionID, err := strconv.ParseUint(c.Param("id"), 10, 32)
		if err != nil || conversionID == 0 {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid conversion ID",
			})
			return
		}

		if deps.WaveformService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Waveform service not available",
			})
			return
		}

		ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
		defer cancel()

		waveform, err := deps.WaveformService.GetWaveform(ctx, uint(conversionID))
		if err != nil {
			if errors.Is(err, waveforms.ErrWaveformNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Waveform not found for conversion",
				})
				return
			}

			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to retrieve waveform",
				Details: err.Error(),
			})
			return
		}

		peaks, err := waveform.Peaks()
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to decode waveform data",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.WaveformResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Waveform retrieved",
			},
			ConversionID: uint(conversionID),
			Peaks:        peaks,
			Duration:     waveform.Duration,
			Resolution:   waveform.Resolution,
			SampleRate:   waveform.SampleRate,
		})
	}
}
