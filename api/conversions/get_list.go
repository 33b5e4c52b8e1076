package conversions

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
)

// GetList returns recorded conversions, newest first
// @Summary      List conversions
// @Description  Returns the durable conversion records, most recent first
// @Tags         conversions
// @Produce      json
// @Param        limit  query int false "Maximum records to return" default(50)
// @Param        offset query int false "Records to skip" default(0)
// @Success      200 {object} types.ConversionsResponse "Conversion records"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/conversions [get]
func GetList(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))
		offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

		if deps.ConversionService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Conversion records are not available",
			})
			return
		}

		list, err := deps.ConversionService.ListConversions(c.Request.Context(), limit, offset)
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to list conversions",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.ConversionsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Conversions retrieved",
			},
			Conversions: list,
			Count:       len(list),
		})
	}
}

// GetStats returns aggregate statistics over recorded conversions
// @Summary      Conversion statistics
// @Tags         conversions
// @Produce      json
// @Success      200 {object} types.StatsResponse "Aggregate statistics"
// @Failure      500 {object} types.ErrorResponse "Internal server error"
// @Router       /api/v1/conversions/stats [get]
func GetStats(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		if deps.ConversionService == nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Conversion records are not available",
			})
			return
		}

		stats, err := deps.ConversionService.GetStats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to compute statistics",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.StatsResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Statistics retrieved",
			},
			TotalConversions: stats.TotalConversions,
			TotalOutputBytes: stats.TotalOutputBytes,
			AverageDuration:  stats.AverageDuration,
		})
	}
}
