package conversions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/converter"
)

// DeleteQueued cancels the pending job for a source file
// @Summary      Cancel a queued conversion
// @Description  Removes the queued job for the source path before it starts. A job that is already running finishes its current transcode and is not interrupted.
// @Tags         conversions
// @Produce      json
// @Param        source query string true "Source path of the job to cancel"
// @Success      200 {object} types.BaseResponse "Cancellation accepted"
// @Failure      400 {object} types.ErrorResponse "Missing source parameter"
// @Failure      404 {object} types.ErrorResponse "No queued or running job for the source"
// @Router       /api/v1/conversions/queue [delete]
func DeleteQueued(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.Query("source")
		if source == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Query parameter 'source' is required",
			})
			return
		}

		if err := deps.Converter.Cancel(source); err != nil {
			if errors.Is(err, converter.ErrJobNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "No queued or running job for source",
					Details: source,
				})
				return
			}

			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to cancel job",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Cancellation accepted",
		})
	}
}
