package conversions

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/converter"
)

// GetBatchStatus reports a batch's progress
// @Summary      Get batch status
// @Description  Returns the number of attempted jobs, the batch total and whether every job has reached a terminal state
// @Tags         conversions
// @Produce      json
// @Param        id path string true "Batch ID"
// @Success      200 {object} types.BatchStatusResponse "Batch progress"
// @Failure      404 {object} types.ErrorResponse "Unknown batch"
// @Router       /api/v1/conversions/batches/{id} [get]
func GetBatchStatus(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		batchID := c.Param("id")

		status, err := deps.Converter.BatchStatus(batchID)
		if err != nil {
			if errors.Is(err, converter.ErrBatchNotFound) {
				c.JSON(http.StatusNotFound, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Batch not found",
					Details: batchID,
				})
				return
			}

			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to look up batch",
				Details: err.Error(),
			})
			return
		}

		state := types.StatusProcessing
		if status.Finished {
			state = types.StatusOK
		}

		c.JSON(http.StatusOK, types.BatchStatusResponse{
			BaseResponse: types.BaseResponse{
				Status:  state,
				Message: "Batch status retrieved",
			},
			BatchID:   status.BatchID,
			Completed: status.Completed,
			Total:     status.Total,
			Finished:  status.Finished,
		})
	}
}
