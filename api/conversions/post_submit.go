package conversions

import (
	"errors"
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/converter"
	"github.com/wavebatch/converter-api/pkg/download"
)

// Post handles batch submission requests
// @Summary      Submit a conversion batch
// @Description  Queue one conversion job per source, in order, behind any work already pending. Sources may be local paths or HTTP(S) URLs; remote sources are downloaded first.
// @Tags         conversions
// @Accept       json
// @Produce      json
// @Param        request body types.SubmitConversionRequest true "Batch to convert"
// @Success      202 {object} types.SubmitResponse "Batch accepted"
// @Failure      400 {object} types.ErrorResponse "Bad request - invalid destination or sources"
// @Failure      502 {object} types.ErrorResponse "Bad gateway - a remote source could not be downloaded"
// @Router       /api/v1/conversions [post]
func Post(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req types.SubmitConversionRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Invalid request format",
				Details: err.Error(),
			})
			return
		}

		destDir := req.DestinationDir
		if destDir == "" {
			destDir = deps.OutputDir
		}
		if err := os.MkdirAll(destDir, 0755); err != nil {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: fmt.Sprintf("Cannot create destination directory %s", destDir),
				Details: err.Error(),
			})
			return
		}

		// Resolve remote sources to local temp files before queueing, so
		// the conversion queue only ever sees local paths
		sources := make([]string, 0, len(req.Sources))
		for _, src := range req.Sources {
			if !download.IsRemote(src) {
				sources = append(sources, src)
				continue
			}

			if deps.Downloader == nil {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Remote sources are not supported",
				})
				return
			}

			result, err := deps.Downloader.DownloadToTemp(c.Request.Context(), src)
			if err != nil {
				c.JSON(http.StatusBadGateway, types.ErrorResponse{
					Status:  types.StatusError,
					Message: fmt.Sprintf("Failed to download %s", src),
					Details: err.Error(),
				})
				return
			}
			sources = append(sources, result.FilePath)
		}

		batchID, err := deps.Converter.Submit(sources, destDir)
		if err != nil {
			if errors.Is(err, converter.ErrInvalidDestination) {
				c.JSON(http.StatusBadRequest, types.ErrorResponse{
					Status:  types.StatusError,
					Message: "Destination directory is not writable",
					Details: err.Error(),
				})
				return
			}

			c.JSON(http.StatusInternalServerError, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Failed to submit batch",
				Details: err.Error(),
			})
			return
		}

		c.JSON(http.StatusAccepted, types.SubmitResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusQueued,
				Message: "Batch accepted",
			},
			BatchID: batchID,
			Queued:  len(sources),
		})
	}
}
