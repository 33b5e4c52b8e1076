package cache

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
	"github.com/wavebatch/converter-api/internal/services/conversions"
)

// Get returns the converted-files cache
// @Summary      List cached conversions
// @Description  Returns the in-memory mapping from source paths to the outputs they produced
// @Tags         cache
// @Produce      json
// @Success      200 {object} types.CacheResponse "Cache contents"
// @Router       /api/v1/cache [get]
func Get(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		files := deps.Converter.CachedFiles()

		c.JSON(http.StatusOK, types.CacheResponse{
			BaseResponse: types.BaseResponse{
				Status:  types.StatusOK,
				Message: "Cache retrieved",
			},
			Files: files,
			Count: len(files),
		})
	}
}

// Delete evicts a source file from the converted-files cache
// @Summary      Evict a cache entry
// @Description  Removes the cache entry and durable record for a source path. The cache is never pruned automatically; this is the only way entries leave it.
// @Tags         cache
// @Produce      json
// @Param        source query string true "Source path to evict"
// @Success      200 {object} types.BaseResponse "Entry evicted"
// @Failure      400 {object} types.ErrorResponse "Missing source parameter"
// @Failure      404 {object} types.ErrorResponse "Source not in cache"
// @Router       /api/v1/cache [delete]
func Delete(deps *types.Dependencies) gin.HandlerFunc {
	return func(c *gin.Context) {
		source := c.Query("source")
		if source == "" {
			c.JSON(http.StatusBadRequest, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Query parameter 'source' is required",
			})
			return
		}

		if !deps.Converter.Evict(source) {
			c.JSON(http.StatusNotFound, types.ErrorResponse{
				Status:  types.StatusError,
				Message: "Source not in cache",
				Details: source,
			})
			return
		}

		// Keep the durable record in step with the cache
		if deps.ConversionService != nil {
			err := deps.ConversionService.RemoveBySourcePath(c.Request.Context(), source)
			if err != nil && !errors.Is(err, conversions.ErrConversionNotFound) {
				log.Printf("[WARN] Failed to remove conversion record for %s: %v", source, err)
			}
		}

		c.JSON(http.StatusOK, types.BaseResponse{
			Status:  types.StatusOK,
			Message: "Entry evicted",
		})
	}
}
