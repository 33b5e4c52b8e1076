package conversions

import (
	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
)

// RegisterRoutes registers conversion routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("", Post(deps))
	group.GET("", GetList(deps))
	group.GET("/stats", GetStats(deps))
	group.GET("/batches/:id", GetBatchStatus(deps))
	group.DELETE("/queue", DeleteQueued(deps))
	group.GET("/:id/waveform", GetWaveform(deps))
}
