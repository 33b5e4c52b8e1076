package cache

import (
	"github.com/gin-gonic/gin"
	"github.com/wavebatch/converter-api/api/types"
)

// RegisterRoutes registers converted-files cache routes on the given group
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.GET("", Get(deps))
	group.DELETE("", Delete(deps))
}
