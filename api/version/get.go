package version

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Get handles version requests
// @Summary      Version information
// @Tags         version
// @Produce      json
// @Success      200 {object} map[string]interface{} "Version information"
// @Router       / [get]
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"name":        "Batch Converter API",
			"version":     "1.0.0",
			"description": "API for background batch audio conversion to WAV",
			"status":      "running",
		})
	}
}
