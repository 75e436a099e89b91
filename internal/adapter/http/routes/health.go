package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// addHealthRoutes registers the unauthenticated liveness probe.
func addHealthRoutes(rg *gin.RouterGroup) {
	rg.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"message":   "Client portal API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})
}
