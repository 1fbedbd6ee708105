package health_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/SOf1AN3/myks-sports-bolt/config"
	"github.com/SOf1AN3/myks-sports-bolt/models"
)

// Health godoc
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} models.HealthResponse
// @Router /health [get]
func Health(c *gin.Context) {
	// Best-effort dependency pings; a degraded backend is logged, the
	// endpoint itself stays up.
	ctx, cancel := config.WithTimeout()
	defer cancel()

	if config.Pool != nil {
		if err := config.Pool.Ping(ctx); err != nil {
			log.Printf("[health] database ping failed: %v", err)
		}
	}
	if config.RedisClient != nil {
		if err := config.RedisClient.Ping(ctx).Err(); err != nil {
			log.Printf("[health] redis ping failed: %v", err)
		}
	}

	c.JSON(http.StatusOK, models.HealthResponse{
		Status:    "OK",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
