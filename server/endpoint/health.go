package endpoint

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kbukum/transcript-gateway/component"
)

// HealthChecker reports readiness and per-component health.
type HealthChecker func(ctx context.Context) (bool, []component.Health)

// Health returns the liveness handler. It answers {"status":"healthy"} and
// never touches a dependency, so it stays cheap for load balancer probes.
func Health() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	}
}
