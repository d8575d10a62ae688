package endpoint

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Readiness returns a handler that reports whether every registered
// component can serve traffic. It answers 503 when any is unhealthy.
func Readiness(serviceName string, checker HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		status := "ready"
		httpStatus := http.StatusOK
		body := gin.H{"service": serviceName}

		if checker != nil {
			ok, components := checker(c.Request.Context())
			if !ok {
				status = "not_ready"
				httpStatus = http.StatusServiceUnavailable
			}
			body["components"] = components
		}

		body["status"] = status
		body["timestamp"] = time.Now().UTC().Format(time.RFC3339)
		c.JSON(httpStatus, body)
	}
}
