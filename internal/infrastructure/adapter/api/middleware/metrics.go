package middleware

import (
	"github.com/gin-gonic/gin"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// unmatchedRoute labels requests that hit no registered route
const unmatchedRoute = "unmatched"

// Metrics middleware records request count and latency per route template
func Metrics(metrics coreport.Metrics, timeProvider coreport.TimeProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := timeProvider.Now()

		c.Next()

		route := c.FullPath()
		if route == "" {
			route = unmatchedRoute
		}
		metrics.ObserveHTTPRequest(c.Request.Method, route, c.Writer.Status(), timeProvider.Since(start).Std())
	}
}
