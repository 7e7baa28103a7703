package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// HealthCheck probes a backing service
type HealthCheck func(ctx context.Context) error

// HealthHandler reports liveness and backend reachability
type HealthHandler struct {
	backend string
	check   HealthCheck
	logger  coreport.Logger
}

// NewHealthHandler creates a new health handler; check may be nil for in-process backends
func NewHealthHandler(backend string, check HealthCheck, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{
		backend: backend,
		check:   check,
		logger:  logger,
	}
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	if h.check != nil {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()

		if err := h.check(ctx); err != nil {
			h.logger.Warn("Health check failed", map[string]any{
				"backend": h.backend,
				"error":   err.Error(),
			})
			c.JSON(http.StatusServiceUnavailable, gin.H{
				"status":  "unavailable",
				"backend": h.backend,
			})
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"backend": h.backend,
	})
}
