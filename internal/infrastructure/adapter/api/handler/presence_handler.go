package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/dto"
)

// PresenceHandler serves the presence view
type PresenceHandler struct {
	presence usecase.PresenceUseCase
}

// NewPresenceHandler creates a new presence handler instance
func NewPresenceHandler(presence usecase.PresenceUseCase) *PresenceHandler {
	return &PresenceHandler{presence: presence}
}

// GetPresence handles the GET /presence endpoint
func (h *PresenceHandler) GetPresence(c *gin.Context) {
	c.JSON(http.StatusOK, dto.NewPresenceResponse(h.presence.Snapshot()))
}
