package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	evport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/event"
)

// SSE settings
const (
	eventBufferSize   = 64
	heartbeatInterval = 25 * time.Second
	sseEventName      = "ledger"
)

// EventsHandler streams ledger events to remote clients
type EventsHandler struct {
	subscriber evport.Subscriber
	logger     coreport.Logger
}

// NewEventsHandler creates a new events handler instance
func NewEventsHandler(subscriber evport.Subscriber, logger coreport.Logger) *EventsHandler {
	return &EventsHandler{
		subscriber: subscriber,
		logger:     logger,
	}
}

// Stream handles the GET /events endpoint as a server-sent-events stream.
// The subscription lives exactly as long as the client connection.
func (h *EventsHandler) Stream(c *gin.Context) {
	name := "sse-" + uuid.NewString()
	events := make(chan entity.LedgerEvent, eventBufferSize)

	subscription := h.subscriber.Subscribe(name, func(_ context.Context, evt entity.LedgerEvent) error {
		select {
		case events <- evt:
		default:
			h.logger.Warn("Dropping ledger event for slow SSE client", map[string]any{
				"listener": name,
				"event_id": evt.ID,
			})
		}
		return nil
	})
	defer subscription.Unsubscribe()

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Status(http.StatusOK)
	c.Writer.Flush()

	h.logger.Debug("SSE client connected", map[string]any{
		"listener":  name,
		"client_ip": c.ClientIP(),
	})

	heartbeat := time.NewTicker(heartbeatInterval)
	defer heartbeat.Stop()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			h.logger.Debug("SSE client disconnected", map[string]any{
				"listener": name,
			})
			return
		case evt := <-events:
			c.SSEvent(sseEventName, evt)
			c.Writer.Flush()
		case <-heartbeat.C:
			c.SSEvent("heartbeat", "")
			c.Writer.Flush()
		}
	}
}
