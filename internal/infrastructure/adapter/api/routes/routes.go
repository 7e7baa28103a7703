package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/handler"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/middleware"
)

// Handlers groups every HTTP handler of the API
type Handlers struct {
	TimeTracking *handler.TimeTrackingHandler
	Presence     *handler.PresenceHandler
	Events       *handler.EventsHandler
	Health       *handler.HealthHandler
	Metrics      http.Handler // nil disables the metrics endpoint
	MetricsPath  string
}

// SetupRoutes configures all the routes for the API
func SetupRoutes(router *gin.Engine, h Handlers) {
	employeeRoutes := router.Group("/employees/:userId")
	{
		// POST /employees/:userId/check-in
		employeeRoutes.POST("/check-in", h.TimeTracking.CheckIn)

		// POST /employees/:userId/check-out
		employeeRoutes.POST("/check-out", h.TimeTracking.CheckOut)

		// GET /employees/:userId/status
		employeeRoutes.GET("/status", h.TimeTracking.GetStatus)

		// GET /employees/:userId/hours?days=N
		employeeRoutes.GET("/hours", h.TimeTracking.GetHours)
	}

	router.GET("/time-logs", h.TimeTracking.GetTimeLogs)
	router.GET("/presence", h.Presence.GetPresence)
	router.GET("/events", h.Events.Stream)
	router.GET("/health", h.Health.Health)

	if h.Metrics != nil {
		path := h.MetricsPath
		if path == "" {
			path = "/metrics"
		}
		router.GET(path, gin.WrapH(h.Metrics))
	}

	router.NoRoute(middleware.NotFound())
}

// SetupMiddlewares configures global middlewares for the API
func SetupMiddlewares(
	router *gin.Engine,
	logger coreport.Logger,
	metrics coreport.Metrics,
	timeProvider coreport.TimeProvider,
	corsOrigins []string,
) {
	router.Use(middleware.ErrorHandler(logger))
	router.Use(middleware.Logger(logger, timeProvider))
	router.Use(middleware.Metrics(metrics, timeProvider))
	router.Use(middleware.CORS(corsOrigins))
}
