package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	domainerr "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	evport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/event"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/usecase/timetracking"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/api/dto"
)

// TimeTrackingHandler handles check-in, check-out and report requests
type TimeTrackingHandler struct {
	timeTracking usecase.TimeTrackingUseCase
	publisher    evport.Publisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewTimeTrackingHandler creates a new time-tracking handler instance
func NewTimeTrackingHandler(
	timeTracking usecase.TimeTrackingUseCase,
	publisher evport.Publisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *TimeTrackingHandler {
	return &TimeTrackingHandler{
		timeTracking: timeTracking,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// CheckIn handles the POST /employees/:userId/check-in endpoint
func (h *TimeTrackingHandler) CheckIn(c *gin.Context) {
	userID := c.Param("userId")

	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("Invalid check-in request format", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid request format: " + err.Error(),
		})
		return
	}
	if err := req.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	result, err := h.timeTracking.CheckIn(c.Request.Context(), usecase.CheckInRequest{
		UserID:   userID,
		UserName: req.UserName,
	})
	if err != nil {
		// The result already carries the status code and message
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: result.ErrorMessage,
		})
		return
	}

	h.publisher.Publish(c.Request.Context(), entity.NewLedgerEvent(entity.ActionCheckIn, userID, h.timeProvider))

	c.JSON(http.StatusOK, dto.CheckInResponse{
		UserID:      userID,
		Success:     result.Success,
		CheckInTime: result.CheckInTime,
	})
}

// CheckOut handles the POST /employees/:userId/check-out endpoint
func (h *TimeTrackingHandler) CheckOut(c *gin.Context) {
	userID := c.Param("userId")

	result, err := h.timeTracking.CheckOut(c.Request.Context(), userID)
	if err != nil {
		c.JSON(result.StatusCode, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: result.ErrorMessage,
		})
		return
	}

	h.publisher.Publish(c.Request.Context(), entity.NewLedgerEvent(entity.ActionCheckOut, userID, h.timeProvider))

	c.JSON(http.StatusOK, dto.CheckOutResponse{
		UserID:       userID,
		Success:      result.Success,
		CheckOutTime: result.CheckOutTime,
		HoursWorked:  result.HoursWorked,
	})
}

// GetStatus handles the GET /employees/:userId/status endpoint
func (h *TimeTrackingHandler) GetStatus(c *gin.Context) {
	userID := c.Param("userId")

	status, err := h.timeTracking.GetTodayCheckInStatus(c.Request.Context(), userID)
	if err != nil {
		h.respondError(c, "Error getting check-in status", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.StatusResponse{
		UserID:      userID,
		CheckedIn:   status.CheckedIn,
		CheckInTime: status.CheckInTime,
	})
}

// GetHours handles the GET /employees/:userId/hours?days=N endpoint.
// A missing days parameter covers every entry.
func (h *TimeTrackingHandler) GetHours(c *gin.Context) {
	userID := c.Param("userId")

	days := 0
	if raw := c.Query("days"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrInvalidWindow),
				Message: "Invalid days format",
			})
			return
		}
		days = parsed
	}
	if err := timetracking.ValidateWindowDays(days); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(err),
			Message: err.Error(),
		})
		return
	}

	total, err := h.timeTracking.CalculateTotalHours(c.Request.Context(), userID, days)
	if err != nil {
		h.respondError(c, "Error calculating total hours", userID, err)
		return
	}

	c.JSON(http.StatusOK, dto.HoursResponse{
		UserID:     userID,
		Days:       days,
		TotalHours: total,
	})
}

// GetTimeLogs handles the GET /time-logs endpoint
func (h *TimeTrackingHandler) GetTimeLogs(c *gin.Context) {
	logs, err := h.timeTracking.GetAllEmployeesTimeLogs(c.Request.Context())
	if err != nil {
		h.respondError(c, "Error building time logs", "", err)
		return
	}

	c.JSON(http.StatusOK, dto.TimeLogsResponse{Employees: logs})
}

// respondError maps a read error onto its status code; server-side failures are logged
func (h *TimeTrackingHandler) respondError(c *gin.Context, message, userID string, err error) {
	status := timetracking.StatusCodeFor(err)
	body := dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: err.Error(),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error(message, map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		body.Message = "Internal server error"
	}
	c.JSON(status, body)
}
