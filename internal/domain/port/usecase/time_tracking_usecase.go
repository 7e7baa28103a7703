package usecase

import (
	"context"
	"time"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
)

// CheckInRequest represents an incoming check-in
type CheckInRequest struct {
	UserID   string
	UserName string
}

// CheckInResult contains info about a check-in attempt
type CheckInResult struct {
	Success      bool
	CheckInTime  time.Time
	ErrorMessage string
	StatusCode   int // HTTP status code
}

// CheckOutResult contains info about a check-out attempt
type CheckOutResult struct {
	Success      bool
	CheckOutTime time.Time
	HoursWorked  float64
	ErrorMessage string
	StatusCode   int // HTTP status code
}

// CheckInStatus reports whether a user is checked in today
type CheckInStatus struct {
	CheckedIn   bool
	CheckInTime *time.Time
}

// TimeTrackingUseCase defines the ledger operations
type TimeTrackingUseCase interface {
	// CheckIn opens today's entry for a user, creating the ledger on demand
	CheckIn(ctx context.Context, req CheckInRequest) (*CheckInResult, error)

	// CheckOut closes the open entry of a user
	CheckOut(ctx context.Context, userID string) (*CheckOutResult, error)

	// GetTodayCheckInStatus reports the open entry of today, if any
	GetTodayCheckInStatus(ctx context.Context, userID string) (*CheckInStatus, error)

	// CalculateTotalHours sums closed hours over the last windowDays days.
	// windowDays of zero or less covers every entry.
	CalculateTotalHours(ctx context.Context, userID string, windowDays int) (float64, error)

	// GetAllEmployeesTimeLogs builds the admin report, ordered by user ID
	GetAllEmployeesTimeLogs(ctx context.Context) ([]entity.EmployeeTimeLog, error)
}
