package dto

import (
	"fmt"
	"time"

	"github.com/gookit/validate"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
)

// CheckInRequest represents the API request for a check-in
type CheckInRequest struct {
	UserName string `json:"userName" validate:"required|maxLen:128"`
}

// Validate applies the struct rules of the request
func (r *CheckInRequest) Validate() error {
	v := validate.Struct(r)
	if !v.Validate() {
		return fmt.Errorf("%w: %s", errs.ErrInvalidRequest, v.Errors.One())
	}
	return nil
}

// CheckInResponse represents the API response for a successful check-in
type CheckInResponse struct {
	UserID      string    `json:"userId"`
	Success     bool      `json:"success"`
	CheckInTime time.Time `json:"checkInTime"`
}

// CheckOutResponse represents the API response for a successful check-out
type CheckOutResponse struct {
	UserID       string    `json:"userId"`
	Success      bool      `json:"success"`
	CheckOutTime time.Time `json:"checkOutTime"`
	HoursWorked  float64   `json:"hoursWorked"`
}

// StatusResponse represents today's check-in status of a user
type StatusResponse struct {
	UserID      string     `json:"userId"`
	CheckedIn   bool       `json:"checkedIn"`
	CheckInTime *time.Time `json:"checkInTime,omitempty"`
}

// HoursResponse represents the hours worked in a window
type HoursResponse struct {
	UserID     string  `json:"userId"`
	Days       int     `json:"days"`
	TotalHours float64 `json:"totalHours"`
}

// TimeLogsResponse represents the admin report
type TimeLogsResponse struct {
	Employees []entity.EmployeeTimeLog `json:"employees"`
}
