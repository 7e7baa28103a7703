package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeAlreadyCheckedIn = 4001
	CodeNotCheckedIn     = 4002
	CodeInvalidUserID    = 4003
	CodeInvalidUserName  = 4004
	CodeInvalidWindow    = 4005
	CodeInvalidRequest   = 4006
	CodeLedgerNotFound   = 4040
	CodeVersionConflict  = 4090
	CodeUserLocked       = 4230

	// 5xxx - Server errors
	CodeInternalServer     = 5000
	CodeStorageUnavailable = 5001
	CodeStorageCorrupt     = 5002
)

// Base error types
var (
	// ErrAlreadyCheckedIn is returned when the user already has an open entry for today
	ErrAlreadyCheckedIn = errors.New("already checked in today")

	// ErrNotCheckedIn is returned when a check-out is attempted without an open entry
	ErrNotCheckedIn = errors.New("not checked in")

	// ErrInvalidUserID is returned when the user ID is empty or malformed
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrInvalidUserName is returned when the display name is empty or too long
	ErrInvalidUserName = errors.New("invalid user name")

	// ErrInvalidWindow is returned when an aggregation window is out of range
	ErrInvalidWindow = errors.New("invalid window days")

	// ErrInvalidRequest is returned when the request format is invalid
	ErrInvalidRequest = errors.New("invalid request")

	// ErrLedgerNotFound is returned when no ledger exists for the user yet
	ErrLedgerNotFound = errors.New("ledger not found")

	// ErrVersionConflict is returned when a ledger was written by someone else
	// between read and write
	ErrVersionConflict = errors.New("ledger version conflict")

	// ErrUserLocked is returned when a user ledger is locked by another operation
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrStorageUnavailable is returned when the backing store cannot be reached
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrStorageCorrupt is returned when the persisted ledger blob cannot be decoded
	ErrStorageCorrupt = errors.New("stored ledger data is corrupt")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrAlreadyCheckedIn):
		return CodeAlreadyCheckedIn
	case errors.Is(err, ErrNotCheckedIn):
		return CodeNotCheckedIn
	case errors.Is(err, ErrInvalidUserID):
		return CodeInvalidUserID
	case errors.Is(err, ErrInvalidUserName):
		return CodeInvalidUserName
	case errors.Is(err, ErrInvalidWindow):
		return CodeInvalidWindow
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrLedgerNotFound):
		return CodeLedgerNotFound
	case errors.Is(err, ErrVersionConflict):
		return CodeVersionConflict
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrStorageUnavailable):
		return CodeStorageUnavailable
	case errors.Is(err, ErrStorageCorrupt):
		return CodeStorageCorrupt
	default:
		return CodeInternalServer
	}
}

// LedgerError represents a failed ledger operation for one user
type LedgerError struct {
	UserID string
	Action string
	Reason string
	Err    error
}

// Error implements the error interface for LedgerError
func (e *LedgerError) Error() string {
	return fmt.Sprintf("%s failed for user %s: %s - %v", e.Action, e.UserID, e.Reason, e.Err)
}

// Unwrap returns the underlying error
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *LedgerError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "ledger_error",
		"user_id":    e.UserID,
		"action":     e.Action,
		"reason":     e.Reason,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewLedgerError creates a detailed ledger error
func NewLedgerError(userID, action, reason string, err error) error {
	return &LedgerError{
		UserID: userID,
		Action: action,
		Reason: reason,
		Err:    err,
	}
}

// VersionConflictError carries both sides of a failed optimistic write
type VersionConflictError struct {
	UserID          string
	ExpectedVersion int64
	ActualVersion   int64
}

// Error implements the error interface
func (e *VersionConflictError) Error() string {
	return fmt.Sprintf("ledger version conflict for user %s: expected %d, found %d",
		e.UserID, e.ExpectedVersion, e.ActualVersion)
}

// Is checks if the target error is an ErrVersionConflict
func (e *VersionConflictError) Is(target error) bool {
	return target == ErrVersionConflict
}

// LogFields returns a map of fields for structured logging
func (e *VersionConflictError) LogFields() map[string]any {
	return map[string]any{
		"error_type":       "version_conflict",
		"user_id":          e.UserID,
		"expected_version": e.ExpectedVersion,
		"actual_version":   e.ActualVersion,
		"error_code":       CodeVersionConflict,
	}
}

// NewVersionConflictError creates a new detailed version conflict error
func NewVersionConflictError(userID string, expected, actual int64) error {
	return &VersionConflictError{
		UserID:          userID,
		ExpectedVersion: expected,
		ActualVersion:   actual,
	}
}

// IsAlreadyCheckedInError checks if the error is a duplicate check-in
func IsAlreadyCheckedInError(err error) bool {
	return errors.Is(err, ErrAlreadyCheckedIn)
}

// IsNotCheckedInError checks if the error is a check-out without an open entry
func IsNotCheckedInError(err error) bool {
	return errors.Is(err, ErrNotCheckedIn)
}

// IsVersionConflictError checks if the error is an optimistic write conflict
func IsVersionConflictError(err error) bool {
	return errors.Is(err, ErrVersionConflict)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsValidationError checks if the error is caused by bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidUserID) ||
		errors.Is(err, ErrInvalidUserName) ||
		errors.Is(err, ErrInvalidWindow) ||
		errors.Is(err, ErrInvalidRequest)
}

// IsPreconditionError checks if the error is a recoverable ledger precondition failure
func IsPreconditionError(err error) bool {
	return IsAlreadyCheckedInError(err) || IsNotCheckedInError(err)
}
