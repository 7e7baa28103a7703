package database

import (
	"context"
	"errors"
	"fmt"
	"strings"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	"gorm.io/gorm"
)

// ErrorMapper maps database errors to domain errors
type ErrorMapper struct{}

// NewErrorMapper creates a new ErrorMapper
func NewErrorMapper() *ErrorMapper {
	return &ErrorMapper{}
}

// MapError maps a database error to a domain error, keeping the driver
// message for logs
func (m *ErrorMapper) MapError(err error, operation string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.ErrLedgerNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%w: %s canceled: %v", errs.ErrStorageUnavailable, operation, err)
	}

	errMsg := strings.ToLower(err.Error())

	switch {
	// Concurrent writers
	case strings.Contains(errMsg, "could not serialize access") ||
		strings.Contains(errMsg, "serialization failure"):
		return fmt.Errorf("%w: %s: %v", errs.ErrVersionConflict, operation, err)

	case strings.Contains(errMsg, "deadlock") ||
		strings.Contains(errMsg, "lock timeout"):
		return fmt.Errorf("%w: %s: %v", errs.ErrUserLocked, operation, err)

	// Two writers created the same ledger
	case strings.Contains(errMsg, "duplicate key") ||
		strings.Contains(errMsg, "unique constraint"):
		return fmt.Errorf("%w: %s: %v", errs.ErrVersionConflict, operation, err)

	case strings.Contains(errMsg, "connection refused") ||
		strings.Contains(errMsg, "no connection") ||
		strings.Contains(errMsg, "connection reset") ||
		strings.Contains(errMsg, "timeout") ||
		strings.Contains(errMsg, "deadline exceeded"):
		return fmt.Errorf("%w: %s: %v", errs.ErrStorageUnavailable, operation, err)

	default:
		return fmt.Errorf("%w: %s: %v", errs.ErrInternalServer, operation, err)
	}
}
