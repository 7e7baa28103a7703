package timetracking

import (
	"fmt"
	"math"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// MaxWindowDays caps the hours window accepted from callers
const MaxWindowDays = 3660

// maxDurationDays is the longest window a Duration can hold
const maxDurationDays = math.MaxInt64 / int64(coreport.Day)

// validateCheckIn checks the identity carried by a check-in
func validateCheckIn(userID, userName string) error {
	if err := entity.ValidateUserID(userID); err != nil {
		return err
	}
	return entity.ValidateUserName(userName)
}

// ValidateWindowDays checks a caller-supplied hours window.
// Zero selects every entry; negative values are rejected here even though
// the ledger itself treats them like zero.
func ValidateWindowDays(days int) error {
	if days < 0 {
		return fmt.Errorf("%w: days must not be negative", errs.ErrInvalidWindow)
	}
	if days > MaxWindowDays {
		return fmt.Errorf("%w: days must not exceed %d", errs.ErrInvalidWindow, MaxWindowDays)
	}
	return nil
}

// windowDuration converts windowDays to a ledger window. Zero or less, and any
// window too long for a Duration, select every entry.
func windowDuration(windowDays int) coreport.Duration {
	if windowDays <= 0 || int64(windowDays) > maxDurationDays {
		return 0
	}
	return coreport.Duration(windowDays) * coreport.Day
}
