package timetracking

import (
	"context"
	"errors"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
)

// GetTodayCheckInStatus reports whether the user has an open entry dated today.
// An entry left open from an earlier day does not count.
func (s *Service) GetTodayCheckInStatus(ctx context.Context, userID string) (*usecase.CheckInStatus, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return nil, err
	}

	ledger, err := s.ledgerRepo.Get(ctx, userID)
	if errors.Is(err, errs.ErrLedgerNotFound) {
		return &usecase.CheckInStatus{CheckedIn: false}, nil
	}
	if err != nil {
		return nil, err
	}

	open := ledger.OpenEntryOn(entity.CalendarDate(s.timeProvider.Now()))
	if open == nil {
		return &usecase.CheckInStatus{CheckedIn: false}, nil
	}

	checkInTime := open.CheckInTime
	return &usecase.CheckInStatus{CheckedIn: true, CheckInTime: &checkInTime}, nil
}

// CalculateTotalHours sums the closed hours of a user over the last windowDays days.
// windowDays of zero or less covers every entry, as does a window longer than a
// Duration can hold; an unknown user has 0 hours.
func (s *Service) CalculateTotalHours(ctx context.Context, userID string, windowDays int) (float64, error) {
	if err := entity.ValidateUserID(userID); err != nil {
		return 0, err
	}

	ledger, err := s.ledgerRepo.Get(ctx, userID)
	if errors.Is(err, errs.ErrLedgerNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	return ledger.TotalHours(s.timeProvider.Now(), windowDuration(windowDays)), nil
}
