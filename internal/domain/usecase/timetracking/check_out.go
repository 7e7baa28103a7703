package timetracking

import (
	"context"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
)

// CheckOut closes the open entry of a user, whatever day it was opened on
func (s *Service) CheckOut(ctx context.Context, userID string) (*usecase.CheckOutResult, error) {
	action := string(entity.ActionCheckOut)

	err := entity.ValidateUserID(userID)
	var closed *entity.TimeEntry
	if err == nil {
		err = s.mutate(ctx, userID, action, func(ledger *entity.UserTimeLedger) error {
			entry, err := ledger.CheckOut(s.timeProvider)
			if err != nil {
				return err
			}
			closed = entry
			return nil
		})
	}

	s.recordOutcome(action, userID, err)
	if err != nil {
		return &usecase.CheckOutResult{
			Success:      false,
			ErrorMessage: errorMessageFor(err),
			StatusCode:   StatusCodeFor(err),
		}, err
	}

	s.logger.Info("User checked out", map[string]any{
		"user_id":      userID,
		"date":         closed.Date,
		"hours_worked": closed.Hours(),
	})

	return &usecase.CheckOutResult{
		Success:      true,
		CheckOutTime: *closed.CheckOutTime,
		HoursWorked:  closed.Hours(),
		StatusCode:   StatusCodeFor(nil),
	}, nil
}
