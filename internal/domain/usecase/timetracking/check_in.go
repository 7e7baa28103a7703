package timetracking

import (
	"context"
	"strings"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
)

// CheckIn opens today's entry for a user.
// A second check-in on the same calendar day is rejected and leaves the ledger unchanged.
func (s *Service) CheckIn(ctx context.Context, req usecase.CheckInRequest) (*usecase.CheckInResult, error) {
	action := string(entity.ActionCheckIn)
	userName := strings.TrimSpace(req.UserName)

	err := validateCheckIn(req.UserID, userName)
	var opened *entity.TimeEntry
	if err == nil {
		err = s.mutate(ctx, req.UserID, action, func(ledger *entity.UserTimeLedger) error {
			entry, stale, err := ledger.CheckIn(userName, s.timeProvider)
			if err != nil {
				return err
			}
			if stale != nil {
				s.logger.Warn("Replacing open check-in left from an earlier day", map[string]any{
					"user_id":       req.UserID,
					"stale_date":    stale.Date,
					"stale_checkin": stale.CheckInTime,
				})
			}
			opened = entry
			return nil
		})
	}

	s.recordOutcome(action, req.UserID, err)
	if err != nil {
		return &usecase.CheckInResult{
			Success:      false,
			ErrorMessage: errorMessageFor(err),
			StatusCode:   StatusCodeFor(err),
		}, err
	}

	s.logger.Info("User checked in", map[string]any{
		"user_id":      req.UserID,
		"date":         opened.Date,
		"checkin_time": opened.CheckInTime,
	})

	return &usecase.CheckInResult{
		Success:     true,
		CheckInTime: opened.CheckInTime,
		StatusCode:  StatusCodeFor(nil),
	}, nil
}
