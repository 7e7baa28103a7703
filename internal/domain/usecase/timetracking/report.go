package timetracking

import (
	"context"
	"slices"
	"strings"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
)

// GetAllEmployeesTimeLogs builds one report row per stored ledger, ordered by user ID
func (s *Service) GetAllEmployeesTimeLogs(ctx context.Context) ([]entity.EmployeeTimeLog, error) {
	var generation uint64
	if s.reportCache != nil {
		if report, ok := s.reportCache.Get(); ok {
			return report, nil
		}
		generation = s.reportCache.Generation()
	}

	ledgers, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	now := s.timeProvider.Now()
	report := make([]entity.EmployeeTimeLog, 0, len(ledgers))
	for _, ledger := range ledgers {
		report = append(report, entity.LedgerToEmployeeTimeLog(ledger, now))
	}
	slices.SortFunc(report, func(a, b entity.EmployeeTimeLog) int {
		return strings.Compare(a.UserID, b.UserID)
	})

	if s.reportCache != nil {
		s.reportCache.Set(report, generation)
	}
	return report, nil
}

// StaleCheckIns returns every open entry dated before today, ordered by user ID
func (s *Service) StaleCheckIns(ctx context.Context) ([]entity.TimeEntry, error) {
	ledgers, err := s.ledgerRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	today := entity.CalendarDate(s.timeProvider.Now())
	var stale []entity.TimeEntry
	for _, ledger := range ledgers {
		if ledger.HasStaleCheckIn(today) {
			stale = append(stale, *ledger.CurrentCheckIn.Clone())
		}
	}
	slices.SortFunc(stale, func(a, b entity.TimeEntry) int {
		return strings.Compare(a.UserID, b.UserID)
	})
	return stale, nil
}
