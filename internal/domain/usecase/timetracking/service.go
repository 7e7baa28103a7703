package timetracking

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
)

// Operation outcomes recorded in metrics
const (
	OutcomeSuccess  = "success"
	OutcomeRejected = "rejected"
	OutcomeError    = "error"
)

// Options tunes the mutation path
type Options struct {
	LockTimeout        time.Duration // TTL of the per-user lock
	MaxConflictRetries int           // Extra attempts after a version conflict
	ConflictBackoff    time.Duration // Base delay between conflict attempts
	QueueSize          int           // Pending mutations per user
	WorkerIdleTimeout  time.Duration // Idle time after which a user's worker exits
}

// DefaultOptions returns the options used when none are configured
func DefaultOptions() Options {
	return Options{
		LockTimeout:        5 * time.Second,
		MaxConflictRetries: 3,
		ConflictBackoff:    10 * time.Millisecond,
		QueueSize:          defaultQueueSize,
		WorkerIdleTimeout:  defaultIdleTimeout,
	}
}

// Service implements the time-tracking operations on top of a LedgerRepository
type Service struct {
	ledgerRepo   persistence.LedgerRepository
	lockRepo     persistence.UserLockRepository
	reportCache  persistence.ReportCache
	manager      *LedgerManager
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	metrics      coreport.Metrics
	options      Options
}

var _ usecase.TimeTrackingUseCase = (*Service)(nil)

// NewService creates a new time-tracking service.
// reportCache may be nil to always rebuild the admin report.
func NewService(
	ledgerRepo persistence.LedgerRepository,
	lockRepo persistence.UserLockRepository,
	reportCache persistence.ReportCache,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	metrics coreport.Metrics,
	options Options,
) *Service {
	if options.LockTimeout <= 0 {
		options.LockTimeout = DefaultOptions().LockTimeout
	}
	if options.MaxConflictRetries < 0 {
		options.MaxConflictRetries = 0
	}

	return &Service{
		ledgerRepo:   ledgerRepo,
		lockRepo:     lockRepo,
		reportCache:  reportCache,
		manager:      NewLedgerManager(logger, options.QueueSize, options.WorkerIdleTimeout),
		timeProvider: timeProvider,
		logger:       logger,
		metrics:      metrics,
		options:      options,
	}
}

// Manager returns the underlying ledger manager
// Used for graceful shutdown
func (s *Service) Manager() *LedgerManager {
	return s.manager
}

// Shutdown drains pending mutations
func (s *Service) Shutdown() {
	s.manager.Shutdown()
}

// loadLedger returns the stored ledger or a fresh one for an unknown user
func (s *Service) loadLedger(ctx context.Context, userID string) (*entity.UserTimeLedger, error) {
	ledger, err := s.ledgerRepo.Get(ctx, userID)
	if errors.Is(err, errs.ErrLedgerNotFound) {
		return entity.NewUserTimeLedger(userID)
	}
	if err != nil {
		return nil, err
	}
	return ledger, nil
}

// mutate runs fn against the user's ledger inside the user's queue and lock.
// fn sees a fresh copy on every attempt; a version conflict re-runs it.
func (s *Service) mutate(ctx context.Context, userID, action string, fn func(ledger *entity.UserTimeLedger) error) error {
	return s.manager.Submit(ctx, userID, func(ctx context.Context) error {
		if err := s.lockRepo.AcquireLock(ctx, userID, s.options.LockTimeout); err != nil {
			return err
		}
		defer func() {
			if err := s.lockRepo.ReleaseLock(context.WithoutCancel(ctx), userID); err != nil {
				s.logger.Warn("Failed to release ledger lock", map[string]any{
					"user_id": userID,
					"error":   err.Error(),
				})
			}
		}()

		attempts := s.options.MaxConflictRetries + 1
		var err error
		for attempt := 0; attempt < attempts; attempt++ {
			if attempt > 0 {
				s.timeProvider.Sleep(coreport.Duration(s.options.ConflictBackoff * time.Duration(attempt)))
			}

			var ledger *entity.UserTimeLedger
			ledger, err = s.loadLedger(ctx, userID)
			if err != nil {
				return err
			}
			if err = fn(ledger); err != nil {
				return err
			}

			err = s.ledgerRepo.Put(ctx, ledger)
			if err == nil {
				if s.reportCache != nil {
					s.reportCache.Invalidate()
				}
				return nil
			}
			if !errs.IsVersionConflictError(err) {
				return err
			}

			s.logger.Warn("Ledger version conflict, retrying", map[string]any{
				"user_id": userID,
				"action":  action,
				"attempt": attempt + 1,
				"of":      attempts,
			})
		}
		return err
	})
}

// recordOutcome counts an operation and logs failures that are not plain rejections
func (s *Service) recordOutcome(action, userID string, err error) {
	switch {
	case err == nil:
		s.metrics.RecordOperation(action, OutcomeSuccess)
	case errs.IsPreconditionError(err) || errs.IsValidationError(err):
		s.metrics.RecordOperation(action, OutcomeRejected)
	default:
		s.metrics.RecordOperation(action, OutcomeError)
		fields := map[string]any{
			"user_id": userID,
			"action":  action,
			"error":   err.Error(),
		}
		var ledgerErr *errs.LedgerError
		if errors.As(err, &ledgerErr) {
			for k, v := range ledgerErr.LogFields() {
				fields[k] = v
			}
		}
		s.logger.Error("Ledger operation failed", fields)
	}
}

// StatusCodeFor maps an operation error onto an HTTP status code
func StatusCodeFor(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errs.IsValidationError(err):
		return http.StatusBadRequest
	case errs.IsPreconditionError(err),
		errs.IsVersionConflictError(err),
		errs.IsUserLockedError(err):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// errorMessageFor returns the message shown to callers for err
func errorMessageFor(err error) string {
	switch {
	case errs.IsAlreadyCheckedInError(err):
		return errs.ErrAlreadyCheckedIn.Error()
	case errs.IsNotCheckedInError(err):
		return errs.ErrNotCheckedIn.Error()
	case errs.IsVersionConflictError(err), errs.IsUserLockedError(err):
		return "ledger is being updated concurrently, please try again"
	case errs.IsValidationError(err):
		return err.Error()
	default:
		return "internal server error"
	}
}
