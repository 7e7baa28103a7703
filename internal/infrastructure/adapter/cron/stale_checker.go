package cron

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// DefaultSchedule runs the checks every fifteen minutes
const DefaultSchedule = "@every 15m"

// StaleSource lists open entries left over from an earlier day
type StaleSource interface {
	StaleCheckIns(ctx context.Context) ([]entity.TimeEntry, error)
}

// LockCleaner removes expired per-user locks
type LockCleaner interface {
	CleanupExpiredLocks(ctx context.Context) (int64, error)
}

// StaleChecker periodically reports check-ins that were never closed.
// It only reads ledgers.
type StaleChecker struct {
	source      StaleSource
	lockCleaner LockCleaner
	cron        *cron.Cron
	schedule    string
	timeout     time.Duration
	logger      coreport.Logger
	metrics     coreport.Metrics
}

// NewStaleChecker creates a new stale check-in checker.
// lockCleaner may be nil when the lock backend expires locks itself.
func NewStaleChecker(source StaleSource, lockCleaner LockCleaner, schedule string, logger coreport.Logger, metrics coreport.Metrics) *StaleChecker {
	if schedule == "" {
		schedule = DefaultSchedule
	}
	return &StaleChecker{
		source:      source,
		lockCleaner: lockCleaner,
		cron:        cron.New(),
		schedule:    schedule,
		timeout:     time.Minute,
		logger:      logger,
		metrics:     metrics,
	}
}

// Start registers the job and starts the scheduler
func (c *StaleChecker) Start() error {
	c.logger.Info("Starting stale check-in checker", map[string]any{
		"schedule": c.schedule,
	})

	if _, err := c.cron.AddFunc(c.schedule, c.run); err != nil {
		return fmt.Errorf("failed to add cron job: %w", err)
	}

	c.cron.Start()
	return nil
}

// Stop stops the scheduler and waits for a running job
func (c *StaleChecker) Stop() {
	ctx := c.cron.Stop()
	<-ctx.Done()
	c.logger.Info("Stale check-in checker stopped", nil)
}

func (c *StaleChecker) run() {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	if _, err := c.Check(ctx); err != nil {
		c.logger.Error("Stale check-in check failed", map[string]any{
			"error": err.Error(),
		})
	}
	if c.lockCleaner != nil {
		if _, err := c.lockCleaner.CleanupExpiredLocks(ctx); err != nil {
			c.logger.Error("Expired lock cleanup failed", map[string]any{
				"error": err.Error(),
			})
		}
	}
}

// Check runs one scan, logs every stale entry and updates the gauge
func (c *StaleChecker) Check(ctx context.Context) (int, error) {
	stale, err := c.source.StaleCheckIns(ctx)
	if err != nil {
		return 0, err
	}

	for _, entry := range stale {
		c.logger.Warn("Check-in left open from an earlier day", map[string]any{
			"user_id":       entry.UserID,
			"user_name":     entry.UserName,
			"date":          entry.Date,
			"check_in_time": entry.CheckInTime,
		})
	}
	c.metrics.SetStaleCheckIns(len(stale))
	return len(stale), nil
}
