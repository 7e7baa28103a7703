package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// LockRepository implements expiring per-user locks with SET NX PX
type LockRepository struct {
	client *redis.Client
	prefix string
	logger coreport.Logger
}

var _ persistence.UserLockRepository = (*LockRepository)(nil)

// NewLockRepository creates a new redis lock repository
func NewLockRepository(client *redis.Client, prefix string, logger coreport.Logger) *LockRepository {
	if prefix == "" {
		prefix = persistence.LedgersKey
	}
	return &LockRepository{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

func (r *LockRepository) lockKey(userID string) string {
	return fmt.Sprintf("%s:lock:%s", r.prefix, userID)
}

// AcquireLock sets the lock key only if it does not exist; redis expires it after duration
func (r *LockRepository) AcquireLock(ctx context.Context, userID string, duration time.Duration) error {
	ok, err := r.client.SetNX(ctx, r.lockKey(userID), 1, duration).Result()
	if err != nil {
		r.logger.Error("Failed to acquire lock", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if !ok {
		return errs.ErrUserLocked
	}
	return nil
}

// ReleaseLock deletes the lock key; a missing key is not an error
func (r *LockRepository) ReleaseLock(ctx context.Context, userID string) error {
	if err := r.client.Del(ctx, r.lockKey(userID)).Err(); err != nil {
		r.logger.Error("Failed to release lock", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return nil
}
