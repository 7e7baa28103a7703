package storage

import (
	"context"
	"sync"
	"time"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// MemoryLockRepository implements expiring per-user locks for a single process
type MemoryLockRepository struct {
	timeProvider coreport.TimeProvider
	mu           sync.Mutex
	locks        map[string]time.Time
}

var _ persistence.UserLockRepository = (*MemoryLockRepository)(nil)

// NewMemoryLockRepository creates an empty lock table
func NewMemoryLockRepository(timeProvider coreport.TimeProvider) *MemoryLockRepository {
	return &MemoryLockRepository{
		timeProvider: timeProvider,
		locks:        map[string]time.Time{},
	}
}

// AcquireLock takes the lock unless an unexpired one is held
func (r *MemoryLockRepository) AcquireLock(_ context.Context, userID string, duration time.Duration) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.timeProvider.Now()
	if expiresAt, ok := r.locks[userID]; ok && now.Before(expiresAt) {
		return errs.ErrUserLocked
	}
	r.locks[userID] = now.Add(duration)
	return nil
}

// ReleaseLock drops the lock; releasing a free lock is not an error
func (r *MemoryLockRepository) ReleaseLock(_ context.Context, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.locks, userID)
	return nil
}
