package persistence

import (
	"context"
	"time"
)

// UserLockRepository defines methods for managing per-user ledger locks
type UserLockRepository interface {
	// AcquireLock attempts to acquire the lock on a user's ledger
	// The lock expires after the given duration
	//
	// Possible errors:
	// - ErrUserLocked: If the ledger is already locked by another process
	// - ErrStorageUnavailable: If the lock backend fails
	AcquireLock(ctx context.Context, userID string, duration time.Duration) error

	// ReleaseLock releases a previously acquired lock
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the lock backend fails
	ReleaseLock(ctx context.Context, userID string) error
}
