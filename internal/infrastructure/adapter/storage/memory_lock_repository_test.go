package storage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	timeadapter "github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/time"
)

func TestMemoryLockRepository(t *testing.T) {
	ctx := context.Background()
	clock := timeadapter.NewManualTimeProvider(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))
	repo := NewMemoryLockRepository(clock)

	require.NoError(t, repo.AcquireLock(ctx, "alice", 5*time.Second))

	t.Run("held lock blocks", func(t *testing.T) {
		assert.ErrorIs(t, repo.AcquireLock(ctx, "alice", 5*time.Second), errs.ErrUserLocked)
	})

	t.Run("other users are independent", func(t *testing.T) {
		require.NoError(t, repo.AcquireLock(ctx, "bob", 5*time.Second))
		require.NoError(t, repo.ReleaseLock(ctx, "bob"))
	})

	t.Run("expired lock can be taken", func(t *testing.T) {
		clock.Advance(6 * time.Second)
		require.NoError(t, repo.AcquireLock(ctx, "alice", 5*time.Second))
	})

	t.Run("release frees the lock", func(t *testing.T) {
		require.NoError(t, repo.ReleaseLock(ctx, "alice"))
		require.NoError(t, repo.AcquireLock(ctx, "alice", 5*time.Second))
	})

	t.Run("releasing a free lock is fine", func(t *testing.T) {
		assert.NoError(t, repo.ReleaseLock(ctx, "nobody"))
	})
}
