package storage

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	timeadapter "github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/time"
)

// sampleLedgers builds a mixed collection: one user with closed entries and
// an open one, one user with only closed entries, one user with only an open entry
func sampleLedgers(t *testing.T) map[string]*entity.UserTimeLedger {
	t.Helper()
	clock := timeadapter.NewManualTimeProvider(time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC))

	alice, err := entity.NewUserTimeLedger("alice")
	require.NoError(t, err)
	_, _, err = alice.CheckIn("Alice", clock)
	require.NoError(t, err)
	clock.Advance(8*time.Hour + 30*time.Minute)
	_, err = alice.CheckOut(clock)
	require.NoError(t, err)

	bob, err := entity.NewUserTimeLedger("bob")
	require.NoError(t, err)
	_, _, err = bob.CheckIn("Bob", clock)
	require.NoError(t, err)
	clock.Advance(2*time.Hour + 30*time.Minute)
	_, err = bob.CheckOut(clock)
	require.NoError(t, err)

	clock.Set(time.Date(2024, 3, 5, 9, 15, 0, 0, time.UTC))
	_, _, err = alice.CheckIn("Alice A.", clock)
	require.NoError(t, err)

	carol, err := entity.NewUserTimeLedger("carol")
	require.NoError(t, err)
	_, _, err = carol.CheckIn("Carol", clock)
	require.NoError(t, err)

	alice.Version = 3
	bob.Version = 2
	carol.Version = 1

	return map[string]*entity.UserTimeLedger{
		"alice": alice,
		"bob":   bob,
		"carol": carol,
	}
}
