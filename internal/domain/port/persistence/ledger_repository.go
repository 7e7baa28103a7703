package persistence

import (
	"context"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
)

// LedgerRepository reads and writes ledgers one user at a time
type LedgerRepository interface {
	// Get retrieves the ledger of a user
	//
	// Possible errors:
	// - ErrLedgerNotFound: If the user has never checked in
	// - ErrStorageUnavailable: If the backend cannot be read
	Get(ctx context.Context, userID string) (*entity.UserTimeLedger, error)

	// Put stores ledger if the stored version still equals ledger.Version,
	// then increments ledger.Version. A ledger with Version 0 must not exist yet.
	//
	// Possible errors:
	// - ErrVersionConflict: If another writer stored the ledger first
	// - ErrStorageUnavailable: If the backend cannot be written
	Put(ctx context.Context, ledger *entity.UserTimeLedger) error

	// List returns every stored ledger in no particular order
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the backend cannot be read
	List(ctx context.Context) ([]*entity.UserTimeLedger, error)
}
