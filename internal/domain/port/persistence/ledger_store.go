package persistence

import (
	"context"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
)

// LedgersKey is the single key under which the whole ledger collection is persisted
const LedgersKey = "employee_time_logs"

// LedgerStore persists the whole ledger collection as one document
type LedgerStore interface {
	// Load returns every ledger keyed by user ID
	// A missing or empty store yields an empty map, not an error
	//
	// Possible errors:
	// - ErrStorageCorrupt: If the stored document cannot be decoded
	// - ErrStorageUnavailable: If the backend cannot be read
	Load(ctx context.Context) (map[string]*entity.UserTimeLedger, error)

	// Save replaces the stored collection with ledgers
	//
	// Possible errors:
	// - ErrStorageUnavailable: If the backend cannot be written
	Save(ctx context.Context, ledgers map[string]*entity.UserTimeLedger) error
}
