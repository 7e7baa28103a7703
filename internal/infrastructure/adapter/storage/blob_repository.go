package storage

import (
	"context"
	"sync"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// BlobLedgerRepository provides per-user access on top of a whole-collection store.
// Every Put is a read-modify-write of the full collection under one mutex.
type BlobLedgerRepository struct {
	store persistence.LedgerStore
	mu    sync.Mutex
}

var _ persistence.LedgerRepository = (*BlobLedgerRepository)(nil)

// NewBlobLedgerRepository creates a repository over store
func NewBlobLedgerRepository(store persistence.LedgerStore) *BlobLedgerRepository {
	return &BlobLedgerRepository{store: store}
}

// Get returns a copy of the user's ledger
func (r *BlobLedgerRepository) Get(ctx context.Context, userID string) (*entity.UserTimeLedger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledgers, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	ledger, ok := ledgers[userID]
	if !ok {
		return nil, errs.ErrLedgerNotFound
	}
	return ledger, nil
}

// Put stores the ledger when its version matches the stored one
func (r *BlobLedgerRepository) Put(ctx context.Context, ledger *entity.UserTimeLedger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledgers, err := r.store.Load(ctx)
	if err != nil {
		return err
	}

	var stored int64
	if current, ok := ledgers[ledger.UserID]; ok {
		stored = current.Version
	}
	if stored != ledger.Version {
		return errs.NewVersionConflictError(ledger.UserID, ledger.Version, stored)
	}

	next := ledger.Clone()
	next.Version++
	ledgers[ledger.UserID] = next
	if err := r.store.Save(ctx, ledgers); err != nil {
		return err
	}

	ledger.Version = next.Version
	return nil
}

// List returns every stored ledger
func (r *BlobLedgerRepository) List(ctx context.Context) ([]*entity.UserTimeLedger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledgers, err := r.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	result := make([]*entity.UserTimeLedger, 0, len(ledgers))
	for _, ledger := range ledgers {
		result = append(result, ledger)
	}
	return result, nil
}
