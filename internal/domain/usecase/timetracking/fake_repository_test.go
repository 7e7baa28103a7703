package timetracking

import (
	"context"
	"sync"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
)

// fakeLedgerRepository is a versioned in-memory repository for scenario tests
type fakeLedgerRepository struct {
	mu      sync.Mutex
	ledgers map[string]*entity.UserTimeLedger
	puts    int
}

func newFakeLedgerRepository() *fakeLedgerRepository {
	return &fakeLedgerRepository{ledgers: map[string]*entity.UserTimeLedger{}}
}

func (r *fakeLedgerRepository) Get(_ context.Context, userID string) (*entity.UserTimeLedger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ledger, ok := r.ledgers[userID]
	if !ok {
		return nil, errs.ErrLedgerNotFound
	}
	return ledger.Clone(), nil
}

func (r *fakeLedgerRepository) Put(_ context.Context, ledger *entity.UserTimeLedger) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	var stored int64
	if current, ok := r.ledgers[ledger.UserID]; ok {
		stored = current.Version
	}
	if stored != ledger.Version {
		return errs.NewVersionConflictError(ledger.UserID, ledger.Version, stored)
	}

	ledger.Version++
	r.ledgers[ledger.UserID] = ledger.Clone()
	r.puts++
	return nil
}

func (r *fakeLedgerRepository) List(_ context.Context) ([]*entity.UserTimeLedger, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]*entity.UserTimeLedger, 0, len(r.ledgers))
	for _, ledger := range r.ledgers {
		out = append(out, ledger.Clone())
	}
	return out, nil
}
