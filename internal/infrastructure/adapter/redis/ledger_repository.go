package redis

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/goccy/go-json"
	"github.com/redis/go-redis/v9"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// LedgerRepository stores one JSON document per user and an index set of user ids
type LedgerRepository struct {
	client *redis.Client
	prefix string
	logger coreport.Logger
}

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new redis-backed ledger repository.
// An empty prefix falls back to the persisted layout key.
func NewLedgerRepository(client *redis.Client, prefix string, logger coreport.Logger) *LedgerRepository {
	if prefix == "" {
		prefix = persistence.LedgersKey
	}
	return &LedgerRepository{
		client: client,
		prefix: prefix,
		logger: logger,
	}
}

// ledgerKey generates the redis key of a user's ledger
func (r *LedgerRepository) ledgerKey(userID string) string {
	return fmt.Sprintf("%s:user:%s", r.prefix, userID)
}

// indexKey generates the redis key of the user id set
func (r *LedgerRepository) indexKey() string {
	return fmt.Sprintf("%s:users", r.prefix)
}

// Get retrieves the ledger of a user
func (r *LedgerRepository) Get(ctx context.Context, userID string) (*entity.UserTimeLedger, error) {
	return r.read(ctx, r.client, userID)
}

// List retrieves every ledger sorted by user id
func (r *LedgerRepository) List(ctx context.Context) ([]*entity.UserTimeLedger, error) {
	userIDs, err := r.client.SMembers(ctx, r.indexKey()).Result()
	if err != nil {
		return nil, r.unavailable("list ledgers", err)
	}
	sort.Strings(userIDs)

	ledgers := make([]*entity.UserTimeLedger, 0, len(userIDs))
	for _, userID := range userIDs {
		ledger, err := r.Get(ctx, userID)
		if errors.Is(err, errs.ErrLedgerNotFound) {
			// Index entry without a document, the write that added it did not commit
			continue
		}
		if err != nil {
			return nil, err
		}
		ledgers = append(ledgers, ledger)
	}
	return ledgers, nil
}

// Put writes the ledger if the stored version still equals ledger.Version.
// The document key is watched so a concurrent writer aborts the transaction.
func (r *LedgerRepository) Put(ctx context.Context, ledger *entity.UserTimeLedger) error {
	key := r.ledgerKey(ledger.UserID)
	next := ledger.Clone()
	next.Version = ledger.Version + 1

	data, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("%w: failed to marshal ledger: %v", errs.ErrInternalServer, err)
	}

	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := r.read(ctx, tx, ledger.UserID)
		var actual int64
		switch {
		case errors.Is(err, errs.ErrLedgerNotFound):
		case err != nil:
			return err
		default:
			actual = current.Version
		}
		if actual != ledger.Version {
			return errs.NewVersionConflictError(ledger.UserID, ledger.Version, actual)
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, key, data, 0)
			pipe.SAdd(ctx, r.indexKey(), ledger.UserID)
			return nil
		})
		return err
	}, key)

	switch {
	case errors.Is(err, redis.TxFailedErr):
		r.logger.Debug("Ledger changed during transaction", map[string]any{
			"user_id": ledger.UserID,
		})
		var actual int64
		if current, err := r.Get(ctx, ledger.UserID); err == nil {
			actual = current.Version
		}
		return errs.NewVersionConflictError(ledger.UserID, ledger.Version, actual)
	case err != nil:
		var conflict *errs.VersionConflictError
		if errors.As(err, &conflict) || errors.Is(err, errs.ErrStorageCorrupt) || errors.Is(err, errs.ErrStorageUnavailable) {
			return err
		}
		return r.unavailable("put ledger", err)
	}

	ledger.Version = next.Version
	return nil
}

// getter is satisfied by both the client and a watched transaction
type getter interface {
	Get(ctx context.Context, key string) *redis.StringCmd
}

// read loads one ledger document
func (r *LedgerRepository) read(ctx context.Context, cmd getter, userID string) (*entity.UserTimeLedger, error) {
	data, err := cmd.Get(ctx, r.ledgerKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, errs.ErrLedgerNotFound
		}
		return nil, r.unavailable("get ledger", err)
	}

	var ledger entity.UserTimeLedger
	if err := json.Unmarshal(data, &ledger); err != nil {
		r.logger.Error("Stored ledger is not valid JSON", map[string]any{
			"user_id": userID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: ledger %s: %v", errs.ErrStorageCorrupt, userID, err)
	}
	ledger.UserID = userID
	if ledger.CheckIns == nil {
		ledger.CheckIns = []entity.TimeEntry{}
	}
	return &ledger, nil
}

func (r *LedgerRepository) unavailable(op string, err error) error {
	r.logger.Error("Redis operation failed", map[string]any{
		"operation": op,
		"error":     err.Error(),
	})
	return fmt.Errorf("%w: %s: %v", errs.ErrStorageUnavailable, op, err)
}
