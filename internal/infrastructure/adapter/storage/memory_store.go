package storage

import (
	"context"
	"sync"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// MemoryStore keeps the encoded collection in a process-local key/value map
type MemoryStore struct {
	mu     sync.RWMutex
	values map[string][]byte
}

var _ persistence.LedgerStore = (*MemoryStore)(nil)

// NewMemoryStore creates an empty store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string][]byte{}}
}

// Load decodes the collection stored under LedgersKey
func (s *MemoryStore) Load(_ context.Context) (map[string]*entity.UserTimeLedger, error) {
	s.mu.RLock()
	data := s.values[persistence.LedgersKey]
	s.mu.RUnlock()

	return decodeLedgers(data)
}

// Save encodes ledgers and replaces the stored value
func (s *MemoryStore) Save(_ context.Context, ledgers map[string]*entity.UserTimeLedger) error {
	data, err := encodeLedgers(ledgers)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.values[persistence.LedgersKey] = data
	s.mu.Unlock()
	return nil
}

// Raw returns the stored bytes for key
func (s *MemoryStore) Raw(key string) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.values[key]
	return data, ok
}

// SetRaw replaces the stored bytes for key
func (s *MemoryStore) SetRaw(key string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = data
}
