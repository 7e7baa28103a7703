package storage

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/goccy/go-json"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
)

// FileStore persists the collection as one document on disk:
// {"employee_time_logs": {userId: ledger}}
type FileStore struct {
	path       string
	compressor Compressor
	logger     coreport.Logger
	mu         sync.Mutex
}

var _ persistence.LedgerStore = (*FileStore)(nil)

// NewFileStore creates a store writing to path. compressor may be nil.
func NewFileStore(path string, compressor Compressor, logger coreport.Logger) *FileStore {
	if compressor == nil {
		compressor = NoCompression{}
	}
	return &FileStore{
		path:       path,
		compressor: compressor,
		logger:     logger,
	}
}

// Load reads the document; a missing file is an empty collection
func (s *FileStore) Load(_ context.Context) (map[string]*entity.UserTimeLedger, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]*entity.UserTimeLedger{}, nil
		}
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	if len(data) == 0 {
		return map[string]*entity.UserTimeLedger{}, nil
	}

	plain, err := s.compressor.Decompress(data)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageCorrupt, err)
	}

	var document map[string]json.RawMessage
	if err := json.Unmarshal(plain, &document); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrStorageCorrupt, err)
	}

	return decodeLedgers(document[persistence.LedgersKey])
}

// Save writes the document to a temp file and renames it over the old one
func (s *FileStore) Save(_ context.Context, ledgers map[string]*entity.UserTimeLedger) error {
	encoded, err := encodeLedgers(ledgers)
	if err != nil {
		return err
	}
	plain, err := json.Marshal(map[string]json.RawMessage{persistence.LedgersKey: encoded})
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	data, err := s.compressor.Compress(plain)
	if err != nil {
		return fmt.Errorf("failed to compress document: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeAtomic(data); err != nil {
		s.logger.Error("Failed to write ledger file", map[string]any{
			"path":  s.path,
			"error": err.Error(),
		})
		return fmt.Errorf("%w: %v", errs.ErrStorageUnavailable, err)
	}
	return nil
}

// Close releases the compressor
func (s *FileStore) Close() {
	s.compressor.Close()
}

func (s *FileStore) writeAtomic(data []byte) error {
	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	tmpFile := s.path + ".tmp"
	file, err := os.Create(tmpFile)
	if err != nil {
		return err
	}

	if _, err = file.Write(data); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Sync(); err != nil {
		file.Close()
		os.Remove(tmpFile)
		return err
	}

	if err = file.Close(); err != nil {
		os.Remove(tmpFile)
		return err
	}

	return os.Rename(tmpFile, s.path)
}
