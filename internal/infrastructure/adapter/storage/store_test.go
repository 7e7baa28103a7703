package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/logger"
)

func newZstd(t *testing.T) Compressor {
	t.Helper()
	z, err := NewZstdCompression()
	require.NoError(t, err)
	return z
}

func TestStores_RoundTrip(t *testing.T) {
	tests := []struct {
		name  string
		store func(t *testing.T) persistence.LedgerStore
	}{
		{
			name:  "memory",
			store: func(_ *testing.T) persistence.LedgerStore { return NewMemoryStore() },
		},
		{
			name: "file",
			store: func(t *testing.T) persistence.LedgerStore {
				return NewFileStore(filepath.Join(t.TempDir(), "ledgers.json"), nil, logger.NewNoopLogger())
			},
		},
		{
			name: "file with zstd",
			store: func(t *testing.T) persistence.LedgerStore {
				return NewFileStore(filepath.Join(t.TempDir(), "ledgers.json.zst"), newZstd(t), logger.NewNoopLogger())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			store := tt.store(t)

			empty, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Empty(t, empty)

			want := sampleLedgers(t)
			require.NoError(t, store.Save(ctx, want))

			got, err := store.Load(ctx)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		})
	}
}

func TestMemoryStore_Layout(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(context.Background(), sampleLedgers(t)))

	raw, ok := store.Raw(persistence.LedgersKey)
	require.True(t, ok)
	assert.Contains(t, string(raw), `"alice":{`)
	assert.Contains(t, string(raw), `"currentCheckIn":null`)
	assert.Contains(t, string(raw), `"hoursWorked":8.5`)
}

func TestMemoryStore_Corrupt(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{name: "not json", raw: "{not json"},
		{name: "wrong shape", raw: `["alice"]`},
		{name: "null ledger", raw: `{"alice":null}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewMemoryStore()
			store.SetRaw(persistence.LedgersKey, []byte(tt.raw))

			_, err := store.Load(context.Background())

			assert.ErrorIs(t, err, errs.ErrStorageCorrupt)
		})
	}
}

func TestMemoryStore_NullDocumentIsEmpty(t *testing.T) {
	store := NewMemoryStore()
	store.SetRaw(persistence.LedgersKey, []byte("null"))

	got, err := store.Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_Layout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgers.json")
	store := NewFileStore(path, nil, logger.NewNoopLogger())
	require.NoError(t, store.Save(context.Background(), sampleLedgers(t)))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `{"employee_time_logs":{`)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileStore_Corrupt(t *testing.T) {
	t.Run("invalid json", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledgers.json")
		require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o600))

		_, err := NewFileStore(path, nil, logger.NewNoopLogger()).Load(context.Background())

		assert.ErrorIs(t, err, errs.ErrStorageCorrupt)
	})

	t.Run("not zstd", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "ledgers.json.zst")
		require.NoError(t, os.WriteFile(path, []byte(`{"employee_time_logs":{}}`), 0o600))

		_, err := NewFileStore(path, newZstd(t), logger.NewNoopLogger()).Load(context.Background())

		assert.ErrorIs(t, err, errs.ErrStorageCorrupt)
	})
}

func TestFileStore_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ledgers.json")
	require.NoError(t, os.WriteFile(path, nil, 0o600))

	got, err := NewFileStore(path, nil, logger.NewNoopLogger()).Load(context.Background())

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "ledgers.json")
	store := NewFileStore(path, nil, logger.NewNoopLogger())

	require.NoError(t, store.Save(context.Background(), sampleLedgers(t)))

	got, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, got, 3)
}
