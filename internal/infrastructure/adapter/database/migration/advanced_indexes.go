package migration

import (
	"context"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"gorm.io/gorm"
)

// AdvancedIndexManager manages PostgreSQL-specific indexes
type AdvancedIndexManager struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAdvancedIndexManager creates a new advanced index manager
func NewAdvancedIndexManager(db *gorm.DB, logger coreport.Logger) *AdvancedIndexManager {
	return &AdvancedIndexManager{
		db:     db,
		logger: logger,
	}
}

var advancedIndexes = []struct {
	name string
	sql  string
}{
	{
		// Entry order within a ledger
		name: "idx_time_entries_user_seq",
		sql:  `CREATE UNIQUE INDEX IF NOT EXISTS idx_time_entries_user_seq ON time_entries (user_id, seq)`,
	},
	{
		// Open check-ins for presence and stale scans
		name: "idx_user_ledgers_open",
		sql: `CREATE INDEX IF NOT EXISTS idx_user_ledgers_open
			ON user_ledgers (open_date)
			WHERE open_check_in_time IS NOT NULL`,
	},
	{
		// Entries are appended in time order, BRIN stays small
		name: "idx_time_entries_check_in_brin",
		sql: `CREATE INDEX IF NOT EXISTS idx_time_entries_check_in_brin
			ON time_entries USING BRIN (check_in_time)
			WITH (pages_per_range = 32)`,
	},
}

// CreateAdvancedIndexes creates the PostgreSQL indexes
func (m *AdvancedIndexManager) CreateAdvancedIndexes(ctx context.Context) error {
	m.logger.Info("Creating advanced PostgreSQL indexes", nil)

	for _, idx := range advancedIndexes {
		if err := m.db.WithContext(ctx).Exec(idx.sql).Error; err != nil {
			m.logger.Error("Failed to create index", map[string]any{
				"index": idx.name,
				"error": err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Advanced PostgreSQL indexes created successfully", nil)
	return nil
}

// CreatePerformanceTweaks applies storage settings; failures are logged, not returned
func (m *AdvancedIndexManager) CreatePerformanceTweaks(ctx context.Context) error {
	// user_ledgers rows are updated on every check-in and check-out
	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE user_ledgers SET (fillfactor = 80)`).Error; err != nil {
		m.logger.Warn("Failed to set fillfactor for user_ledgers table", map[string]any{
			"error": err.Error(),
		})
	}

	if err := m.db.WithContext(ctx).Exec(`ALTER TABLE time_entries ALTER COLUMN user_id SET STATISTICS 1000`).Error; err != nil {
		m.logger.Warn("Failed to set statistics target for time_entries.user_id", map[string]any{
			"error": err.Error(),
		})
	}

	return nil
}
