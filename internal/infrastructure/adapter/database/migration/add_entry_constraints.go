package migration

import (
	"context"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"gorm.io/gorm"
)

// AddEntryConstraints adds the check constraints that keep stored entries consistent
type AddEntryConstraints struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewAddEntryConstraints creates a new migration instance
func NewAddEntryConstraints(db *gorm.DB, logger coreport.Logger) *AddEntryConstraints {
	return &AddEntryConstraints{
		db:     db,
		logger: logger,
	}
}

var entryConstraints = []struct {
	table string
	name  string
	check string
}{
	{table: "time_entries", name: "chk_time_entries_hours", check: "hours_worked >= 0"},
	{table: "time_entries", name: "chk_time_entries_order", check: "check_out_time >= check_in_time"},
	{table: "user_ledgers", name: "chk_user_ledgers_version", check: "version >= 0"},
	{
		table: "user_ledgers",
		name:  "chk_user_ledgers_open_entry",
		check: "(open_check_in_time IS NULL) = (open_date IS NULL) AND (open_date IS NULL) = (open_user_name IS NULL)",
	},
}

// Run executes the migration
func (m *AddEntryConstraints) Run(ctx context.Context) error {
	m.logger.Info("Adding entry check constraints", nil)

	existing, err := m.existingConstraints(ctx)
	if err != nil {
		return err
	}

	for _, c := range entryConstraints {
		if existing[c.name] {
			continue
		}
		if err := m.db.WithContext(ctx).Exec(
			"ALTER TABLE " + c.table + " ADD CONSTRAINT " + c.name + " CHECK (" + c.check + ")",
		).Error; err != nil {
			m.logger.Error("Failed to add constraint", map[string]any{
				"constraint": c.name,
				"error":      err.Error(),
			})
			return err
		}
	}

	m.logger.Info("Successfully added entry check constraints", nil)
	return nil
}

// existingConstraints returns the names of the constraints already present
func (m *AddEntryConstraints) existingConstraints(ctx context.Context) (map[string]bool, error) {
	var rows []struct {
		ConstraintName string `gorm:"column:constraint_name"`
	}

	err := m.db.WithContext(ctx).Raw(`
		SELECT constraint_name
		FROM information_schema.table_constraints
		WHERE table_name IN ('time_entries', 'user_ledgers') AND constraint_type = 'CHECK'
	`).Scan(&rows).Error
	if err != nil {
		m.logger.Error("Failed to list existing constraints", map[string]any{"error": err.Error()})
		return nil, err
	}

	existing := make(map[string]bool, len(rows))
	for _, row := range rows {
		existing[row.ConstraintName] = true
	}
	return existing, nil
}
