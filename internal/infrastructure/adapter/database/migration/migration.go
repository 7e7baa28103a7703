package migration

import (
	"context"
	"errors"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// Schema versions in the order they are applied
const (
	VersionInitial     = "1.0.0"
	VersionConstraints = "1.1.0"
	VersionIndexes     = "1.2.0"

	// CurrentSchemaVersion represents the current database schema version
	CurrentSchemaVersion = VersionIndexes
)

// step upgrades the schema to version
type step struct {
	version string
	details string
	run     func(ctx context.Context) error
}

// MigrationManager manages database migrations
type MigrationManager struct {
	db               *gorm.DB
	logger           coreport.Logger
	timeProvider     coreport.TimeProvider
	advancedIndexMgr *AdvancedIndexManager
}

// NewMigrationManager creates a new migration manager
func NewMigrationManager(db *gorm.DB, logger coreport.Logger, timeProvider coreport.TimeProvider) *MigrationManager {
	return &MigrationManager{
		db:               db,
		logger:           logger,
		timeProvider:     timeProvider,
		advancedIndexMgr: NewAdvancedIndexManager(db, logger),
	}
}

// MigrateAll applies every step newer than the recorded version
func (m *MigrationManager) MigrateAll(ctx context.Context) error {
	m.logger.Info("Starting database migrations", map[string]any{
		"target_version": CurrentSchemaVersion,
	})

	if err := m.db.WithContext(ctx).AutoMigrate(&model.MigrationVersion{}); err != nil {
		m.logger.Error("Failed to create migration version table", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	currentVersion, err := m.GetCurrentVersion(ctx)
	if err != nil {
		m.logger.Error("Failed to check current schema version", map[string]any{
			"error": err.Error(),
		})
		return err
	}

	if currentVersion == CurrentSchemaVersion {
		m.logger.Info("Database already at target version, skipping migration", map[string]any{
			"version": currentVersion,
		})
		return nil
	}

	for _, s := range m.pendingSteps(currentVersion) {
		m.logger.Info("Applying schema version", map[string]any{
			"from": currentVersion,
			"to":   s.version,
		})
		if err := s.run(ctx); err != nil {
			m.logger.Error("Failed to apply schema version", map[string]any{
				"error":   err.Error(),
				"version": s.version,
			})
			return err
		}
		if err := m.setVersion(ctx, s.version, s.details); err != nil {
			m.logger.Error("Failed to update schema version", map[string]any{
				"error":   err.Error(),
				"version": s.version,
			})
			return err
		}
		currentVersion = s.version
	}

	m.logger.Info("Database migrations completed successfully", map[string]any{
		"version": CurrentSchemaVersion,
	})
	return nil
}

// GetCurrentVersion gets the current migration version, "" for a fresh database
func (m *MigrationManager) GetCurrentVersion(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}

	var version model.MigrationVersion
	result := m.db.WithContext(ctx).Order("id desc").First(&version)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return "", nil
		}
		return "", result.Error
	}

	return version.Version, nil
}

// pendingSteps returns the steps after currentVersion
func (m *MigrationManager) pendingSteps(currentVersion string) []step {
	steps := []step{
		{version: VersionInitial, details: "Ledger, entry and lock tables", run: m.createTables},
		{version: VersionConstraints, details: "Entry check constraints", run: NewAddEntryConstraints(m.db, m.logger).Run},
		{version: VersionIndexes, details: "Report and lock indexes", run: m.createIndexes},
	}

	if currentVersion == "" {
		return steps
	}
	for i, s := range steps {
		if s.version == currentVersion {
			return steps[i+1:]
		}
	}
	// Unknown version: re-run everything, every step is idempotent
	return steps
}

// setVersion records a new migration version
func (m *MigrationManager) setVersion(ctx context.Context, version string, details string) error {
	migrationVersion := model.MigrationVersion{
		Version:   version,
		AppliedAt: m.timeProvider.Now(),
		Details:   details,
	}

	return m.db.WithContext(ctx).Create(&migrationVersion).Error
}

// createTables auto-migrates the ledger models
func (m *MigrationManager) createTables(ctx context.Context) error {
	m.logger.Info("Auto-migrating database models", nil)

	return m.db.WithContext(ctx).AutoMigrate(
		&model.UserLedger{},
		&model.TimeEntry{},
		&model.UserLock{},
	)
}

// createIndexes creates the indexes and storage settings used by the report queries
func (m *MigrationManager) createIndexes(ctx context.Context) error {
	if err := m.advancedIndexMgr.CreateAdvancedIndexes(ctx); err != nil {
		return err
	}
	return m.advancedIndexMgr.CreatePerformanceTweaks(ctx)
}
