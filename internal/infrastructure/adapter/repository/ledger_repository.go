package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/database"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// LedgerRepository stores ledgers in PostgreSQL: one user_ledgers row per
// user holding the version and the open entry, plus append-only time_entries
type LedgerRepository struct {
	db           *gorm.DB
	unitOfWork   persistence.UnitOfWork
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	errorMapper  *database.ErrorMapper
	collector    *database.MetricsCollector
	retryConfig  database.RetryConfig
}

var _ persistence.LedgerRepository = (*LedgerRepository)(nil)

// NewLedgerRepository creates a new LedgerRepository instance
func NewLedgerRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *LedgerRepository {
	return &LedgerRepository{
		db:           db,
		unitOfWork:   database.NewUnitOfWork(db, logger),
		timeProvider: timeProvider,
		logger:       logger,
		errorMapper:  database.NewErrorMapper(),
		collector:    database.NewMetricsCollector(logger, timeProvider, 0),
		retryConfig:  database.DefaultRetryConfig(),
	}
}

// Get loads the ledger with its entries in check-in order
func (r *LedgerRepository) Get(ctx context.Context, userID string) (*entity.UserTimeLedger, error) {
	var row model.UserLedger
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		return database.DB(ctx, r.db).
			Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }).
			Where("user_id = ?", userID).
			First(&row).Error
	}, r.logger)
	if err != nil {
		return nil, r.errorMapper.MapError(err, "get ledger")
	}

	return toEntity(&row), nil
}

// List loads every ledger
func (r *LedgerRepository) List(ctx context.Context) ([]*entity.UserTimeLedger, error) {
	var rows []model.UserLedger
	err := database.RetryOnTransientError(ctx, r.retryConfig, func() error {
		rows = nil
		return database.DB(ctx, r.db).
			Preload("Entries", func(db *gorm.DB) *gorm.DB { return db.Order("seq asc") }).
			Order("user_id asc").
			Find(&rows).Error
	}, r.logger)
	if err != nil {
		return nil, r.errorMapper.MapError(err, "list ledgers")
	}

	ledgers := make([]*entity.UserTimeLedger, 0, len(rows))
	for i := range rows {
		ledgers = append(ledgers, toEntity(&rows[i]))
	}
	return ledgers, nil
}

// Put writes the header row guarded by its version and appends new closed entries
func (r *LedgerRepository) Put(ctx context.Context, ledger *entity.UserTimeLedger) error {
	_, err := r.collector.MeasureQuery(ctx, "put_ledger", func() (int64, error) {
		return r.put(ctx, ledger)
	})
	return err
}

func (r *LedgerRepository) put(ctx context.Context, ledger *entity.UserTimeLedger) (int64, error) {
	txCtx, err := r.unitOfWork.Begin(ctx)
	if err != nil {
		return 0, r.errorMapper.MapError(err, "begin ledger write")
	}
	committed := false
	defer func() {
		if !committed {
			if rbErr := r.unitOfWork.Rollback(txCtx); rbErr != nil {
				r.logger.Warn("Failed to roll back ledger write", map[string]any{
					"user_id": ledger.UserID,
					"error":   rbErr.Error(),
				})
			}
		}
	}()

	tx := database.DB(txCtx, r.db)
	now := r.timeProvider.Now()
	header := toHeader(ledger, now)

	if ledger.Version == 0 {
		header.Version = 1
		header.CreatedAt = now
		if err := tx.Omit("Entries").Create(&header).Error; err != nil {
			return 0, r.errorMapper.MapError(err, "create ledger")
		}
	} else {
		result := tx.Model(&model.UserLedger{}).
			Where("user_id = ? AND version = ?", ledger.UserID, ledger.Version).
			Updates(map[string]any{
				"version":            gorm.Expr("version + 1"),
				"open_date":          header.OpenDate,
				"open_check_in_time": header.OpenCheckInTime,
				"open_user_name":     header.OpenUserName,
				"updated_at":         now,
			})
		if result.Error != nil {
			return 0, r.errorMapper.MapError(result.Error, "update ledger")
		}
		if result.RowsAffected == 0 {
			return 0, r.conflict(tx, ledger)
		}
	}

	var stored int64
	if err := tx.Model(&model.TimeEntry{}).Where("user_id = ?", ledger.UserID).Count(&stored).Error; err != nil {
		return 0, r.errorMapper.MapError(err, "count entries")
	}
	if stored > int64(len(ledger.CheckIns)) {
		return 0, fmt.Errorf("%w: ledger of %s has %d stored entries but %d in memory",
			errs.ErrStorageCorrupt, ledger.UserID, stored, len(ledger.CheckIns))
	}

	appended := toEntryRows(ledger.UserID, ledger.CheckIns[stored:], int(stored), now)
	if len(appended) > 0 {
		if err := tx.Create(&appended).Error; err != nil {
			return 0, r.errorMapper.MapError(err, "append entries")
		}
	}

	if err := r.unitOfWork.Commit(txCtx); err != nil {
		return 0, r.errorMapper.MapError(err, "commit ledger write")
	}
	committed = true

	ledger.Version++
	return int64(len(appended)), nil
}

// conflict builds the error for an update that matched no row
func (r *LedgerRepository) conflict(tx *gorm.DB, ledger *entity.UserTimeLedger) error {
	var current model.UserLedger
	err := tx.Select("version").Where("user_id = ?", ledger.UserID).First(&current).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NewVersionConflictError(ledger.UserID, ledger.Version, 0)
	}
	if err != nil {
		return r.errorMapper.MapError(err, "read ledger version")
	}
	return errs.NewVersionConflictError(ledger.UserID, ledger.Version, current.Version)
}

func toHeader(ledger *entity.UserTimeLedger, now time.Time) model.UserLedger {
	header := model.UserLedger{
		UserID:    ledger.UserID,
		Version:   ledger.Version,
		UpdatedAt: now,
	}
	if open := ledger.CurrentCheckIn; open != nil {
		date := open.Date
		checkIn := open.CheckInTime
		name := open.UserName
		header.OpenDate = &date
		header.OpenCheckInTime = &checkIn
		header.OpenUserName = &name
	}
	return header
}

func toEntryRows(userID string, entries []entity.TimeEntry, firstSeq int, now time.Time) []model.TimeEntry {
	rows := make([]model.TimeEntry, 0, len(entries))
	for i, e := range entries {
		row := model.TimeEntry{
			UserID:      userID,
			Seq:         firstSeq + i,
			Date:        e.Date,
			CheckInTime: e.CheckInTime,
			HoursWorked: e.Hours(),
			UserName:    e.UserName,
			CreatedAt:   now,
		}
		if e.CheckOutTime != nil {
			row.CheckOutTime = *e.CheckOutTime
		}
		rows = append(rows, row)
	}
	return rows
}

func toEntity(row *model.UserLedger) *entity.UserTimeLedger {
	ledger := &entity.UserTimeLedger{
		UserID:   row.UserID,
		CheckIns: make([]entity.TimeEntry, 0, len(row.Entries)),
		Version:  row.Version,
	}
	for _, e := range row.Entries {
		checkOut := e.CheckOutTime
		hours := e.HoursWorked
		ledger.CheckIns = append(ledger.CheckIns, entity.TimeEntry{
			Date:         e.Date,
			CheckInTime:  e.CheckInTime,
			UserID:       row.UserID,
			UserName:     e.UserName,
			CheckOutTime: &checkOut,
			HoursWorked:  &hours,
		})
	}
	if row.OpenCheckInTime != nil && row.OpenDate != nil {
		entry := entity.TimeEntry{
			Date:        *row.OpenDate,
			CheckInTime: *row.OpenCheckInTime,
			UserID:      row.UserID,
		}
		if row.OpenUserName != nil {
			entry.UserName = *row.OpenUserName
		}
		ledger.CurrentCheckIn = &entry
	}
	return ledger
}
