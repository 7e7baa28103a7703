package model

import (
	"time"
)

// UserLedger is the per-user header row. The open entry lives inline;
// closed entries are rows of time_entries.
type UserLedger struct {
	UserID          string      `gorm:"primaryKey;size:64;not null"`
	Version         int64       `gorm:"not null;default:0"`
	OpenDate        *string     `gorm:"size:10"`
	OpenCheckInTime *time.Time
	OpenUserName    *string     `gorm:"size:128"`
	CreatedAt       time.Time   `gorm:"not null"`
	UpdatedAt       time.Time   `gorm:"not null"`
	Entries         []TimeEntry `gorm:"foreignKey:UserID;references:UserID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the table name for UserLedger
func (UserLedger) TableName() string {
	return "user_ledgers"
}
