package model

import (
	"time"
)

// UserLock is an expiring lock on one user's ledger
type UserLock struct {
	UserID    string    `gorm:"primaryKey;size:64;not null"`
	LockedAt  time.Time `gorm:"not null"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for UserLock
func (UserLock) TableName() string {
	return "user_locks"
}
