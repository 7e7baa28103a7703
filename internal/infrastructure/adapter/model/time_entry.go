package model

import (
	"time"
)

// TimeEntry is one closed check-in
type TimeEntry struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement"`
	UserID       string    `gorm:"size:64;not null;index:idx_time_entries_user_check_in,priority:1"`
	Seq          int       `gorm:"not null"`
	Date         string    `gorm:"size:10;not null"`
	CheckInTime  time.Time `gorm:"not null;index:idx_time_entries_user_check_in,priority:2"`
	CheckOutTime time.Time `gorm:"not null"`
	HoursWorked  float64   `gorm:"not null"`
	UserName     string    `gorm:"size:128;not null"`
	CreatedAt    time.Time `gorm:"not null"`
}

// TableName specifies the table name for TimeEntry
func (TimeEntry) TableName() string {
	return "time_entries"
}
