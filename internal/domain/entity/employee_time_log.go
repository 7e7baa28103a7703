package entity

import (
	"time"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// Aggregation windows used by the admin report
const (
	WeekWindow  = 7 * coreport.Day
	MonthWindow = 30 * coreport.Day
)

// EmployeeTimeLog is the per-user row of the admin time report
type EmployeeTimeLog struct {
	UserID         string      `json:"userId"`
	UserName       string      `json:"userName"`
	TotalHours     float64     `json:"totalHours"`
	WeekHours      float64     `json:"weekHours"`
	MonthHours     float64     `json:"monthHours"`
	CurrentCheckIn *TimeEntry  `json:"currentCheckIn"`
	CheckIns       []TimeEntry `json:"checkIns"`
}

// LedgerToEmployeeTimeLog builds a report row from a ledger at the given instant
func LedgerToEmployeeTimeLog(ledger *UserTimeLedger, now time.Time) EmployeeTimeLog {
	snapshot := ledger.Clone()
	return EmployeeTimeLog{
		UserID:         snapshot.UserID,
		UserName:       snapshot.LatestUserName(),
		TotalHours:     snapshot.TotalHours(now, 0),
		WeekHours:      snapshot.TotalHours(now, WeekWindow),
		MonthHours:     snapshot.TotalHours(now, MonthWindow),
		CurrentCheckIn: snapshot.CurrentCheckIn,
		CheckIns:       snapshot.CheckIns,
	}
}
