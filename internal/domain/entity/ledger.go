package entity

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// Identity limits
const (
	MaxUserIDLength   = 64
	MaxUserNameLength = 128
)

// UserTimeLedger holds every entry of one user: closed entries in check-in
// order plus at most one open entry
type UserTimeLedger struct {
	UserID         string      `json:"-"`              // Carried by the store key
	CheckIns       []TimeEntry `json:"checkIns"`       // Closed entries, append-only
	CurrentCheckIn *TimeEntry  `json:"currentCheckIn"` // Open entry or nil
	Version        int64       `json:"version"`        // Bumped by every successful write
}

// NewUserTimeLedger creates an empty ledger for a user
func NewUserTimeLedger(userID string) (*UserTimeLedger, error) {
	if err := ValidateUserID(userID); err != nil {
		return nil, err
	}

	return &UserTimeLedger{
		UserID:   userID,
		CheckIns: []TimeEntry{},
	}, nil
}

// CheckIn opens a new entry stamped with the provider's current time.
// It fails with ErrAlreadyCheckedIn when an open entry for today exists.
// An open entry left over from an earlier day is replaced and returned as stale.
func (l *UserTimeLedger) CheckIn(userName string, timeProvider coreport.TimeProvider) (entry *TimeEntry, stale *TimeEntry, err error) {
	if err := ValidateUserName(userName); err != nil {
		return nil, nil, err
	}

	now := timeProvider.Now()
	if l.CurrentCheckIn != nil && l.CurrentCheckIn.IsForDate(CalendarDate(now)) {
		return nil, nil, errs.ErrAlreadyCheckedIn
	}

	stale = l.CurrentCheckIn
	l.CurrentCheckIn = newOpenEntry(l.UserID, userName, now)
	return l.CurrentCheckIn.Clone(), stale, nil
}

// CheckOut closes the open entry and moves it into CheckIns.
// It fails with ErrNotCheckedIn when there is no open entry.
func (l *UserTimeLedger) CheckOut(timeProvider coreport.TimeProvider) (*TimeEntry, error) {
	if l.CurrentCheckIn == nil {
		return nil, errs.ErrNotCheckedIn
	}

	closed := l.CurrentCheckIn.closedAt(timeProvider.Now())
	l.CheckIns = append(l.CheckIns, closed)
	l.CurrentCheckIn = nil
	return closed.Clone(), nil
}

// OpenEntryOn returns the open entry if it was checked in on date
func (l *UserTimeLedger) OpenEntryOn(date string) *TimeEntry {
	if l.CurrentCheckIn == nil || !l.CurrentCheckIn.IsForDate(date) {
		return nil
	}
	return l.CurrentCheckIn
}

// HasStaleCheckIn reports whether the open entry belongs to a day other than today
func (l *UserTimeLedger) HasStaleCheckIn(today string) bool {
	return l.CurrentCheckIn != nil && !l.CurrentCheckIn.IsForDate(today)
}

// TotalHours sums hoursWorked of closed entries checked in within
// [now-window, now]. A window of zero or less covers every entry.
func (l *UserTimeLedger) TotalHours(now time.Time, window coreport.Duration) float64 {
	var from time.Time
	bounded := window > 0
	if bounded {
		from = now.Add(-window.Std())
	}

	var total float64
	for i := range l.CheckIns {
		entry := &l.CheckIns[i]
		if bounded && (entry.CheckInTime.Before(from) || entry.CheckInTime.After(now)) {
			continue
		}
		total += entry.Hours()
	}
	return RoundHours(total)
}

// LatestUserName returns the most recent display name recorded on the ledger
func (l *UserTimeLedger) LatestUserName() string {
	if l.CurrentCheckIn != nil {
		return l.CurrentCheckIn.UserName
	}
	if n := len(l.CheckIns); n > 0 {
		return l.CheckIns[n-1].UserName
	}
	return ""
}

// Clone returns a deep copy so callers can mutate without touching stored state
func (l *UserTimeLedger) Clone() *UserTimeLedger {
	if l == nil {
		return nil
	}
	c := &UserTimeLedger{
		UserID:         l.UserID,
		CheckIns:       make([]TimeEntry, len(l.CheckIns)),
		CurrentCheckIn: l.CurrentCheckIn.Clone(),
		Version:        l.Version,
	}
	for i := range l.CheckIns {
		c.CheckIns[i] = *l.CheckIns[i].Clone()
	}
	return c
}

// ValidateUserID checks the stable identity key of a ledger
func ValidateUserID(userID string) error {
	if userID == "" {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidUserID)
	}
	if len(userID) > MaxUserIDLength {
		return fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidUserID, MaxUserIDLength)
	}
	if strings.IndexFunc(userID, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%w: must not contain whitespace", errs.ErrInvalidUserID)
	}
	return nil
}

// ValidateUserName checks the display name copied onto entries
func ValidateUserName(userName string) error {
	trimmed := strings.TrimSpace(userName)
	if trimmed == "" {
		return fmt.Errorf("%w: empty value", errs.ErrInvalidUserName)
	}
	if len(trimmed) > MaxUserNameLength {
		return fmt.Errorf("%w: longer than %d characters", errs.ErrInvalidUserName, MaxUserNameLength)
	}
	return nil
}
