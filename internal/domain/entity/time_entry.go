package entity

import (
	"time"
)

// TimeEntry is one check-in, open until it gets a check-out time
type TimeEntry struct {
	Date         string     `json:"date"`                   // Calendar day of the check-in
	CheckInTime  time.Time  `json:"checkInTime"`            // Set at check-in, never changed
	UserID       string     `json:"userId"`                 // Copied at creation
	UserName     string     `json:"userName"`               // Snapshot of the display name at check-in
	CheckOutTime *time.Time `json:"checkOutTime,omitempty"` // Nil while open
	HoursWorked  *float64   `json:"hoursWorked,omitempty"`  // Computed once at check-out
}

// newOpenEntry creates an open entry stamped at now
func newOpenEntry(userID, userName string, now time.Time) *TimeEntry {
	return &TimeEntry{
		Date:        CalendarDate(now),
		CheckInTime: now,
		UserID:      userID,
		UserName:    userName,
	}
}

// IsOpen reports whether the entry has not been checked out yet
func (e *TimeEntry) IsOpen() bool {
	return e.CheckOutTime == nil
}

// IsForDate reports whether the entry was checked in on the given calendar day
func (e *TimeEntry) IsForDate(date string) bool {
	return e.Date == date
}

// Hours returns the worked hours of a closed entry, 0 for an open one
func (e *TimeEntry) Hours() float64 {
	if e.HoursWorked == nil {
		return 0
	}
	return *e.HoursWorked
}

// closedAt returns a closed copy of the entry; the receiver is left untouched
func (e *TimeEntry) closedAt(now time.Time) TimeEntry {
	closed := *e
	checkOut := now
	hours := HoursBetween(e.CheckInTime, checkOut)
	closed.CheckOutTime = &checkOut
	closed.HoursWorked = &hours
	return closed
}

// Clone returns a deep copy of the entry
func (e *TimeEntry) Clone() *TimeEntry {
	if e == nil {
		return nil
	}
	c := *e
	if e.CheckOutTime != nil {
		t := *e.CheckOutTime
		c.CheckOutTime = &t
	}
	if e.HoursWorked != nil {
		h := *e.HoursWorked
		c.HoursWorked = &h
	}
	return &c
}
