package usecase

import (
	"time"
)

// PresenceEntry is one user currently checked in
type PresenceEntry struct {
	UserID      string
	UserName    string
	Date        string
	CheckInTime time.Time
}

// PresenceSnapshot is the view of who is checked in today
type PresenceSnapshot struct {
	Date      string
	Entries   []PresenceEntry
	UpdatedAt time.Time
}

// PresenceUseCase exposes the live presence view
type PresenceUseCase interface {
	// Snapshot returns the current view ordered by user ID
	Snapshot() PresenceSnapshot
}
