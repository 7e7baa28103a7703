package dto

import (
	"time"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
)

// PresenceEntryResponse is one user checked in today
type PresenceEntryResponse struct {
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	CheckInTime time.Time `json:"checkInTime"`
}

// PresenceResponse represents the presence view
type PresenceResponse struct {
	Date      string                  `json:"date"`
	UpdatedAt time.Time               `json:"updatedAt"`
	Entries   []PresenceEntryResponse `json:"entries"`
}

// NewPresenceResponse maps a presence snapshot to its API shape
func NewPresenceResponse(snapshot usecase.PresenceSnapshot) PresenceResponse {
	entries := make([]PresenceEntryResponse, 0, len(snapshot.Entries))
	for _, e := range snapshot.Entries {
		entries = append(entries, PresenceEntryResponse{
			UserID:      e.UserID,
			UserName:    e.UserName,
			CheckInTime: e.CheckInTime,
		})
	}
	return PresenceResponse{
		Date:      snapshot.Date,
		UpdatedAt: snapshot.UpdatedAt,
		Entries:   entries,
	}
}
