package entity

import (
	"time"

	"github.com/google/uuid"

	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
)

// LedgerAction names the mutation that changed a ledger
type LedgerAction string

// Ledger actions
const (
	ActionCheckIn  LedgerAction = "checkIn"
	ActionCheckOut LedgerAction = "checkOut"
)

// LedgerEvent is broadcast after a ledger changed
type LedgerEvent struct {
	ID         string       `json:"id"`
	Action     LedgerAction `json:"action"`
	UserID     string       `json:"userId"`
	OccurredAt time.Time    `json:"occurredAt"`
}

// NewLedgerEvent creates an event with a fresh ID
func NewLedgerEvent(action LedgerAction, userID string, timeProvider coreport.TimeProvider) LedgerEvent {
	return LedgerEvent{
		ID:         uuid.NewString(),
		Action:     action,
		UserID:     userID,
		OccurredAt: timeProvider.Now(),
	}
}

// IsValidAction validates if the action is one of the known ledger actions
func IsValidAction(action string) bool {
	return action == string(ActionCheckIn) || action == string(ActionCheckOut)
}
