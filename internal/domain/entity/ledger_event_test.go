package entity

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/Priyareddy001/Company-portal-sub000/mocks/port/core"
)

func TestNewLedgerEvent(t *testing.T) {
	fixedTime := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Times(2)

	first := NewLedgerEvent(ActionCheckIn, "emp-1", mockTime)
	second := NewLedgerEvent(ActionCheckOut, "emp-1", mockTime)

	_, err := uuid.Parse(first.ID)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, ActionCheckIn, first.Action)
	assert.Equal(t, ActionCheckOut, second.Action)
	assert.Equal(t, "emp-1", first.UserID)
	assert.Equal(t, fixedTime, first.OccurredAt)
}

func TestIsValidAction(t *testing.T) {
	assert.True(t, IsValidAction("checkIn"))
	assert.True(t, IsValidAction("checkOut"))
	assert.False(t, IsValidAction("checkin"))
	assert.False(t, IsValidAction(""))
}
