package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	coremocks "github.com/Priyareddy001/Company-portal-sub000/mocks/port/core"
)

func TestLedgerToEmployeeTimeLog(t *testing.T) {
	now := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(func() time.Time { return now }).Maybe()

	ledger, err := NewUserTimeLedger("emp-7")
	require.NoError(t, err)

	// Day 1: 8h, day 12: 4h, then an open entry on day 20
	_, _, err = ledger.CheckIn("Bob", mockTime)
	require.NoError(t, err)
	now = now.Add(8 * time.Hour)
	_, err = ledger.CheckOut(mockTime)
	require.NoError(t, err)

	now = time.Date(2024, 3, 12, 9, 0, 0, 0, time.UTC)
	_, _, err = ledger.CheckIn("Bob", mockTime)
	require.NoError(t, err)
	now = now.Add(4 * time.Hour)
	_, err = ledger.CheckOut(mockTime)
	require.NoError(t, err)

	now = time.Date(2024, 3, 20, 9, 0, 0, 0, time.UTC)
	_, _, err = ledger.CheckIn("Robert", mockTime)
	require.NoError(t, err)

	row := LedgerToEmployeeTimeLog(ledger, now)

	assert.Equal(t, "emp-7", row.UserID)
	assert.Equal(t, "Robert", row.UserName)
	assert.Equal(t, 12.0, row.TotalHours)
	assert.Equal(t, 0.0, row.WeekHours)
	assert.Equal(t, 12.0, row.MonthHours)
	require.NotNil(t, row.CurrentCheckIn)
	assert.Equal(t, "2024-03-20", row.CurrentCheckIn.Date)
	assert.Len(t, row.CheckIns, 2)

	t.Run("Row is detached from the ledger", func(t *testing.T) {
		row.CheckIns[0].UserName = "changed"
		row.CurrentCheckIn.UserName = "changed"

		assert.Equal(t, "Bob", ledger.CheckIns[0].UserName)
		assert.Equal(t, "Robert", ledger.CurrentCheckIn.UserName)
	})
}
