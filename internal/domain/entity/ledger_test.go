package entity

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	coreport "github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/core"
	coremocks "github.com/Priyareddy001/Company-portal-sub000/mocks/port/core"
)

// clockAt returns a mock time provider whose Now follows *current
func clockAt(t *testing.T, current *time.Time) *coremocks.MockTimeProvider {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().RunAndReturn(func() time.Time { return *current }).Maybe()
	return mockTime
}

func TestNewUserTimeLedger(t *testing.T) {
	t.Run("Valid user ID", func(t *testing.T) {
		ledger, err := NewUserTimeLedger("emp-1")

		require.NoError(t, err)
		assert.Equal(t, "emp-1", ledger.UserID)
		assert.Empty(t, ledger.CheckIns)
		assert.Nil(t, ledger.CurrentCheckIn)
		assert.Equal(t, int64(0), ledger.Version)
	})

	t.Run("Invalid user IDs", func(t *testing.T) {
		testCases := []string{
			"",
			"emp 1",
			"emp\t1",
			strings.Repeat("a", MaxUserIDLength+1),
		}

		for _, tc := range testCases {
			ledger, err := NewUserTimeLedger(tc)
			assert.ErrorIs(t, err, errs.ErrInvalidUserID, "user ID %q", tc)
			assert.Nil(t, ledger)
		}
	})
}

func TestUserTimeLedger_CheckInCheckOut(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	mockTime := clockAt(t, &now)

	ledger, err := NewUserTimeLedger("emp-1")
	require.NoError(t, err)

	t.Run("Check in opens an entry for today", func(t *testing.T) {
		entry, stale, err := ledger.CheckIn("Alice", mockTime)

		require.NoError(t, err)
		assert.Nil(t, stale)
		assert.Equal(t, "2024-03-04", entry.Date)
		assert.Equal(t, now, entry.CheckInTime)
		assert.Equal(t, "emp-1", entry.UserID)
		assert.Equal(t, "Alice", entry.UserName)
		assert.True(t, entry.IsOpen())
		assert.Nil(t, entry.HoursWorked)
		require.NotNil(t, ledger.OpenEntryOn("2024-03-04"))
	})

	t.Run("Second check in on the same day is rejected", func(t *testing.T) {
		now = time.Date(2024, 3, 4, 9, 5, 0, 0, time.UTC)

		entry, _, err := ledger.CheckIn("Alice", mockTime)

		assert.Equal(t, errs.ErrAlreadyCheckedIn, err)
		assert.Nil(t, entry)
		require.NotNil(t, ledger.CurrentCheckIn)
		assert.Equal(t, time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), ledger.CurrentCheckIn.CheckInTime)
	})

	t.Run("Check out closes the entry", func(t *testing.T) {
		now = time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)

		entry, err := ledger.CheckOut(mockTime)

		require.NoError(t, err)
		require.NotNil(t, entry.CheckOutTime)
		assert.Equal(t, now, *entry.CheckOutTime)
		assert.Equal(t, 8.5, entry.Hours())
		assert.Nil(t, ledger.CurrentCheckIn)
		require.Len(t, ledger.CheckIns, 1)
		assert.Equal(t, 8.5, ledger.TotalHours(now, 0))
	})

	t.Run("Check out without open entry fails", func(t *testing.T) {
		entry, err := ledger.CheckOut(mockTime)

		assert.Equal(t, errs.ErrNotCheckedIn, err)
		assert.Nil(t, entry)
		assert.Len(t, ledger.CheckIns, 1)
	})

	t.Run("Check in again after check out is allowed on the same day", func(t *testing.T) {
		now = time.Date(2024, 3, 4, 18, 0, 0, 0, time.UTC)

		_, _, err := ledger.CheckIn("Alice", mockTime)

		require.NoError(t, err)
		assert.NotNil(t, ledger.CurrentCheckIn)
	})
}

func TestUserTimeLedger_CheckInReplacesStaleEntry(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	mockTime := clockAt(t, &now)

	ledger, err := NewUserTimeLedger("emp-1")
	require.NoError(t, err)
	_, _, err = ledger.CheckIn("Alice", mockTime)
	require.NoError(t, err)

	now = time.Date(2024, 3, 5, 8, 0, 0, 0, time.UTC)
	assert.True(t, ledger.HasStaleCheckIn(CalendarDate(now)))

	entry, stale, err := ledger.CheckIn("Alice B.", mockTime)

	require.NoError(t, err)
	require.NotNil(t, stale)
	assert.Equal(t, "2024-03-04", stale.Date)
	assert.Equal(t, "2024-03-05", entry.Date)
	assert.Equal(t, "Alice B.", entry.UserName)
	assert.Empty(t, ledger.CheckIns)
	assert.False(t, ledger.HasStaleCheckIn(CalendarDate(now)))
}

func TestUserTimeLedger_CheckInValidatesUserName(t *testing.T) {
	mockTime := coremocks.NewMockTimeProvider(t)

	ledger, err := NewUserTimeLedger("emp-1")
	require.NoError(t, err)

	_, _, err = ledger.CheckIn("   ", mockTime)

	assert.ErrorIs(t, err, errs.ErrInvalidUserName)
	assert.Nil(t, ledger.CurrentCheckIn)
}

func TestUserTimeLedger_AtMostOneOpenEntry(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	mockTime := clockAt(t, &now)

	ledger, err := NewUserTimeLedger("emp-1")
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		now = now.Add(37 * time.Minute)
		if i%3 == 0 {
			_, _ = ledger.CheckOut(mockTime)
		} else {
			_, _, _ = ledger.CheckIn("Alice", mockTime)
		}

		for _, entry := range ledger.CheckIns {
			assert.False(t, entry.IsOpen())
			assert.NotNil(t, entry.HoursWorked)
		}
		if ledger.CurrentCheckIn != nil {
			assert.True(t, ledger.CurrentCheckIn.IsOpen())
		}
	}
}

func TestUserTimeLedger_TotalHours(t *testing.T) {
	now := time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)
	hours := func(h float64) *float64 { return &h }
	closed := func(checkIn time.Time, h float64) TimeEntry {
		out := checkIn.Add(time.Duration(h * float64(time.Hour)))
		return TimeEntry{
			Date:         CalendarDate(checkIn),
			CheckInTime:  checkIn,
			UserID:       "emp-1",
			UserName:     "Alice",
			CheckOutTime: &out,
			HoursWorked:  hours(h),
		}
	}

	ledger := &UserTimeLedger{
		UserID: "emp-1",
		CheckIns: []TimeEntry{
			closed(now.Add(-40*24*time.Hour), 8),
			closed(now.Add(-10*24*time.Hour), 6),
			closed(now.Add(-3*24*time.Hour), 4),
			closed(now.Add(-2*time.Hour), 1.25),
		},
		CurrentCheckIn: &TimeEntry{Date: CalendarDate(now), CheckInTime: now, UserID: "emp-1", UserName: "Alice"},
	}

	testCases := []struct {
		name     string
		window   coreport.Duration
		expected float64
	}{
		{"All entries", 0, 19.25},
		{"Negative window covers all", -coreport.Day, 19.25},
		{"Seven day window", WeekWindow, 5.25},
		{"Thirty day window", MonthWindow, 11.25},
		{"One hour window", coreport.Hour, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ledger.TotalHours(now, tc.window))
		})
	}

	t.Run("Entries after now are excluded from bounded windows", func(t *testing.T) {
		future := ledger.Clone()
		future.CheckIns = append(future.CheckIns, closed(now.Add(time.Hour), 2))

		assert.Equal(t, 5.25, future.TotalHours(now, WeekWindow))
		assert.Equal(t, 21.25, future.TotalHours(now, 0))
	})
}

func TestUserTimeLedger_Clone(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	mockTime := clockAt(t, &now)

	ledger, err := NewUserTimeLedger("emp-1")
	require.NoError(t, err)
	_, _, err = ledger.CheckIn("Alice", mockTime)
	require.NoError(t, err)
	now = now.Add(2 * time.Hour)
	_, err = ledger.CheckOut(mockTime)
	require.NoError(t, err)
	_, _, err = ledger.CheckIn("Alice", mockTime)
	require.NoError(t, err)

	clone := ledger.Clone()
	*clone.CheckIns[0].HoursWorked = 99
	clone.CurrentCheckIn.UserName = "Mallory"
	clone.CheckIns = append(clone.CheckIns, TimeEntry{})

	assert.Equal(t, 2.0, ledger.CheckIns[0].Hours())
	assert.Equal(t, "Alice", ledger.CurrentCheckIn.UserName)
	assert.Len(t, ledger.CheckIns, 1)
	assert.Nil(t, (*UserTimeLedger)(nil).Clone())
}

func TestUserTimeLedger_LatestUserName(t *testing.T) {
	now := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	mockTime := clockAt(t, &now)

	ledger, err := NewUserTimeLedger("emp-1")
	require.NoError(t, err)
	assert.Equal(t, "", ledger.LatestUserName())

	_, _, err = ledger.CheckIn("Alice", mockTime)
	require.NoError(t, err)
	assert.Equal(t, "Alice", ledger.LatestUserName())

	_, err = ledger.CheckOut(mockTime)
	require.NoError(t, err)
	assert.Equal(t, "Alice", ledger.LatestUserName())

	_, _, err = ledger.CheckIn("Alice Smith", mockTime)
	require.NoError(t, err)
	assert.Equal(t, "Alice Smith", ledger.LatestUserName())
	assert.Equal(t, "Alice", ledger.CheckIns[0].UserName)
}

func TestValidateUserName(t *testing.T) {
	assert.NoError(t, ValidateUserName("Alice"))
	assert.NoError(t, ValidateUserName("  Alice  "))
	assert.ErrorIs(t, ValidateUserName(""), errs.ErrInvalidUserName)
	assert.ErrorIs(t, ValidateUserName(strings.Repeat("a", MaxUserNameLength+1)), errs.ErrInvalidUserName)
}
