package timetracking

import (
	"context"
	"errors"
	"math"
	"net/http"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	errs "github.com/Priyareddy001/Company-portal-sub000/internal/domain/error"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/persistence"
	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/port/usecase"
	mockcore "github.com/Priyareddy001/Company-portal-sub000/mocks/port/core"
	mockpersistence "github.com/Priyareddy001/Company-portal-sub000/mocks/port/persistence"
)

type serviceFixture struct {
	service  *Service
	lockRepo *mockpersistence.MockUserLockRepository
	metrics  *mockcore.MockMetrics
	clock    *mockcore.MockTimeProvider
	now      time.Time
}

func newServiceFixture(t *testing.T, repo persistence.LedgerRepository, cache persistence.ReportCache) *serviceFixture {
	f := &serviceFixture{now: time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)}

	f.clock = mockcore.NewMockTimeProvider(t)
	f.clock.EXPECT().Now().RunAndReturn(func() time.Time { return f.now }).Maybe()
	f.clock.EXPECT().Sleep(mock.Anything).Maybe()

	f.lockRepo = mockpersistence.NewMockUserLockRepository(t)
	f.lockRepo.EXPECT().AcquireLock(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()
	f.lockRepo.EXPECT().ReleaseLock(mock.Anything, mock.Anything).Return(nil).Maybe()

	f.metrics = mockcore.NewMockMetrics(t)
	f.metrics.EXPECT().RecordOperation(mock.Anything, mock.Anything).Maybe()

	f.service = NewService(repo, f.lockRepo, cache, f.clock, newQuietLogger(t), f.metrics, DefaultOptions())
	t.Cleanup(f.service.Shutdown)
	return f
}

// openLedger returns a ledger with an open entry at checkIn
func openLedger(userID string, checkIn time.Time, version int64) *entity.UserTimeLedger {
	return &entity.UserTimeLedger{
		UserID:   userID,
		CheckIns: []entity.TimeEntry{},
		CurrentCheckIn: &entity.TimeEntry{
			Date:        entity.CalendarDate(checkIn),
			CheckInTime: checkIn,
			UserID:      userID,
			UserName:    "Alice",
		},
		Version: version,
	}
}

func TestService_CheckIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Creates the ledger on first check-in", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		cache := mockpersistence.NewMockReportCache(t)
		f := newServiceFixture(t, repo, cache)

		repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrLedgerNotFound).Once()
		repo.EXPECT().Put(mock.Anything, mock.MatchedBy(func(l *entity.UserTimeLedger) bool {
			return l.UserID == "emp-1" && l.Version == 0 && l.CurrentCheckIn != nil && l.CurrentCheckIn.UserName == "Alice"
		})).Return(nil).Once()
		cache.EXPECT().Invalidate().Once()

		result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "  Alice "})

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, f.now, result.CheckInTime)
		assert.Equal(t, http.StatusOK, result.StatusCode)
		f.metrics.AssertCalled(t, "RecordOperation", "checkIn", OutcomeSuccess)
	})

	t.Run("Duplicate check-in on the same day is rejected", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		f.now = time.Date(2024, 3, 4, 9, 5, 0, 0, time.UTC)

		repo.EXPECT().Get(mock.Anything, "emp-1").
			Return(openLedger("emp-1", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), 1), nil).Once()

		result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})

		assert.ErrorIs(t, err, errs.ErrAlreadyCheckedIn)
		assert.False(t, result.Success)
		assert.Equal(t, "already checked in today", result.ErrorMessage)
		assert.Equal(t, http.StatusConflict, result.StatusCode)
		f.metrics.AssertCalled(t, "RecordOperation", "checkIn", OutcomeRejected)
		repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})

	t.Run("Invalid input never reaches the repository", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)

		testCases := []struct {
			req      usecase.CheckInRequest
			expected error
		}{
			{usecase.CheckInRequest{UserID: "", UserName: "Alice"}, errs.ErrInvalidUserID},
			{usecase.CheckInRequest{UserID: "emp 1", UserName: "Alice"}, errs.ErrInvalidUserID},
			{usecase.CheckInRequest{UserID: "emp-1", UserName: "   "}, errs.ErrInvalidUserName},
		}

		for _, tc := range testCases {
			result, err := f.service.CheckIn(ctx, tc.req)

			assert.ErrorIs(t, err, tc.expected)
			assert.False(t, result.Success)
			assert.Equal(t, http.StatusBadRequest, result.StatusCode)
		}
		f.lockRepo.AssertNotCalled(t, "AcquireLock", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Version conflict is retried with a fresh read", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)

		repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrLedgerNotFound).Twice()
		repo.EXPECT().Put(mock.Anything, mock.Anything).Return(errs.NewVersionConflictError("emp-1", 0, 1)).Once()
		repo.EXPECT().Put(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})

		require.NoError(t, err)
		assert.True(t, result.Success)
		f.clock.AssertCalled(t, "Sleep", mock.Anything)
	})

	t.Run("Persistent version conflict is reported", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)

		repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrLedgerNotFound)
		repo.EXPECT().Put(mock.Anything, mock.Anything).Return(errs.NewVersionConflictError("emp-1", 0, 1))

		result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})

		assert.ErrorIs(t, err, errs.ErrVersionConflict)
		assert.Equal(t, http.StatusConflict, result.StatusCode)
		repo.AssertNumberOfCalls(t, "Put", DefaultOptions().MaxConflictRetries+1)
	})

	t.Run("Locked user is reported as conflict", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		lockRepo := mockpersistence.NewMockUserLockRepository(t)
		metrics := mockcore.NewMockMetrics(t)
		metrics.EXPECT().RecordOperation("checkIn", OutcomeError).Once()
		clock := mockcore.NewMockTimeProvider(t)

		service := NewService(repo, lockRepo, nil, clock, newQuietLogger(t), metrics, DefaultOptions())
		defer service.Shutdown()

		lockRepo.EXPECT().AcquireLock(mock.Anything, "emp-1", DefaultOptions().LockTimeout).Return(errs.ErrUserLocked).Once()

		result, err := service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})

		assert.ErrorIs(t, err, errs.ErrUserLocked)
		assert.Equal(t, http.StatusConflict, result.StatusCode)
		lockRepo.AssertNotCalled(t, "ReleaseLock", mock.Anything, mock.Anything)
	})

	t.Run("Storage failure is an internal error", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)

		repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrStorageUnavailable).Once()

		result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})

		assert.ErrorIs(t, err, errs.ErrStorageUnavailable)
		assert.Equal(t, http.StatusInternalServerError, result.StatusCode)
		assert.Equal(t, "internal server error", result.ErrorMessage)
	})
}

func TestService_CheckIn_ClientGoneDuringWrite(t *testing.T) {
	repo := mockpersistence.NewMockLedgerRepository(t)
	f := newServiceFixture(t, repo, nil)

	ctx, cancel := context.WithCancel(context.Background())
	writing := make(chan struct{})
	release := make(chan struct{})

	repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrLedgerNotFound).Once()
	repo.EXPECT().Put(mock.Anything, mock.Anything).RunAndReturn(func(context.Context, *entity.UserTimeLedger) error {
		close(writing)
		<-release
		return nil
	}).Once()

	go func() {
		<-writing
		cancel()
		close(release)
	}()

	result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})

	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, http.StatusOK, result.StatusCode)
}

func TestService_CheckOut(t *testing.T) {
	ctx := context.Background()

	t.Run("Closes the open entry", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		f.now = time.Date(2024, 3, 4, 11, 30, 0, 0, time.UTC)

		repo.EXPECT().Get(mock.Anything, "emp-1").
			Return(openLedger("emp-1", time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC), 3), nil).Once()
		repo.EXPECT().Put(mock.Anything, mock.MatchedBy(func(l *entity.UserTimeLedger) bool {
			return l.CurrentCheckIn == nil && len(l.CheckIns) == 1 && l.Version == 3
		})).Return(nil).Once()

		result, err := f.service.CheckOut(ctx, "emp-1")

		require.NoError(t, err)
		assert.True(t, result.Success)
		assert.Equal(t, 2.5, result.HoursWorked)
		assert.Equal(t, f.now, result.CheckOutTime)
	})

	t.Run("Entry from an earlier day is still closed", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		f.now = time.Date(2024, 3, 5, 1, 0, 0, 0, time.UTC)

		repo.EXPECT().Get(mock.Anything, "emp-1").
			Return(openLedger("emp-1", time.Date(2024, 3, 4, 22, 0, 0, 0, time.UTC), 1), nil).Once()
		repo.EXPECT().Put(mock.Anything, mock.Anything).Return(nil).Once()

		result, err := f.service.CheckOut(ctx, "emp-1")

		require.NoError(t, err)
		assert.Equal(t, 3.0, result.HoursWorked)
	})

	t.Run("Without check-in fails", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)

		repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrLedgerNotFound).Once()

		result, err := f.service.CheckOut(ctx, "emp-1")

		assert.ErrorIs(t, err, errs.ErrNotCheckedIn)
		assert.False(t, result.Success)
		assert.Equal(t, "not checked in", result.ErrorMessage)
		assert.Equal(t, http.StatusConflict, result.StatusCode)
		f.metrics.AssertCalled(t, "RecordOperation", "checkOut", OutcomeRejected)
		repo.AssertNotCalled(t, "Put", mock.Anything, mock.Anything)
	})
}

func TestService_GetTodayCheckInStatus(t *testing.T) {
	ctx := context.Background()
	checkIn := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)

	t.Run("Unknown user is not checked in", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		repo.EXPECT().Get(mock.Anything, "emp-1").Return(nil, errs.ErrLedgerNotFound).Once()

		status, err := f.service.GetTodayCheckInStatus(ctx, "emp-1")

		require.NoError(t, err)
		assert.False(t, status.CheckedIn)
		assert.Nil(t, status.CheckInTime)
	})

	t.Run("Open entry for today", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		f.now = checkIn.Add(time.Hour)
		repo.EXPECT().Get(mock.Anything, "emp-1").Return(openLedger("emp-1", checkIn, 1), nil).Once()

		status, err := f.service.GetTodayCheckInStatus(ctx, "emp-1")

		require.NoError(t, err)
		assert.True(t, status.CheckedIn)
		require.NotNil(t, status.CheckInTime)
		assert.Equal(t, checkIn, *status.CheckInTime)
	})

	t.Run("Open entry from yesterday does not count", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		f.now = checkIn.Add(24 * time.Hour)
		repo.EXPECT().Get(mock.Anything, "emp-1").Return(openLedger("emp-1", checkIn, 1), nil).Once()

		status, err := f.service.GetTodayCheckInStatus(ctx, "emp-1")

		require.NoError(t, err)
		assert.False(t, status.CheckedIn)
	})

	t.Run("Invalid user ID", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)

		status, err := f.service.GetTodayCheckInStatus(ctx, "")

		assert.ErrorIs(t, err, errs.ErrInvalidUserID)
		assert.Nil(t, status)
	})
}

func TestService_CalculateTotalHours(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLedgerRepository()
	f := newServiceFixture(t, repo, nil)

	// 8h eight days ago, 2.5h yesterday
	f.now = time.Date(2024, 3, 2, 9, 0, 0, 0, time.UTC)
	_, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})
	require.NoError(t, err)
	f.now = f.now.Add(8 * time.Hour)
	_, err = f.service.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	f.now = time.Date(2024, 3, 9, 9, 0, 0, 0, time.UTC)
	_, err = f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})
	require.NoError(t, err)
	f.now = f.now.Add(2*time.Hour + 30*time.Minute)
	_, err = f.service.CheckOut(ctx, "emp-1")
	require.NoError(t, err)

	f.now = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

	testCases := []struct {
		name     string
		userID   string
		days     int
		expected float64
	}{
		{"All entries", "emp-1", 0, 10.5},
		{"Negative window covers all", "emp-1", -3, 10.5},
		{"Seven days excludes the older entry", "emp-1", 7, 2.5},
		{"Thirty days", "emp-1", 30, 10.5},
		{"Window beyond Duration range covers all", "emp-1", math.MaxInt, 10.5},
		{"Longest representable window", "emp-1", int(maxDurationDays), 10.5},
		{"Unknown user", "emp-2", 7, 0},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			hours, err := f.service.CalculateTotalHours(ctx, tc.userID, tc.days)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, hours)
		})
	}
}

func TestService_GetAllEmployeesTimeLogs(t *testing.T) {
	ctx := context.Background()

	t.Run("Rows are sorted by user ID and cached", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		cache := mockpersistence.NewMockReportCache(t)
		f := newServiceFixture(t, repo, cache)

		repo.EXPECT().List(mock.Anything).Return([]*entity.UserTimeLedger{
			openLedger("emp-b", f.now, 1),
			openLedger("emp-a", f.now, 1),
			{UserID: "emp-c", CheckIns: []entity.TimeEntry{}, Version: 2},
		}, nil).Once()
		cache.EXPECT().Get().Return(nil, false).Once()
		cache.EXPECT().Generation().Return(uint64(7)).Once()
		cache.EXPECT().Set(mock.MatchedBy(func(report []entity.EmployeeTimeLog) bool {
			return len(report) == 3
		}), uint64(7)).Return(true).Once()

		report, err := f.service.GetAllEmployeesTimeLogs(ctx)

		require.NoError(t, err)
		require.Len(t, report, 3)
		assert.Equal(t, "emp-a", report[0].UserID)
		assert.Equal(t, "emp-b", report[1].UserID)
		assert.Equal(t, "emp-c", report[2].UserID)
		assert.Equal(t, "Alice", report[0].UserName)
		assert.NotNil(t, report[0].CurrentCheckIn)
		assert.Equal(t, "", report[2].UserName)
	})

	t.Run("Generation is taken before the ledgers are read", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		cache := mockpersistence.NewMockReportCache(t)
		f := newServiceFixture(t, repo, cache)

		generationRead := false
		cache.EXPECT().Get().Return(nil, false).Once()
		cache.EXPECT().Generation().RunAndReturn(func() uint64 {
			generationRead = true
			return 3
		}).Once()
		repo.EXPECT().List(mock.Anything).RunAndReturn(func(context.Context) ([]*entity.UserTimeLedger, error) {
			assert.True(t, generationRead)
			return []*entity.UserTimeLedger{openLedger("emp-a", f.now, 1)}, nil
		}).Once()
		cache.EXPECT().Set(mock.Anything, uint64(3)).Return(false).Once()

		report, err := f.service.GetAllEmployeesTimeLogs(ctx)

		require.NoError(t, err)
		assert.Len(t, report, 1)
	})

	t.Run("Cache hit skips the repository", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		cache := mockpersistence.NewMockReportCache(t)
		f := newServiceFixture(t, repo, cache)

		cached := []entity.EmployeeTimeLog{{UserID: "emp-a"}}
		cache.EXPECT().Get().Return(cached, true).Once()

		report, err := f.service.GetAllEmployeesTimeLogs(ctx)

		require.NoError(t, err)
		assert.Equal(t, cached, report)
		repo.AssertNotCalled(t, "List", mock.Anything)
	})

	t.Run("Repository error is returned", func(t *testing.T) {
		repo := mockpersistence.NewMockLedgerRepository(t)
		f := newServiceFixture(t, repo, nil)
		repo.EXPECT().List(mock.Anything).Return(nil, errs.ErrStorageCorrupt).Once()

		report, err := f.service.GetAllEmployeesTimeLogs(ctx)

		assert.ErrorIs(t, err, errs.ErrStorageCorrupt)
		assert.Nil(t, report)
	})
}

func TestService_StaleCheckIns(t *testing.T) {
	repo := mockpersistence.NewMockLedgerRepository(t)
	f := newServiceFixture(t, repo, nil)
	yesterday := f.now.Add(-24 * time.Hour)

	repo.EXPECT().List(mock.Anything).Return([]*entity.UserTimeLedger{
		openLedger("emp-b", yesterday, 1),
		openLedger("emp-a", f.now, 1),
		openLedger("emp-0", yesterday.Add(-24*time.Hour), 1),
	}, nil).Once()

	stale, err := f.service.StaleCheckIns(context.Background())

	require.NoError(t, err)
	require.Len(t, stale, 2)
	assert.Equal(t, "emp-0", stale[0].UserID)
	assert.Equal(t, "emp-b", stale[1].UserID)
}

func TestService_WorkdayScenario(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLedgerRepository()
	f := newServiceFixture(t, repo, nil)

	f.now = time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})
	require.NoError(t, err)
	assert.True(t, result.Success)

	f.now = time.Date(2024, 3, 4, 9, 5, 0, 0, time.UTC)
	before, _ := repo.Get(ctx, "emp-1")
	result, err = f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})
	assert.ErrorIs(t, err, errs.ErrAlreadyCheckedIn)
	assert.False(t, result.Success)
	after, _ := repo.Get(ctx, "emp-1")
	assert.Equal(t, before, after)

	f.now = time.Date(2024, 3, 4, 17, 30, 0, 0, time.UTC)
	out, err := f.service.CheckOut(ctx, "emp-1")
	require.NoError(t, err)
	assert.Equal(t, 8.5, out.HoursWorked)

	ledger, err := repo.Get(ctx, "emp-1")
	require.NoError(t, err)
	require.Len(t, ledger.CheckIns, 1)
	assert.Equal(t, 8.5, *ledger.CheckIns[0].HoursWorked)
	assert.Nil(t, ledger.CurrentCheckIn)

	status, err := f.service.GetTodayCheckInStatus(ctx, "emp-1")
	require.NoError(t, err)
	assert.False(t, status.CheckedIn)
}

func TestService_ConcurrentCheckIns(t *testing.T) {
	ctx := context.Background()
	repo := newFakeLedgerRepository()
	f := newServiceFixture(t, repo, nil)

	var successes, rejections atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			result, err := f.service.CheckIn(ctx, usecase.CheckInRequest{UserID: "emp-1", UserName: "Alice"})
			switch {
			case err == nil && result.Success:
				successes.Add(1)
			case errors.Is(err, errs.ErrAlreadyCheckedIn):
				rejections.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), successes.Load())
	assert.Equal(t, int32(24), rejections.Load())
	assert.Equal(t, 1, repo.puts)
}

func TestStatusCodeFor(t *testing.T) {
	testCases := []struct {
		err      error
		expected int
	}{
		{nil, http.StatusOK},
		{errs.ErrInvalidUserID, http.StatusBadRequest},
		{errs.ErrInvalidWindow, http.StatusBadRequest},
		{errs.ErrAlreadyCheckedIn, http.StatusConflict},
		{errs.ErrNotCheckedIn, http.StatusConflict},
		{errs.NewVersionConflictError("emp-1", 1, 2), http.StatusConflict},
		{errs.ErrUserLocked, http.StatusConflict},
		{errs.ErrStorageUnavailable, http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, StatusCodeFor(tc.err), "error %v", tc.err)
	}
}

func TestValidateWindowDays(t *testing.T) {
	assert.NoError(t, ValidateWindowDays(0))
	assert.NoError(t, ValidateWindowDays(7))
	assert.ErrorIs(t, ValidateWindowDays(-1), errs.ErrInvalidWindow)
	assert.ErrorIs(t, ValidateWindowDays(MaxWindowDays+1), errs.ErrInvalidWindow)
}
