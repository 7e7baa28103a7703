package cron

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/Priyareddy001/Company-portal-sub000/internal/domain/entity"
	"github.com/Priyareddy001/Company-portal-sub000/internal/infrastructure/adapter/logger"
	mockcore "github.com/Priyareddy001/Company-portal-sub000/mocks/port/core"
)

type fakeSource struct {
	entries []entity.TimeEntry
	err     error
	calls   int
}

func (f *fakeSource) StaleCheckIns(context.Context) ([]entity.TimeEntry, error) {
	f.calls++
	return f.entries, f.err
}

type fakeCleaner struct {
	calls int
}

func (f *fakeCleaner) CleanupExpiredLocks(context.Context) (int64, error) {
	f.calls++
	return 0, nil
}

func TestStaleChecker_Check(t *testing.T) {
	monday := time.Date(2024, 3, 4, 9, 0, 0, 0, time.UTC)
	source := &fakeSource{entries: []entity.TimeEntry{
		{Date: "2024-03-04", CheckInTime: monday, UserID: "alice", UserName: "Alice"},
		{Date: "2024-03-04", CheckInTime: monday, UserID: "bob", UserName: "Bob"},
	}}

	mockLogger := mockcore.NewMockLogger(t)
	mockLogger.EXPECT().Warn("Check-in left open from an earlier day", mock.Anything).Times(2)
	metrics := mockcore.NewMockMetrics(t)
	metrics.EXPECT().SetStaleCheckIns(2).Once()

	checker := NewStaleChecker(source, nil, "", mockLogger, metrics)

	count, err := checker.Check(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, count)
	assert.Equal(t, DefaultSchedule, checker.schedule)
}

func TestStaleChecker_CheckError(t *testing.T) {
	source := &fakeSource{err: errors.New("storage down")}
	metrics := mockcore.NewMockMetrics(t)

	checker := NewStaleChecker(source, nil, "", logger.NewNoopLogger(), metrics)

	_, err := checker.Check(context.Background())

	assert.EqualError(t, err, "storage down")
	metrics.AssertNotCalled(t, "SetStaleCheckIns", mock.Anything)
}

func TestStaleChecker_RunCleansLocks(t *testing.T) {
	source := &fakeSource{}
	cleaner := &fakeCleaner{}
	metrics := mockcore.NewMockMetrics(t)
	metrics.EXPECT().SetStaleCheckIns(0).Once()

	checker := NewStaleChecker(source, cleaner, "", logger.NewNoopLogger(), metrics)
	checker.run()

	assert.Equal(t, 1, source.calls)
	assert.Equal(t, 1, cleaner.calls)
}

func TestStaleChecker_StartRejectsBadSchedule(t *testing.T) {
	checker := NewStaleChecker(&fakeSource{}, nil, "not a schedule", logger.NewNoopLogger(), mockcore.NewMockMetrics(t))

	assert.Error(t, checker.Start())
}

func TestStaleChecker_StartStop(t *testing.T) {
	checker := NewStaleChecker(&fakeSource{}, nil, "@every 1h", logger.NewNoopLogger(), mockcore.NewMockMetrics(t))

	require.NoError(t, checker.Start())
	checker.Stop()
}
