package sync_all_calendars

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/BRB-SchedulingService/internal/usecase/sync_calendar"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fakeCredRepo struct {
	staffIDs []int64
	err      error
}

func (r *fakeCredRepo) ListStaffIDs(_ context.Context, provider string) ([]int64, error) {
	return r.staffIDs, r.err
}

type fakeSyncer struct {
	mu      sync.Mutex
	results map[int64]*sync_calendar.Response
	errs    map[int64]error
	seen    []int64
}

func (s *fakeSyncer) Execute(_ context.Context, req sync_calendar.Request) (*sync_calendar.Response, error) {
	s.mu.Lock()
	s.seen = append(s.seen, req.StaffID)
	s.mu.Unlock()

	if err, ok := s.errs[req.StaffID]; ok {
		return nil, err
	}
	return s.results[req.StaffID], nil
}

func TestExecute_AggregatesAcrossStaff(t *testing.T) {
	syncer := &fakeSyncer{results: map[int64]*sync_calendar.Response{
		1: {Synced: 2, Errors: 0, Skipped: 1, Total: 3},
		2: {Synced: 1, Errors: 1, Skipped: 0, Total: 2},
	}}

	uc := New(&fakeCredRepo{staffIDs: []int64{1, 2}}, syncer, nopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Synced)
	assert.Equal(t, 1, resp.Errors)
	assert.Equal(t, 5, resp.Total)
	assert.Equal(t, 2, resp.StaffProcessed)
	assert.ElementsMatch(t, []int64{1, 2}, syncer.seen)
}

func TestExecute_FailureIsolation(t *testing.T) {
	// падение одного мастера не мешает остальным и дает +1 к ошибкам
	syncer := &fakeSyncer{
		results: map[int64]*sync_calendar.Response{
			1: {Synced: 2, Total: 2},
			3: {Synced: 1, Total: 1},
		},
		errs: map[int64]error{
			2: sync_calendar.ErrTokenRefresh,
		},
	}

	uc := New(&fakeCredRepo{staffIDs: []int64{1, 2, 3}}, syncer, nopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 3, resp.Synced)
	assert.Equal(t, 1, resp.Errors)
	assert.Equal(t, 3, resp.Total)
	assert.Equal(t, 3, resp.StaffProcessed)
}

func TestExecute_DisconnectedStaffIgnored(t *testing.T) {
	syncer := &fakeSyncer{
		results: map[int64]*sync_calendar.Response{1: {Synced: 1, Total: 1}},
		errs:    map[int64]error{2: sync_calendar.ErrNotConnected},
	}

	uc := New(&fakeCredRepo{staffIDs: []int64{1, 2}}, syncer, nopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, resp.Synced)
	assert.Equal(t, 0, resp.Errors)
	assert.Equal(t, 2, resp.StaffProcessed)
}

func TestExecute_NoStaff(t *testing.T) {
	uc := New(&fakeCredRepo{}, &fakeSyncer{}, nopLogger{})
	resp, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, resp.StaffProcessed)
	assert.Empty(t, resp.Synced)
}

func TestExecute_ListError(t *testing.T) {
	uc := New(&fakeCredRepo{err: errors.New("db down")}, &fakeSyncer{}, nopLogger{})
	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}
