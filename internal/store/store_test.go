package store

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"testing"

	"hris-portal/internal/shared/apperror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlice_Lifecycle(t *testing.T) {
	s := New("sess-1")
	defer s.Close()

	sl := Use[[]string](s, "projects")

	st, err := sl.Snapshot()
	require.NoError(t, err)
	assert.Equal(t, StatusIdle, st.Status)

	ticket, err := sl.BeginLoad()
	require.NoError(t, err)
	assert.NotEmpty(t, ticket.RequestID)

	st, _ = sl.Snapshot()
	assert.Equal(t, StatusLoading, st.Status)
	assert.Equal(t, ticket.RequestID, st.RequestID)

	applied, err := sl.Resolve(ticket, []string{"apollo"})
	require.NoError(t, err)
	assert.True(t, applied)

	st, _ = sl.Snapshot()
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Equal(t, []string{"apollo"}, st.Data)
}

func TestSlice_StaleResponseIsDropped(t *testing.T) {
	s := New("sess-1")
	defer s.Close()

	sl := Use[string](s, "attendance")

	first, _ := sl.BeginLoad()
	second, _ := sl.BeginLoad()

	// the second request answers first
	applied, err := sl.Resolve(second, "fresh")
	require.NoError(t, err)
	assert.True(t, applied)

	applied, err = sl.Resolve(first, "old")
	require.NoError(t, err)
	assert.False(t, applied)

	applied, _ = sl.Reject(first, errors.New("timeout"))
	assert.False(t, applied)

	st, _ := sl.Snapshot()
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Equal(t, "fresh", st.Data)
	assert.NoError(t, st.Err)
}

func TestSlice_RejectKeepsData(t *testing.T) {
	s := New("sess-1")
	defer s.Close()

	sl := Use[int](s, "payroll")
	tk, _ := sl.BeginLoad()
	_, _ = sl.Resolve(tk, 42)

	tk, _ = sl.BeginLoad()
	applied, err := sl.Reject(tk, errors.New("boom"))
	require.NoError(t, err)
	assert.True(t, applied)

	st, _ := sl.Snapshot()
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, 42, st.Data)
	assert.Equal(t, "boom", st.ErrorMessage())
}

func TestSlice_UpdateSupersedesInFlightLoad(t *testing.T) {
	s := New("sess-1")
	defer s.Close()

	sl := Use[[]int](s, "attendance")
	tk, _ := sl.BeginLoad()

	err := sl.Update(func(cur []int) []int { return append(cur, 7) })
	require.NoError(t, err)

	applied, _ := sl.Resolve(tk, []int{1, 2})
	assert.False(t, applied)

	st, _ := sl.Snapshot()
	assert.Equal(t, StatusLoaded, st.Status)
	assert.Equal(t, []int{7}, st.Data)
}

func TestSlice_FailKeepsData(t *testing.T) {
	s := New("sess-1")
	defer s.Close()

	sl := Use[string](s, "leave")
	_ = sl.Update(func(string) string { return "cached" })

	require.NoError(t, sl.Fail(errors.New("rejected")))

	st, _ := sl.Snapshot()
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, "cached", st.Data)
}

func TestUse_ReturnsSameSlice(t *testing.T) {
	s := New("sess-1")
	defer s.Close()

	a := Use[int](s, "x")
	b := Use[int](s, "x")
	assert.Same(t, a, b)

	assert.Panics(t, func() { Use[string](s, "x") })
}

func TestStore_Closed(t *testing.T) {
	s := New("sess-1")
	sl := Use[int](s, "x")
	s.Close()
	s.Close()

	assert.True(t, s.Closed())
	_, err := sl.BeginLoad()
	assert.ErrorIs(t, err, ErrStoreClosed)
	_, err = sl.Snapshot()
	assert.ErrorIs(t, err, ErrStoreClosed)

	detached := Use[int](s, "y")
	assert.ErrorIs(t, detached.Update(func(i int) int { return i + 1 }), ErrStoreClosed)
}

func TestLoad(t *testing.T) {
	s := New("sess-1")
	defer s.Close()
	sl := Use[string](s, "auth")

	st, err := Load(context.Background(), sl, func(context.Context) (string, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", st.Data)

	_, err = Load(context.Background(), sl, func(context.Context) (string, error) {
		return "", errors.New("upstream down")
	})
	assert.EqualError(t, err, "upstream down")

	st, _ = sl.Snapshot()
	assert.Equal(t, StatusFailed, st.Status)
	assert.Equal(t, "ok", st.Data)
}

func TestSlice_ConcurrentUpdatesAreSerialized(t *testing.T) {
	s := New("sess-1")
	defer s.Close()
	sl := Use[int](s, "counter")

	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = sl.Update(func(n int) int { return n + 1 })
		}()
	}
	wg.Wait()

	st, _ := sl.Snapshot()
	assert.Equal(t, 100, st.Data)
}

func TestLoad_CancelledFetchRestoresStatus(t *testing.T) {
	s := New("sess-1")
	defer s.Close()
	sl := Use[string](s, "logs")

	_, err := Load(context.Background(), sl, func(context.Context) (string, error) {
		return "first", nil
	})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	_, err = Load(ctx, sl, func(ctx context.Context) (string, error) {
		cancel()
		return "", ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)

	st, _ := sl.Snapshot()
	assert.Equal(t, StatusLoaded, st.Status)
	assert.NoError(t, st.Err)
	assert.Equal(t, "first", st.Data)

	idle := Use[string](s, "fresh")
	ctx, cancel = context.WithCancel(context.Background())
	cancel()
	_, err = Load(ctx, idle, func(ctx context.Context) (string, error) {
		return "", ctx.Err()
	})
	assert.ErrorIs(t, err, context.Canceled)
	st, _ = idle.Snapshot()
	assert.Equal(t, StatusIdle, st.Status)
}

func TestStore_ClosedMapsToUnauthorized(t *testing.T) {
	s := New("sess-1")
	sl := Use[int](s, "x")
	s.Close()

	_, err := sl.Snapshot()
	httpErr := apperror.ToHTTP(err)
	assert.Equal(t, http.StatusUnauthorized, httpErr.Status)
	assert.Equal(t, apperror.CodeUnauthorized, httpErr.Code)
}
