package attendance_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"hris-portal/internal/attendance"
	attendanceerrors "hris-portal/internal/attendance/errors"
	"hris-portal/internal/attendance/mock"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
	"go.uber.org/mock/gomock"
)

func setup(t *testing.T) (*mock.MockGateway, attendance.Service, *store.Store) {
	ctrl := gomock.NewController(t)
	gw := mock.NewMockGateway(ctrl)
	st := store.New("sid-1")
	t.Cleanup(st.Close)
	return gw, attendance.NewService(gw, nil, time.UTC), st
}

func openLogs() attendance.Logs {
	return attendance.Logs{Sessions: []attendance.Session{
		{ID: "open-1", ClockIn: at("2026-10-17T09:15:00Z"), WorkLocation: attendance.LocationOffice},
	}}
}

func TestClockIn_BlockedByKnownOpenSessionWithoutRequest(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().FetchLogs(gomock.Any()).Return(openLogs(), nil).Times(1)
	_, err := svc.FetchLogs(ctx, st)
	require.NoError(t, err)

	// no further gateway call is expected: gomock fails on any
	_, err = svc.ClockIn(ctx, st, attendance.ClockInRequest{WorkLocation: attendance.LocationOffice})

	require.Error(t, err)
	assert.Equal(t, "You have an open session since 09:15 AM. Please clock out first.", err.Error())
	assert.True(t, apperror.HasCode(err, apperror.CodeInvalidState))
}

func TestClockIn_BlockedByRefetchedOpenSession(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().FetchLogs(gomock.Any()).Return(openLogs(), nil).Times(1)

	_, err := svc.ClockIn(context.Background(), st, attendance.ClockInRequest{WorkLocation: attendance.LocationWorkFromHome})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "09:15 AM")
}

func TestClockIn_InvalidLocation(t *testing.T) {
	_, svc, st := setup(t)

	_, err := svc.ClockIn(context.Background(), st, attendance.ClockInRequest{WorkLocation: "beach"})
	assert.ErrorIs(t, err, attendanceerrors.ErrInvalidWorkLocation)
}

func TestClockIn_Success(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	created := attendance.Session{ID: "s-new", ClockIn: at("2026-10-17T09:00:00Z"), WorkLocation: attendance.LocationOffice}
	gomock.InOrder(
		gw.EXPECT().FetchLogs(gomock.Any()).Return(attendance.Logs{Sessions: []attendance.Session{}}, nil),
		gw.EXPECT().ClockIn(gomock.Any(), attendance.ClockInRequest{WorkLocation: attendance.LocationOffice}).Return(created, nil),
	)

	got, err := svc.ClockIn(ctx, st, attendance.ClockInRequest{WorkLocation: attendance.LocationOffice})
	require.NoError(t, err)
	assert.Equal(t, "s-new", got.ID)

	ov, err := svc.Overview(ctx, st)
	require.NoError(t, err)
	require.NotNil(t, ov.ActiveSession)
	assert.Equal(t, "s-new", ov.ActiveSession.ID)
	assert.Equal(t, "loaded", ov.Status)
}

func TestClockIn_RefreshFailureFallsBackToLocalState(t *testing.T) {
	gw, svc, st := setup(t)

	created := attendance.Session{ID: "s-new", ClockIn: at("2026-10-17T09:00:00Z"), WorkLocation: attendance.LocationOffice}
	gw.EXPECT().FetchLogs(gomock.Any()).Return(attendance.Logs{}, apperror.ErrUpstreamUnavailable)
	gw.EXPECT().ClockIn(gomock.Any(), gomock.Any()).Return(created, nil)

	got, err := svc.ClockIn(context.Background(), st, attendance.ClockInRequest{WorkLocation: attendance.LocationOffice})
	require.NoError(t, err)
	assert.Equal(t, "s-new", got.ID)
}

func TestClockIn_ServerConflictResyncs(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	conflict := apperror.New(apperror.CodeConflict, "already clocked in", http.StatusConflict)
	gomock.InOrder(
		gw.EXPECT().FetchLogs(gomock.Any()).Return(attendance.Logs{}, nil),
		gw.EXPECT().ClockIn(gomock.Any(), gomock.Any()).Return(attendance.Session{}, conflict),
		gw.EXPECT().FetchLogs(gomock.Any()).Return(openLogs(), nil),
	)

	_, err := svc.ClockIn(ctx, st, attendance.ClockInRequest{WorkLocation: attendance.LocationOffice})
	assert.ErrorIs(t, err, attendanceerrors.ErrSessionConflict)

	ov, err := svc.Overview(ctx, st)
	require.NoError(t, err)
	require.NotNil(t, ov.ActiveSession)
	assert.Equal(t, "open-1", ov.ActiveSession.ID)
}

func TestClockOut_ReplacesSession(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	out := at("2026-10-17T17:00:00Z")
	gw.EXPECT().FetchLogs(gomock.Any()).Return(openLogs(), nil)
	gw.EXPECT().ClockOut(gomock.Any(), "open-1").Return(attendance.Session{
		ID: "open-1", ClockIn: at("2026-10-17T09:15:00Z"), ClockOut: &out, EffectiveHours: 7.75,
	}, nil)

	_, err := svc.FetchLogs(ctx, st)
	require.NoError(t, err)

	got, err := svc.ClockOut(ctx, st, "open-1")
	require.NoError(t, err)
	assert.False(t, got.Open())

	ov, err := svc.Overview(ctx, st)
	require.NoError(t, err)
	assert.Nil(t, ov.ActiveSession)
	require.Len(t, ov.Sessions, 1)
	assert.Equal(t, 7.75, ov.Sessions[0].EffectiveHours)
}

func TestClockOut_RequiresID(t *testing.T) {
	_, svc, st := setup(t)

	_, err := svc.ClockOut(context.Background(), st, "")
	assert.ErrorIs(t, err, attendanceerrors.ErrSessionIDRequired)
}

func TestClockOut_FailureKeepsData(t *testing.T) {
	gw, svc, st := setup(t)
	ctx := context.Background()

	gw.EXPECT().FetchLogs(gomock.Any()).Return(openLogs(), nil)
	gw.EXPECT().ClockOut(gomock.Any(), "open-1").Return(attendance.Session{}, errors.New("boom"))

	_, err := svc.FetchLogs(ctx, st)
	require.NoError(t, err)

	_, err = svc.ClockOut(ctx, st, "open-1")
	require.Error(t, err)

	ov, err := svc.Overview(ctx, st)
	require.NoError(t, err)
	assert.Equal(t, "failed", ov.Status)
	assert.Equal(t, "boom", ov.Error)
	require.NotNil(t, ov.ActiveSession)
}

func TestOverview_LoadsWhenIdle(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().FetchLogs(gomock.Any()).Return(openLogs(), nil).Times(1)

	ov, err := svc.Overview(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, "loaded", ov.Status)

	_, err = svc.Overview(context.Background(), st)
	require.NoError(t, err)
}

func TestDailyReport(t *testing.T) {
	gw, svc, _ := setup(t)

	gw.EXPECT().DailyReport(gomock.Any()).Return([]attendance.DailyReportEntry{
		{Date: "2026-10-17", TotalWorkingTime: 9 * 3600},
	}, nil)

	rows, err := svc.DailyReport(context.Background())
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Matched", rows[0].Status)
}

func TestExport_WritesWorkbook(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().FetchLogs(gomock.Any()).Return(attendance.Logs{Sessions: []attendance.Session{
		closedSession("b", "2026-10-17T08:00:00Z", "2026-10-17T12:00:00Z", attendance.LocationOffice, 4),
		closedSession("a", "2026-10-16T09:00:00Z", "2026-10-16T13:00:00Z", attendance.LocationWorkFromHome, 4),
	}}, nil)

	data, err := svc.Export(context.Background(), st)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Attendance")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Date", rows[0][0])
	assert.Equal(t, "2026-10-16", rows[1][0])
	assert.Equal(t, "work_from_home", rows[1][3])
	assert.Equal(t, "12:00", rows[2][2])
}

func TestExport_Empty(t *testing.T) {
	gw, svc, st := setup(t)

	gw.EXPECT().FetchLogs(gomock.Any()).Return(attendance.Logs{}, nil)

	_, err := svc.Export(context.Background(), st)
	assert.ErrorIs(t, err, attendanceerrors.ErrExportEmpty)
}

func TestPoll_StopsWhenViewCloses(t *testing.T) {
	gw, svc, st := setup(t)

	var fetches atomic.Int32
	gw.EXPECT().FetchLogs(gomock.Any()).DoAndReturn(func(context.Context) (attendance.Logs, error) {
		fetches.Add(1)
		return attendance.Logs{}, nil
	}).AnyTimes()

	ctx, cancel := context.WithCancel(context.Background())
	synced := make(chan attendance.Overview, 16)
	done := make(chan error, 1)
	go func() {
		done <- svc.Poll(ctx, st, 5*time.Millisecond, func(ov attendance.Overview) {
			select {
			case synced <- ov:
			default:
			}
		})
	}()

	for i := 0; i < 3; i++ {
		select {
		case ov := <-synced:
			assert.Equal(t, "loaded", ov.Status)
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not sync")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("poller did not stop")
	}

	after := fetches.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, after, fetches.Load())
}

func TestFetchLogs_CancelledCallerDoesNotFailJoinedClockIn(t *testing.T) {
	gw, svc, st := setup(t)

	started := make(chan struct{}, 1)
	release := make(chan struct{})
	gw.EXPECT().FetchLogs(gomock.Any()).DoAndReturn(func(ctx context.Context) (attendance.Logs, error) {
		select {
		case started <- struct{}{}:
		default:
		}
		<-release
		return attendance.Logs{Sessions: []attendance.Session{}}, ctx.Err()
	}).MinTimes(1)
	created := attendance.Session{ID: "s-new", ClockIn: at("2026-10-17T09:00:00Z"), WorkLocation: attendance.LocationOffice}
	gw.EXPECT().ClockIn(gomock.Any(), attendance.ClockInRequest{WorkLocation: attendance.LocationOffice}).Return(created, nil)

	pollCtx, stop := context.WithCancel(context.Background())
	pollDone := make(chan error, 1)
	go func() {
		_, err := svc.FetchLogs(pollCtx, st)
		pollDone <- err
	}()
	<-started

	type result struct {
		session attendance.Session
		err     error
	}
	clockedIn := make(chan result, 1)
	go func() {
		s, err := svc.ClockIn(context.Background(), st, attendance.ClockInRequest{WorkLocation: attendance.LocationOffice})
		clockedIn <- result{s, err}
	}()

	stop()
	select {
	case err := <-pollDone:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("cancelled caller kept waiting")
	}
	close(release)

	select {
	case r := <-clockedIn:
		require.NoError(t, r.err)
		assert.Equal(t, "s-new", r.session.ID)
	case <-time.After(2 * time.Second):
		t.Fatal("clock-in did not finish")
	}

	ov, err := svc.Overview(context.Background(), st)
	require.NoError(t, err)
	assert.Equal(t, "loaded", ov.Status)
	assert.Empty(t, ov.Error)
}

func TestFetchLogs_ClosingViewMidFetchLeavesNoError(t *testing.T) {
	gw, svc, st := setup(t)

	started := make(chan struct{})
	release := make(chan struct{})
	gw.EXPECT().FetchLogs(gomock.Any()).DoAndReturn(func(context.Context) (attendance.Logs, error) {
		close(started)
		<-release
		return openLogs(), nil
	}).Times(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := svc.FetchLogs(ctx, st)
		done <- err
	}()
	<-started
	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
	close(release)

	assert.Eventually(t, func() bool {
		snap, err := store.Use[attendance.Logs](st, attendance.SliceName).Snapshot()
		return err == nil && snap.Status == store.StatusLoaded
	}, 2*time.Second, 5*time.Millisecond)

	ov, err := svc.Overview(context.Background(), st)
	require.NoError(t, err)
	assert.Empty(t, ov.Error)
	require.NotNil(t, ov.ActiveSession)
	assert.Equal(t, "open-1", ov.ActiveSession.ID)
}
