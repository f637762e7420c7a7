package attendance

import (
	"context"
	"time"

	attendanceerrors "hris-portal/internal/attendance/errors"
	"hris-portal/internal/events"
	"hris-portal/internal/gateway"
	"hris-portal/internal/messaging/kafka"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const SliceName = "attendance"

type Service interface {
	Overview(ctx context.Context, st *store.Store) (Overview, error)
	FetchLogs(ctx context.Context, st *store.Store) (Overview, error)
	ClockIn(ctx context.Context, st *store.Store, req ClockInRequest) (Session, error)
	ClockOut(ctx context.Context, st *store.Store, sessionID string) (Session, error)
	DailyReport(ctx context.Context) ([]DailyReportRow, error)
	Export(ctx context.Context, st *store.Store) ([]byte, error)
	Poll(ctx context.Context, st *store.Store, interval time.Duration, onSync func(Overview)) error
}

type service struct {
	gateway  Gateway
	recorder *kafka.Recorder
	loc      *time.Location
	now      func() time.Time
	sf       *singleflight.Group
	logger   *zap.Logger
}

func NewService(gw Gateway, recorder *kafka.Recorder, loc *time.Location, logger ...*zap.Logger) Service {
	l := zap.L().Named("attendance.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("attendance.service")
	}
	if loc == nil {
		loc = time.UTC
	}
	return &service{
		gateway:  gw,
		recorder: recorder,
		loc:      loc,
		now:      time.Now,
		sf:       &singleflight.Group{},
		logger:   l,
	}
}

func logsSlice(st *store.Store) *store.Slice[Logs] {
	return store.Use[Logs](st, SliceName)
}

func (s *service) overviewFrom(snap store.State[Logs]) Overview {
	ov := BuildOverview(snap.Data, s.now(), s.loc)
	ov.Status = snap.Status.String()
	ov.Error = snap.ErrorMessage()
	ov.UpdatedAt = snap.UpdatedAt
	return ov
}

func (s *service) Overview(ctx context.Context, st *store.Store) (Overview, error) {
	snap, err := logsSlice(st).Snapshot()
	if err != nil {
		return Overview{}, err
	}
	if snap.Status == store.StatusIdle {
		return s.FetchLogs(ctx, st)
	}
	return s.overviewFrom(snap), nil
}

// FetchLogs replaces sessions, daily stats and summary with the server's.
// Concurrent fetches for one store share a single upstream call. The shared
// call outlives any one caller and is bounded by the transport timeout.
func (s *service) FetchLogs(ctx context.Context, st *store.Store) (Overview, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	sl := logsSlice(st)

	fetchCtx := context.WithoutCancel(ctx)
	ch := s.sf.DoChan(st.ID(), func() (any, error) {
		return store.Load(fetchCtx, sl, s.gateway.FetchLogs)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return Overview{}, ctx.Err()
	case res = <-ch:
	}

	v, err, shared := res.Val, res.Err, res.Shared
	if err != nil {
		log.Warn("fetch attendance logs failed", zap.String("session_id", st.ID()), zap.Error(err))
		return Overview{}, err
	}

	snap := v.(store.State[Logs])
	log.Debug("attendance logs fetched",
		zap.String("session_id", st.ID()),
		zap.Int("sessions", len(snap.Data.Sessions)),
		zap.Bool("shared", shared),
	)
	return s.overviewFrom(snap), nil
}

// ClockIn starts a session. A known open session blocks the call before any
// request; logs are then re-fetched and checked again. The check is advisory,
// the server decides races.
func (s *service) ClockIn(ctx context.Context, st *store.Store, req ClockInRequest) (Session, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := apperror.Validator().Struct(req); err != nil {
		return Session{}, attendanceerrors.ErrInvalidWorkLocation
	}

	sl := logsSlice(st)
	snap, err := sl.Snapshot()
	if err != nil {
		return Session{}, err
	}
	if open := OpenSessions(snap.Data.Sessions); len(open) > 0 {
		log.Info("clock-in blocked by known open session",
			zap.String("open_session_id", open[0].ID),
			zap.Time("since", open[0].ClockIn),
		)
		return Session{}, attendanceerrors.OpenSessionExists(open[0].ClockIn, s.loc)
	}

	if _, err := s.FetchLogs(ctx, st); err != nil {
		if gateway.IsCanceled(err) {
			return Session{}, err
		}
		log.Warn("pre clock-in refresh failed, relying on local state", zap.Error(err))
	} else {
		snap, err = sl.Snapshot()
		if err != nil {
			return Session{}, err
		}
		if open := OpenSessions(snap.Data.Sessions); len(open) > 0 {
			log.Info("clock-in blocked by refreshed open session", zap.String("open_session_id", open[0].ID))
			return Session{}, attendanceerrors.OpenSessionExists(open[0].ClockIn, s.loc)
		}
	}

	created, err := s.gateway.ClockIn(ctx, req)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeConflict) {
			log.Warn("clock-in lost a race, resyncing", zap.Error(err))
			if _, syncErr := s.FetchLogs(ctx, st); syncErr != nil {
				log.Warn("resync after conflict failed", zap.Error(syncErr))
			}
			return Session{}, attendanceerrors.ErrSessionConflict
		}
		_ = sl.Fail(err)
		log.Error("clock-in failed", zap.Error(err))
		return Session{}, err
	}

	if err := sl.Update(func(l Logs) Logs {
		l.Sessions = upsertSession(l.Sessions, created)
		return l
	}); err != nil {
		return Session{}, err
	}

	s.recorder.Record(ctx, events.AttendanceTopic, events.TypeClockedIn, "attendance", created.ID, events.AttendanceRecordedEvent{
		EventType:    events.TypeClockedIn,
		SessionID:    created.ID,
		Email:        contextutil.GetUserID(ctx),
		WorkLocation: created.WorkLocation,
		At:           created.ClockIn,
		OccurredAt:   s.now().UTC(),
	})

	log.Info("clocked in", zap.String("attendance_session_id", created.ID), zap.String("work_location", created.WorkLocation))
	return created, nil
}

// ClockOut closes sessionID and stores the server's version of it.
func (s *service) ClockOut(ctx context.Context, st *store.Store, sessionID string) (Session, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if sessionID == "" {
		return Session{}, attendanceerrors.ErrSessionIDRequired
	}

	sl := logsSlice(st)
	closed, err := s.gateway.ClockOut(ctx, sessionID)
	if err != nil {
		_ = sl.Fail(err)
		log.Error("clock-out failed", zap.String("attendance_session_id", sessionID), zap.Error(err))
		return Session{}, err
	}
	if closed.ID == "" {
		closed.ID = sessionID
	}

	if err := sl.Update(func(l Logs) Logs {
		l.Sessions = upsertSession(l.Sessions, closed)
		return l
	}); err != nil {
		return Session{}, err
	}

	at := s.now()
	if closed.ClockOut != nil {
		at = *closed.ClockOut
	}
	s.recorder.Record(ctx, events.AttendanceTopic, events.TypeClockedOut, "attendance", closed.ID, events.AttendanceRecordedEvent{
		EventType:    events.TypeClockedOut,
		SessionID:    closed.ID,
		Email:        contextutil.GetUserID(ctx),
		WorkLocation: closed.WorkLocation,
		At:           at,
		OccurredAt:   s.now().UTC(),
	})

	log.Info("clocked out", zap.String("attendance_session_id", closed.ID))
	return closed, nil
}

func (s *service) DailyReport(ctx context.Context) ([]DailyReportRow, error) {
	entries, err := s.gateway.DailyReport(ctx)
	if err != nil {
		return nil, err
	}
	return BuildDailyReport(entries, s.loc), nil
}
