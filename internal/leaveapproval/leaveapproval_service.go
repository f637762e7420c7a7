package leaveapproval

import (
	"context"
	"strings"
	"time"

	"hris-portal/internal/events"
	"hris-portal/internal/leave"
	leaveerrors "hris-portal/internal/leave/errors"
	"hris-portal/internal/messaging/kafka"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"go.uber.org/zap"
)

const SliceName = "leave"

type Service interface {
	All(ctx context.Context, st *store.Store, filter Filter) (ListView, error)
	Approve(ctx context.Context, st *store.Store, id string) (leave.Record, error)
	Reject(ctx context.Context, st *store.Store, id, reason string) (leave.Record, error)
}

type service struct {
	gateway  Gateway
	recorder *kafka.Recorder
	logger   *zap.Logger
}

func NewService(gw Gateway, recorder *kafka.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("leaveapproval.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leaveapproval.service")
	}
	return &service{gateway: gw, recorder: recorder, logger: l}
}

func leavesSlice(st *store.Store) *store.Slice[[]leave.Record] {
	return store.Use[[]leave.Record](st, SliceName)
}

func (s *service) load(ctx context.Context, st *store.Store, force bool) (store.State[[]leave.Record], error) {
	sl := leavesSlice(st)
	snap, err := sl.Snapshot()
	if err != nil {
		return snap, err
	}
	if force || snap.Status == store.StatusIdle {
		return store.Load(ctx, sl, s.gateway.All)
	}
	return snap, nil
}

func matches(r leave.Record, f Filter) bool {
	if f.Status != "" && f.Status != "all" && r.Status != f.Status {
		return false
	}
	if f.Type != "" && f.Type != "all" && r.LeaveType != f.Type {
		return false
	}
	if f.Year > 0 {
		start, err := leave.ParseDay(r.StartDate)
		if err != nil || start.Year() != f.Year {
			return false
		}
	}
	return true
}

func (s *service) All(ctx context.Context, st *store.Store, filter Filter) (ListView, error) {
	snap, err := s.load(ctx, st, filter.Refresh)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("fetch all leaves failed", zap.Error(err))
		return ListView{}, err
	}

	view := ListView{
		Status: snap.Status.String(),
		Error:  snap.ErrorMessage(),
		Leaves: []leave.Record{},
	}
	for _, r := range snap.Data {
		switch r.Status {
		case leave.StatusPending:
			view.Counts.Pending++
		case leave.StatusApproved:
			view.Counts.Approved++
		case leave.StatusRejected:
			view.Counts.Rejected++
		}
		if matches(r, filter) {
			view.Leaves = append(view.Leaves, r)
		}
	}
	return view, nil
}

func (s *service) Approve(ctx context.Context, st *store.Store, id string) (leave.Record, error) {
	return s.decide(ctx, st, id, UpdateStatusRequest{Status: leave.StatusApproved})
}

// Reject needs a non-blank reason; without one nothing is sent.
func (s *service) Reject(ctx context.Context, st *store.Store, id, reason string) (leave.Record, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return leave.Record{}, leaveerrors.ErrRejectionReasonRequired
	}
	return s.decide(ctx, st, id, UpdateStatusRequest{Status: leave.StatusRejected, RejectionReason: reason})
}

func findRecord(list []leave.Record, id string) (leave.Record, bool) {
	for _, r := range list {
		if r.ID == id {
			return r, true
		}
	}
	return leave.Record{}, false
}

// decide moves a pending request to a terminal state. Decided requests are
// refused here; the server still has the final word.
func (s *service) decide(ctx context.Context, st *store.Store, id string, req UpdateStatusRequest) (leave.Record, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	snap, err := s.load(ctx, st, false)
	if err != nil {
		return leave.Record{}, err
	}
	current, ok := findRecord(snap.Data, id)
	if !ok {
		return leave.Record{}, leaveerrors.ErrLeaveNotFound
	}
	if !current.Pending() {
		log.Info("leave decision refused", zap.String("leave_id", id), zap.String("status", current.Status))
		return leave.Record{}, leaveerrors.ErrAlreadyDecided
	}

	sl := leavesSlice(st)
	res, err := s.gateway.UpdateStatus(ctx, id, req)
	if err != nil {
		_ = sl.Fail(err)
		log.Error("update leave status failed", zap.String("leave_id", id), zap.String("status", req.Status), zap.Error(err))
		return leave.Record{}, err
	}

	updated := current
	updated.Status = req.Status
	updated.RejectionReason = req.RejectionReason
	if res.Leave != nil {
		updated = *res.Leave
	} else if r, ok := findRecord(res.Leaves, id); ok {
		updated = r
	}

	if err := sl.Update(func(list []leave.Record) []leave.Record {
		if res.Leaves != nil {
			return res.Leaves
		}
		out := append([]leave.Record(nil), list...)
		for i := range out {
			if out[i].ID == id {
				out[i] = updated
			}
		}
		return out
	}); err != nil {
		return leave.Record{}, err
	}

	employeeName := updated.EmployeeName
	if employeeName == "" {
		employeeName = updated.Name
	}
	s.recorder.Record(ctx, events.LeaveTopic, events.TypeLeaveDecided, "leave", id, events.LeaveDecidedEvent{
		EventType:       events.TypeLeaveDecided,
		LeaveID:         id,
		EmployeeName:    employeeName,
		EmployeeEmail:   updated.Email,
		LeaveType:       updated.LeaveType,
		Status:          updated.Status,
		RejectionReason: updated.RejectionReason,
		DecidedBy:       contextutil.GetUserID(ctx),
		OccurredAt:      time.Now().UTC(),
	})

	log.Info("leave decided", zap.String("leave_id", id), zap.String("status", updated.Status))
	return updated, nil
}
