package leave

import (
	"context"
	"time"

	"hris-portal/internal/events"
	leaveerrors "hris-portal/internal/leave/errors"
	"hris-portal/internal/messaging/kafka"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"go.uber.org/zap"
)

const SliceName = "employeeLeave"

type Service interface {
	Apply(ctx context.Context, st *store.Store, req ApplyRequest) (Record, error)
	MyLeaves(ctx context.Context, st *store.Store) (MyLeavesView, error)
	View(ctx context.Context, st *store.Store) (MyLeavesView, error)
}

type service struct {
	gateway    Gateway
	recorder   *kafka.Recorder
	allowances map[string]float64
	logger     *zap.Logger
}

func NewService(gw Gateway, recorder *kafka.Recorder, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}
	return &service{
		gateway:  gw,
		recorder: recorder,
		allowances: map[string]float64{
			TypeSick:   DefaultAllowance,
			TypeAnnual: DefaultAllowance,
			TypeCasual: DefaultAllowance,
		},
		logger: l,
	}
}

func mySlice(st *store.Store) *store.Slice[MyLeaves] {
	return store.Use[MyLeaves](st, SliceName)
}

// ValidateApply checks the form the way the apply page does before anything
// is sent.
func ValidateApply(req ApplyRequest) error {
	if err := apperror.ValidateStruct(req); err != nil {
		return err
	}
	start, err := time.Parse(DateLayout, req.StartDate)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}
	end, err := time.Parse(DateLayout, req.EndDate)
	if err != nil {
		return leaveerrors.ErrInvalidDateFormat
	}
	if end.Before(start) {
		return leaveerrors.ErrEndBeforeStart
	}
	if req.Document != nil && req.Document.Size > MaxDocumentSize {
		return leaveerrors.ErrDocumentTooLarge
	}
	return nil
}

func (s *service) view(snap store.State[MyLeaves]) MyLeavesView {
	leaves := snap.Data.Leaves
	if leaves == nil {
		leaves = []Record{}
	}
	return MyLeavesView{
		Status:     snap.Status.String(),
		Error:      snap.ErrorMessage(),
		Leaves:     leaves,
		Statistics: snap.Data.Statistics,
		Balance:    ComputeStats(leaves, s.allowances),
		UpdatedAt:  snap.UpdatedAt,
	}
}

func (s *service) Apply(ctx context.Context, st *store.Store, req ApplyRequest) (Record, error) {
	log := contextutil.GetLogger(ctx, s.logger)
	if err := ValidateApply(req); err != nil {
		log.Debug("leave form rejected", zap.Error(err))
		return Record{}, err
	}

	created, err := s.gateway.Apply(ctx, req)
	if err != nil {
		_ = mySlice(st).Fail(err)
		log.Error("apply leave failed", zap.Error(err))
		return Record{}, err
	}
	if created.Status == "" {
		created.Status = StatusPending
	}

	if err := mySlice(st).Update(func(m MyLeaves) MyLeaves {
		m.Leaves = append(append([]Record(nil), m.Leaves...), created)
		return m
	}); err != nil {
		return Record{}, err
	}

	s.recorder.Record(ctx, events.LeaveTopic, events.TypeLeaveSubmitted, "leave", created.ID, events.LeaveSubmittedEvent{
		EventType:  events.TypeLeaveSubmitted,
		LeaveID:    created.ID,
		Email:      req.Email,
		LeaveType:  created.LeaveType,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		OccurredAt: time.Now().UTC(),
	})

	log.Info("leave submitted",
		zap.String("leave_id", created.ID),
		zap.String("leave_type", created.LeaveType),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)
	return created, nil
}

// MyLeaves replaces the slice with the server's list and statistics.
func (s *service) MyLeaves(ctx context.Context, st *store.Store) (MyLeavesView, error) {
	snap, err := store.Load(ctx, mySlice(st), s.gateway.MyLeaves)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("fetch my leaves failed", zap.Error(err))
		return MyLeavesView{}, err
	}
	return s.view(snap), nil
}

// View serves the cached slice, loading it on first use.
func (s *service) View(ctx context.Context, st *store.Store) (MyLeavesView, error) {
	snap, err := mySlice(st).Snapshot()
	if err != nil {
		return MyLeavesView{}, err
	}
	if snap.Status == store.StatusIdle {
		return s.MyLeaves(ctx, st)
	}
	return s.view(snap), nil
}
