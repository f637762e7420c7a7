package project

import (
	"context"
	"strings"

	projecterrors "hris-portal/internal/project/errors"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"go.uber.org/zap"
)

const SliceName = "projects"

type Service interface {
	List(ctx context.Context, st *store.Store, refresh bool) (ListView, error)
	Get(ctx context.Context, st *store.Store, id string) (Project, error)
	Create(ctx context.Context, st *store.Store, req CreateRequest) (Project, error)
}

type service struct {
	gateway Gateway
	logger  *zap.Logger
}

func NewService(gw Gateway, logger ...*zap.Logger) Service {
	l := zap.L().Named("project.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("project.service")
	}
	return &service{gateway: gw, logger: l}
}

func projects(st *store.Store) *store.Slice[[]Project] {
	return store.Use[[]Project](st, SliceName)
}

// Prepare validates the create form and flattens its references.
func Prepare(req CreateRequest) (CreatePayload, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return CreatePayload{}, projecterrors.ErrNameRequired
	}

	status := strings.TrimSpace(req.Status)
	if status == "" {
		status = StatusPending
	}
	if !ValidStatus(status) {
		return CreatePayload{}, projecterrors.ErrInvalidStatus
	}

	leaders := req.ProjectLeader.IDs()
	switch {
	case len(leaders) == 0:
		return CreatePayload{}, projecterrors.ErrLeaderRequired
	case len(leaders) > MaxLeaders:
		return CreatePayload{}, projecterrors.ErrTooManyLeaders
	}

	return CreatePayload{
		Name:           name,
		Status:         status,
		Description:    strings.TrimSpace(req.Description),
		Deadline:       req.Deadline,
		ProjectLeader:  leaders,
		ProjectMembers: req.ProjectMembers.IDs(),
	}, nil
}

func (s *service) fetch(ctx context.Context) ([]Project, error) {
	list, err := s.gateway.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Project, len(list))
	for i, p := range list {
		out[i] = p.normalized()
	}
	return out, nil
}

func view(snap store.State[[]Project]) ListView {
	list := snap.Data
	if list == nil {
		list = []Project{}
	}
	byStatus := make(map[string]int, len(Statuses))
	for _, st := range Statuses {
		byStatus[st] = 0
	}
	for _, p := range list {
		byStatus[p.Status]++
	}
	return ListView{
		Status:    snap.Status.String(),
		Error:     snap.ErrorMessage(),
		Projects:  list,
		ByStatus:  byStatus,
		UpdatedAt: snap.UpdatedAt,
	}
}

func (s *service) List(ctx context.Context, st *store.Store, refresh bool) (ListView, error) {
	if !refresh {
		snap, err := projects(st).Snapshot()
		if err != nil {
			return ListView{}, err
		}
		if snap.Status == store.StatusLoaded {
			return view(snap), nil
		}
	}

	snap, err := store.Load(ctx, projects(st), s.fetch)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("fetch projects failed", zap.Error(err))
		return ListView{}, err
	}
	return view(snap), nil
}

func find(list []Project, id string) (Project, bool) {
	for _, p := range list {
		if p.ID == id {
			return p, true
		}
	}
	return Project{}, false
}

// Get reads the project from the slice and falls back to the upstream list.
func (s *service) Get(ctx context.Context, st *store.Store, id string) (Project, error) {
	snap, err := projects(st).Snapshot()
	if err != nil {
		return Project{}, err
	}
	if p, ok := find(snap.Data, id); ok {
		return p, nil
	}

	snap, err = store.Load(ctx, projects(st), s.fetch)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("fetch projects failed", zap.String("project_id", id), zap.Error(err))
		return Project{}, err
	}
	if p, ok := find(snap.Data, id); ok {
		return p, nil
	}
	return Project{}, projecterrors.ErrProjectNotFound
}

func (s *service) Create(ctx context.Context, st *store.Store, req CreateRequest) (Project, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	payload, err := Prepare(req)
	if err != nil {
		log.Debug("project form rejected", zap.Error(err))
		return Project{}, err
	}

	created, err := s.gateway.Create(ctx, payload)
	if err != nil {
		_ = projects(st).Fail(err)
		log.Error("create project failed", zap.String("name", payload.Name), zap.Error(err))
		return Project{}, err
	}
	created = created.normalized()

	if err := projects(st).Update(func(list []Project) []Project {
		return append([]Project{created}, list...)
	}); err != nil {
		return Project{}, err
	}

	log.Info("project created",
		zap.String("project_id", created.ID),
		zap.Int("leaders", len(payload.ProjectLeader)),
		zap.Int("members", len(payload.ProjectMembers)),
	)
	return created, nil
}
