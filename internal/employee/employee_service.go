package employee

import (
	"context"
	"encoding/json"
	"strings"
	"time"

	employeeerrors "hris-portal/internal/employee/errors"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/store"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	SliceEmployees = "employees"
	SliceProfile   = "profile"

	OptionsCacheKey = "employees:options"
	OptionsCacheTTL = time.Hour
)

//go:generate mockgen -source=employee_service.go -destination=mock/employee_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, st *store.Store, refresh bool) ([]Employee, error)
	Get(ctx context.Context, st *store.Store, id string) (Employee, error)
	Register(ctx context.Context, st *store.Store, req RegisterRequest) (Employee, error)
	Update(ctx context.Context, st *store.Store, id string, req UpdateRequest) (Employee, error)
	Options(ctx context.Context) ([]Option, error)

	Me(ctx context.Context, st *store.Store, refresh bool) (ProfileView, error)
	Section(ctx context.Context, st *store.Store, name string) (any, error)
	SaveSection(ctx context.Context, st *store.Store, name string, form any) (ProfileView, error)
}

type service struct {
	gateway Gateway
	rdb     *redis.Client
	sf      *singleflight.Group
	logger  *zap.Logger
}

func NewService(gw Gateway, rdb *redis.Client, logger ...*zap.Logger) Service {
	l := zap.L().Named("employee.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employee.service")
	}
	return &service{
		gateway: gw,
		rdb:     rdb,
		sf:      &singleflight.Group{},
		logger:  l,
	}
}

func directory(st *store.Store) *store.Slice[[]Employee] {
	return store.Use[[]Employee](st, SliceEmployees)
}

func profile(st *store.Store) *store.Slice[Employee] {
	return store.Use[Employee](st, SliceProfile)
}

func (s *service) List(ctx context.Context, st *store.Store, refresh bool) ([]Employee, error) {
	if !refresh {
		snap, err := directory(st).Snapshot()
		if err != nil {
			return nil, err
		}
		if snap.Status == store.StatusLoaded {
			return nonNil(snap.Data), nil
		}
	}

	snap, err := store.Load(ctx, directory(st), s.gateway.List)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("fetch employees failed", zap.Error(err))
		return nil, err
	}
	return nonNil(snap.Data), nil
}

// Get serves the employee from the loaded directory and asks the HR API
// otherwise.
func (s *service) Get(ctx context.Context, st *store.Store, id string) (Employee, error) {
	snap, err := directory(st).Snapshot()
	if err != nil {
		return Employee{}, err
	}
	for _, e := range snap.Data {
		if e.ID == id {
			return e, nil
		}
	}

	e, err := s.gateway.Get(ctx, id)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Employee{}, employeeerrors.ErrEmployeeNotFound
		}
		contextutil.GetLogger(ctx, s.logger).Error("get employee failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, err
	}
	return e, nil
}

func (s *service) Register(ctx context.Context, st *store.Store, req RegisterRequest) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	req.Email = strings.TrimSpace(req.Email)
	if err := apperror.ValidateStruct(req); err != nil {
		return Employee{}, err
	}
	if *req.Salary < 0 {
		return Employee{}, employeeerrors.ErrNegativeSalary
	}

	created, err := s.gateway.Register(ctx, req)
	if err != nil {
		log.Error("register employee failed", zap.String("email", req.Email), zap.Error(err))
		return Employee{}, err
	}

	if err := directory(st).Update(func(list []Employee) []Employee {
		return append(append([]Employee(nil), list...), created)
	}); err != nil {
		return Employee{}, err
	}
	s.invalidateOptions(ctx)

	log.Info("employee registered",
		zap.String("employee_id", created.ID),
		zap.String("email", req.Email),
	)
	return created, nil
}

func (s *service) Update(ctx context.Context, st *store.Store, id string, req UpdateRequest) (Employee, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	if err := apperror.ValidateStruct(req); err != nil {
		return Employee{}, err
	}
	if req.Salary != nil && *req.Salary < 0 {
		return Employee{}, employeeerrors.ErrNegativeSalary
	}

	updated, err := s.gateway.Update(ctx, id, req)
	if err != nil {
		if apperror.HasCode(err, apperror.CodeNotFound) {
			return Employee{}, employeeerrors.ErrEmployeeNotFound
		}
		log.Error("update employee failed", zap.String("employee_id", id), zap.Error(err))
		return Employee{}, err
	}
	if updated.ID == "" {
		updated.ID = id
	}

	if err := directory(st).Update(func(list []Employee) []Employee {
		out := make([]Employee, len(list))
		for i, e := range list {
			if e.ID == id {
				e = updated
			}
			out[i] = e
		}
		return out
	}); err != nil {
		return Employee{}, err
	}
	s.invalidateOptions(ctx)

	log.Info("employee updated", zap.String("employee_id", id))
	return updated, nil
}

// Options is shared by every admin session, so it is cached in redis rather
// than in a session slice.
func (s *service) Options(ctx context.Context) ([]Option, error) {
	if s.rdb != nil {
		if cached, err := s.rdb.Get(ctx, OptionsCacheKey).Result(); err == nil {
			var opts []Option
			if json.Unmarshal([]byte(cached), &opts) == nil {
				return opts, nil
			}
		}
	}

	v, err, _ := s.sf.Do(OptionsCacheKey, func() (any, error) {
		list, err := s.gateway.List(ctx)
		if err != nil {
			return nil, err
		}

		opts := make([]Option, 0, len(list))
		for _, e := range list {
			opts = append(opts, Option{ID: e.ID, Name: e.FullName(), Email: e.Email, JobTitle: e.JobTitle})
		}

		if s.rdb != nil {
			if data, err := json.Marshal(opts); err == nil {
				if err := s.rdb.Set(ctx, OptionsCacheKey, data, OptionsCacheTTL).Err(); err != nil {
					s.logger.Warn("cache employee options failed", zap.Error(err))
				}
			}
		}
		return opts, nil
	})
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Error("fetch employee options failed", zap.Error(err))
		return nil, err
	}
	return v.([]Option), nil
}

func (s *service) invalidateOptions(ctx context.Context) {
	if s.rdb == nil {
		return
	}
	if err := s.rdb.Del(ctx, OptionsCacheKey).Err(); err != nil {
		s.logger.Error("failed to invalidate employee options cache",
			zap.Error(err),
			zap.String("key", OptionsCacheKey),
		)
	}
}

func profileView(snap store.State[Employee]) ProfileView {
	return ProfileView{
		Status:    snap.Status.String(),
		Error:     snap.ErrorMessage(),
		Profile:   snap.Data,
		Sections:  Sections(),
		UpdatedAt: snap.UpdatedAt,
	}
}

func (s *service) Me(ctx context.Context, st *store.Store, refresh bool) (ProfileView, error) {
	if !refresh {
		snap, err := profile(st).Snapshot()
		if err != nil {
			return ProfileView{}, err
		}
		if snap.Status == store.StatusLoaded {
			return profileView(snap), nil
		}
	}

	snap, err := store.Load(ctx, profile(st), s.gateway.Me)
	if err != nil {
		contextutil.GetLogger(ctx, s.logger).Warn("fetch profile failed", zap.Error(err))
		return ProfileView{}, err
	}
	return profileView(snap), nil
}

func (s *service) Section(ctx context.Context, st *store.Store, name string) (any, error) {
	sec, ok := sections[name]
	if !ok {
		return nil, employeeerrors.ErrUnknownSection
	}
	view, err := s.Me(ctx, st, false)
	if err != nil {
		return nil, err
	}
	return sec.read(view.Profile), nil
}

// SaveSection validates the section form, saves it and reloads the profile
// so every page reads the server's copy.
func (s *service) SaveSection(ctx context.Context, st *store.Store, name string, form any) (ProfileView, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	sec, ok := sections[name]
	if !ok || sec.form == nil {
		return ProfileView{}, employeeerrors.ErrUnknownSection
	}
	if err := apperror.ValidateStruct(form); err != nil {
		log.Debug("profile section rejected", zap.String("section", name), zap.Error(err))
		return ProfileView{}, err
	}

	if err := s.gateway.SaveSection(ctx, sec.method, name, form); err != nil {
		log.Error("save profile section failed", zap.String("section", name), zap.Error(err))
		return ProfileView{}, err
	}
	log.Info("profile section saved", zap.String("section", name))

	return s.Me(ctx, st, true)
}
