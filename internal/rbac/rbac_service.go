package rbac

import (
	"strings"
	"sync"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadPolicy() error
	Enforce(req EnforceRequest) (bool, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	loaded   bool
	logger   *zap.Logger
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
	}
}

func (s *service) LoadPolicy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadPolicyUnlocked()
}

func (s *service) loadPolicyUnlocked() error {
	s.enforcer.ClearPolicy()

	inherits, err := s.repo.GetRoleInheritance()
	if err != nil {
		return err
	}
	for _, ri := range inherits {
		if _, err := s.enforcer.AddGroupingPolicy(ri.Role, ri.Parent); err != nil {
			return err
		}
	}

	policies, err := s.repo.GetPolicies()
	if err != nil {
		return err
	}
	for _, p := range policies {
		if _, err := s.enforcer.AddPolicy(p.Role, p.Resource, p.Action); err != nil {
			return err
		}
	}

	s.loaded = true
	s.logger.Debug("rbac policy loaded", zap.Int("roles", len(inherits)), zap.Int("policies", len(policies)))
	return nil
}

// Enforce answers for the anonymous role when req.Role is empty. The policy
// is loaded on first use.
func (s *service) Enforce(req EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.loaded {
		if err := s.loadPolicyUnlocked(); err != nil {
			return false, err
		}
	}

	role := strings.ToLower(strings.TrimSpace(req.Role))
	if role == "" {
		role = RoleAnonymous
	}
	action := req.Action
	if action == "" {
		action = ActionView
	}

	allowed, err := s.enforcer.Enforce(role, req.Resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed", zap.String("role", role), zap.String("resource", req.Resource), zap.Error(err))
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", req.Resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
