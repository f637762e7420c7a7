package auth

import (
	"context"
	"strings"

	autherrors "hris-portal/internal/auth/errors"
	"hris-portal/internal/gateway"
	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"

	"go.uber.org/zap"
)

const MinPasswordLength = 8

// Sessions is the part of the session manager the login flow needs.
type Sessions interface {
	Create(ctx context.Context, s session.Session) (session.Session, error)
	Destroy(ctx context.Context, id string) error
}

//go:generate mockgen -source=auth_service.go -destination=mock/auth_service_mock.go -package=mock
type Service interface {
	Login(ctx context.Context, req LoginRequest) (session.Session, error)
	Logout(ctx context.Context, s session.Session) error
	Register(ctx context.Context, req RegisterRequest) (Profile, error)
}

type service struct {
	gateway  Gateway
	sessions Sessions
	logger   *zap.Logger
}

func NewService(gw Gateway, sessions Sessions, logger ...*zap.Logger) Service {
	l := zap.L().Named("auth.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.service")
	}
	return &service{gateway: gw, sessions: sessions, logger: l}
}

func ViewOf(s session.Session) SessionView {
	return SessionView{
		Email:     s.Email,
		Name:      s.Name,
		Role:      s.Role,
		Dashboard: session.DashboardPath(s.Role),
		ExpiresAt: s.ExpiresAt,
	}
}

func (s *service) Login(ctx context.Context, req LoginRequest) (session.Session, error) {
	logger := contextutil.GetLogger(ctx, s.logger)
	email := strings.TrimSpace(req.Email)

	hint, endpoint, err := RoleHint(email)
	if err != nil {
		return session.Session{}, err
	}

	res, err := s.gateway.Login(ctx, endpoint, LoginRequest{Email: email, Password: req.Password})
	if err != nil {
		if gateway.IsUnauthorized(err) {
			return session.Session{}, autherrors.ErrInvalidCredentials
		}
		return session.Session{}, err
	}
	if res.Token == "" {
		return session.Session{}, autherrors.ErrTokenMissing
	}

	claimRole, expiresAt, err := TokenClaims(res.Token)
	if err != nil {
		logger.Warn("login token is not a readable jwt", zap.Error(err))
	}

	profile := res.Profile()
	role := normalizeRole(res.Role)
	if role == "" {
		role = normalizeRole(profile.Role)
	}
	if role == "" {
		role = normalizeRole(claimRole)
	}
	if role == "" {
		role = res.envelopeRole()
	}
	if role == "" {
		// the credentials were accepted by the login endpoint of this role
		logger.Warn("login response carries no role, using the login endpoint's",
			zap.String("email", email),
			zap.String("endpoint", endpoint),
			zap.String("role", hint),
		)
		role = hint
	}
	if role != hint {
		logger.Warn("login role differs from email domain",
			zap.String("email", email),
			zap.String("hint", hint),
			zap.String("role", role),
		)
	}

	name := profile.Name
	if name == "" {
		name = email
	}
	if profile.Email != "" {
		email = profile.Email
	}

	return s.sessions.Create(ctx, session.Session{
		Token:     res.Token,
		Role:      role,
		Email:     email,
		Name:      name,
		UserID:    profile.ID,
		ExpiresAt: expiresAt,
	})
}

// Logout ends the portal session even when the upstream logout call fails.
func (s *service) Logout(ctx context.Context, sess session.Session) error {
	logger := contextutil.GetLogger(ctx, s.logger)

	endpoint := gateway.EmployeeAuthEndpoint
	if sess.IsAdmin() {
		endpoint = gateway.AdminAuthEndpoint
	}
	if err := s.gateway.Logout(contextutil.WithAccessToken(ctx, sess.Token), endpoint); err != nil {
		logger.Warn("upstream logout failed", zap.Error(err))
	}
	return s.sessions.Destroy(ctx, sess.ID)
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (Profile, error) {
	req.Email = strings.TrimSpace(req.Email)
	req.Name = strings.TrimSpace(req.Name)

	if err := apperror.ValidateStruct(req); err != nil {
		return Profile{}, err
	}
	if _, _, err := RoleHint(req.Email); err != nil {
		return Profile{}, err
	}
	if len(req.Password) < MinPasswordLength {
		return Profile{}, autherrors.ErrPasswordTooShort
	}
	if req.Password != req.ConfirmPassword {
		return Profile{}, autherrors.ErrPasswordMismatch
	}

	profile, err := s.gateway.Register(ctx, req)
	if err != nil {
		return Profile{}, err
	}
	contextutil.GetLogger(ctx, s.logger).Info("admin registered", zap.String("email", req.Email))
	return profile, nil
}
