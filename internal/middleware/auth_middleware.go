package middleware

import (
	"context"
	"strings"

	"hris-portal/internal/session"
	"hris-portal/internal/shared/apperror"
	"hris-portal/internal/shared/contextutil"
	"hris-portal/internal/shared/response"
	"hris-portal/internal/store"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// SessionResolver is satisfied by *session.Manager.
type SessionResolver interface {
	Resolve(ctx context.Context, id string) (session.Session, error)
	Store(id string) *store.Store
}

func sessionID(c *gin.Context) string {
	if id := strings.TrimSpace(c.GetHeader(session.HeaderName)); id != "" {
		return id
	}
	if cookie, err := c.Cookie(session.CookieName); err == nil {
		return cookie
	}
	return ""
}

// bindSession resolves the portal session and propagates it: gin keys for the
// handlers, the bearer token and user for the gateway and services.
func bindSession(c *gin.Context, resolver SessionResolver) error {
	s, err := resolver.Resolve(c.Request.Context(), sessionID(c))
	if err != nil {
		return err
	}

	session.Bind(c, s, resolver.Store(s.ID))

	ctx := c.Request.Context()
	ctx = contextutil.WithAccessToken(ctx, s.Token)
	ctx = contextutil.WithSessionID(ctx, s.ID)
	ctx = contextutil.WithUserID(ctx, s.Email)
	ctx = contextutil.WithLogger(ctx, contextutil.GetLogger(ctx, nil).With(
		zap.String("user_id", s.Email),
		zap.String("role", s.Role),
	))
	c.Request = c.Request.WithContext(ctx)
	return nil
}

func SessionAuth(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := bindSession(c, resolver); err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalSession binds a session when the request carries a valid one and
// lets anonymous requests through otherwise.
func OptionalSession(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		if sessionID(c) != "" {
			_ = bindSession(c, resolver)
		}
		c.Next()
	}
}

func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		userRole := c.GetString("role")
		for _, role := range allowedRoles {
			if userRole == role {
				c.Next()
				return
			}
		}

		response.Error(c, apperror.ErrForbidden.HTTPStatus, apperror.ErrForbidden.Code, apperror.ErrForbidden.Message, nil)
		c.Abort()
	}
}
