package session

import (
	"net/http"
	"time"

	"hris-portal/internal/shared/apperror"
)

const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"

	CookieName = "portal_session"
	HeaderName = "X-Portal-Session"
)

var ErrSessionNotFound = apperror.New(
	apperror.CodeUnauthorized,
	"Your session has expired, please log in again",
	http.StatusUnauthorized,
)

// Session is what the portal keeps per logged-in browser. The bearer token is
// the upstream one; the portal never issues its own.
type Session struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	UserID    string    `json:"userId"`
	ExpiresAt time.Time `json:"expiresAt"`
	CreatedAt time.Time `json:"createdAt"`
}

func (s Session) IsAdmin() bool {
	return s.Role == RoleAdmin
}

// DashboardPath is where the login page sends this role.
func DashboardPath(role string) string {
	if role == RoleAdmin {
		return "/dashboard-admin"
	}
	return "/dashboard-employee"
}
