package auth

import (
	"net/mail"
	"strings"
	"time"

	autherrors "hris-portal/internal/auth/errors"
	"hris-portal/internal/gateway"
	"hris-portal/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

const (
	AdminDomain    = "gmail.com"
	EmployeeDomain = "paarsiv.com"
)

// RoleHint picks the login endpoint from the email domain. The hint never
// decides the session role; the server does.
func RoleHint(email string) (role, endpoint string, err error) {
	email = strings.TrimSpace(email)
	at := strings.LastIndex(email, "@")
	if at <= 0 || at == len(email)-1 {
		return "", "", autherrors.ErrInvalidEmail
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return "", "", autherrors.ErrInvalidEmail
	}

	switch strings.ToLower(email[at+1:]) {
	case AdminDomain:
		return session.RoleAdmin, gateway.AdminAuthEndpoint, nil
	case EmployeeDomain:
		return session.RoleEmployee, gateway.EmployeeAuthEndpoint, nil
	default:
		return "", "", autherrors.ErrDomainNotAllowed
	}
}

// TokenClaims reads role and expiry from the upstream JWT without verifying
// it; the portal has no key and the server checks it on every call.
func TokenClaims(token string) (role string, expiresAt time.Time, err error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return "", time.Time{}, err
	}

	role, _ = claims["role"].(string)
	if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
		expiresAt = exp.Time
	}
	return strings.ToLower(role), expiresAt, nil
}

func normalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case session.RoleAdmin:
		return session.RoleAdmin
	case session.RoleEmployee:
		return session.RoleEmployee
	default:
		return ""
	}
}
