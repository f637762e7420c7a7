package auth

import (
	"time"

	"hris-portal/internal/session"
)

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type RegisterRequest struct {
	Name            string `json:"name" binding:"required" validate:"required"`
	Email           string `json:"email" binding:"required" validate:"required,email"`
	Password        string `json:"password" binding:"required" validate:"required"`
	ConfirmPassword string `json:"confirmPassword" binding:"required" validate:"required"`
}

// Profile is the user object the HR API returns under employee, admin or user.
type Profile struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role,omitempty"`
}

type LoginResponse struct {
	Token    string   `json:"token"`
	Role     string   `json:"role"`
	Message  string   `json:"message"`
	Employee *Profile `json:"employee"`
	Admin    *Profile `json:"admin"`
	User     *Profile `json:"user"`
}

func (r LoginResponse) Profile() Profile {
	for _, p := range []*Profile{r.Employee, r.Admin, r.User} {
		if p != nil {
			return *p
		}
	}
	return Profile{}
}

// envelopeRole is the role implied by the key the profile came under.
func (r LoginResponse) envelopeRole() string {
	switch {
	case r.Admin != nil:
		return session.RoleAdmin
	case r.Employee != nil:
		return session.RoleEmployee
	default:
		return ""
	}
}

// SessionView is what the browser keeps about the signed-in user.
type SessionView struct {
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	Dashboard string    `json:"dashboard"`
	ExpiresAt time.Time `json:"expiresAt"`
}
