package autherrors

import (
	"net/http"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrInvalidEmail = apperror.New(
		apperror.CodeInvalidInput,
		"Please enter a valid email address",
		http.StatusBadRequest,
	)
	ErrDomainNotAllowed = apperror.New(
		apperror.CodeInvalidInput,
		"Only @gmail.com and @paarsiv.com domains are allowed.",
		http.StatusBadRequest,
	)
	ErrInvalidCredentials = apperror.New(
		apperror.CodeUnauthorized,
		"Invalid credentials.",
		http.StatusUnauthorized,
	)
	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords do not match",
		http.StatusBadRequest,
	)
	ErrPasswordTooShort = apperror.New(
		apperror.CodeInvalidInput,
		"Password must be at least 8 characters",
		http.StatusBadRequest,
	)
	ErrTokenMissing = apperror.New(
		apperror.CodeUpstreamError,
		"Login response did not include a token",
		http.StatusBadGateway,
	)
)
