package layouterrors

import (
	"net/http"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrPageNotFound = apperror.New(
		apperror.CodeNotFound,
		"Page not found",
		http.StatusNotFound,
	)

	ErrLoginRequired = apperror.New(
		apperror.CodeUnauthorized,
		"Please log in to view this page",
		http.StatusUnauthorized,
	)
)
