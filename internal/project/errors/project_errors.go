package projecterrors

import (
	"net/http"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrNameRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Project name is required",
		http.StatusBadRequest,
	)
	ErrLeaderRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Please select at least one project leader",
		http.StatusBadRequest,
	)
	ErrTooManyLeaders = apperror.New(
		apperror.CodeInvalidInput,
		"Maximum 2 leaders can be selected",
		http.StatusBadRequest,
	)
	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Status must be one of: pending, in-progress, completed, on-hold",
		http.StatusBadRequest,
	)
	ErrProjectNotFound = apperror.New(
		apperror.CodeNotFound,
		"Project not found",
		http.StatusNotFound,
	)
)
