package employeeerrors

import (
	"net/http"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrUnknownSection = apperror.New(
		apperror.CodeNotFound,
		"Unknown profile section",
		http.StatusNotFound,
	)
	ErrNegativeSalary = apperror.New(
		apperror.CodeInvalidInput,
		"Salary must not be negative",
		http.StatusBadRequest,
	)
	ErrMissingRequiredFields = apperror.New(
		apperror.CodeInvalidInput,
		"Please fill in all required fields.",
		http.StatusBadRequest,
	)
)
