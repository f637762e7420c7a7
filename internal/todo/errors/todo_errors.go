package todoerrors

import (
	"net/http"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrTextRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Todo text is required",
		http.StatusBadRequest,
	)
	ErrTextTooLong = apperror.New(
		apperror.CodeInvalidInput,
		"Todo text must be at most 500 characters",
		http.StatusBadRequest,
	)
	ErrTodoNotFound = apperror.New(
		apperror.CodeNotFound,
		"Todo not found",
		http.StatusNotFound,
	)
	ErrDuplicateTodo = apperror.New(
		apperror.CodeConflict,
		"This todo is already on your list",
		http.StatusConflict,
	)
)
