package attendanceerrors

import (
	"fmt"
	"net/http"
	"time"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrInvalidWorkLocation = apperror.New(
		apperror.CodeInvalidInput,
		"Work location must be office or work_from_home",
		http.StatusBadRequest,
	)

	ErrSessionIDRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Session id is required",
		http.StatusBadRequest,
	)

	ErrNoOpenSession = apperror.New(
		apperror.CodeInvalidState,
		"You are not clocked in",
		http.StatusConflict,
	)

	ErrSessionConflict = apperror.New(
		apperror.CodeConflict,
		"Another clock-in was recorded at the same time; attendance has been refreshed",
		http.StatusConflict,
	)

	ErrExportEmpty = apperror.New(
		apperror.CodeInvalidState,
		"No attendance loaded to export",
		http.StatusConflict,
	)
)

// OpenSessionExists names the start time of the session blocking a clock-in.
func OpenSessionExists(since time.Time, loc *time.Location) *apperror.AppError {
	return apperror.New(
		apperror.CodeInvalidState,
		fmt.Sprintf("You have an open session since %s. Please clock out first.", since.In(loc).Format("03:04 PM")),
		http.StatusConflict,
	)
}
