package payrollerrors

import (
	"net/http"

	"hris-portal/internal/shared/apperror"
)

var (
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"Month must be between 1 and 12",
		http.StatusBadRequest,
	)
	ErrInvalidYear = apperror.New(
		apperror.CodeInvalidInput,
		"Year must be between 2000 and 2100",
		http.StatusBadRequest,
	)
	ErrEmployeeRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Employee is required",
		http.StatusBadRequest,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"No payroll record found for the selected period",
		http.StatusNotFound,
	)
	ErrPayslipNotGenerated = apperror.New(
		apperror.CodeNotFound,
		"Payslip is not generated yet",
		http.StatusNotFound,
	)
)
