package payrollerrors

import (
	"net/http"

	"staffcore/internal/shared/apperror"
)

var (
	ErrPeriodNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payroll period not found",
		http.StatusNotFound,
	)
	ErrPayslipNotFound = apperror.New(
		apperror.CodeNotFound,
		"Payslip not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Employee not found",
		http.StatusNotFound,
	)
	ErrPayslipExists = apperror.New(
		apperror.CodeConflict,
		"Payslip already exists for this employee and period",
		http.StatusConflict,
	)
	ErrPeriodProcessed = apperror.New(
		apperror.CodeInvalidState,
		"Payroll period is already processed",
		http.StatusConflict,
	)
	ErrInvalidPeriodRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrInvalidBonus = apperror.New(
		apperror.CodeInvalidInput,
		"Bonus must be a non-negative decimal with at most 2 decimal places",
		http.StatusBadRequest,
	)
)
