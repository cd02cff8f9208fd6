package salaryruleerrors

import (
	"net/http"

	"staffcore/internal/shared/apperror"
)

var (
	ErrRuleNotFound = apperror.New(
		apperror.CodeNotFound,
		"Salary rule not found",
		http.StatusNotFound,
	)
	ErrInvalidRuleType = apperror.New(
		apperror.CodeInvalidInput,
		"Rule type must be ALLOWANCE or DEDUCTION",
		http.StatusBadRequest,
	)
	ErrAmountAndPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"A rule may have a flat amount or a percentage, not both",
		http.StatusBadRequest,
	)
	ErrInvalidAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Amount must be a non-negative decimal with at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidPercentage = apperror.New(
		apperror.CodeInvalidInput,
		"Percentage must be between 0 and 100",
		http.StatusBadRequest,
	)
)
