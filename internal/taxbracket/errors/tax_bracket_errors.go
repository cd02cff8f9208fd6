package taxbracketerrors

import (
	"net/http"

	"staffcore/internal/shared/apperror"
)

var (
	ErrBracketNotFound = apperror.New(
		apperror.CodeNotFound,
		"Tax bracket not found",
		http.StatusNotFound,
	)
	ErrInvalidIncomeBound = apperror.New(
		apperror.CodeInvalidInput,
		"Income bounds must be non-negative decimals with at most 2 decimal places",
		http.StatusBadRequest,
	)
	ErrInvalidRate = apperror.New(
		apperror.CodeInvalidInput,
		"Rate must be a percentage between 0 and 100",
		http.StatusBadRequest,
	)
)
