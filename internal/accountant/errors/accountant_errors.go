package accountanterrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var (
	ErrAccountantNotFound = apperror.New(
		apperror.CodeNotFound,
		"No accountant found!",
		http.StatusNotFound,
	)

	ErrAlreadyHasAccountant = apperror.New(
		apperror.CodeConflict,
		"Your company already has an accountant!",
		http.StatusConflict,
	)

	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"The phone number must be 10 digits!",
		http.StatusBadRequest,
	)

	ErrInvalidTaxID = apperror.New(
		apperror.CodeInvalidInput,
		"The tax ID must be exactly 9 digits",
		http.StatusBadRequest,
	)
)
