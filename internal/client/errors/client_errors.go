package clienterrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var (
	ErrClientNotFound = apperror.New(
		apperror.CodeNotFound,
		"No client found!",
		http.StatusNotFound,
	)

	ErrInvalidPhone = apperror.New(
		apperror.CodeInvalidInput,
		"The phone number must be 10 digits!",
		http.StatusBadRequest,
	)
)
