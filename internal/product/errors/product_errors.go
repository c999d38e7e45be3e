package producterrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var (
	ErrProductNotFound = apperror.New(
		apperror.CodeNotFound,
		"No product found!",
		http.StatusNotFound,
	)

	ErrInvalidPrice = apperror.New(
		apperror.CodeInvalidInput,
		"Price must be greater than zero",
		http.StatusBadRequest,
	)
)
