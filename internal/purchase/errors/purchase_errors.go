package purchaseerrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var (
	ErrPurchaseNotFound = apperror.New(
		apperror.CodeNotFound,
		"No purchase found!",
		http.StatusNotFound,
	)

	ErrInvalidTotalAmount = apperror.New(
		apperror.CodeInvalidInput,
		"Total amount must be greater than zero",
		http.StatusBadRequest,
	)

	ErrInvalidStatus = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid status!",
		http.StatusBadRequest,
	)

	ErrInvalidPaymentMethod = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid payment method!",
		http.StatusBadRequest,
	)

	ErrNoProducts = apperror.New(
		apperror.CodeInvalidInput,
		"Something went wrong, please try again",
		http.StatusBadRequest,
	)
)
