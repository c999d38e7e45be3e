package companyerrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var (
	ErrCompanyNotFound = apperror.New(
		apperror.CodeNotFound,
		"No company found!",
		http.StatusNotFound,
	)

	ErrAlreadyHasCompany = apperror.New(
		apperror.CodeConflict,
		"You already have a company!",
		http.StatusConflict,
	)

	ErrInvalidTaxID = apperror.New(
		apperror.CodeInvalidInput,
		"The tax ID must be exactly 9 digits",
		http.StatusBadRequest,
	)

	ErrInvalidLatitude = apperror.New(
		apperror.CodeInvalidInput,
		"Latitude must be between -90 and 90",
		http.StatusBadRequest,
	)

	ErrInvalidLongitude = apperror.New(
		apperror.CodeInvalidInput,
		"Longitude must be between -180 and 180",
		http.StatusBadRequest,
	)

	ErrNotCompanyOwner = apperror.New(
		apperror.CodeForbidden,
		"You are not the owner of this company!",
		http.StatusForbidden,
	)
)
