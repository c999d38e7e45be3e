package usererrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrEmailInUse = apperror.New(
		apperror.CodeInvalidInput,
		"Email is already in use",
		http.StatusBadRequest,
	)

	ErrPasswordMismatch = apperror.New(
		apperror.CodeInvalidInput,
		"Passwords does not match!",
		http.StatusBadRequest,
	)

	ErrOwnerMustDeleteCompany = apperror.New(
		apperror.CodeForbidden,
		"Please delete your company to proceed to this action!",
		http.StatusForbidden,
	)

	ErrRoleRequired = apperror.New(
		apperror.CodeInvalidInput,
		"Provide a role!",
		http.StatusBadRequest,
	)

	ErrInvalidRole = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid role",
		http.StatusBadRequest,
	)

	ErrCannotChangeRole = apperror.New(
		apperror.CodeUnauthorized,
		"You can not change this user's role",
		http.StatusUnauthorized,
	)

	ErrAlreadyEmployed = apperror.New(
		apperror.CodeInvalidInput,
		"User working elsewhere!",
		http.StatusBadRequest,
	)

	ErrNotEmployed = apperror.New(
		apperror.CodeInvalidInput,
		"User does not work anywhere!",
		http.StatusBadRequest,
	)

	ErrDifferentCompany = apperror.New(
		apperror.CodeForbidden,
		"You don not belong at the same company",
		http.StatusForbidden,
	)
)
