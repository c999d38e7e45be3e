package apperror

import (
	"fmt"
	"net/http"
)

var (
	ErrNotFound = New(
		CodeNotFound,
		"Resource not found",
		http.StatusNotFound,
	)

	ErrForbidden = New(
		CodeForbidden,
		"You do not have permission to access this resource",
		http.StatusForbidden,
	)

	ErrInternal = New(
		CodeInternalError,
		"An unexpected error occurred",
		http.StatusInternalServerError,
	)

	ErrUnauthorized = New(
		CodeUnauthorized,
		"Authentication is required",
		http.StatusUnauthorized,
	)

	ErrInvalidInput = New(
		CodeInvalidInput,
		"The provided input is invalid",
		http.StatusBadRequest,
	)
)

// BadRequest builds an INVALID_INPUT error with a custom message.
func BadRequest(message string) *AppError {
	return New(CodeInvalidInput, message, http.StatusBadRequest)
}

// Unauthorized builds an UNAUTHORIZED error with a custom message.
func Unauthorized(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// Forbidden builds a FORBIDDEN error with a custom message.
func Forbidden(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// NotFound builds a NOT_FOUND error with a custom message.
func NotFound(message string) *AppError {
	return New(CodeNotFound, message, http.StatusNotFound)
}

// Conflict builds a CONFLICT error with a custom message.
func Conflict(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}

// RequiredField builds the standard "<Field> is required" error.
func RequiredField(field string) *AppError {
	return BadRequest(fmt.Sprintf("%s is required", field))
}

// InvalidField builds the standard "<Field> is invalid" error.
func InvalidField(field string) *AppError {
	return BadRequest(fmt.Sprintf("%s is invalid", field))
}
