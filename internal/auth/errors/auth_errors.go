package autherrors

import (
	"net/http"

	"go-bms/internal/shared/apperror"
)

var ErrInvalidCredentials = apperror.New(
	apperror.CodeUnauthorized,
	"Invalid credentials",
	http.StatusUnauthorized,
)
