package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/apperror"
)

// FromError writes err through the standard envelope, mapping AppError
// onto its HTTP status and everything else onto 500.
func FromError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		Error(c, appErr.HTTPStatus, appErr.Code, appErr.Message, nil)
		return
	}

	Error(c, http.StatusInternalServerError, apperror.CodeInternalError,
		"Internal server error", nil)
}
