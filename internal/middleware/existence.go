package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/response"
)

// Exister is the minimal lookup every repository already provides.
type Exister interface {
	Exists(ctx context.Context, id string) (bool, error)
}

// RequireExists fails with NotFound when the path parameter does not
// resolve to a stored document. One guard serves every entity.
func RequireExists(store Exister, param, message string) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param(param)
		if id == "" {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", message, nil)
			c.Abort()
			return
		}

		exists, err := store.Exists(c.Request.Context(), id)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !exists {
			response.Error(c, http.StatusNotFound, "NOT_FOUND", message, nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
