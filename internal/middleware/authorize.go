package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/domain"
	"go-bms/internal/shared/response"
)

// PolicyService is a local interface; anything with Enforce fits.
type PolicyService interface {
	Enforce(role domain.Role, resource, action string) (bool, error)
}

// Authorize checks the declarative policy table for the current user's
// role against (resource, action).
func Authorize(service PolicyService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := CurrentUser(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(cu.Role, resource, action)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
			c.Abort()
			return
		}

		if !allowed {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You do not have permission to access this resource", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
