package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/domain"
	"go-bms/internal/shared/response"
)

// ForbidOwnerRole blocks requests that try to promote a subordinate to
// the owner role.
func ForbidOwnerRole() gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			Role string `json:"role"`
		}

		if err := peekJSON(c, &body); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON body", nil)
			c.Abort()
			return
		}

		if domain.Role(body.Role) == domain.RoleOwner {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You can not make an employ owner!", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
