package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/response"
)

// VerifyAccountOwnership only lets a user act on their own account.
func VerifyAccountOwnership(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := CurrentUser(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
			c.Abort()
			return
		}

		if c.Param(param) != cu.UserID {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED",
				"You are not authorized to manage this account!", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}

// RequireSameCompany only lets a user act inside their own company.
func RequireSameCompany(param string) gin.HandlerFunc {
	return func(c *gin.Context) {
		cu, ok := CurrentUser(c)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required", nil)
			c.Abort()
			return
		}

		if c.Param(param) != cu.CompanyID {
			response.Error(c, http.StatusForbidden, "FORBIDDEN",
				"You don not belong at the same company", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
