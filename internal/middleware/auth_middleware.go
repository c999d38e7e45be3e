package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"go-bms/internal/domain"
	"go-bms/internal/shared/response"
	"go-bms/internal/token"
)

// TokenParser is a local interface so this package does not depend on
// the full token service.
type TokenParser interface {
	Parse(tokenString string) (*token.Claims, error)
}

// Auth authenticates the request from the bearer header or the access
// cookie and attaches the current user before any service runs.
func Auth(parser TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		var tokenString string

		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found {
			tokenString = ""
		}

		if tokenString == "" {
			if cookie, err := c.Cookie(token.AccessCookie); err == nil {
				tokenString = cookie
			}
		}

		if tokenString == "" {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Token not found", nil)
			c.Abort()
			return
		}

		claims, err := parser.Parse(tokenString)
		if err != nil {
			msg := "Invalid token"
			if strings.Contains(err.Error(), "expired") {
				msg = "Token has expired"
			}
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", msg, nil)
			c.Abort()
			return
		}

		if claims.UserID == "" {
			response.Error(c, http.StatusUnauthorized, "INVALID_TOKEN", "User ID not found in token", nil)
			c.Abort()
			return
		}

		c.Set(domain.ContextKey, domain.CurrentUser{
			UserID:    claims.UserID,
			Role:      claims.Role,
			CompanyID: claims.CompanyID,
			Email:     claims.Email,
			Image:     claims.Image,
		})
		c.Set("user_id", claims.UserID)
		c.Set("company_id", claims.CompanyID)
		c.Set("role", string(claims.Role))

		c.Next()
	}
}

// CurrentUser reads the identity attached by Auth.
func CurrentUser(c *gin.Context) (domain.CurrentUser, bool) {
	v, ok := c.Get(domain.ContextKey)
	if !ok {
		return domain.CurrentUser{}, false
	}
	cu, ok := v.(domain.CurrentUser)
	return cu, ok
}
