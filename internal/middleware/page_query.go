package middleware

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/response"
)

// PageKey is the gin context key holding the effective page number.
const PageKey = "page"

// PageQuery validates the page query parameter and stores the
// effective page number. Absent means page 1.
func PageQuery() gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := c.Query("page")

		page := 1
		if raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil {
				msg := "Page number must be a valid number"
				if errors.Is(err, strconv.ErrRange) {
					msg = "Page number must be a positive safe integer"
				}
				response.Error(c, http.StatusBadRequest, "INVALID_INPUT", msg, nil)
				c.Abort()
				return
			}
			page = n
		}

		if page < 1 {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT",
				"Page number must be a positive safe integer", nil)
			c.Abort()
			return
		}

		c.Set(PageKey, page)
		c.Next()
	}
}

// Page reads the effective page set by PageQuery, defaulting to 1.
func Page(c *gin.Context) int {
	if p, ok := c.Get(PageKey); ok {
		if n, ok := p.(int); ok {
			return n
		}
	}
	return 1
}
