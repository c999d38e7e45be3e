package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/response"
)

// serverAssignedFields are set by services, never by callers.
var serverAssignedFields = []string{"purchases", "createdBy", "company"}

// ForbidServerAssigned rejects payloads that try to set relation fields
// the server owns.
func ForbidServerAssigned() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !jsonBody(c) {
			for _, field := range serverAssignedFields {
				if formHas(c, field) {
					response.Error(c, http.StatusConflict, "CONFLICT",
						"You can not set the "+field+" field!", nil)
					c.Abort()
					return
				}
			}
			c.Next()
			return
		}

		raw, err := peekBody(c)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON body", nil)
			c.Abort()
			return
		}
		if len(raw) == 0 {
			c.Next()
			return
		}

		var body map[string]json.RawMessage
		if err := json.Unmarshal(raw, &body); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON body", nil)
			c.Abort()
			return
		}

		for _, field := range serverAssignedFields {
			if _, exists := body[field]; exists {
				response.Error(c, http.StatusConflict, "CONFLICT",
					"You can not set the "+field+" field!", nil)
				c.Abort()
				return
			}
		}

		c.Next()
	}
}
