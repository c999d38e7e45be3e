package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/response"
)

// RequireCoordinatePair rejects payloads carrying exactly one of
// latitude/longitude. Both present or both absent pass.
func RequireCoordinatePair() gin.HandlerFunc {
	return func(c *gin.Context) {
		var hasLat, hasLng bool

		if jsonBody(c) {
			var body struct {
				Latitude  *float64 `json:"latitude"`
				Longitude *float64 `json:"longitude"`
			}
			if err := peekJSON(c, &body); err != nil {
				response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON body", nil)
				c.Abort()
				return
			}
			hasLat = body.Latitude != nil
			hasLng = body.Longitude != nil
		} else {
			hasLat = formHas(c, "latitude")
			hasLng = formHas(c, "longitude")
		}

		if hasLat && !hasLng {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Add longitude!", nil)
			c.Abort()
			return
		}

		if !hasLat && hasLng {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Add latitude!", nil)
			c.Abort()
			return
		}

		c.Next()
	}
}
