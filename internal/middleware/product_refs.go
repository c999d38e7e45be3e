package middleware

import (
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"

	"go-bms/internal/shared/response"
)

// VerifyProductRefs resolves the product references of a purchase
// request. A request may carry either a single product id in the path
// or a list in the body, never both. List lookups run concurrently;
// every lookup completes and the first unresolved id in input order is
// the one reported.
func VerifyProductRefs(store Exister) gin.HandlerFunc {
	return func(c *gin.Context) {
		productID := c.Param("productId")

		var body struct {
			Products []string `json:"products"`
		}
		if err := peekJSON(c, &body); err != nil {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT", "Invalid JSON body", nil)
			c.Abort()
			return
		}

		if productID != "" && len(body.Products) > 0 {
			response.Error(c, http.StatusBadRequest, "INVALID_INPUT",
				"Something went wrong, please try again", nil)
			c.Abort()
			return
		}

		if productID != "" {
			exists, err := store.Exists(c.Request.Context(), productID)
			if err != nil {
				response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error(), nil)
				c.Abort()
				return
			}
			if !exists {
				response.Error(c, http.StatusNotFound, "NOT_FOUND", "No product found!", nil)
				c.Abort()
				return
			}
		}

		if len(body.Products) > 0 {
			found := make([]bool, len(body.Products))
			errs := make([]error, len(body.Products))

			var wg sync.WaitGroup
			for i, id := range body.Products {
				wg.Add(1)
				go func(i int, id string) {
					defer wg.Done()
					found[i], errs[i] = store.Exists(c.Request.Context(), id)
				}(i, id)
			}
			wg.Wait()

			for i, id := range body.Products {
				if errs[i] != nil {
					response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", errs[i].Error(), nil)
					c.Abort()
					return
				}
				if !found[i] {
					response.Error(c, http.StatusNotFound, "NOT_FOUND",
						"No product found with ID: "+id+"!", nil)
					c.Abort()
					return
				}
			}
		}

		c.Next()
	}
}
