package product

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	repo Repository,
	policy middleware.PolicyService,
	parser middleware.TokenParser,
	logger *zap.Logger,
) {
	products := r.Group("/products")
	products.Use(middleware.Auth(parser))
	products.Use(middleware.ContextLogger(logger))
	{
		products.GET("/get-products",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "product", "read"),
			middleware.PageQuery(),
			handler.GetProducts,
		)

		products.GET("/:productId/get-single-product",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "product", "read"),
			middleware.RequireExists(repo, "productId", "No product found!"),
			handler.GetSingleProduct,
		)

		products.POST("/create-product",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "product", "create"),
			middleware.ForbidServerAssigned(),
			handler.CreateProduct,
		)

		products.PATCH("/:productId/update-product",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "product", "update"),
			middleware.RequireExists(repo, "productId", "No product found!"),
			middleware.ForbidServerAssigned(),
			handler.UpdateProduct,
		)

		products.DELETE("/:productId/delete-product",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "product", "delete"),
			middleware.RequireExists(repo, "productId", "No product found!"),
			handler.DeleteProduct,
		)
	}
}
