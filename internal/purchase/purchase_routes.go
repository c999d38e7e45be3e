package purchase

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	repo Repository,
	clients middleware.Exister,
	products middleware.Exister,
	rdb *redis.Client,
	policy middleware.PolicyService,
	parser middleware.TokenParser,
	logger *zap.Logger,
) {
	purchases := r.Group("/purchases")
	purchases.Use(middleware.Auth(parser))
	purchases.Use(middleware.ContextLogger(logger))
	{
		purchases.GET("/get-purchases",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "purchase", "read"),
			middleware.PageQuery(),
			handler.GetPurchases,
		)

		purchases.GET("/:purchaseId/get-single-purchase",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "purchase", "read"),
			middleware.RequireExists(repo, "purchaseId", "No purchase found!"),
			handler.GetSinglePurchase,
		)

		// A purchase is created against a client, with its products given
		// either as a single path id or as a list in the body, never both.
		createChain := func(final gin.HandlerFunc) []gin.HandlerFunc {
			return []gin.HandlerFunc{
				middleware.RateLimitByUser(0.5, 2),
				middleware.Authorize(policy, "purchase", "create"),
				middleware.Idempotency(rdb),
				middleware.RequireExists(clients, "clientId", "No client found!"),
				middleware.VerifyProductRefs(products),
				middleware.ForbidServerAssigned(),
				final,
			}
		}
		purchases.POST("/create-purchase/:clientId", createChain(handler.CreatePurchase)...)
		purchases.POST("/create-purchase/:clientId/:productId", createChain(handler.CreatePurchase)...)

		purchases.PATCH("/:purchaseId/update-purchase",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "purchase", "update"),
			middleware.RequireExists(repo, "purchaseId", "No purchase found!"),
			middleware.ForbidServerAssigned(),
			handler.UpdatePurchase,
		)

		purchases.DELETE("/:purchaseId/delete-purchase",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "purchase", "delete"),
			middleware.RequireExists(repo, "purchaseId", "No purchase found!"),
			handler.DeletePurchase,
		)
	}
}
