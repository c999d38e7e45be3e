package accountant

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
	accountants := r.Group("/accountants")
	accountants.Use(middleware.Auth(parser))
	accountants.Use(middleware.ContextLogger(logger))
	{
		accountants.GET("/get-accountant",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "accountant", "read"),
			handler.GetAccountant,
		)

		accountants.POST("/create-accountant",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "accountant", "create"),
			handler.CreateAccountant,
		)

		accountants.PATCH("/:accountantId/update-accountant",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "accountant", "update"),
			middleware.RequireExists(repo, "accountantId", "No accountant found!"),
			handler.UpdateAccountant,
		)

		accountants.DELETE("/:accountantId/delete-accountant",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "accountant", "delete"),
			middleware.RequireExists(repo, "accountantId", "No accountant found!"),
			handler.DeleteAccountant,
		)
	}
}
