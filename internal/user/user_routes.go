package user

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	repo Repository,
	parser middleware.TokenParser,
	logger *zap.Logger,
) {
	users := r.Group("/users")
	users.Use(middleware.Auth(parser))
	users.Use(middleware.ContextLogger(logger))
	{
		users.GET("/get-current-user",
			middleware.RateLimitByUser(3, 10),
			handler.GetCurrentUser,
		)

		users.GET("/get-users",
			middleware.RateLimitByUser(3, 10),
			middleware.PageQuery(),
			handler.GetUsers,
		)

		users.GET("/:userId/get-single-user",
			middleware.RateLimitByUser(3, 10),
			middleware.RequireExists(repo, "userId", "User not found"),
			handler.GetSingleUser,
		)

		users.DELETE("/:userId/delete-user",
			middleware.RateLimitByUser(0.5, 2),
			middleware.VerifyAccountOwnership("userId"),
			middleware.RequireExists(repo, "userId", "User not found"),
			handler.DeleteUser,
		)

		users.PATCH("/:userId/update-user",
			middleware.RateLimitByUser(0.5, 2),
			middleware.VerifyAccountOwnership("userId"),
			middleware.RequireExists(repo, "userId", "User not found"),
			handler.UpdateUser,
		)

		users.PATCH("/:userId/change-password",
			middleware.RateLimitByUser(0.5, 2),
			middleware.VerifyAccountOwnership("userId"),
			middleware.RequireExists(repo, "userId", "User not found"),
			handler.ChangePassword,
		)

		users.PATCH("/:userId/change-role",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireExists(repo, "userId", "User not found"),
			middleware.ForbidOwnerRole(),
			handler.ChangeRole,
		)

		users.POST("/:userId/add-to-company",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireExists(repo, "userId", "User not found"),
			middleware.ForbidOwnerRole(),
			handler.AddToCompany,
		)

		users.PATCH("/:userId/remove-from-company",
			middleware.RateLimitByUser(0.5, 2),
			middleware.RequireExists(repo, "userId", "User not found"),
			handler.RemoveFromCompany,
		)
	}
}
