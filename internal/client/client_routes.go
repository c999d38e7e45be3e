package client

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
	clients := r.Group("/clients")
	clients.Use(middleware.Auth(parser))
	clients.Use(middleware.ContextLogger(logger))
	{
		clients.GET("/get-clients",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "client", "read"),
			middleware.PageQuery(),
			handler.GetClients,
		)

		clients.GET("/:clientId/get-single-client",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "client", "read"),
			middleware.RequireExists(repo, "clientId", "No client found!"),
			handler.GetSingleClient,
		)

		clients.POST("/create-client",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "client", "create"),
			middleware.ForbidServerAssigned(),
			handler.CreateClient,
		)

		clients.PATCH("/:clientId/update-client",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "client", "update"),
			middleware.RequireExists(repo, "clientId", "No client found!"),
			middleware.ForbidServerAssigned(),
			handler.UpdateClient,
		)

		clients.DELETE("/:clientId/delete-client",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "client", "delete"),
			middleware.RequireExists(repo, "clientId", "No client found!"),
			handler.DeleteClient,
		)
	}
}
