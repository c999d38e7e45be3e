package auth

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	parser middleware.TokenParser,
	logger *zap.Logger,
) {
	authGroup := r.Group("/auth")
	authGroup.Use(middleware.ContextLogger(logger))
	{
		authGroup.POST("/register",
			middleware.RateLimitByIP(0.2, 3),
			handler.Register,
		)

		authGroup.POST("/login",
			middleware.RateLimitByIP(0.5, 5),
			handler.Login,
		)

		authGroup.GET("/logout",
			middleware.Auth(parser),
			handler.Logout,
		)
	}
}
