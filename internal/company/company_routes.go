package company

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
	companies := r.Group("/companies")
	companies.Use(middleware.Auth(parser))
	companies.Use(middleware.ContextLogger(logger))
	{
		companies.GET("/get-company",
			middleware.RateLimitByUser(3, 10),
			middleware.Authorize(policy, "company", "read"),
			handler.GetCompany,
		)

		companies.POST("/create-company",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(policy, "company", "create"),
			middleware.ForbidServerAssigned(),
			middleware.RequireCoordinatePair(),
			handler.CreateCompany,
		)

		companies.PATCH("/:companyId/update-company",
			middleware.RateLimitByUser(0.5, 2),
			middleware.Authorize(policy, "company", "update"),
			middleware.RequireExists(repo, "companyId", "No company found!"),
			middleware.ForbidServerAssigned(),
			middleware.RequireCoordinatePair(),
			handler.UpdateCompany,
		)

		companies.DELETE("/:companyId/delete-company",
			middleware.RateLimitByUser(0.1, 1),
			middleware.Authorize(policy, "company", "delete"),
			middleware.RequireExists(repo, "companyId", "No company found!"),
			handler.DeleteCompany,
		)
	}
}
