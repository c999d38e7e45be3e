package company

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/response"
)

type TokenReattacher interface {
	ReattachTokens(c *gin.Context, userID string, isAutomatedClient bool) error
	ExpireSession(c *gin.Context, userID string)
}

type Handler struct {
	svc    Service
	tokens TokenReattacher
	logger *zap.Logger
}

func NewHandler(service Service, tokens TokenReattacher, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("company.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("company.handler")
	}
	return &Handler{svc: service, tokens: tokens, logger: l}
}

func (h *Handler) GetCompany(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Get(ctx, cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) CreateCompany(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req CreateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	logo, _ := c.FormFile("logo")

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Create(ctx, req, cu, logo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// The creator's role changed to owner; their tokens must say so.
	if err := h.tokens.ReattachTokens(c, cu.UserID, req.PostmanRequest); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, doc, nil)
}

func (h *Handler) UpdateCompany(c *gin.Context) {
	var req UpdateCompanyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	logo, _ := c.FormFile("logo")

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Update(ctx, c.Param("companyId"), req, logo)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) DeleteCompany(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	msg, err := h.svc.Delete(ctx, c.Param("companyId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	// The owner is uncategorized again after teardown.
	if err := h.tokens.ReattachTokens(c, cu.UserID, false); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}
