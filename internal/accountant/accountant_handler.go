package accountant

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/response"
)

type Handler struct {
	svc    Service
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("accountant.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("accountant.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) CreateAccountant(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req CreateAccountantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Create(ctx, req, cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, doc, nil)
}

func (h *Handler) GetAccountant(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Get(ctx, cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) UpdateAccountant(c *gin.Context) {
	var req UpdateAccountantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Update(ctx, c.Param("accountantId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) DeleteAccountant(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	msg, err := h.svc.Delete(ctx, c.Param("accountantId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}
