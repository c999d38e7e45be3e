package client

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
	l := zap.L().Named("client.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("client.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) CreateClient(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req CreateClientRequest
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

func (h *Handler) GetClients(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	page := middleware.Page(c)
	search := c.Query("searchString")

	clients, total, err := h.svc.GetAll(ctx, cu, page, search)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, PageSize)
	response.Success(c, http.StatusOK, clients, &meta)
}

func (h *Handler) GetSingleClient(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.GetByID(ctx, c.Param("clientId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) UpdateClient(c *gin.Context) {
	var req UpdateClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Update(ctx, c.Param("clientId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) DeleteClient(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	msg, err := h.svc.Delete(ctx, c.Param("clientId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}
