package product

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
	l := zap.L().Named("product.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("product.handler")
	}
	return &Handler{svc: service, logger: l}
}

func (h *Handler) CreateProduct(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req CreateProductRequest
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

func (h *Handler) GetProducts(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	page := middleware.Page(c)
	search := c.Query("searchString")

	products, total, err := h.svc.GetAll(ctx, cu, page, search)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, PageSize)
	response.Success(c, http.StatusOK, products, &meta)
}

func (h *Handler) GetSingleProduct(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.GetByID(ctx, c.Param("productId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) UpdateProduct(c *gin.Context) {
	var req UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Update(ctx, c.Param("productId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) DeleteProduct(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	msg, err := h.svc.Delete(ctx, c.Param("productId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}
