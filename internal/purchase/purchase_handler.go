package purchase

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/response"
)

type Handler struct {
	svc    Service
	rdb    *redis.Client
	logger *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("purchase.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("purchase.handler")
	}
	return &Handler{svc: service, logger: l}
}

func NewHandlerWithRedis(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	h := NewHandler(service, logger...)
	h.rdb = rdb
	return h
}

func (h *Handler) CreatePurchase(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	// Release the idempotency lock when done; on success the response
	// is cached so a retry with the same key replays it.
	lockKey := c.GetString(middleware.IdempotencyLockKey)
	cacheKey := c.GetString(middleware.IdempotencyCacheKey)
	if h.rdb != nil && lockKey != "" {
		defer h.rdb.Del(c.Request.Context(), lockKey)
	}

	var req CreatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Create(ctx, req, c.Param("clientId"), c.Param("productId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if h.rdb != nil && cacheKey != "" {
		if payload, marshalErr := json.Marshal(doc); marshalErr == nil {
			_ = h.rdb.Set(c.Request.Context(), cacheKey, payload, 24*time.Hour).Err()
		}
	}

	response.Success(c, http.StatusCreated, doc, nil)
}

func (h *Handler) GetPurchases(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	page := middleware.Page(c)

	purchases, total, err := h.svc.GetAll(ctx, cu, page)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, PageSize)
	response.Success(c, http.StatusOK, purchases, &meta)
}

func (h *Handler) GetSinglePurchase(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.GetByID(ctx, c.Param("purchaseId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) UpdatePurchase(c *gin.Context) {
	var req UpdatePurchaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	doc, err := h.svc.Update(ctx, c.Param("purchaseId"), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, doc, nil)
}

func (h *Handler) DeletePurchase(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	msg, err := h.svc.Delete(ctx, c.Param("purchaseId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, msg, nil)
}
