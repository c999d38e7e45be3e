package auth

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/middleware"
	"go-bms/internal/shared/apperror"
	"go-bms/internal/shared/contextutil"
	"go-bms/internal/shared/response"
)

// TokenReattacher is the session collaborator: reissue or expire the
// auth cookies on the response.
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
	l := zap.L().Named("auth.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("auth.handler")
	}
	return &Handler{svc: service, tokens: tokens, logger: l}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	id, err := h.svc.Register(ctx, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.tokens.ReattachTokens(c, id, req.PostmanRequest); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, "You have successfully registered!", nil)
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	id, err := h.svc.Login(ctx, req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.tokens.ReattachTokens(c, id, req.PostmanRequest); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "You have successfully logged in!", nil)
}

func (h *Handler) Logout(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	h.tokens.ExpireSession(c, cu.UserID)

	response.Success(c, http.StatusOK, "You have successfully logged out!", nil)
}
