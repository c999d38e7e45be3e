package user

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-bms/internal/domain"
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
	l := zap.L().Named("user.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("user.handler")
	}
	return &Handler{svc: service, tokens: tokens, logger: l}
}

// GetCurrentUser returns the identity attached by the auth middleware;
// no persistence call is made.
func (h *Handler) GetCurrentUser(c *gin.Context) {
	cu, ok := middleware.CurrentUser(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, apperror.CodeUnauthorized,
			"Authentication is required", nil)
		return
	}

	response.Success(c, http.StatusOK, cu, nil)
}

func (h *Handler) GetUsers(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	page := middleware.Page(c)
	search := c.Query("searchString")

	users, total, err := h.svc.GetAll(ctx, page, search)
	if err != nil {
		response.FromError(c, err)
		return
	}

	meta := response.NewPaginationMeta(total, page, PageSize)
	response.Success(c, http.StatusOK, users, &meta)
}

func (h *Handler) GetSingleUser(c *gin.Context) {
	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.GetByID(ctx, c.Param("userId"))
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) UpdateUser(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req UpdateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	// Optional profile image upload; absent on plain JSON requests.
	image, _ := c.FormFile("image")

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.Update(ctx, c.Param("userId"), req, cu, image)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.tokens.ReattachTokens(c, cu.UserID, req.PostmanRequest); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) DeleteUser(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	msg, err := h.svc.Delete(ctx, c.Param("userId"), cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.tokens.ExpireSession(c, cu.UserID)
	response.Success(c, http.StatusOK, msg, nil)
}

func (h *Handler) ChangePassword(c *gin.Context) {
	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	if err := h.svc.ChangePassword(ctx, c.Param("userId"), req.OldPassword, req.NewPassword); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "Password has been change!", nil)
}

func (h *Handler) ChangeRole(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	var req ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	role, err := h.svc.ChangeRole(ctx, c.Param("userId"), req.Role, cu)
	if err != nil {
		response.FromError(c, err)
		return
	}

	if err := h.tokens.ReattachTokens(c, cu.UserID, req.PostmanRequest); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, fmt.Sprintf("Role change to %s", role), nil)
}

func (h *Handler) AddToCompany(c *gin.Context) {
	var req AddToCompanyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	role, ok := domainRole(req.Role)
	if !ok {
		response.Error(c, http.StatusBadRequest, apperror.CodeInvalidInput, "Invalid role", nil)
		return
	}

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	res, err := h.svc.AddToCompany(ctx, c.Param("userId"), req.CompanyID, role)
	if err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, res, nil)
}

func (h *Handler) RemoveFromCompany(c *gin.Context) {
	cu, _ := middleware.CurrentUser(c)

	ctx := contextutil.WithLogger(c.Request.Context(), h.logger)

	if err := h.svc.RemoveFromCompany(ctx, c.Param("userId"), cu); err != nil {
		response.FromError(c, err)
		return
	}

	response.Success(c, http.StatusOK, "User has been removed for the company!", nil)
}

// domainRole resolves an optional wire role; empty means "use the
// service default".
func domainRole(s string) (domain.Role, bool) {
	if s == "" {
		return "", true
	}
	return domain.ParseRole(s)
}
