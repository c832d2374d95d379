package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"vendor-kyc.backend/internal/domain/entities"
	domainerrors "vendor-kyc.backend/internal/domain/errors"
	"vendor-kyc.backend/internal/interfaces/http/middleware"
	"vendor-kyc.backend/internal/interfaces/http/response"
	"vendor-kyc.backend/internal/usecases"
)

// AuthHandler handles admin authentication endpoints
type AuthHandler struct {
	authUsecase *usecases.AuthUsecase
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUsecase *usecases.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Login handles admin login
// POST /api/v1/admin/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"tokenType":    "Bearer",
	})
}

// Refresh exchanges a refresh token for a fresh pair
// POST /api/v1/admin/refresh
func (h *AuthHandler) Refresh(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}

	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authUsecase.Refresh(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
		"tokenType":    "Bearer",
	})
}

// Me returns the authenticated admin account
// GET /api/v1/admin/me
func (h *AuthHandler) Me(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	admin, err := h.authUsecase.GetMe(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, admin)
}

// ChangePassword rotates the authenticated admin's password
// POST /api/v1/admin/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	username, ok := middleware.GetUsername(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("Not authenticated"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authUsecase.ChangePassword(c.Request.Context(), username, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "Password updated successfully",
	})
}
