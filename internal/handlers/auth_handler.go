package handlers

import (
	"net/http"

	"logistik_backend/internal/services"
	"logistik_backend/internal/services/dto"
	"logistik_backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
	}
}

func (h *AuthHandler) RegisterRoutes(api *gin.RouterGroup) {
	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/forgot-password", h.ForgotPassword)
		auth.POST("/verify-reset-token", h.VerifyResetToken)
		auth.POST("/reset-password", h.ResetPassword)
		auth.POST("/generate-token", h.GenerateToken)
	}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusCreated, user, "account created")
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	resp, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, resp, "account logged in")
}

func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, nil, "password reset link sent to your mail")
}

func (h *AuthHandler) VerifyResetToken(c *gin.Context) {
	var req dto.VerifyResetTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.VerifyResetToken(req.ResetToken); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, nil, "reset token verified")
}

func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}
	// The reset token may also arrive as a query parameter from the
	// emailed link.
	if req.ResetToken == "" {
		req.ResetToken = c.Query("t")
	}
	if req.ResetToken == "" {
		apperrors.HandleError(c, apperrors.ValidationError([]apperrors.FieldError{
			{Field: "reset_token", Message: "This field is required"},
		}))
		return
	}

	if err := h.authService.ResetPassword(req.ResetToken, req.NewPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, nil, "password reset")
}

func (h *AuthHandler) GenerateToken(c *gin.Context) {
	var req dto.GenerateTokenRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(req.RefreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.Success(c, http.StatusOK, dto.GenerateTokenResponse{AccessToken: accessToken}, "access token generated")
}
