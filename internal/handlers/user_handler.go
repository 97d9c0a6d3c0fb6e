package handlers

import (
	"fmt"
	"net/http"

	"github.com/servetisikli/takstore-backend/internal/auth"
	"github.com/servetisikli/takstore-backend/internal/logger"
	"github.com/servetisikli/takstore-backend/internal/services"
	"github.com/servetisikli/takstore-backend/internal/services/dto"
	"github.com/servetisikli/takstore-backend/pkg/apperrors"

	"github.com/gin-gonic/gin"
)

// UserHandler serves the account endpoints: registration, email
// verification, sessions and password recovery.
type UserHandler struct {
	*BaseHandler
	authService services.AuthService
	userService services.UserService
	frontendURL string
	// secureCookies marks session cookies Secure in production.
	secureCookies bool
}

func NewUserHandler(
	base *BaseHandler,
	authService services.AuthService,
	userService services.UserService,
	frontendURL string,
	secureCookies bool,
) *UserHandler {
	return &UserHandler{
		BaseHandler:   base,
		authService:   authService,
		userService:   userService,
		frontendURL:   frontendURL,
		secureCookies: secureCookies,
	}
}

// Register handles POST /api/user/register.
func (h *UserHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	outcome, err := h.authService.Register(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	if outcome.Resent {
		// The account exists but is unverified. A fresh verification
		// email has been sent; the client should not treat this as a
		// completed registration.
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "User already exists but email is not verified. Verification email resent.",
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Registration successful! Please verify your email.",
	})
}

// VerifyEmail handles GET /api/user/verify-email/:token. The link is opened
// from the email client, so success redirects to the storefront instead of
// returning JSON.
func (h *UserHandler) VerifyEmail(c *gin.Context) {
	token := c.Param("token")

	if err := h.authService.VerifyEmail(token); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.Redirect(http.StatusFound, fmt.Sprintf("%s/register?emailVerified=true", h.frontendURL))
}

// ResendVerification handles POST /api/user/resend-verification-email.
func (h *UserHandler) ResendVerification(c *gin.Context) {
	var req dto.ResendVerificationRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResendVerification(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Verification email resent. Please check your inbox.",
	})
}

// Login handles POST /api/user/login. On success the token pair is attached
// as http-only cookies and the profile is returned in the body.
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	profile, tokens, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetSessionCookies(c, tokens.AccessToken, tokens.RefreshToken, h.secureCookies)

	logger.CtxInfo(c.Request.Context(), "User logged in", "user_id", profile.ID)
	c.JSON(http.StatusOK, profile)
}

// Logout handles POST /api/user/logout by expiring both session cookies.
func (h *UserHandler) Logout(c *gin.Context) {
	auth.ClearSessionCookies(c, h.secureCookies)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

// Me handles GET /api/user/me.
func (h *UserHandler) Me(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.userService.GetProfile(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RefreshToken handles POST /api/user/refresh-token. It reads the refresh
// cookie and, when valid, rotates the access cookie.
func (h *UserHandler) RefreshToken(c *gin.Context) {
	refreshToken, err := c.Cookie(auth.RefreshTokenCookie)
	if err != nil || refreshToken == "" {
		h.HandleServiceError(c, apperrors.ErrNoRefreshToken)
		return
	}

	accessToken, err := h.authService.RefreshAccessToken(refreshToken)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	auth.SetAccessCookie(c, accessToken, h.secureCookies)
	c.JSON(http.StatusOK, gin.H{"message": "Access token refreshed"})
}

// ForgotPassword handles POST /api/user/forgot-password.
func (h *UserHandler) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ForgotPassword(req.Email); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset email sent. Please check your inbox.",
	})
}

// ResetPassword handles PATCH /api/user/reset-password/:token.
func (h *UserHandler) ResetPassword(c *gin.Context) {
	token := c.Param("token")

	var req dto.ResetPasswordRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.authService.ResetPassword(token, req.Password, req.ConfirmPassword); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Password reset successful. You can now log in with your new password.",
	})
}
