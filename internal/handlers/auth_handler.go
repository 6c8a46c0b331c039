package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mr-pathfinder/roadmap-service/internal/auth"
	"github.com/mr-pathfinder/roadmap-service/internal/models"
	"github.com/mr-pathfinder/roadmap-service/internal/services"
	"github.com/mr-pathfinder/roadmap-service/internal/utils"
)

type AuthHandler struct {
	BaseHandler
	service    services.AuthService
	production bool
}

func NewAuthHandler(service services.AuthService, logger utils.Logger, production bool) *AuthHandler {
	return &AuthHandler{
		BaseHandler: NewBaseHandler(logger),
		service:     service,
		production:  production,
	}
}

// Register creates a new account and starts a session.
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} models.AuthResponse
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	h.LogRequest(c, "Registering user")

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.Register(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.JSON(http.StatusCreated, resp)
}

// Login authenticates a user and starts a session.
// @Summary Log in
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} models.AuthResponse
// @Failure 401 {object} ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	h.LogRequest(c, "Logging in user")

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	h.setTokenCookie(c, resp.Token)
	c.JSON(http.StatusOK, resp)
}

// Logout clears the session cookie.
// @Summary Log out
// @Tags auth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [get]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.LogRequest(c, "Logging out user")

	h.clearTokenCookie(c)
	c.JSON(http.StatusOK, SuccessResponse{Message: "Logged out"})
}

// Me returns the authenticated user's profile.
// @Summary Get current user
// @Tags auth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	user, err := h.service.GetProfile(c.Request.Context(), userID)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// UpdateProfile updates the authenticated user's profile fields.
// @Summary Update profile
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} models.User
// @Failure 400 {object} ErrorResponse "Validation failed"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Router /auth/profile [put]
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	h.LogRequest(c, "Updating profile")

	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	user, err := h.service.UpdateProfile(c.Request.Context(), userID, &req)
	if err != nil {
		h.handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// setTokenCookie writes the session cookie. Cross-site frontends need
// SameSite=None, which browsers only accept over HTTPS, so that mode is
// reserved for production.
func (h *AuthHandler) setTokenCookie(c *gin.Context, token string) {
	maxAge := int(auth.DefaultTokenDuration.Seconds())
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(tokenCookieName, token, maxAge, "/", "", h.production, true)
}

func (h *AuthHandler) clearTokenCookie(c *gin.Context) {
	if h.production {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(tokenCookieName, "", -1, "/", "", h.production, true)
}
