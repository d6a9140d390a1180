package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/salman-gigabit/PatientQueueBackend/internal/middleware"
	"github.com/salman-gigabit/PatientQueueBackend/internal/models"
	"github.com/salman-gigabit/PatientQueueBackend/internal/service"
)

// AuthHandler handles authentication HTTP requests.
type AuthHandler struct {
	authService service.AuthService
	cookies     *CookieHelper
}

// NewAuthHandler creates a new AuthHandler instance.
func NewAuthHandler(authService service.AuthService, cookies *CookieHelper) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		cookies:     cookies,
	}
}

// SignupRequest represents the signup request payload.
type SignupRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Signup godoc
// @Summary Register a staff user
// @Description Create a new staff account
// @Tags auth
// @Accept json
// @Produce json
// @Param request body SignupRequest true "Signup data"
// @Success 201 {object} models.User
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password, models.RoleUser)
	if err != nil {
		if errors.Is(err, service.ErrDuplicateEmail) {
			RespondError(c, http.StatusConflict, "email already registered")
			return
		}
		RespondStorageError(c, err, "signup failed")
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Description Authenticate a staff user and return an access token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} service.LoginResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			RespondError(c, http.StatusUnauthorized, "invalid credentials")
			return
		}
		RespondStorageError(c, err, "login failed")
		return
	}

	h.cookies.SetAuthCookie(c, response.AccessToken, time.Duration(response.ExpiresIn)*time.Second)
	c.JSON(http.StatusOK, response)
}

// Logout godoc
// @Summary User logout
// @Description Revoke the presented token and clear the auth cookie
// @Tags auth
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	token := extractBearer(c)
	if token == "" {
		if cookie, err := c.Cookie(middleware.AccessTokenCookie); err == nil {
			token = cookie
		}
	}

	if token != "" {
		if err := h.authService.Logout(c.Request.Context(), token); err != nil && !errors.Is(err, service.ErrInvalidToken) {
			LogAndRespondError(c, http.StatusInternalServerError, err, "logout failed")
			return
		}
	}

	h.cookies.ClearAuthCookie(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out successfully"})
}

// Me godoc
// @Summary Current user
// @Description Return the authenticated user's public record
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} map[string]string
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	identity, ok := middleware.IdentityFrom(c)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		RespondError(c, http.StatusUnauthorized, "invalid credentials")
		return
	}

	user, err := h.authService.GetByID(c.Request.Context(), identity.UserID)
	if err != nil {
		RespondStorageError(c, err, "lookup failed")
		return
	}
	if user == nil {
		RespondError(c, http.StatusNotFound, "user not found")
		return
	}

	c.JSON(http.StatusOK, user)
}

func extractBearer(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	return ""
}
