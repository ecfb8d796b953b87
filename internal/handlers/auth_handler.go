package handlers

import (
	"errors"
	"net/http"

	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/codeAKstan/NexaVault-sub000/internal/middleware"
	"github.com/codeAKstan/NexaVault-sub000/internal/models"
	"github.com/codeAKstan/NexaVault-sub000/internal/services"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests for both principal types
type AuthHandler struct {
	authService *services.AuthService
	cfg         *config.Config
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authService *services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{authService: authService, cfg: cfg}
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, name, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(name, token, h.cfg.JWT.ExpiresIn, "/", "", false, true)
}

// Register handles POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := h.authService.Register(c, &req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to register: " + err.Error()})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, user, err := h.authService.LoginUser(c, &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setSessionCookie(c, middleware.UserTokenCookie, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// AdminLogin handles POST /auth/admin/login
func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	token, admin, err := h.authService.LoginAdmin(c, &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	h.setSessionCookie(c, middleware.AdminTokenCookie, token)
	c.JSON(http.StatusOK, gin.H{"token": token, "admin": admin})
}

// Logout handles POST /auth/logout by expiring both session cookies
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetCookie(middleware.UserTokenCookie, "", -1, "/", "", false, true)
	c.SetCookie(middleware.AdminTokenCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}
