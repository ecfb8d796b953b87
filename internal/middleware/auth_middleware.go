package middleware

import (
	"net/http"
	"strings"

	"github.com/codeAKstan/NexaVault-sub000/internal/config"
	"github.com/codeAKstan/NexaVault-sub000/internal/utils"
	"github.com/gin-gonic/gin"
	"golang.org/x/exp/slog"
)

// Cookie names for the two principal types.
const (
	UserTokenCookie  = "nv_token"
	AdminTokenCookie = "nv_admin_token"
)

// tokenFromRequest pulls the token from the principal's cookie, falling back
// to the Authorization header for API clients.
func tokenFromRequest(c *gin.Context, cookieName string) string {
	if token, err := c.Cookie(cookieName); err == nil && token != "" {
		return token
	}

	const bearerSchema = "Bearer "
	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, bearerSchema) {
		return authHeader[len(bearerSchema):]
	}
	return ""
}

func requirePrincipal(cfg *config.Config, cookieName, principal string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c, cookieName)
		if tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			return
		}

		claims, err := utils.ValidateJWT(tokenString, cfg)
		if err != nil {
			slog.Warn("Token validation failed", "error", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}

		if claims["principal"] != principal {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient privileges"})
			return
		}

		c.Set("subjectID", claims["sub"])
		c.Set("subjectEmail", claims["email"])
		c.Next()
	}
}

// UserAuthMiddleware authenticates platform users via their session cookie.
func UserAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return requirePrincipal(cfg, UserTokenCookie, utils.PrincipalUser)
}

// AdminAuthMiddleware authenticates admin console sessions.
func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return requirePrincipal(cfg, AdminTokenCookie, utils.PrincipalAdmin)
}

// CronAuthMiddleware guards the accrual trigger with the scheduler's shared
// secret. A mismatch rejects the request.
func CronAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.Cron.Secret == "" {
			slog.Error("Cron trigger rejected: CRON secret is not configured")
			c.AbortWithStatusJSON(http.StatusServiceUnavailable, gin.H{"error": "Cron trigger is not configured"})
			return
		}

		const bearerSchema = "Bearer "
		authHeader := c.GetHeader("Authorization")
		if !strings.HasPrefix(authHeader, bearerSchema) || authHeader[len(bearerSchema):] != cfg.Cron.Secret {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid cron secret"})
			return
		}

		c.Next()
	}
}
