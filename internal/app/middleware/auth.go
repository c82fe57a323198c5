package middleware

import (
	"net/http"
	"strings"

	"github.com/bella507/help-me-sub000/internal/app/pkg/auth"

	"github.com/gin-gonic/gin"
)

const (
	UserIDKey  = "user_id"
	LoginKey   = "login"
	IsAdminKey = "is_admin"
)

// AuthService bundles the two credential paths.
type AuthService struct {
	JWT     *auth.JWTService
	Session *auth.SessionService
}

func setIdentity(c *gin.Context, userID uint, login string, isAdmin bool) {
	c.Set(UserIDKey, userID)
	c.Set(LoginKey, login)
	c.Set(IsAdminKey, isAdmin)
}

// resolve tries JWT bearer first, then the Redis session cookie. The
// session is extended on every hit.
func resolve(c *gin.Context, authSvc *AuthService) bool {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := authSvc.JWT.Validate(tokenString)
		if err == nil {
			setIdentity(c, claims.UserID, claims.Login, claims.IsAdmin)
			return true
		}
	}

	sessionID, err := c.Cookie("session_id")
	if err == nil && sessionID != "" {
		sessionData, err := authSvc.Session.Get(c.Request.Context(), sessionID)
		if err == nil && sessionData != nil {
			setIdentity(c, sessionData.UserID, sessionData.Login, sessionData.IsAdmin)
			_ = authSvc.Session.Extend(c.Request.Context(), sessionID)
			return true
		}
	}
	return false
}

// AuthMiddleware rejects unauthenticated requests.
func AuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !resolve(c, authSvc) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// OptionalAuthMiddleware resolves identity when present but lets anonymous
// requests through.
func OptionalAuthMiddleware(authSvc *AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		resolve(c, authSvc)
		c.Next()
	}
}

// RequireAdminMiddleware gates operator-only routes.
func RequireAdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		isAdmin, exists := c.Get(IsAdminKey)
		if !exists || !isAdmin.(bool) {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			c.Abort()
			return
		}
		c.Next()
	}
}

func GetCurrentUserID(c *gin.Context) (uint, bool) {
	userID, exists := c.Get(UserIDKey)
	if !exists {
		return 0, false
	}
	return userID.(uint), true
}

func GetCurrentLogin(c *gin.Context) (string, bool) {
	login, exists := c.Get(LoginKey)
	if !exists {
		return "", false
	}
	return login.(string), true
}

func IsCurrentUserAdmin(c *gin.Context) bool {
	isAdmin, exists := c.Get(IsAdminKey)
	if !exists {
		return false
	}
	return isAdmin.(bool)
}
