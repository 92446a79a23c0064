package middleware

import (
	"net/http"
	"strings"

	"clinicbook/models"
	"clinicbook/utils"

	"github.com/gin-gonic/gin"
)

// Context keys set by the auth middleware.
const (
	CtxUserID   = "userID"
	CtxUserRole = "userRole"
)

// JWTAuthMiddleware validates the bearer token and checks its hash against
// the auth cache, so revoked tokens die before their expiry.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		sub, role, err := utils.ExtractClaimsFromToken(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
			return
		}

		authKey := utils.AuthCachePrefix + sub
		cachedHash, err := utils.GetAuthCacheClient().Get(c.Request.Context(), authKey).Result()
		if err != nil || cachedHash != utils.HashToken(tokenString) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token revoked or session expired"})
			return
		}

		c.Set(CtxUserID, sub)
		c.Set(CtxUserRole, role)
		c.Next()
	}
}

// RequireRole gates a route group to the given roles. It must run after
// JWTAuthMiddleware.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		val, exists := c.Get(CtxUserRole)
		if !exists {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		role, ok := val.(models.Role)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		for _, allowed := range roles {
			if role == allowed {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Insufficient permissions"})
	}
}

// RoleFromContext returns the caller's role, defaulting to patient for
// unauthenticated requests on optional-auth routes.
func RoleFromContext(c *gin.Context) models.Role {
	if val, exists := c.Get(CtxUserRole); exists {
		if role, ok := val.(models.Role); ok {
			return role
		}
	}
	return models.RolePatient
}
