package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"offcampus/pkg/utils"
)

const (
	RoleUser   = "user"
	RoleAdmin  = "admin"
	RoleIntern = "intern"
)

func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// RoleMiddleware allows the request through only when the authenticated role
// is one of the listed ones.
func RoleMiddleware(allowedRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")
		for _, allowed := range allowedRoles {
			if role == allowed {
				c.Next()
				return
			}
		}
		utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		c.Abort()
	}
}

// AdminOrSelfMiddleware allows admins, or the user whose id matches the named
// path parameter.
func AdminOrSelfMiddleware(paramKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		targetID := c.Param(paramKey)
		if targetID == "" {
			utils.RespondError(c, http.StatusBadRequest, paramKey+" param required")
			c.Abort()
			return
		}
		if c.GetString("role") == RoleAdmin || c.GetString("user_id") == targetID {
			c.Next()
			return
		}
		utils.RespondError(c, http.StatusForbidden, "Forbidden: can only act on own user")
		c.Abort()
	}
}
