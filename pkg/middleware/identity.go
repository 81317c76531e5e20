package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"pulso/pkg/utils"
)

// IdentityMiddleware extracts the caller's identity-provider claims for
// dashboard routes. A request without a user is unauthenticated; a user
// without an active organization must pick one before the dashboard can
// resolve a tenant.
func IdentityMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateIdentityToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		if claims.OrgID == "" {
			utils.RespondError(c, http.StatusForbidden, "Organization selection required")
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("org_id", claims.OrgID)
		c.Next()
	}
}
