package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/hekimalabs/smas_backend/appctx"
	"github.com/hekimalabs/smas_backend/utils"
)

// AdminMiddleware guards the internal ops endpoints. It accepts a
// bearer JWT issued to a platform operator account and rejects
// everything else.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.Request.Header.Get("Authorization")
		tokenString := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
		if tokenString == "" || tokenString == header {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			c.Abort()
			return
		}

		token, err := utils.JwtValidate(tokenString)
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*utils.JwtCustomClaim)
		if !ok || claims.Role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			c.Abort()
			return
		}

		ctx := utils.SetUserIdInContext(c.Request.Context(), claims.ID)
		ctx = context.WithValue(ctx, appctx.ContextKeyIsAdmin, true)
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
