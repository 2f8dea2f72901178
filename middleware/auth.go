package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"

	"collab-finder/config"
	"collab-finder/utils"
)

// AuthMiddleware resolves the current user from the session cookie, falling
// back to a Bearer token for programmatic clients. Unauthenticated browsers
// are sent to the login form with a return target.
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		session := sessions.Default(c)
		if userID, ok := session.Get("user_id").(int); ok && userID > 0 {
			c.Set("user_id", userID)
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		if authHeader != "" {
			tokenParts := strings.Split(authHeader, " ")
			if len(tokenParts) == 2 && tokenParts[0] == "Bearer" {
				claims, err := utils.ValidateToken(tokenParts[1], config.AppConfig.JWTSecret)
				if err == nil {
					c.Set("user_id", claims.UserID)
					c.Next()
					return
				}
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid or expired token",
			})
			return
		}

		utils.AddFlash(c, "warning", "Please log in first.")
		c.Redirect(http.StatusFound, "/login?next="+url.QueryEscape(c.Request.URL.Path))
		c.Abort()
	}
}
