package middleware

import (
	"strings"

	"cricwordle_backend/internal/config"
	"cricwordle_backend/internal/util"

	"github.com/gin-gonic/gin"
)

func tokenFromRequest(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return c.Query("token")
}

// AuthMiddleware rejects requests without a valid bearer token. The secret
// is loaded from the store on every request so a config reload takes effect
// without tearing in-flight reads.
func AuthMiddleware(cfgs *config.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString == "" {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		claims, err := util.ParseJWT(tokenString, cfgs.Load().JWT.Secret)
		if err != nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}

		c.Set("user", claims)
		c.Next()
	}
}

// TryAuthMiddleware attaches the identity when a valid token is present but
// lets anonymous requests through. Puzzle routes use it so guests can play.
func TryAuthMiddleware(cfgs *config.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := tokenFromRequest(c)
		if tokenString != "" {
			if claims, err := util.ParseJWT(tokenString, cfgs.Load().JWT.Secret); err == nil {
				c.Set("user", claims)
			}
		}
		c.Next()
	}
}

// AdminMiddleware requires AuthMiddleware to have run first.
func AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := util.GetUserFromContext(c)
		if claims == nil {
			util.Unauthorized(c)
			c.Abort()
			return
		}
		if !claims.IsAdmin {
			util.Forbidden(c)
			c.Abort()
			return
		}
		c.Next()
	}
}
