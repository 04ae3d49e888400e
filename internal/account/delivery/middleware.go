package delivery

import (
	"net/http"
	"strings"

	"accounts-backend/pkg/token"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware guards the authenticated routes. It only verifies the
// bearer token; looking up the acting user is left to each handler, so a
// valid token for a deleted account still reaches the handler and yields
// its 404 there.
func AuthMiddleware(tokenService *token.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token is required"})
			c.Abort()
			return
		}

		claims, err := tokenService.Validate(parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
			c.Abort()
			return
		}

		c.Set("claims", claims)
		c.Set("userID", claims.ID)
		c.Next()
	}
}
