package middleware

import (
	"net/http"
	"strings"

	"recycling_games/internal/service"

	"github.com/gin-gonic/gin"
)

// JWT validates the Authorization bearer token and puts the player
// identity into the request context.
func JWT() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(header, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			return
		}

		playerID, playerName, err := service.ParseJWT(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set("player_id", playerID)
		c.Set("player_name", playerName)
		c.Next()
	}
}
