package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Me returns the authenticated player's record and how many scores
// they have saved.
func (h *Handler) Me(c *gin.Context) {
	playerID, _, ok := getPlayer(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	ctx := c.Request.Context()
	player, err := h.PlayerRepo.GetByID(ctx, playerID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "player not found"})
		return
	}

	gamesPlayed, err := h.ScoreRepo.CountByPlayer(ctx, playerID)
	if err != nil {
		gamesPlayed = 0
	}

	c.JSON(http.StatusOK, gin.H{
		"id":           player.ID,
		"name":         player.Name,
		"email":        player.Email,
		"created_at":   player.CreatedAt,
		"games_played": gamesPlayed,
	})
}
