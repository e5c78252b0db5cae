package handlers

import (
	"net/http"
	"strconv"

	"recycling_games/internal/domain"

	"github.com/gin-gonic/gin"
)

// GetLeaderboard returns the top completed scores for one game.
// Only games with a persistence hook have a leaderboard.
func (h *Handler) GetLeaderboard(c *gin.Context) {
	gameType := domain.GameType(c.Param("game"))
	if !gameType.Valid() {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown game"})
		return
	}
	if !gameType.Persisted() {
		c.JSON(http.StatusNotFound, gin.H{"error": "game has no leaderboard"})
		return
	}

	limit := h.LeaderboardLimit
	if v := c.Query("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 100 {
			limit = n
		}
	}

	rows := h.Scores.TopScores(c.Request.Context(), gameType, limit)
	c.JSON(http.StatusOK, gin.H{
		"game":        string(gameType),
		"leaderboard": rows,
	})
}
