package handlers

import (
	"net/http"
	"strings"

	"recycling_games/internal/service"

	"github.com/gin-gonic/gin"
)

const maxNameLength = 50

// AuthRequest identifies a player by display name. Email is optional
// and only stored on first registration.
type AuthRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"omitempty,email"`
}

// Auth registers or looks up the player by name and issues a JWT.
// Repeating the same name always resolves to the same player record.
func (h *Handler) Auth(c *gin.Context) {
	var req AuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request: " + err.Error()})
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" || len(name) > maxNameLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "name must be 1-50 characters"})
		return
	}

	player, err := h.Scores.EnsurePlayer(c.Request.Context(), name, strings.TrimSpace(req.Email))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register player"})
		return
	}

	token, err := service.GenerateJWT(player.ID, player.Name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to issue token"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token": token,
		"player": gin.H{
			"id":         player.ID,
			"name":       player.Name,
			"created_at": player.CreatedAt,
		},
	})
}
