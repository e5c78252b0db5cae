package handlers

import (
	"recycling_games/internal/repository"
	"recycling_games/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Handler struct {
	DB               *pgxpool.Pool
	PlayerRepo       *repository.PlayerRepository
	ScoreRepo        *repository.ScoreRepository
	Scores           *service.ScoreService
	Sessions         *service.SessionService
	LeaderboardLimit int
}

func NewHandler(db *pgxpool.Pool, scores *service.ScoreService, sessions *service.SessionService, leaderboardLimit int) *Handler {
	return &Handler{
		DB:               db,
		PlayerRepo:       repository.NewPlayerRepository(db),
		ScoreRepo:        repository.NewScoreRepository(db),
		Scores:           scores,
		Sessions:         sessions,
		LeaderboardLimit: leaderboardLimit,
	}
}

// getPlayer pulls the authenticated player identity out of the Gin
// context. Both values are set by the JWT middleware.
func getPlayer(c *gin.Context) (id, name string, ok bool) {
	idVal, exists := c.Get("player_id")
	if !exists {
		return "", "", false
	}
	id, ok = idVal.(string)
	if !ok || id == "" {
		return "", "", false
	}
	nameVal, _ := c.Get("player_name")
	name, _ = nameVal.(string)
	return id, name, true
}
