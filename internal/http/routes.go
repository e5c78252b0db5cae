package http

import (
	"recycling_games/internal/cache"
	"recycling_games/internal/config"
	"recycling_games/internal/http/handlers"
	"recycling_games/internal/http/middleware"
	"recycling_games/internal/service"
	"recycling_games/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
)

func RegisterRoutes(r *gin.Engine, db *pgxpool.Pool, cfg *config.Config, version string) {
	lbCache := cache.NewLeaderboardCache(middleware.RedisClient(), cfg.LeaderboardCacheTTL)
	scores := service.NewScoreService(db, lbCache)
	sessions := service.NewSessionService(scores)

	h := handlers.NewHandler(db, scores, sessions, cfg.LeaderboardLimit)
	healthHandler := handlers.NewHealthHandler(db, version)

	// Health checks (no rate limiting)
	r.GET("/health", healthHandler.Health)
	r.GET("/healthz", healthHandler.Liveness)
	r.GET("/readyz", healthHandler.Readiness)

	v1 := r.Group("/api/v1")
	v1.Use(middleware.RedisRateLimit(cfg.APIRateLimit, cfg.APIRateWindow))

	// Auth
	v1.POST("/auth", h.Auth)

	// Player profile
	v1.GET("/me", middleware.JWT(), h.Me)

	// Catalog and reference data
	v1.GET("/games", h.ListGames)
	v1.GET("/games/sorting/info", h.SortingInfo)

	// Leaderboards
	v1.GET("/leaderboard/:game", h.GetLeaderboard)

	// Game action rate limiter (per player, not per IP)
	gameRL := middleware.GameRateLimit(cfg.GameRateLimit, cfg.GameRateWindow)

	// Session lifecycle
	v1.POST("/game/session", middleware.JWT(), gameRL, h.StartSession)
	v1.GET("/game/session", middleware.JWT(), h.SessionState)
	v1.DELETE("/game/session", middleware.JWT(), h.QuitSession)

	// Game actions
	v1.POST("/game/memory/reveal", middleware.JWT(), gameRL, h.Reveal)
	v1.POST("/game/sorting/classify", middleware.JWT(), gameRL, h.Classify)
	v1.POST("/game/quiz/answer", middleware.JWT(), gameRL, h.Answer)
	v1.POST("/game/quiz/advance", middleware.JWT(), gameRL, h.Advance)
	v1.POST("/game/guess", middleware.JWT(), gameRL, h.Guess)
	v1.POST("/game/tictactoe/place", middleware.JWT(), gameRL, h.Place)

	// Snake runs over its own websocket; the tick loop lives server-side
	r.GET("/ws/snake", ws.HandleSnake(cfg.SnakeTickInterval))
}
