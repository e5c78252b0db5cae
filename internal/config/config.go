package config

import (
	"os"
	"strconv"
	"time"

	"recycling_games/internal/logger"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort     string
	DatabaseURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	// Leaderboard
	LeaderboardLimit    int
	LeaderboardCacheTTL time.Duration

	// Rate limits
	APIRateLimit   int
	APIRateWindow  time.Duration
	GameRateLimit  int
	GameRateWindow time.Duration

	// Snake loop
	SnakeTickInterval time.Duration
}

// Load reads configuration from the environment. Missing required
// variables are fatal at startup: there is no recovery path without them.
func Load() *Config {
	_ = godotenv.Load()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		logger.Fatal("DATABASE_URL is not set")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		logger.Fatal("JWT_SECRET is not set")
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "8080"
	}

	redisDB := 0
	if v := os.Getenv("REDIS_DB"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			redisDB = n
		}
	}

	leaderboardLimit := 5
	if v := os.Getenv("LEADERBOARD_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			leaderboardLimit = n
		}
	}

	cacheTTL := 30 * time.Second
	if v := os.Getenv("LEADERBOARD_CACHE_TTL_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cacheTTL = time.Duration(n) * time.Second
		}
	}

	apiRateLimit := 60
	if v := os.Getenv("API_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateLimit = n
		}
	}

	apiRateWindow := time.Minute
	if v := os.Getenv("API_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			apiRateWindow = time.Duration(n) * time.Second
		}
	}

	gameRateLimit := 120
	if v := os.Getenv("GAME_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			gameRateLimit = n
		}
	}

	gameRateWindow := time.Minute
	if v := os.Getenv("GAME_RATE_WINDOW_SECONDS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			gameRateWindow = time.Duration(n) * time.Second
		}
	}

	snakeTick := 150 * time.Millisecond
	if v := os.Getenv("SNAKE_TICK_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			snakeTick = time.Duration(n) * time.Millisecond
		}
	}

	return &Config{
		AppPort:             port,
		DatabaseURL:         dbURL,
		JWTSecret:           jwtSecret,
		RedisAddr:           os.Getenv("REDIS_ADDR"),
		RedisPassword:       os.Getenv("REDIS_PASSWORD"),
		RedisDB:             redisDB,
		LeaderboardLimit:    leaderboardLimit,
		LeaderboardCacheTTL: cacheTTL,
		APIRateLimit:        apiRateLimit,
		APIRateWindow:       apiRateWindow,
		GameRateLimit:       gameRateLimit,
		GameRateWindow:      gameRateWindow,
		SnakeTickInterval:   snakeTick,
	}
}
