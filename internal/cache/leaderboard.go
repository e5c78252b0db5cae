package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"recycling_games/internal/domain"
	"recycling_games/internal/logger"

	redis "github.com/redis/go-redis/v9"
)

// LeaderboardCache keeps recently computed leaderboards in Redis. It is
// fail-open: with no client, or on any Redis error, callers fall back
// to the database.
type LeaderboardCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLeaderboardCache(client *redis.Client, ttl time.Duration) *LeaderboardCache {
	return &LeaderboardCache{client: client, ttl: ttl}
}

func key(gameType domain.GameType, limit int) string {
	return "lb:" + string(gameType) + ":" + strconv.Itoa(limit)
}

// Get returns the cached leaderboard, or (nil, false) on miss or error.
func (c *LeaderboardCache) Get(ctx context.Context, gameType domain.GameType, limit int) ([]domain.LeaderboardRow, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	raw, err := c.client.Get(ctx, key(gameType, limit)).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("leaderboard cache read failed", "error", err)
		}
		return nil, false
	}

	var rows []domain.LeaderboardRow
	if err := json.Unmarshal(raw, &rows); err != nil {
		return nil, false
	}
	return rows, true
}

func (c *LeaderboardCache) Set(ctx context.Context, gameType domain.GameType, limit int, rows []domain.LeaderboardRow) {
	if c == nil || c.client == nil {
		return
	}

	raw, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, key(gameType, limit), raw, c.ttl).Err(); err != nil {
		logger.Warn("leaderboard cache write failed", "error", err)
	}
}

// Invalidate drops every cached limit for one game after a score save.
func (c *LeaderboardCache) Invalidate(ctx context.Context, gameType domain.GameType) {
	if c == nil || c.client == nil {
		return
	}

	iter := c.client.Scan(ctx, 0, "lb:"+string(gameType)+":*", 100).Iterator()
	for iter.Next(ctx) {
		c.client.Del(ctx, iter.Val())
	}
	if err := iter.Err(); err != nil {
		logger.Warn("leaderboard cache invalidation failed", "error", err)
	}
}
