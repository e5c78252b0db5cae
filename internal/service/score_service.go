package service

import (
	"context"

	"recycling_games/internal/cache"
	"recycling_games/internal/domain"
	"recycling_games/internal/logger"
	"recycling_games/internal/repository"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ScoreService is the persistence gateway: ensure-player, record-score
// and fetch-leaderboard. Store failures are logged and surfaced as an
// empty result or a boolean, never as a hard failure to the caller.
type ScoreService struct {
	players *repository.PlayerRepository
	scores  *repository.ScoreRepository
	cache   *cache.LeaderboardCache
}

func NewScoreService(db *pgxpool.Pool, lbCache *cache.LeaderboardCache) *ScoreService {
	return &ScoreService{
		players: repository.NewPlayerRepository(db),
		scores:  repository.NewScoreRepository(db),
		cache:   lbCache,
	}
}

// EnsurePlayer resolves a display name to a stable player record,
// creating the player on first appearance.
func (s *ScoreService) EnsurePlayer(ctx context.Context, name, email string) (*domain.Player, error) {
	return s.players.Ensure(ctx, name, email)
}

// RecordScore resolves the player and appends an immutable score entry.
// Returns false on any store error.
func (s *ScoreService) RecordScore(ctx context.Context, playerName string, gameType domain.GameType, score int, timeTaken *int, completed bool) bool {
	player, err := s.players.Ensure(ctx, playerName, "")
	if err != nil {
		logger.Error("failed to resolve player for score", "player", playerName, "error", err)
		return false
	}

	entry := &domain.ScoreEntry{
		PlayerID:  player.ID,
		GameType:  gameType,
		Score:     score,
		TimeTaken: timeTaken,
		Completed: completed,
	}
	if err := s.scores.Create(ctx, entry); err != nil {
		logger.Error("failed to save score", "game", gameType, "player", playerName, "error", err)
		return false
	}

	s.cache.Invalidate(ctx, gameType)
	scoresSaved.WithLabelValues(string(gameType)).Inc()
	return true
}

// TopScores returns the limit highest-scoring completed entries for one
// game. An empty slice is returned on failure.
func (s *ScoreService) TopScores(ctx context.Context, gameType domain.GameType, limit int) []domain.LeaderboardRow {
	if rows, ok := s.cache.Get(ctx, gameType, limit); ok {
		return rows
	}

	rows, err := s.scores.Top(ctx, gameType, limit)
	if err != nil {
		logger.Error("failed to fetch leaderboard", "game", gameType, "error", err)
		return []domain.LeaderboardRow{}
	}
	if rows == nil {
		rows = []domain.LeaderboardRow{}
	}

	s.cache.Set(ctx, gameType, limit, rows)
	return rows
}
