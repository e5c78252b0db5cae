package repository

import (
	"context"

	"recycling_games/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ScoreRepository struct {
	db *pgxpool.Pool
}

func NewScoreRepository(db *pgxpool.Pool) *ScoreRepository {
	return &ScoreRepository{db: db}
}

// Create appends an immutable score entry for a finished session.
func (r *ScoreRepository) Create(ctx context.Context, entry *domain.ScoreEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	return r.db.QueryRow(ctx,
		`INSERT INTO game_scores (id, player_id, game_type, score, time_taken, completed)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at`,
		entry.ID,
		entry.PlayerID,
		entry.GameType,
		entry.Score,
		entry.TimeTaken,
		entry.Completed,
	).Scan(&entry.CreatedAt)
}

// Top returns the highest-scoring completed entries for one game,
// descending by score, each joined with the player's display name.
func (r *ScoreRepository) Top(ctx context.Context, gameType domain.GameType, limit int) ([]domain.LeaderboardRow, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(ctx,
		`SELECT p.name, s.score, s.time_taken
		 FROM game_scores s
		 JOIN players p ON p.id = s.player_id
		 WHERE s.game_type = $1 AND s.completed
		 ORDER BY s.score DESC, s.created_at ASC
		 LIMIT $2`,
		gameType, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.LeaderboardRow
	rank := 1
	for rows.Next() {
		var row domain.LeaderboardRow
		if err := rows.Scan(&row.PlayerName, &row.Score, &row.TimeTaken); err != nil {
			return nil, err
		}
		row.Rank = rank
		rank++
		result = append(result, row)
	}
	return result, rows.Err()
}

// CountByPlayer returns how many score entries a player has saved
// across all games.
func (r *ScoreRepository) CountByPlayer(ctx context.Context, playerID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM game_scores WHERE player_id = $1`,
		playerID,
	).Scan(&count)
	return count, err
}
