package repository

import (
	"context"

	"recycling_games/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PlayerRepository struct {
	db *pgxpool.Pool
}

func NewPlayerRepository(db *pgxpool.Pool) *PlayerRepository {
	return &PlayerRepository{db: db}
}

// Ensure looks a player up by exact name, creating one on first
// appearance. The upsert is a single statement so concurrent saves for
// the same new name cannot race into duplicate players.
func (r *PlayerRepository) Ensure(ctx context.Context, name, email string) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRow(ctx,
		`INSERT INTO players (id, name, email)
		 VALUES ($1, $2, NULLIF($3, ''))
		 ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		 RETURNING id, name, COALESCE(email, ''), created_at`,
		uuid.NewString(), name, email,
	).Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepository) GetByName(ctx context.Context, name string) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), created_at
		 FROM players
		 WHERE name = $1`,
		name,
	).Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, id string) (*domain.Player, error) {
	var p domain.Player
	err := r.db.QueryRow(ctx,
		`SELECT id, name, COALESCE(email, ''), created_at
		 FROM players
		 WHERE id = $1`,
		id,
	).Scan(&p.ID, &p.Name, &p.Email, &p.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
