package domain

import "time"

// GameType identifies a mini-game in the shared score store.
type GameType string

const (
	GameTypeMemory    GameType = "recycling-memory"
	GameTypeSorting   GameType = "recycling-sorting"
	GameTypeQuiz      GameType = "recycling-quiz"
	GameTypeGuess     GameType = "guess-number"
	GameTypeSnake     GameType = "snake"
	GameTypeTicTacToe GameType = "tictactoe"
)

// Persisted reports whether finished sessions of this game are written
// to the score store. Guess, snake and tictactoe are local-only.
func (t GameType) Persisted() bool {
	switch t {
	case GameTypeMemory, GameTypeSorting, GameTypeQuiz:
		return true
	default:
		return false
	}
}

// Valid reports whether t names a known game.
func (t GameType) Valid() bool {
	switch t {
	case GameTypeMemory, GameTypeSorting, GameTypeQuiz,
		GameTypeGuess, GameTypeSnake, GameTypeTicTacToe:
		return true
	default:
		return false
	}
}

// ScoreEntry is one finished session's result. Entries are immutable
// once written.
type ScoreEntry struct {
	ID        string    `db:"id" json:"id"`
	PlayerID  string    `db:"player_id" json:"player_id"`
	GameType  GameType  `db:"game_type" json:"game_type"`
	Score     int       `db:"score" json:"score"`
	TimeTaken *int      `db:"time_taken" json:"time_taken,omitempty"`
	Completed bool      `db:"completed" json:"completed"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// LeaderboardRow is a score entry joined with the player's display name.
type LeaderboardRow struct {
	Rank       int    `json:"rank"`
	PlayerName string `json:"player_name"`
	Score      int    `json:"score"`
	TimeTaken  *int   `json:"time_taken,omitempty"`
}
