package game

import (
	"math/rand"

	"recycling_games/internal/domain"
)

const (
	guessMin = 1
	guessMax = 100
)

type GuessOutcome int

const (
	GuessInvalid GuessOutcome = iota
	GuessRepeat
	GuessTooLow
	GuessTooHigh
	GuessCorrect
)

func (o GuessOutcome) String() string {
	switch o {
	case GuessRepeat:
		return "repeat"
	case GuessTooLow:
		return "too_low"
	case GuessTooHigh:
		return "too_high"
	case GuessCorrect:
		return "correct"
	default:
		return "invalid"
	}
}

// GuessGame hides one number in [1,100]. Out-of-range and repeated
// guesses are rejected without counting as attempts.
type GuessGame struct {
	target   int
	attempts []int
	status   Status
}

func NewGuessGame(rng *rand.Rand) *GuessGame {
	return &GuessGame{
		target: rng.Intn(guessMax-guessMin+1) + guessMin,
		status: StatusActive,
	}
}

func (g *GuessGame) Type() domain.GameType { return domain.GameTypeGuess }
func (g *GuessGame) Status() Status        { return g.status }
func (g *GuessGame) Attempts() []int       { return g.attempts }

// Score is the attempt count; fewer is better.
func (g *GuessGame) Score() int { return len(g.attempts) }

func (g *GuessGame) Guess(n int) GuessOutcome {
	if g.status.Terminal() {
		return GuessInvalid
	}
	if n < guessMin || n > guessMax {
		return GuessInvalid
	}
	for _, prev := range g.attempts {
		if prev == n {
			return GuessRepeat
		}
	}

	g.attempts = append(g.attempts, n)

	switch {
	case n == g.target:
		g.status = StatusWon
		return GuessCorrect
	case n < g.target:
		return GuessTooLow
	default:
		return GuessTooHigh
	}
}

func (g *GuessGame) State() map[string]any {
	state := map[string]any{
		"game":     g.Type(),
		"status":   g.status,
		"min":      guessMin,
		"max":      guessMax,
		"attempts": g.attempts,
	}
	if g.status.Terminal() {
		state["target"] = g.target
	}
	return state
}
