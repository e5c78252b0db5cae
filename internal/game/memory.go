package game

import (
	"math/rand"

	"recycling_games/internal/domain"
)

// Material is a recyclable material shown on a pair of cards.
type Material struct {
	Name  string `json:"name"`
	Emoji string `json:"emoji"`
}

var materials = []Material{
	{Name: "Alumínio", Emoji: "🥫"},
	{Name: "Plástico", Emoji: "🍾"},
	{Name: "Pneu", Emoji: "🛞"},
	{Name: "Cerâmica", Emoji: "🏺"},
	{Name: "Isopor", Emoji: "📦"},
	{Name: "Metal", Emoji: "🔩"},
	{Name: "Tampinha", Emoji: "⭕"},
	{Name: "Sacola", Emoji: "🛍️"},
}

type Card struct {
	Material string `json:"material"`
	Emoji    string `json:"emoji"`
	Flipped  bool   `json:"flipped"`
	Matched  bool   `json:"matched"`
}

// memoryPhase makes the reveal lock explicit instead of inferring it
// from the pending list length.
type memoryPhase int

const (
	phaseIdle memoryPhase = iota
	phaseOneRevealed
	phaseResolving
)

// RevealResult tells the session layer what a reveal did, so it can
// schedule the mismatch timeout when needed.
type RevealResult int

const (
	RevealIgnored RevealResult = iota
	RevealFlipped
	RevealMatched
	RevealMismatched
	RevealWon
)

func (r RevealResult) String() string {
	switch r {
	case RevealFlipped:
		return "flipped"
	case RevealMatched:
		return "matched"
	case RevealMismatched:
		return "mismatched"
	case RevealWon:
		return "won"
	default:
		return "ignored"
	}
}

const (
	memoryBaseScore   = 1000
	memoryMovePenalty = 10
	memoryTimePenalty = 2
	memoryPairCount   = 8
)

// MemoryGame is the memory match state machine: 16 cards, 8 material
// pairs, score max(0, 1000 - moves*10 - seconds*2).
type MemoryGame struct {
	cards   []Card
	phase   memoryPhase
	pending [2]int
	moves   int
	matches int
	elapsed int
	status  Status
}

// NewMemoryGame deals a shuffled 16-card board, all face down.
func NewMemoryGame(rng *rand.Rand) *MemoryGame {
	cards := make([]Card, 0, memoryPairCount*2)
	for _, m := range materials {
		c := Card{Material: m.Name, Emoji: m.Emoji}
		cards = append(cards, c, c)
	}
	rng.Shuffle(len(cards), func(i, j int) {
		cards[i], cards[j] = cards[j], cards[i]
	})

	return &MemoryGame{cards: cards, status: StatusIdle}
}

func (g *MemoryGame) Type() domain.GameType { return domain.GameTypeMemory }
func (g *MemoryGame) Status() Status        { return g.status }
func (g *MemoryGame) Moves() int            { return g.moves }
func (g *MemoryGame) Matches() int          { return g.matches }
func (g *MemoryGame) Elapsed() int          { return g.elapsed }

func (g *MemoryGame) Score() int {
	score := memoryBaseScore - g.moves*memoryMovePenalty - g.elapsed*memoryTimePenalty
	if score < 0 {
		score = 0
	}
	return score
}

// Reveal flips the card at idx. It is a no-op while a mismatch is
// resolving, on an already flipped or matched card, or after the round
// ended. Every completed pair counts one move, matched or not.
func (g *MemoryGame) Reveal(idx int) RevealResult {
	if g.status.Terminal() || g.phase == phaseResolving {
		return RevealIgnored
	}
	if idx < 0 || idx >= len(g.cards) {
		return RevealIgnored
	}
	if g.cards[idx].Flipped || g.cards[idx].Matched {
		return RevealIgnored
	}

	if g.status == StatusIdle {
		g.status = StatusActive
	}

	g.cards[idx].Flipped = true

	if g.phase == phaseIdle {
		g.phase = phaseOneRevealed
		g.pending[0] = idx
		return RevealFlipped
	}

	// Second card of the pair.
	g.pending[1] = idx
	g.moves++

	first, second := g.pending[0], g.pending[1]
	if g.cards[first].Material == g.cards[second].Material {
		g.cards[first].Matched = true
		g.cards[second].Matched = true
		g.matches++
		g.phase = phaseIdle
		if g.matches == memoryPairCount {
			g.status = StatusWon
			return RevealWon
		}
		return RevealMatched
	}

	g.phase = phaseResolving
	return RevealMismatched
}

// ResolveMismatch is the timeout event after a mismatched pair: both
// cards flip back face down and input unlocks.
func (g *MemoryGame) ResolveMismatch() {
	if g.phase != phaseResolving {
		return
	}
	g.cards[g.pending[0]].Flipped = false
	g.cards[g.pending[1]].Flipped = false
	g.phase = phaseIdle
}

// Tick advances the elapsed clock by one second while the round is
// active. The clock stops at the terminal state.
func (g *MemoryGame) Tick() {
	if g.status == StatusActive {
		g.elapsed++
	}
}

// PendingCount returns how many face-up unmatched cards exist (0, 1 or 2).
func (g *MemoryGame) PendingCount() int {
	switch g.phase {
	case phaseOneRevealed:
		return 1
	case phaseResolving:
		return 2
	default:
		return 0
	}
}

func (g *MemoryGame) State() map[string]any {
	return map[string]any{
		"game":      g.Type(),
		"status":    g.status,
		"cards":     g.cards,
		"moves":     g.moves,
		"matches":   g.matches,
		"pairs":     memoryPairCount,
		"elapsed":   g.elapsed,
		"score":     g.Score(),
		"resolving": g.phase == phaseResolving,
	}
}
