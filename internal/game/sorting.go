package game

import (
	"math/rand"

	"recycling_games/internal/domain"
)

// Item is a piece of waste to classify. Bin is a destination container.
// Both are static reference data, immutable for the process lifetime.
type Item struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Emoji    string `json:"emoji"`
}

type Bin struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Color    string `json:"color"`
	Emoji    string `json:"emoji"`
}

var sortingItems = []Item{
	{Name: "Latinha de Alumínio", Category: "metal", Emoji: "🥫"},
	{Name: "Garrafa PET", Category: "plastic", Emoji: "🍾"},
	{Name: "Sacola Plástica", Category: "plastic", Emoji: "🛍️"},
	{Name: "Pneu", Category: "tire", Emoji: "🛞"},
	{Name: "Tampinha Plástica", Category: "plastic", Emoji: "⭕"},
	{Name: "Cerâmica", Category: "ceramic", Emoji: "🏺"},
	{Name: "Isopor", Category: "isopor", Emoji: "📦"},
	{Name: "Sucata de Metal", Category: "metal", Emoji: "🔩"},
}

var sortingBins = []Bin{
	{Category: "metal", Name: "Metal", Color: "yellow", Emoji: "🟡"},
	{Category: "plastic", Name: "Plástico", Color: "red", Emoji: "🔴"},
	{Category: "ceramic", Name: "Cerâmica", Color: "orange", Emoji: "🟠"},
	{Category: "tire", Name: "Pneus", Color: "gray", Emoji: "⚫"},
	{Category: "isopor", Name: "Isopor", Color: "blue", Emoji: "🔵"},
}

// Bins returns the fixed bin set.
func Bins() []Bin { return sortingBins }

// SortingTarget is the number of correct classifications that wins.
func SortingTarget() int { return sortingTargetItems }

// SortingLivesTotal is the number of misses allowed before losing.
func SortingLivesTotal() int { return sortingLives }

type ClassifyResult int

const (
	ClassifyIgnored ClassifyResult = iota
	ClassifyCorrect
	ClassifyWrong
	ClassifyWon
	ClassifyLost
)

func (r ClassifyResult) String() string {
	switch r {
	case ClassifyCorrect:
		return "correct"
	case ClassifyWrong:
		return "wrong"
	case ClassifyWon:
		return "won"
	case ClassifyLost:
		return "lost"
	default:
		return "ignored"
	}
}

const (
	sortingTargetItems  = 15
	sortingLives        = 3
	sortingPointsPerHit = 10
)

// SortingGame presents random items to drop into the right bin. 15
// correct classifications win; three misses lose.
type SortingGame struct {
	current      *Item
	score        int
	lives        int
	processed    int
	elapsed      int
	awaitingNext bool
	status       Status
	rng          *rand.Rand
}

func NewSortingGame(rng *rand.Rand) *SortingGame {
	return &SortingGame{lives: sortingLives, status: StatusIdle, rng: rng}
}

func (g *SortingGame) Type() domain.GameType { return domain.GameTypeSorting }
func (g *SortingGame) Status() Status        { return g.status }
func (g *SortingGame) Score() int            { return g.score }
func (g *SortingGame) Lives() int            { return g.lives }
func (g *SortingGame) Processed() int        { return g.processed }
func (g *SortingGame) Elapsed() int          { return g.elapsed }
func (g *SortingGame) Current() *Item        { return g.current }

// Start activates the session and draws the first item.
func (g *SortingGame) Start() {
	if g.status != StatusIdle {
		return
	}
	g.status = StatusActive
	g.NextItem()
}

// NextItem draws one item uniformly at random, with replacement, and
// clears transient feedback. Called by the session layer after the
// post-hit delay.
func (g *SortingGame) NextItem() {
	if g.status != StatusActive {
		return
	}
	g.current = &sortingItems[g.rng.Intn(len(sortingItems))]
	g.awaitingNext = false
}

// Classify drops the current item into the bin with the given category.
// A wrong answer costs a life and leaves the same item up for retry.
func (g *SortingGame) Classify(category string) ClassifyResult {
	if g.status != StatusActive || g.current == nil || g.awaitingNext {
		return ClassifyIgnored
	}

	if g.current.Category == category {
		g.score += sortingPointsPerHit
		g.processed++
		if g.processed >= sortingTargetItems {
			g.status = StatusWon
			return ClassifyWon
		}
		g.awaitingNext = true
		return ClassifyCorrect
	}

	g.lives--
	if g.lives <= 0 {
		g.status = StatusLost
		return ClassifyLost
	}
	return ClassifyWrong
}

func (g *SortingGame) Tick() {
	if g.status == StatusActive {
		g.elapsed++
	}
}

func (g *SortingGame) State() map[string]any {
	return map[string]any{
		"game":      g.Type(),
		"status":    g.status,
		"item":      g.current,
		"bins":      sortingBins,
		"score":     g.score,
		"lives":     g.lives,
		"processed": g.processed,
		"target":    sortingTargetItems,
		"elapsed":   g.elapsed,
	}
}
