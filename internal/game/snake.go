package game

import (
	"math/rand"

	"recycling_games/internal/domain"
)

const (
	snakeGridSize      = 20
	snakePointsPerFood = 10
)

type Position struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Direction string

const (
	DirUp    Direction = "up"
	DirDown  Direction = "down"
	DirLeft  Direction = "left"
	DirRight Direction = "right"
)

func (d Direction) Valid() bool {
	switch d {
	case DirUp, DirDown, DirLeft, DirRight:
		return true
	default:
		return false
	}
}

func (d Direction) opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

type SnakeTickResult int

const (
	SnakeMoved SnakeTickResult = iota
	SnakeAte
	SnakeDied
)

// SnakeGame runs on a fixed 20x20 grid. Direction changes buffer
// between ticks and apply at the next tick only.
type SnakeGame struct {
	snake   []Position
	food    Position
	dir     Direction
	nextDir Direction
	score   int
	status  Status
	rng     *rand.Rand
}

func NewSnakeGame(rng *rand.Rand) *SnakeGame {
	return &SnakeGame{
		snake:   []Position{{X: 10, Y: 10}},
		food:    Position{X: 15, Y: 15},
		dir:     DirRight,
		nextDir: DirRight,
		status:  StatusActive,
		rng:     rng,
	}
}

func (g *SnakeGame) Type() domain.GameType { return domain.GameTypeSnake }
func (g *SnakeGame) Status() Status        { return g.status }
func (g *SnakeGame) Score() int            { return g.score }
func (g *SnakeGame) Length() int           { return len(g.snake) }
func (g *SnakeGame) Head() Position        { return g.snake[0] }
func (g *SnakeGame) Food() Position        { return g.food }

// SetDirection buffers a direction change for the next tick. A request
// directly opposite the current heading would double the snake back
// onto its own neck, so it is ignored whenever the snake is longer than
// one segment.
func (g *SnakeGame) SetDirection(d Direction) {
	if g.status.Terminal() || !d.Valid() {
		return
	}
	if len(g.snake) > 1 && d == g.dir.opposite() {
		return
	}
	g.nextDir = d
}

// Tick applies the buffered direction, moves the head and resolves
// collisions, food and growth.
func (g *SnakeGame) Tick() SnakeTickResult {
	if g.status.Terminal() {
		return SnakeDied
	}

	g.dir = g.nextDir

	head := g.snake[0]
	switch g.dir {
	case DirUp:
		head.Y--
	case DirDown:
		head.Y++
	case DirLeft:
		head.X--
	case DirRight:
		head.X++
	}

	if head.X < 0 || head.X >= snakeGridSize || head.Y < 0 || head.Y >= snakeGridSize {
		g.status = StatusLost
		return SnakeDied
	}
	for _, seg := range g.snake {
		if seg == head {
			g.status = StatusLost
			return SnakeDied
		}
	}

	g.snake = append([]Position{head}, g.snake...)

	if head == g.food {
		g.score += snakePointsPerFood
		g.food = g.spawnFood()
		return SnakeAte
	}

	g.snake = g.snake[:len(g.snake)-1]
	return SnakeMoved
}

// spawnFood picks a free cell, never one occupied by the snake.
func (g *SnakeGame) spawnFood() Position {
	occupied := make(map[Position]bool, len(g.snake))
	for _, seg := range g.snake {
		occupied[seg] = true
	}
	for {
		p := Position{X: g.rng.Intn(snakeGridSize), Y: g.rng.Intn(snakeGridSize)}
		if !occupied[p] {
			return p
		}
	}
}

func (g *SnakeGame) State() map[string]any {
	return map[string]any{
		"game":   g.Type(),
		"status": g.status,
		"grid":   snakeGridSize,
		"snake":  g.snake,
		"food":   g.food,
		"score":  g.score,
	}
}
