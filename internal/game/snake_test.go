package game

import (
	"math/rand"
	"testing"
)

func newSnake(t *testing.T) *SnakeGame {
	t.Helper()
	return NewSnakeGame(rand.New(rand.NewSource(1)))
}

func TestSnakeMoves(t *testing.T) {
	g := newSnake(t)

	if got := g.Tick(); got != SnakeMoved {
		t.Fatalf("tick = %v; want SnakeMoved", got)
	}
	if g.Head() != (Position{X: 11, Y: 10}) {
		t.Fatalf("head = %v; want {11 10}", g.Head())
	}
	if g.Length() != 1 {
		t.Fatalf("length = %d after plain move; want 1", g.Length())
	}
}

func TestSnakeDirectionBufferedUntilTick(t *testing.T) {
	g := newSnake(t)

	g.SetDirection(DirDown)
	if g.dir != DirRight {
		t.Fatalf("heading changed to %v before tick", g.dir)
	}

	g.Tick()
	if g.Head() != (Position{X: 10, Y: 11}) {
		t.Fatalf("head = %v after buffered turn; want {10 11}", g.Head())
	}
}

func TestSnakeReversalIgnored(t *testing.T) {
	g := newSnake(t)
	g.snake = []Position{{X: 5, Y: 5}, {X: 4, Y: 5}}

	g.SetDirection(DirLeft)
	if g.nextDir != DirRight {
		t.Fatalf("nextDir = %v after reversal request; want right", g.nextDir)
	}

	// A one-segment snake has no neck to double back onto.
	g.snake = g.snake[:1]
	g.SetDirection(DirLeft)
	if g.nextDir != DirLeft {
		t.Fatalf("nextDir = %v for single-segment snake; want left", g.nextDir)
	}
}

func TestSnakeEatsAndGrows(t *testing.T) {
	g := newSnake(t)
	g.food = Position{X: 11, Y: 10}

	if got := g.Tick(); got != SnakeAte {
		t.Fatalf("tick = %v; want SnakeAte", got)
	}
	if g.Length() != 2 {
		t.Fatalf("length = %d after eating; want 2", g.Length())
	}
	if g.Score() != 10 {
		t.Fatalf("score = %d after eating; want 10", g.Score())
	}
	for _, seg := range g.snake {
		if seg == g.food {
			t.Fatalf("food respawned on snake at %v", seg)
		}
	}
}

func TestSnakeWallCollision(t *testing.T) {
	g := newSnake(t)
	g.snake = []Position{{X: 19, Y: 10}}

	if got := g.Tick(); got != SnakeDied {
		t.Fatalf("tick into wall = %v; want SnakeDied", got)
	}
	if g.Status() != StatusLost {
		t.Fatalf("status = %v; want lost", g.Status())
	}
	// Terminal sessions ignore further ticks and input.
	if got := g.Tick(); got != SnakeDied {
		t.Fatalf("tick after death = %v; want SnakeDied", got)
	}
}

func TestSnakeSelfCollision(t *testing.T) {
	g := newSnake(t)
	// Head at (5,5) heading right, body wrapping so (6,5) is occupied.
	g.snake = []Position{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 6, Y: 6}, {X: 6, Y: 5}, {X: 7, Y: 5}}
	g.dir = DirRight
	g.nextDir = DirRight

	if got := g.Tick(); got != SnakeDied {
		t.Fatalf("tick into body = %v; want SnakeDied", got)
	}
}

func TestSnakeNeverOverlapsItself(t *testing.T) {
	g := newSnake(t)

	// Drive a spiral for a while; the snake must stay self-consistent
	// every tick until it dies.
	dirs := []Direction{DirRight, DirDown, DirLeft, DirUp}
	for i := 0; i < 400 && !g.Status().Terminal(); i++ {
		if i%3 == 0 {
			g.SetDirection(dirs[(i/3)%len(dirs)])
		}
		g.Tick()

		seen := make(map[Position]bool, g.Length())
		for _, seg := range g.snake {
			if seen[seg] {
				t.Fatalf("tick %d: snake occupies %v twice", i, seg)
			}
			seen[seg] = true
		}
		if !g.Status().Terminal() && seen[g.food] {
			t.Fatalf("tick %d: food at %v overlaps snake", i, g.food)
		}
	}
}
