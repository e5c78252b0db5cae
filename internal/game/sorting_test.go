package game

import (
	"math/rand"
	"testing"
)

func wrongCategory(item *Item) string {
	for _, b := range sortingBins {
		if b.Category != item.Category {
			return b.Category
		}
	}
	return ""
}

func TestSortingWin(t *testing.T) {
	g := NewSortingGame(rand.New(rand.NewSource(1)))
	g.Start()

	if g.Status() != StatusActive {
		t.Fatalf("status = %v after start; want active", g.Status())
	}

	for n := 0; n < 14; n++ {
		if got := g.Classify(g.Current().Category); got != ClassifyCorrect {
			t.Fatalf("classification %d = %v; want ClassifyCorrect", n, got)
		}
		// A second classify before the next item is presented is ignored.
		if got := g.Classify(g.Current().Category); got != ClassifyIgnored {
			t.Fatalf("classify while awaiting next item = %v; want ClassifyIgnored", got)
		}
		g.NextItem()
	}

	if got := g.Classify(g.Current().Category); got != ClassifyWon {
		t.Fatalf("15th classification = %v; want ClassifyWon", got)
	}
	if g.Status() != StatusWon {
		t.Fatalf("status = %v; want won", g.Status())
	}
	if g.Score() != 150 {
		t.Fatalf("score = %d; want 150", g.Score())
	}
	if g.Processed() != 15 {
		t.Fatalf("processed = %d; want 15", g.Processed())
	}
}

func TestSortingLivesAndLoss(t *testing.T) {
	g := NewSortingGame(rand.New(rand.NewSource(2)))
	g.Start()

	item := g.Current()
	if got := g.Classify(wrongCategory(item)); got != ClassifyWrong {
		t.Fatalf("first miss = %v; want ClassifyWrong", got)
	}
	if g.Lives() != 2 {
		t.Fatalf("lives = %d after one miss; want 2", g.Lives())
	}
	// The same item stays up for retry.
	if g.Current() != item {
		t.Fatal("item changed after a non-fatal miss")
	}
	if g.Processed() != 0 {
		t.Fatalf("processed = %d after miss; want 0", g.Processed())
	}

	g.Classify(wrongCategory(item))
	if got := g.Classify(wrongCategory(item)); got != ClassifyLost {
		t.Fatalf("third miss = %v; want ClassifyLost", got)
	}
	if g.Status() != StatusLost {
		t.Fatalf("status = %v; want lost", g.Status())
	}
	if g.Lives() != 0 {
		t.Fatalf("lives = %d at loss; want 0", g.Lives())
	}

	// Terminal session accepts no further input.
	if got := g.Classify(item.Category); got != ClassifyIgnored {
		t.Fatalf("classify after loss = %v; want ClassifyIgnored", got)
	}
	if g.Lives() != 0 {
		t.Fatal("lives went negative")
	}
}

func TestSortingClockGatedOnActive(t *testing.T) {
	g := NewSortingGame(rand.New(rand.NewSource(3)))

	g.Tick()
	if g.Elapsed() != 0 {
		t.Fatalf("elapsed = %d while idle; want 0", g.Elapsed())
	}

	g.Start()
	g.Tick()
	g.Tick()
	if g.Elapsed() != 2 {
		t.Fatalf("elapsed = %d while active; want 2", g.Elapsed())
	}

	for g.Status() == StatusActive {
		g.Classify(wrongCategory(g.Current()))
	}
	g.Tick()
	if g.Elapsed() != 2 {
		t.Fatalf("elapsed = %d after terminal; want 2", g.Elapsed())
	}
}

func TestSortingDrawsFromFixedSet(t *testing.T) {
	g := NewSortingGame(rand.New(rand.NewSource(4)))
	g.Start()

	known := make(map[string]bool)
	for _, it := range sortingItems {
		known[it.Name] = true
	}
	for n := 0; n < 50; n++ {
		if !known[g.Current().Name] {
			t.Fatalf("drew unknown item %q", g.Current().Name)
		}
		g.NextItem()
	}
}
