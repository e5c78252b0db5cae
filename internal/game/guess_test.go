package game

import (
	"math/rand"
	"testing"
)

func TestGuessOutcomes(t *testing.T) {
	g := NewGuessGame(rand.New(rand.NewSource(1)))
	target := g.target

	if got := g.Guess(0); got != GuessInvalid {
		t.Fatalf("guess 0 = %v; want GuessInvalid", got)
	}
	if got := g.Guess(101); got != GuessInvalid {
		t.Fatalf("guess 101 = %v; want GuessInvalid", got)
	}
	if g.Score() != 0 {
		t.Fatalf("attempts = %d after invalid guesses; want 0", g.Score())
	}

	low, high := target-1, target+1
	if low >= guessMin {
		if got := g.Guess(low); got != GuessTooLow {
			t.Fatalf("guess %d = %v; want GuessTooLow", low, got)
		}
		if got := g.Guess(low); got != GuessRepeat {
			t.Fatalf("repeated guess %d = %v; want GuessRepeat", low, got)
		}
	}
	if high <= guessMax {
		if got := g.Guess(high); got != GuessTooHigh {
			t.Fatalf("guess %d = %v; want GuessTooHigh", high, got)
		}
	}

	attempts := g.Score()
	if got := g.Guess(target); got != GuessCorrect {
		t.Fatalf("guess target = %v; want GuessCorrect", got)
	}
	if g.Score() != attempts+1 {
		t.Fatalf("attempts = %d after winning guess; want %d", g.Score(), attempts+1)
	}
	if g.Status() != StatusWon {
		t.Fatalf("status = %v; want won", g.Status())
	}
	if got := g.Guess(target); got != GuessInvalid {
		t.Fatalf("guess after win = %v; want GuessInvalid", got)
	}
}

func TestGuessRepeatDoesNotCount(t *testing.T) {
	g := NewGuessGame(rand.New(rand.NewSource(2)))
	n := g.target
	if n == guessMin {
		n++
	} else {
		n--
	}

	g.Guess(n)
	g.Guess(n)
	g.Guess(n)
	if g.Score() != 1 {
		t.Fatalf("attempts = %d after repeats; want 1", g.Score())
	}
}

func TestGuessTargetInRange(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g := NewGuessGame(rand.New(rand.NewSource(seed)))
		if g.target < guessMin || g.target > guessMax {
			t.Fatalf("seed %d: target %d outside [%d,%d]", seed, g.target, guessMin, guessMax)
		}
	}
}
