package game

import "testing"

func TestTicTacToeRowWin(t *testing.T) {
	g := NewTicTacToeGame()

	// X at 0,1,2 with O interleaved at 4,5.
	for _, idx := range []int{0, 4, 1, 5, 2} {
		if err := g.Place(idx); err != nil {
			t.Fatalf("place %d: %v", idx, err)
		}
	}

	if g.Status() != StatusWon {
		t.Fatalf("status = %v; want won", g.Status())
	}
	if g.Winner() != MarkX {
		t.Fatalf("winner = %q; want X", g.Winner())
	}
	if err := g.Place(8); err != ErrGameDecided {
		t.Fatalf("place after win = %v; want ErrGameDecided", err)
	}
}

func TestTicTacToeRejectsOccupiedCell(t *testing.T) {
	g := NewTicTacToeGame()

	if err := g.Place(4); err != nil {
		t.Fatalf("place 4: %v", err)
	}
	if err := g.Place(4); err != ErrCellOccupied {
		t.Fatalf("place occupied = %v; want ErrCellOccupied", err)
	}
	if err := g.Place(9); err != ErrBadCell {
		t.Fatalf("place out of range = %v; want ErrBadCell", err)
	}
	// The rejected moves must not have flipped the turn.
	if g.Next() != MarkO {
		t.Fatalf("next = %q; want O", g.Next())
	}
}

func TestTicTacToeDraw(t *testing.T) {
	g := NewTicTacToeGame()

	for _, idx := range []int{0, 1, 2, 4, 3, 5, 7, 6, 8} {
		if err := g.Place(idx); err != nil {
			t.Fatalf("place %d: %v", idx, err)
		}
	}

	if g.Status() != StatusDraw {
		t.Fatalf("status = %v; want draw", g.Status())
	}
	if g.Winner() != MarkNone {
		t.Fatalf("winner = %q on a draw; want none", g.Winner())
	}
}

func TestCheckWinner(t *testing.T) {
	cases := []struct {
		name  string
		board [9]Mark
		want  Mark
	}{
		{"empty", [9]Mark{}, MarkNone},
		{"top row X", [9]Mark{MarkX, MarkX, MarkX}, MarkX},
		{"left column O", [9]Mark{MarkO, MarkNone, MarkNone, MarkO, MarkNone, MarkNone, MarkO}, MarkO},
		{"diagonal X", [9]Mark{MarkX, MarkNone, MarkNone, MarkNone, MarkX, MarkNone, MarkNone, MarkNone, MarkX}, MarkX},
		{"anti-diagonal O", [9]Mark{MarkNone, MarkNone, MarkO, MarkNone, MarkO, MarkNone, MarkO}, MarkO},
		{"no uniform triple", [9]Mark{MarkX, MarkO, MarkX, MarkX, MarkO, MarkO, MarkO, MarkX, MarkX}, MarkNone},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := checkWinner(tc.board); got != tc.want {
				t.Fatalf("checkWinner = %q; want %q", got, tc.want)
			}
		})
	}
}

func TestTicTacToeAlternatesStartingWithX(t *testing.T) {
	g := NewTicTacToeGame()

	if g.Next() != MarkX {
		t.Fatalf("first mover = %q; want X", g.Next())
	}
	g.Place(0)
	if g.Next() != MarkO {
		t.Fatalf("second mover = %q; want O", g.Next())
	}
	if g.Board()[0] != MarkX {
		t.Fatalf("cell 0 = %q; want X", g.Board()[0])
	}
}
