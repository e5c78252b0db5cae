package game

import (
	"errors"

	"recycling_games/internal/domain"
)

type Mark string

const (
	MarkX    Mark = "X"
	MarkO    Mark = "O"
	MarkNone Mark = ""
)

var (
	ErrCellOccupied = errors.New("cell occupied")
	ErrGameDecided  = errors.New("game already decided")
	ErrBadCell      = errors.New("cell index out of range")
)

var winningTriples = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

// TicTacToeGame alternates X and O over nine cells, X first.
type TicTacToeGame struct {
	board  [9]Mark
	next   Mark
	winner Mark
	status Status
}

func NewTicTacToeGame() *TicTacToeGame {
	return &TicTacToeGame{next: MarkX, status: StatusActive}
}

func (g *TicTacToeGame) Type() domain.GameType { return domain.GameTypeTicTacToe }
func (g *TicTacToeGame) Status() Status        { return g.status }
func (g *TicTacToeGame) Next() Mark            { return g.next }
func (g *TicTacToeGame) Winner() Mark          { return g.winner }
func (g *TicTacToeGame) Board() [9]Mark        { return g.board }

// Score is 1 for a decided game won by X, by convention unused for
// persistence: tictactoe is local-only.
func (g *TicTacToeGame) Score() int {
	if g.status == StatusWon {
		return 1
	}
	return 0
}

// Place puts the next mover's mark at idx.
func (g *TicTacToeGame) Place(idx int) error {
	if g.status.Terminal() {
		return ErrGameDecided
	}
	if idx < 0 || idx >= len(g.board) {
		return ErrBadCell
	}
	if g.board[idx] != MarkNone {
		return ErrCellOccupied
	}

	g.board[idx] = g.next
	if g.next == MarkX {
		g.next = MarkO
	} else {
		g.next = MarkX
	}

	if w := checkWinner(g.board); w != MarkNone {
		g.winner = w
		g.status = StatusWon
	} else if boardFull(g.board) {
		g.status = StatusDraw
	}
	return nil
}

// checkWinner returns the mark holding a uniform triple, or MarkNone.
func checkWinner(board [9]Mark) Mark {
	for _, t := range winningTriples {
		if board[t[0]] != MarkNone && board[t[0]] == board[t[1]] && board[t[0]] == board[t[2]] {
			return board[t[0]]
		}
	}
	return MarkNone
}

func boardFull(board [9]Mark) bool {
	for _, c := range board {
		if c == MarkNone {
			return false
		}
	}
	return true
}

func (g *TicTacToeGame) State() map[string]any {
	state := map[string]any{
		"game":   g.Type(),
		"status": g.status,
		"board":  g.board,
		"next":   g.next,
	}
	switch g.status {
	case StatusWon:
		state["winner"] = g.winner
	case StatusDraw:
		state["winner"] = "Draw"
	}
	return state
}
