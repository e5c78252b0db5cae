package game

import "recycling_games/internal/domain"

// Status of a session state machine. A session starts idle, becomes
// active on the first player input and ends in exactly one terminal
// status.
type Status string

const (
	StatusIdle   Status = "idle"
	StatusActive Status = "active"
	StatusWon    Status = "won"
	StatusLost   Status = "lost"
	StatusDraw   Status = "draw"
)

// Terminal reports whether no further game-relevant transition can occur.
func (s Status) Terminal() bool {
	return s == StatusWon || s == StatusLost || s == StatusDraw
}

// Engine is the common surface every mini-game exposes to the session
// layer. Engines are plain state machines: no timers, no I/O, no locks.
// The session layer serializes access and drives time-based events.
type Engine interface {
	Type() domain.GameType
	Status() Status
	Score() int

	// State returns the client-visible view of the session.
	State() map[string]any
}

// Clocked is implemented by engines whose elapsed time accrues once per
// second while the session is active.
type Clocked interface {
	Tick()
	Elapsed() int
}
