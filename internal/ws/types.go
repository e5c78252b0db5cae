package ws

const (
	// client - server
	MsgDirection = "direction"
	MsgPause     = "pause"
	MsgResume    = "resume"

	// server - client
	MsgReady    = "ready"
	MsgState    = "state"
	MsgGameOver = "game_over"
	MsgError    = "error"
)
