package ws

// client → server
type InboundMessage struct {
	Type      string `json:"type"`
	Direction string `json:"direction,omitempty"` // up | down | left | right
}

// server → client
type StateMessage struct {
	Type  string         `json:"type"`
	State map[string]any `json:"state"`
}

type GameOverMessage struct {
	Type  string         `json:"type"`
	Score int            `json:"score"`
	State map[string]any `json:"state"`
}

type ErrorMessage struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}
