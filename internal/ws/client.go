package ws

import (
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"recycling_games/internal/game"
	"recycling_games/internal/logger"

	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 30 * time.Second
	pingPeriod = 25 * time.Second
)

// Client is one snake play-through bound to one websocket connection.
// The server owns the tick loop; the client only sends direction
// changes and pause/resume. Closing the connection ends the game.
type Client struct {
	PlayerID   string
	PlayerName string
	Conn       *websocket.Conn
	Send       chan []byte

	mu     sync.Mutex
	game   *game.SnakeGame
	paused bool

	tick time.Duration
	done chan struct{}
	once sync.Once
}

func NewClient(playerID, playerName string, conn *websocket.Conn, tick time.Duration) *Client {
	return &Client{
		PlayerID:   playerID,
		PlayerName: playerName,
		Conn:       conn,
		Send:       make(chan []byte, 64),
		game:       game.NewSnakeGame(rand.New(rand.NewSource(time.Now().UnixNano()))),
		tick:       tick,
		done:       make(chan struct{}),
	}
}

func (c *Client) Run() {
	go c.writePump()

	c.queue(StateMessage{Type: MsgReady, State: c.snapshot()})
	snakeStarted.Inc()

	go c.tickLoop()

	// readPump blocks until the connection drops
	c.readPump()
}

func (c *Client) stop() {
	c.once.Do(func() { close(c.done) })
}

func (c *Client) snapshot() map[string]any {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.game.State()
}

func (c *Client) queue(msg any) {
	data, err := json.Marshal(msg)
	if err != nil {
		return
	}
	select {
	case c.Send <- data:
	default:
		// slow consumer, drop the frame; the next state frame supersedes it
	}
}

func (c *Client) tickLoop() {
	ticker := time.NewTicker(c.tick)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			c.mu.Lock()
			if c.paused {
				c.mu.Unlock()
				continue
			}
			result := c.game.Tick()
			state := c.game.State()
			score := c.game.Score()
			c.mu.Unlock()

			if result == game.SnakeDied {
				c.queue(GameOverMessage{Type: MsgGameOver, Score: score, State: state})
				snakeFinished.Inc()
				c.stop()
				return
			}
			c.queue(StateMessage{Type: MsgState, State: state})

		case <-c.done:
			return
		}
	}
}

func (c *Client) readPump() {
	defer func() {
		c.stop()
		_ = c.Conn.Close()
	}()

	c.Conn.SetReadLimit(1024)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := c.Conn.ReadMessage()
		if err != nil {
			return
		}

		var msg InboundMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			c.queue(ErrorMessage{Type: MsgError, Message: "malformed message"})
			continue
		}
		c.handle(msg)
	}
}

func (c *Client) handle(msg InboundMessage) {
	switch msg.Type {
	case MsgDirection:
		dir := game.Direction(msg.Direction)
		if !dir.Valid() {
			c.queue(ErrorMessage{Type: MsgError, Message: "invalid direction"})
			return
		}
		c.mu.Lock()
		c.game.SetDirection(dir)
		c.mu.Unlock()
	case MsgPause:
		c.mu.Lock()
		c.paused = true
		c.mu.Unlock()
	case MsgResume:
		c.mu.Lock()
		c.paused = false
		c.mu.Unlock()
	default:
		c.queue(ErrorMessage{Type: MsgError, Message: "unknown message type"})
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.Conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				logger.Debug("snake write failed", "player", c.PlayerID, "error", err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			// flush the final frame queued before stop
			for {
				select {
				case msg := <-c.Send:
					_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
					_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
				default:
					return
				}
			}
		}
	}
}
