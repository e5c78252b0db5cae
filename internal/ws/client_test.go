package ws

import (
	"encoding/json"
	"testing"
	"time"

	"recycling_games/internal/game"
)

func TestDirectionMessageSteersSnake(t *testing.T) {
	c := NewClient("p1", "Ana", nil, time.Hour)

	c.handle(InboundMessage{Type: MsgDirection, Direction: "up"})
	c.game.Tick()

	if head := c.game.Head(); head != (game.Position{X: 10, Y: 9}) {
		t.Fatalf("head = %+v after steering up; want {10 9}", head)
	}
}

func TestInvalidDirectionQueuesError(t *testing.T) {
	c := NewClient("p1", "Ana", nil, time.Hour)

	c.handle(InboundMessage{Type: MsgDirection, Direction: "diagonal"})

	select {
	case raw := <-c.Send:
		var msg ErrorMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if msg.Type != MsgError {
			t.Fatalf("type = %q; want %q", msg.Type, MsgError)
		}
	default:
		t.Fatal("no error frame queued")
	}
}

func TestPauseStopsTicking(t *testing.T) {
	c := NewClient("p1", "Ana", nil, 10*time.Millisecond)
	defer c.stop()

	c.handle(InboundMessage{Type: MsgPause})
	go c.tickLoop()

	time.Sleep(60 * time.Millisecond)
	c.mu.Lock()
	head := c.game.Head()
	c.mu.Unlock()
	if head != (game.Position{X: 10, Y: 10}) {
		t.Fatalf("snake moved while paused: head = %+v", head)
	}

	c.handle(InboundMessage{Type: MsgResume})
	time.Sleep(60 * time.Millisecond)
	c.mu.Lock()
	head = c.game.Head()
	c.mu.Unlock()
	if head == (game.Position{X: 10, Y: 10}) {
		t.Fatal("snake did not move after resume")
	}
}
