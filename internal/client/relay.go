// ABOUTME: WebSocket client carrying instructions and chat to the agent relay
// ABOUTME: Manages connection lifecycle with channel-based read/write loops
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// Instruction is the wire payload for a submitted prompt.
type Instruction struct {
	ID    string `json:"id"`
	Kind  string `json:"kind"`
	Title string `json:"title,omitempty"`
	Text  string `json:"text"`
}

type Relay struct {
	url      string
	conn     *websocket.Conn
	mu       sync.RWMutex
	incoming chan []byte
	outgoing chan []byte
	errors   chan error
	done     chan struct{}
	closed   bool
}

func NewRelay(url string) *Relay {
	return &Relay{
		url:      url,
		incoming: make(chan []byte, 100),
		outgoing: make(chan []byte, 100),
		errors:   make(chan error, 10),
		done:     make(chan struct{}),
	}
}

func (c *Relay) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.conn != nil && !c.closed {
		return fmt.Errorf("already connected")
	}

	dialCtx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	conn, _, err := websocket.DefaultDialer.DialContext(dialCtx, c.url, nil) //nolint:bodyclose // websocket connection, not HTTP response
	if err != nil {
		return fmt.Errorf("dial: %w", err)
	}

	c.conn = conn
	c.closed = false

	go c.readLoop()
	go c.writeLoop()

	return nil
}

func (c *Relay) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.conn != nil && !c.closed
}

func (c *Relay) Send(msg []byte) error {
	if !c.IsConnected() {
		return fmt.Errorf("not connected")
	}

	select {
	case c.outgoing <- msg:
		return nil
	case <-time.After(5 * time.Second):
		return fmt.Errorf("send timeout")
	}
}

// SendInstruction marshals and queues one instruction payload.
func (c *Relay) SendInstruction(ins Instruction) error {
	data, err := json.Marshal(ins)
	if err != nil {
		return fmt.Errorf("marshal instruction: %w", err)
	}
	return c.Send(data)
}

func (c *Relay) Incoming() <-chan []byte {
	return c.incoming
}

func (c *Relay) Errors() <-chan error {
	return c.errors
}

func (c *Relay) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}

	c.closed = true
	close(c.done)

	if c.conn != nil {
		return c.conn.Close()
	}
	return nil
}

func (c *Relay) readLoop() {
	defer func() {
		c.mu.Lock()
		c.closed = true
		c.mu.Unlock()
	}()

	for {
		select {
		case <-c.done:
			return
		default:
		}

		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			select {
			case c.errors <- fmt.Errorf("read: %w", err):
			case <-c.done:
			}
			return
		}

		select {
		case c.incoming <- msg:
		case <-c.done:
			return
		}
	}
}

func (c *Relay) writeLoop() {
	for {
		select {
		case <-c.done:
			return
		case msg := <-c.outgoing:
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				select {
				case c.errors <- fmt.Errorf("write: %w", err):
				case <-c.done:
				}
				return
			}
		}
	}
}
