// ABOUTME: In-memory transcript store with a FIFO history limit
// ABOUTME: Holds the chat messages the TUI renders each frame
package client

import (
	"sync"
	"time"
)

type MessageType int

const (
	MessageTypeUser MessageType = iota
	MessageTypeAgent
	MessageTypeSystem
	MessageTypeError
)

func (mt MessageType) String() string {
	switch mt {
	case MessageTypeUser:
		return "User"
	case MessageTypeAgent:
		return "Agent"
	case MessageTypeSystem:
		return "System"
	case MessageTypeError:
		return "Error"
	default:
		return "Unknown"
	}
}

func (mt MessageType) Icon() string {
	switch mt {
	case MessageTypeUser:
		return "❯"
	case MessageTypeAgent:
		return "●"
	case MessageTypeSystem:
		return "·"
	case MessageTypeError:
		return "✗"
	default:
		return "?"
	}
}

type Message struct {
	Type      MessageType
	Content   string
	Timestamp time.Time
}

// MessageStore keeps the most recent messages up to a fixed limit, evicting
// the oldest first.
type MessageStore struct {
	mu       sync.RWMutex
	messages []*Message
	limit    int
}

func NewMessageStore(limit int) *MessageStore {
	if limit <= 0 {
		limit = 1000
	}
	return &MessageStore{limit: limit}
}

func (s *MessageStore) Add(msg *Message) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, msg)
	if len(s.messages) > s.limit {
		s.messages = s.messages[len(s.messages)-s.limit:]
	}
}

// All returns a snapshot of the stored messages, oldest first.
func (s *MessageStore) All() []*Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *MessageStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.messages)
}
