package memory

import (
	"time"
)

// Turn is a single conversation entry.
type Turn struct {
	Role    string `json:"role"` // "user" or "assistant"
	Content string `json:"content"`
}

// Session holds the retained conversation history for one recruiter thread.
type Session struct {
	ID           string
	Turns        []Turn
	LastActivity time.Time
}

func (s *Session) AddUserTurn(content string) {
	s.Turns = append(s.Turns, Turn{Role: "user", Content: content})
}

func (s *Session) AddAssistantTurn(content string) {
	s.Turns = append(s.Turns, Turn{Role: "assistant", Content: content})
}
