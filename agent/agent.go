package agent

import (
	"github.com/alperenulukaya/career-agent/memory"
	"github.com/alperenulukaya/career-agent/tools"
)

// AgentConfig holds configuration for the career assistant.
type AgentConfig struct {
	DraftModel  TextGenerator
	CriticModel TextGenerator

	Store     *memory.SessionStore
	Notifier  tools.Notifier
	Questions QuestionRecorder

	Profile string // persona context embedded in the drafting prompt

	MaxAttempts     int // draft/critique iterations per exchange
	AcceptThreshold int // minimum critic score to accept a draft, 0-10
}

// Agent drives the draft -> critique -> revise pipeline for one exchange at a
// time. At most one generation call is in flight per exchange; draft and
// critic calls are strictly sequential.
type Agent struct {
	config    AgentConfig
	responder *Responder
	critic    *Critic
}

// NewAgent creates a new agent instance
func NewAgent(config AgentConfig) *Agent {
	if config.MaxAttempts <= 0 {
		config.MaxAttempts = 3
	}
	if config.AcceptThreshold <= 0 {
		config.AcceptThreshold = 8
	}
	if config.Store == nil {
		config.Store = memory.NewSessionStore(memory.DefaultWindowTurns, memory.DefaultIdleTimeout)
	}

	return &Agent{
		config:    config,
		responder: NewResponder(config.DraftModel, config.Profile),
		critic:    NewCritic(config.CriticModel),
	}
}
