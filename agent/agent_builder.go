package agent

import (
	"github.com/alperenulukaya/career-agent/memory"
	"github.com/alperenulukaya/career-agent/tools"
)

type AgentBuilder struct {
	config AgentConfig
}

func NewAgentBuilder() *AgentBuilder {
	return &AgentBuilder{
		config: AgentConfig{
			MaxAttempts:     3,
			AcceptThreshold: 8,
		},
	}
}

func (b *AgentBuilder) WithDraftModel(gen TextGenerator) *AgentBuilder {
	b.config.DraftModel = gen
	return b
}

func (b *AgentBuilder) WithCriticModel(gen TextGenerator) *AgentBuilder {
	b.config.CriticModel = gen
	return b
}

func (b *AgentBuilder) WithSessionStore(store *memory.SessionStore) *AgentBuilder {
	b.config.Store = store
	return b
}

func (b *AgentBuilder) WithNotifier(notifier tools.Notifier) *AgentBuilder {
	b.config.Notifier = notifier
	return b
}

func (b *AgentBuilder) WithQuestionRecorder(recorder QuestionRecorder) *AgentBuilder {
	b.config.Questions = recorder
	return b
}

func (b *AgentBuilder) WithProfile(profile string) *AgentBuilder {
	b.config.Profile = profile
	return b
}

func (b *AgentBuilder) WithMaxAttempts(max int) *AgentBuilder {
	b.config.MaxAttempts = max
	return b
}

func (b *AgentBuilder) WithAcceptThreshold(threshold int) *AgentBuilder {
	b.config.AcceptThreshold = threshold
	return b
}

func (b *AgentBuilder) Build() *Agent {
	return NewAgent(b.config)
}
