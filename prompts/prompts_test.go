package prompts

import (
	"testing"

	"github.com/alperenulukaya/career-agent/memory"
	"github.com/stretchr/testify/assert"
)

func TestRenderResponderPrompt(t *testing.T) {
	system, user, err := RenderResponderPrompt(ResponderPromptData{
		Profile: "Senior backend engineer, Spring Boot and .NET.",
		Turns: []memory.Turn{
			{Role: "user", Content: "Hi, are you open to new roles?"},
			{Role: "assistant", Content: "Hello! Yes, Alperen is open to opportunities."},
		},
		Message: "What is your tech stack?",
	})

	assert.NoError(t, err)
	assert.Contains(t, system, "Senior backend engineer")
	assert.Contains(t, system, "[NEEDS_HUMAN]")
	assert.Contains(t, user, "Recruiter: Hi, are you open to new roles?")
	assert.Contains(t, user, "Agent: Hello! Yes, Alperen is open to opportunities.")
	assert.Contains(t, user, "Current Message: What is your tech stack?")
}

func TestRenderResponderPromptWithoutHistory(t *testing.T) {
	_, user, err := RenderResponderPrompt(ResponderPromptData{
		Profile: "profile",
		Message: "Hello",
	})

	assert.NoError(t, err)
	assert.NotContains(t, user, "Previous Conversation")
	assert.Contains(t, user, "Current Message: Hello")
}

func TestRenderCriticPrompt(t *testing.T) {
	system, user, err := RenderCriticPrompt(CriticPromptData{
		OriginalQuery:    "What is your notice period?",
		ProposedResponse: "Alperen can start within a month.",
	})

	assert.NoError(t, err)
	assert.Contains(t, system, "strict quality reviewer")
	assert.Contains(t, user, "Original Recruiter Query: What is your notice period?")
	assert.Contains(t, user, "Proposed Response: Alperen can start within a month.")
	assert.Contains(t, user, `"score"`)
	assert.Contains(t, user, `"needs_improvement"`)
}
