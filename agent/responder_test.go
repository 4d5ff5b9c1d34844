package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alperenulukaya/career-agent/memory"
)

func TestDraftReturnsText(t *testing.T) {
	gen := &mockGenerator{responses: []string{"  Alperen works with Spring Boot.  "}}
	responder := NewResponder(gen, "profile text")

	draft, err := responder.Draft(context.Background(), "What does he work with?", nil)

	assert.NoError(t, err)
	assert.False(t, draft.NeedsHuman)
	assert.Equal(t, "Alperen works with Spring Boot.", draft.Text)
}

func TestDraftDetectsEscalationSentinel(t *testing.T) {
	gen := &mockGenerator{responses: []string{"[NEEDS_HUMAN]"}}
	responder := NewResponder(gen, "profile text")

	draft, err := responder.Draft(context.Background(), "Salary?", nil)

	assert.NoError(t, err)
	assert.True(t, draft.NeedsHuman)
	assert.Empty(t, draft.Text)
}

func TestDraftDetectsSentinelInsideProse(t *testing.T) {
	gen := &mockGenerator{responses: []string{"I cannot answer that. [NEEDS_HUMAN]"}}
	responder := NewResponder(gen, "profile text")

	draft, err := responder.Draft(context.Background(), "Legal question", nil)

	assert.NoError(t, err)
	assert.True(t, draft.NeedsHuman)
	assert.NotContains(t, draft.Text, EscalationSentinel)
}

func TestDraftEmbedsHistoryAndMessage(t *testing.T) {
	gen := &mockGenerator{responses: []string{"answer"}}
	responder := NewResponder(gen, "profile text")

	turns := []memory.Turn{
		{Role: "user", Content: "Hello!"},
		{Role: "assistant", Content: "Hi, how can I help?"},
	}
	_, err := responder.Draft(context.Background(), "What is your stack?", turns)

	assert.NoError(t, err)
	assert.Contains(t, gen.prompts[0], "Recruiter: Hello!")
	assert.Contains(t, gen.prompts[0], "Agent: Hi, how can I help?")
	assert.Contains(t, gen.prompts[0], "Current Message: What is your stack?")
}

func TestDraftPropagatesGenerationFailure(t *testing.T) {
	upstream := errors.New("generation service degraded")
	responder := NewResponder(&mockGenerator{errs: []error{upstream}}, "profile")

	_, err := responder.Draft(context.Background(), "Hi", nil)

	assert.ErrorIs(t, err, upstream)
}
