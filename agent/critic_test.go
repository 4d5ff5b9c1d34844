package agent

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateParsesPlainJSON(t *testing.T) {
	gen := &mockGenerator{responses: []string{`{"score": 9, "feedback": "clear and accurate", "needs_improvement": false}`}}
	critic := NewCritic(gen)

	evaluation, err := critic.Evaluate(context.Background(), "query", "draft")

	assert.NoError(t, err)
	assert.Equal(t, 9, evaluation.Score)
	assert.Equal(t, "clear and accurate", evaluation.Feedback)
	assert.False(t, evaluation.NeedsImprovement)
}

func TestEvaluateStripsCodeFences(t *testing.T) {
	gen := &mockGenerator{responses: []string{"```json\n{\"score\": 6, \"feedback\": \"too vague\", \"needs_improvement\": true}\n```"}}
	critic := NewCritic(gen)

	evaluation, err := critic.Evaluate(context.Background(), "query", "draft")

	assert.NoError(t, err)
	assert.Equal(t, 6, evaluation.Score)
	assert.True(t, evaluation.NeedsImprovement)
}

func TestEvaluateRoundsAndClampsScore(t *testing.T) {
	tests := []struct {
		raw      string
		expected int
	}{
		{`{"score": 8.6, "feedback": "x"}`, 9},
		{`{"score": 7.2, "feedback": "x"}`, 7},
		{`{"score": 15, "feedback": "x"}`, 10},
		{`{"score": -3, "feedback": "x"}`, 0},
	}

	for _, tt := range tests {
		gen := &mockGenerator{responses: []string{tt.raw}}
		evaluation, err := NewCritic(gen).Evaluate(context.Background(), "q", "d")
		assert.NoError(t, err)
		assert.Equal(t, tt.expected, evaluation.Score)
	}
}

func TestEvaluateMalformedOutputReturnsFallback(t *testing.T) {
	gen := &mockGenerator{responses: []string{"Score: nine out of ten, well done"}}
	critic := NewCritic(gen)

	evaluation, err := critic.Evaluate(context.Background(), "query", "draft")

	assert.ErrorIs(t, err, ErrMalformedEvaluation)
	assert.Equal(t, 5, evaluation.Score)
	assert.Equal(t, "failed to parse evaluation output", evaluation.Feedback)
}

func TestEvaluatePropagatesGenerationFailure(t *testing.T) {
	upstream := errors.New("generation service degraded")
	gen := &mockGenerator{errs: []error{upstream}}
	critic := NewCritic(gen)

	_, err := critic.Evaluate(context.Background(), "query", "draft")

	assert.ErrorIs(t, err, upstream)
	assert.NotErrorIs(t, err, ErrMalformedEvaluation)
}
