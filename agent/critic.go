package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"

	"github.com/alperenulukaya/career-agent/llm"
	"github.com/alperenulukaya/career-agent/prompts"
)

// ErrMalformedEvaluation marks critic output that could not be decoded even
// after cleanup. The loop treats it as "trust the draft", never as a failure
// of the exchange.
var ErrMalformedEvaluation = errors.New("malformed critic output")

// Low temperature biases the grader toward deterministic, strict scoring.
const criticTemperature = 0.1

// Critic scores drafts against the original recruiter query.
type Critic struct {
	gen TextGenerator
}

func NewCritic(gen TextGenerator) *Critic {
	return &Critic{gen: gen}
}

// Evaluate asks the evaluation model for a structured verdict. On undecodable
// output it returns a fallback Evaluation together with
// ErrMalformedEvaluation; upstream generation failures are returned as-is.
func (c *Critic) Evaluate(ctx context.Context, originalQuery, draft string) (Evaluation, error) {
	systemPrompt, userPrompt, err := prompts.RenderCriticPrompt(prompts.CriticPromptData{
		OriginalQuery:    originalQuery,
		ProposedResponse: draft,
	})
	if err != nil {
		return Evaluation{}, fmt.Errorf("error rendering critic prompt: %w", err)
	}

	raw, err := c.gen.Generate(ctx,
		[]llm.Message{{Role: "user", Content: userPrompt}},
		llm.WithSystemPrompt(systemPrompt),
		llm.WithTemperature(criticTemperature),
		llm.WithJSONOutput(true),
	)
	if err != nil {
		return Evaluation{}, err
	}

	evaluation, err := decodeEvaluation(raw)
	if err != nil {
		logger.Error("Failed to parse evaluation",
			zap.String("raw", raw),
			zap.Error(err))
		return Evaluation{
			Score:    5,
			Feedback: "failed to parse evaluation output",
		}, ErrMalformedEvaluation
	}

	return evaluation, nil
}

// decodeEvaluation is a resilient parse of the model's JSON: fenced code
// blocks are stripped, fractional scores rounded, out-of-range scores
// clamped to the 0-10 scale.
func decodeEvaluation(raw string) (Evaluation, error) {
	clean := strings.ReplaceAll(raw, "```json", "")
	clean = strings.ReplaceAll(clean, "```", "")
	clean = strings.TrimSpace(clean)

	var payload struct {
		Score            float64 `json:"score"`
		Feedback         string  `json:"feedback"`
		NeedsImprovement bool    `json:"needs_improvement"`
	}
	if err := json.Unmarshal([]byte(clean), &payload); err != nil {
		return Evaluation{}, err
	}

	score := int(math.Round(payload.Score))
	if score < 0 {
		score = 0
	} else if score > 10 {
		score = 10
	}

	return Evaluation{
		Score:            score,
		Feedback:         payload.Feedback,
		NeedsImprovement: payload.NeedsImprovement,
	}, nil
}
