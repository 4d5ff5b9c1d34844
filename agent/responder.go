package agent

import (
	"context"
	"fmt"
	"strings"

	"github.com/alperenulukaya/career-agent/llm"
	"github.com/alperenulukaya/career-agent/memory"
	"github.com/alperenulukaya/career-agent/prompts"
)

// EscalationSentinel is the literal marker the persona policy instructs the
// model to emit when a question must go to a human. It is a string contract
// with the prompt text; it is parsed exactly once, here, so nothing above
// this boundary ever matches substrings again.
const EscalationSentinel = "[NEEDS_HUMAN]"

const draftTemperature = 0.7

// DraftResult is the responder's parsed output: either a usable draft or an
// escalation request.
type DraftResult struct {
	Text       string
	NeedsHuman bool
}

// Responder produces draft answers in Alperen's voice.
type Responder struct {
	gen     TextGenerator
	profile string
}

func NewResponder(gen TextGenerator, profile string) *Responder {
	return &Responder{
		gen:     gen,
		profile: profile,
	}
}

// Draft generates one candidate answer for the message given the retained
// history. Upstream failures arrive pre-classified from the generator; they
// are returned as-is for the loop to turn into a degraded outcome.
func (r *Responder) Draft(ctx context.Context, message string, turns []memory.Turn) (DraftResult, error) {
	systemPrompt, userPrompt, err := prompts.RenderResponderPrompt(prompts.ResponderPromptData{
		Profile: r.profile,
		Turns:   turns,
		Message: message,
	})
	if err != nil {
		return DraftResult{}, fmt.Errorf("error rendering responder prompt: %w", err)
	}

	text, err := r.gen.Generate(ctx,
		[]llm.Message{{Role: "user", Content: userPrompt}},
		llm.WithSystemPrompt(systemPrompt),
		llm.WithTemperature(draftTemperature),
	)
	if err != nil {
		return DraftResult{}, err
	}

	if strings.Contains(text, EscalationSentinel) {
		return DraftResult{
			Text:       strings.TrimSpace(strings.ReplaceAll(text, EscalationSentinel, "")),
			NeedsHuman: true,
		}, nil
	}

	return DraftResult{Text: strings.TrimSpace(text)}, nil
}
