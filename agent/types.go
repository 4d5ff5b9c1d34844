package agent

import (
	"context"
	"time"

	"github.com/alperenulukaya/career-agent/llm"
)

// TextGenerator produces text for a prompt with retry handled underneath.
// Satisfied by *llm.Generator.
type TextGenerator interface {
	Generate(ctx context.Context, messages []llm.Message, opts ...llm.LLMOption) (string, error)
}

// QuestionRecorder appends escalated questions to a durable log.
type QuestionRecorder interface {
	Record(question string, at time.Time) error
}

// Evaluation is the critic's verdict on one draft, on a 0-10 scale.
type Evaluation struct {
	Score            int    `json:"score"`
	Feedback         string `json:"feedback"`
	NeedsImprovement bool   `json:"needs_improvement,omitempty"`
}

// Attempt records one loop iteration for the caller-visible evaluation log.
// Partial attempts live only here; they are never written to session history.
type Attempt struct {
	Query      string      `json:"query"`
	Draft      string      `json:"draft,omitempty"`
	Evaluation *Evaluation `json:"evaluation,omitempty"`
	Error      string      `json:"error,omitempty"`
}

// Outcome is the terminal state of one exchange.
type Outcome string

const (
	// OutcomeAccepted means a draft passed the critic (or the critic broke
	// and the draft was trusted).
	OutcomeAccepted Outcome = "accepted"
	// OutcomeEscalated means the inquiry was routed to a human.
	OutcomeEscalated Outcome = "escalated"
	// OutcomeDegraded means the attempt budget ran out without acceptance.
	OutcomeDegraded Outcome = "degraded"
)

// ChatResult is what the boundary returns for one recruiter message.
type ChatResult struct {
	Response      string    `json:"response"`
	SessionID     string    `json:"session_id"`
	Attempts      int       `json:"attempts"`
	Outcome       Outcome   `json:"outcome"`
	EvaluationLog []Attempt `json:"evaluation_log"`
}
