package agent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/SaiNageswarS/go-collection-boot/async"
	"go.uber.org/zap"

	"github.com/alperenulukaya/career-agent/llm"
)

// HandleMessage runs one recruiter message to a terminal outcome:
//
//	drafting -> evaluating -> accepted | revising | escalated | degraded
//
// where revising loops back to drafting with the critic's feedback folded
// into the query. Exactly one user turn and one assistant turn are appended
// to session history per completed exchange; failed attempts only show up in
// the evaluation log. The returned error is non-nil only when the inbound
// request was cancelled, in which case history stays untouched.
func (a *Agent) HandleMessage(ctx context.Context, message, sessionID string) (*ChatResult, error) {
	sessionID, turns := a.config.Store.Resolve(sessionID)

	a.notifyAsync("New recruiter message: " + message)

	lang := DetectLanguage(message)
	originalQuery := message
	query := message

	result := &ChatResult{SessionID: sessionID}
	var outcome Outcome
	var lastDraft string
	var finalResponse string

	for attempt := 1; attempt <= a.config.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		result.Attempts = attempt

		draft, err := a.responder.Draft(ctx, query, turns)
		if err != nil {
			if isCancellation(err) {
				return nil, err
			}
			logger.Error("Draft generation degraded",
				zap.String("sessionId", sessionID),
				zap.Int("attempt", attempt),
				zap.Error(err))
			result.EvaluationLog = append(result.EvaluationLog, Attempt{
				Query: query,
				Error: llm.ErrServiceDegraded.Error(),
			})
			outcome = OutcomeDegraded
			break
		}
		lastDraft = draft.Text

		if draft.NeedsHuman {
			result.EvaluationLog = append(result.EvaluationLog, Attempt{Query: query})
			outcome = OutcomeEscalated
			break
		}

		evaluation, err := a.critic.Evaluate(ctx, originalQuery, draft.Text)
		if err != nil && !errors.Is(err, ErrMalformedEvaluation) {
			if isCancellation(err) {
				return nil, err
			}
			// The evaluator is down. Trust the draft rather than loop on a
			// broken critic.
			logger.Error("Critic unavailable, accepting draft",
				zap.String("sessionId", sessionID),
				zap.Error(err))
			result.EvaluationLog = append(result.EvaluationLog, Attempt{
				Query: query,
				Draft: draft.Text,
				Error: llm.ErrServiceDegraded.Error(),
			})
			outcome = OutcomeAccepted
			finalResponse = draft.Text
			break
		}

		result.EvaluationLog = append(result.EvaluationLog, Attempt{
			Query:      query,
			Draft:      draft.Text,
			Evaluation: &evaluation,
		})

		if errors.Is(err, ErrMalformedEvaluation) {
			// Undecodable verdict also accepts the draft as-is, without
			// consuming a retry.
			outcome = OutcomeAccepted
			finalResponse = draft.Text
			break
		}

		if evaluation.Score >= a.config.AcceptThreshold {
			outcome = OutcomeAccepted
			finalResponse = draft.Text
			break
		}

		query = fmt.Sprintf("%s (Correction: %s)", originalQuery, evaluation.Feedback)
	}

	if outcome == "" {
		outcome = OutcomeDegraded
	}

	switch outcome {
	case OutcomeEscalated:
		a.recordEscalation(originalQuery)
		finalResponse = escalationAck(lang)
	case OutcomeDegraded:
		if lastDraft != "" {
			finalResponse = lastDraft
		} else {
			// Nothing was ever drafted; this inquiry went unanswered and
			// must reach a human.
			finalResponse = temporaryIssueMessage(lang)
			a.recordEscalation(originalQuery)
		}
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	a.config.Store.Append(sessionID, originalQuery, finalResponse)

	a.notifyAsync("Response sent to recruiter: " + finalResponse)

	result.Response = finalResponse
	result.Outcome = outcome
	return result, nil
}

func (a *Agent) recordEscalation(question string) {
	if a.config.Questions != nil {
		if err := a.config.Questions.Record(question, time.Now()); err != nil {
			logger.Error("Failed to record unknown question", zap.Error(err))
		}
	}
	a.notifyAsync("ACTION REQUIRED: a question needs a personal reply: " + question)
}

// notifyAsync pushes an operator notification without blocking the exchange.
// Failures are logged and dropped.
func (a *Agent) notifyAsync(message string) {
	if a.config.Notifier == nil {
		return
	}

	async.Go(func() (bool, error) {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := a.config.Notifier.Notify(ctx, message); err != nil {
			logger.Error("Failed to send notification", zap.Error(err))
		}
		return true, nil
	})
}

func isCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
