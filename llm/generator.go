package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// RetryConfig controls backoff between retried generation calls.
type RetryConfig struct {
	MaxAttempts  int           // total attempts, including the first call
	InitialDelay time.Duration // delay before the first retry
	Factor       float64       // multiplier applied to the delay after each retry
}

func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:  4,
		InitialDelay: 1500 * time.Millisecond,
		Factor:       2.0,
	}
}

// Alerter receives operator-facing alerts when the upstream service keeps
// failing. Delivery is best-effort.
type Alerter interface {
	Notify(ctx context.Context, message string) error
}

// Generator wraps an LLMClient with bounded retry. Transient failures are
// retried with exponential backoff; fatal failures abort immediately. Either
// way the caller only learns whether generation succeeded or degraded.
//
// Each Generator carries its own retry state, so a drafting model and an
// evaluation model never share a backoff schedule.
type Generator struct {
	client LLMClient
	retry  RetryConfig
	alert  Alerter

	sleep func(ctx context.Context, d time.Duration) error
}

func NewGenerator(client LLMClient, retry RetryConfig, alert Alerter) *Generator {
	if retry.MaxAttempts <= 0 {
		retry = DefaultRetryConfig()
	}

	return &Generator{
		client: client,
		retry:  retry,
		alert:  alert,
		sleep:  sleepWithContext,
	}
}

func (g *Generator) Model() string {
	return g.client.GetModel()
}

// Generate runs one inference call with the configured retry policy and
// returns the produced text. On failure it returns ErrServiceDegraded; the
// underlying classification stays wrapped for logging.
func (g *Generator) Generate(ctx context.Context, messages []Message, opts ...LLMOption) (string, error) {
	delay := g.retry.InitialDelay
	var lastErr *UpstreamError

	for attempt := 1; attempt <= g.retry.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		var out strings.Builder
		err := g.client.GenerateInference(ctx, messages,
			func(chunk string) error {
				out.WriteString(chunk)
				return nil
			},
			opts...)
		if err == nil {
			return out.String(), nil
		}

		if ctx.Err() != nil {
			return "", ctx.Err()
		}

		lastErr = Classify(err)
		if lastErr.Kind == FatalUpstream {
			logger.Error("Generation failed with non-retryable error",
				zap.String("model", g.client.GetModel()),
				zap.Error(err))
			return "", fmt.Errorf("%w: %s", ErrServiceDegraded, lastErr.Kind)
		}

		logger.Error("Transient generation failure, will retry",
			zap.String("model", g.client.GetModel()),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", g.retry.MaxAttempts),
			zap.Error(err))

		if attempt == g.retry.MaxAttempts {
			break
		}

		if err := g.sleep(ctx, delay); err != nil {
			return "", err
		}
		delay = time.Duration(float64(delay) * g.retry.Factor)
	}

	logger.Error("Generation retry budget exhausted",
		zap.String("model", g.client.GetModel()),
		zap.Int("attempts", g.retry.MaxAttempts),
		zap.Error(lastErr))

	if g.alert != nil {
		msg := fmt.Sprintf("Generation service degraded: model %s failed %d attempts",
			g.client.GetModel(), g.retry.MaxAttempts)
		if err := g.alert.Notify(ctx, msg); err != nil {
			logger.Error("Failed to send degradation alert", zap.Error(err))
		}
	}

	return "", fmt.Errorf("%w after %d attempts", ErrServiceDegraded, g.retry.MaxAttempts)
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// IsDegraded reports whether err is the standardized degraded outcome.
func IsDegraded(err error) bool {
	return errors.Is(err, ErrServiceDegraded)
}
