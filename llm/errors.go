package llm

import (
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrorKind classifies upstream generation failures. Callers above the
// generation client never branch on raw error text, only on the kind.
type ErrorKind int

const (
	// TransientUpstream covers rate limiting and temporary unavailability.
	// These failures are retryable with backoff.
	TransientUpstream ErrorKind = iota
	// FatalUpstream covers malformed requests, auth failures and anything
	// else that will not succeed on retry.
	FatalUpstream
)

func (k ErrorKind) String() string {
	if k == TransientUpstream {
		return "transient"
	}
	return "fatal"
}

// UpstreamError wraps a provider error with its classification.
type UpstreamError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("upstream %s failure: %s", e.Kind, e.Message)
}

func (e *UpstreamError) Unwrap() error {
	return e.Cause
}

// ErrServiceDegraded is the standardized outcome reported after the retry
// budget is exhausted or a fatal upstream failure occurred. Callers only see
// this sentinel, never the retry count or the raw provider error.
var ErrServiceDegraded = errors.New("generation service degraded")

var transientMarkers = []string{
	"429",
	"503",
	"resource exhausted",
	"resource_exhausted",
	"unavailable",
	"rate limit",
	"quota",
	"overloaded",
	"deadline exceeded",
}

// Classify maps a provider error into the Transient/Fatal taxonomy. It
// inspects the HTTP status when the provider exposes one and falls back to
// marker strings in the error text.
func Classify(err error) *UpstreamError {
	var upstream *UpstreamError
	if errors.As(err, &upstream) {
		return upstream
	}

	kind := FatalUpstream

	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		if apiErr.Code == 429 || apiErr.Code == 503 {
			kind = TransientUpstream
		}
	}

	if kind == FatalUpstream {
		msg := strings.ToLower(err.Error())
		for _, marker := range transientMarkers {
			if strings.Contains(msg, marker) {
				kind = TransientUpstream
				break
			}
		}
	}

	return &UpstreamError{
		Kind:    kind,
		Message: err.Error(),
		Cause:   err,
	}
}
