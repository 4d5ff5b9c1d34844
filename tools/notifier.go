package tools

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"go.uber.org/zap"
)

// Notifier pushes short operator-facing messages to Alperen. Delivery is
// best-effort: failures are logged and swallowed, never surfaced to the
// recruiter-facing response.
type Notifier interface {
	Notify(ctx context.Context, message string) error
}

const pushoverTitle = "Career AI Assistant"

// PushoverNotifier sends real push notifications via the Pushover API. When
// credentials are missing it degrades to logging the message, so local
// development works without an account.
type PushoverNotifier struct {
	userKey    string
	token      string
	httpClient *http.Client
	url        string
}

func NewPushoverNotifier() *PushoverNotifier {
	userKey := os.Getenv("PUSHOVER_USER")
	token := os.Getenv("PUSHOVER_TOKEN")
	if userKey == "" || token == "" {
		logger.Info("Pushover credentials missing, notifications will only be logged")
	}

	return &PushoverNotifier{
		userKey:    userKey,
		token:      token,
		httpClient: &http.Client{},
		url:        "https://api.pushover.net/1/messages.json",
	}
}

func (n *PushoverNotifier) Notify(ctx context.Context, message string) error {
	if n.userKey == "" || n.token == "" {
		logger.Info("Notification (not pushed)", zap.String("message", message))
		return nil
	}

	payload := url.Values{
		"user":    {n.userKey},
		"token":   {n.token},
		"message": {message},
		"title":   {pushoverTitle},
	}

	req, err := http.NewRequestWithContext(ctx, "POST", n.url, strings.NewReader(payload.Encode()))
	if err != nil {
		return fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("error making request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("pushover request failed with status %d: %s", resp.StatusCode, string(body))
	}

	return nil
}
