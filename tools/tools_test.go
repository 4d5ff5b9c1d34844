package tools

import (
	"context"
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestQuestionLogAppendsRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "unknown_questions.csv")
	log := NewQuestionLog(path)

	at := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	assert.NoError(t, log.Record("What is your salary expectation?", at))
	assert.NoError(t, log.Record(`Question with "quotes", and commas`, at.Add(time.Minute)))

	file, err := os.Open(path)
	assert.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, []string{"2026-03-14T09:30:00Z", "What is your salary expectation?"}, rows[0])
	assert.Equal(t, `Question with "quotes", and commas`, rows[1][1])
}

func TestPushoverNotifierPostsForm(t *testing.T) {
	var received map[string]string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.NoError(t, r.ParseForm())
		received = map[string]string{
			"user":    r.PostFormValue("user"),
			"token":   r.PostFormValue("token"),
			"message": r.PostFormValue("message"),
			"title":   r.PostFormValue("title"),
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	notifier := &PushoverNotifier{
		userKey:    "user-key",
		token:      "app-token",
		httpClient: server.Client(),
		url:        server.URL,
	}

	err := notifier.Notify(context.Background(), "New recruiter message: hi")
	assert.NoError(t, err)
	assert.Equal(t, "user-key", received["user"])
	assert.Equal(t, "app-token", received["token"])
	assert.Equal(t, "New recruiter message: hi", received["message"])
	assert.Equal(t, pushoverTitle, received["title"])
}

func TestPushoverNotifierReportsServerFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad token", http.StatusUnauthorized)
	}))
	defer server.Close()

	notifier := &PushoverNotifier{
		userKey:    "user-key",
		token:      "bad",
		httpClient: server.Client(),
		url:        server.URL,
	}

	err := notifier.Notify(context.Background(), "msg")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}

func TestPushoverNotifierWithoutCredentialsLogsOnly(t *testing.T) {
	notifier := &PushoverNotifier{}
	assert.NoError(t, notifier.Notify(context.Background(), "msg"))
}
