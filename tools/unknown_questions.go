package tools

import (
	"encoding/csv"
	"fmt"
	"os"
	"sync"
	"time"
)

// QuestionLog is an append-only CSV log of questions the assistant escalated
// to a human. One row per question: RFC3339 timestamp, question text.
type QuestionLog struct {
	mu   sync.Mutex
	path string
}

func NewQuestionLog(path string) *QuestionLog {
	return &QuestionLog{path: path}
}

func (l *QuestionLog) Record(question string, at time.Time) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	file, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("error opening question log: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write([]string{at.UTC().Format(time.RFC3339), question}); err != nil {
		return fmt.Errorf("error writing question log: %w", err)
	}

	writer.Flush()
	return writer.Error()
}
