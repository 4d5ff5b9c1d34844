// Package services provides the HTTP boundary of the career assistant.
package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/alperenulukaya/career-agent/agent"
)

// MessageHandler runs one recruiter message to a terminal outcome.
// Satisfied by *agent.Agent.
type MessageHandler interface {
	HandleMessage(ctx context.Context, message, sessionID string) (*agent.ChatResult, error)
}

type ChatService struct {
	handler MessageHandler
	timeout time.Duration // per-exchange wall-clock budget
}

func NewChatService(handler MessageHandler, timeout time.Duration) *ChatService {
	if timeout <= 0 {
		timeout = 90 * time.Second
	}

	return &ChatService{
		handler: handler,
		timeout: timeout,
	}
}

func (s *ChatService) RegisterRoutes(r chi.Router) {
	r.Post("/chat", s.handleChat)
	r.Get("/health", s.handleHealth)
}

type chatRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id,omitempty"`
}

func (s *ChatService) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Message == "" {
		Error(w, http.StatusBadRequest, "message is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), s.timeout)
	defer cancel()

	result, err := s.handler.HandleMessage(ctx, req.Message, req.SessionID)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			logger.Error("Exchange exceeded time budget", zap.Duration("timeout", s.timeout))
			Error(w, http.StatusGatewayTimeout, "request timed out")
			return
		}
		if errors.Is(err, context.Canceled) {
			// client went away, nobody is reading the response
			return
		}
		logger.Error("Exchange failed", zap.Error(err))
		Error(w, http.StatusInternalServerError, "internal error")
		return
	}

	JSON(w, http.StatusOK, result)
}

func (s *ChatService) handleHealth(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// JSON writes a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, `{"error": "failed to encode response"}`, http.StatusInternalServerError)
	}
}

// Error writes a JSON error response.
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, map[string]string{"error": message})
}
