package appconfig

import (
	"github.com/SaiNageswarS/go-api-boot/config"
)

type AppConfig struct {
	config.BootConfig `ini:",extends"`

	HTTPPort string `env:"HTTP-PORT" ini:"http_port"`

	DraftModel  string `env:"DRAFT-MODEL" ini:"draft_model"`
	CriticModel string `env:"CRITIC-MODEL" ini:"critic_model"`

	ProfilePath          string `ini:"profile_path"`
	UnknownQuestionsPath string `ini:"unknown_questions_path"`

	MaxAttempts     int `ini:"max_attempts"`
	AcceptThreshold int `ini:"accept_threshold"`

	MaxRetries       int     `ini:"max_retries"`
	InitialBackoffMs int     `ini:"initial_backoff_ms"`
	BackoffFactor    float64 `ini:"backoff_factor"`

	SessionWindowTurns    int `ini:"session_window_turns"`
	SessionIdleSeconds    int `ini:"session_idle_seconds"`
	RequestTimeoutSeconds int `ini:"request_timeout_seconds"`
}
