package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/SaiNageswarS/go-api-boot/config"
	"github.com/SaiNageswarS/go-api-boot/dotenv"
	"github.com/SaiNageswarS/go-api-boot/logger"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/alperenulukaya/career-agent/agent"
	"github.com/alperenulukaya/career-agent/appconfig"
	"github.com/alperenulukaya/career-agent/llm"
	"github.com/alperenulukaya/career-agent/memory"
	"github.com/alperenulukaya/career-agent/services"
	"github.com/alperenulukaya/career-agent/tools"
)

func main() {
	dotenv.LoadEnv()

	// load config file
	ccfgg := &appconfig.AppConfig{}
	err := config.LoadConfig("config.ini", ccfgg)
	if err != nil {
		logger.Fatal("Failed to load config", zap.Error(err))
	}

	profile, err := os.ReadFile(ccfgg.ProfilePath)
	if err != nil {
		logger.Fatal("Failed to load profile", zap.String("path", ccfgg.ProfilePath), zap.Error(err))
	}

	ctx := context.Background()

	draftClient, err := llm.NewGeminiClient(ctx, ccfgg.DraftModel)
	if err != nil {
		logger.Fatal("Failed to create draft model client", zap.Error(err))
	}
	criticClient, err := llm.NewGeminiClient(ctx, ccfgg.CriticModel)
	if err != nil {
		logger.Fatal("Failed to create critic model client", zap.Error(err))
	}

	notifier := tools.NewPushoverNotifier()
	questions := tools.NewQuestionLog(ccfgg.UnknownQuestionsPath)

	retry := llm.RetryConfig{
		MaxAttempts:  ccfgg.MaxRetries,
		InitialDelay: time.Duration(ccfgg.InitialBackoffMs) * time.Millisecond,
		Factor:       ccfgg.BackoffFactor,
	}
	store := memory.NewSessionStore(
		ccfgg.SessionWindowTurns,
		time.Duration(ccfgg.SessionIdleSeconds)*time.Second,
	)

	assistant := agent.NewAgentBuilder().
		WithDraftModel(llm.NewGenerator(draftClient, retry, notifier)).
		WithCriticModel(llm.NewGenerator(criticClient, retry, notifier)).
		WithSessionStore(store).
		WithNotifier(notifier).
		WithQuestionRecorder(questions).
		WithProfile(string(profile)).
		WithMaxAttempts(ccfgg.MaxAttempts).
		WithAcceptThreshold(ccfgg.AcceptThreshold).
		Build()

	chat := services.NewChatService(assistant,
		time.Duration(ccfgg.RequestTimeoutSeconds)*time.Second)

	router := chi.NewRouter()
	router.Use(chiMiddleware.RequestID)
	router.Use(chiMiddleware.Recoverer)
	chat.RegisterRoutes(router)

	port := ccfgg.HTTPPort
	if port == "" {
		port = "8080"
	}
	server := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		logger.Info("Starting career assistant", zap.String("port", port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	logger.Info("Shutting down")
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Graceful shutdown failed", zap.Error(err))
	}
}
