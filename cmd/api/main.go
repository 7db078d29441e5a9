package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/promptforge/promptforge-go/internal/config"
	"github.com/promptforge/promptforge-go/internal/gemini"
	"github.com/promptforge/promptforge-go/internal/handler"
	"github.com/promptforge/promptforge-go/internal/middleware"
	"github.com/promptforge/promptforge-go/internal/repository"
	"github.com/promptforge/promptforge-go/internal/service"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg := config.Load()

	db, err := repository.NewDB(cfg.DatabaseDSN)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := repository.Migrate(context.Background(), db); err != nil {
		slog.Error("database migration failed", "error", err)
		os.Exit(1)
	}

	geminiClient := gemini.NewClient(cfg.GeminiAPIURL, cfg.GeminiAPIKey)

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTExpiry)
	authHandler := handler.NewAuthHandler(authService)

	promptRepo := repository.NewPromptRepository(db)
	promptService := service.NewPromptService(geminiClient, promptRepo)
	promptHandler := handler.NewPromptHandler(promptService)

	systemHandler := handler.NewSystemHandler(geminiClient)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recover(cfg.Env))
	r.NotFound(systemHandler.HandleNotFound)

	r.Get("/", handler.HandleIndex)
	r.Get("/login", handler.HandleLoginPage)

	r.Get("/api/health", systemHandler.HandleHealth)
	r.Get("/api/test-gemini", systemHandler.HandleTestGemini)

	r.Post("/api/register", authHandler.HandleRegister)
	r.Post("/api/login", authHandler.HandleLogin)

	r.Group(func(r chi.Router) {
		r.Use(middleware.JWTAuth(cfg.JWTSecret))
		r.Post("/api/generate-prompt", promptHandler.HandleGenerate)
		r.Get("/api/prompts", promptHandler.HandleList)
		r.Delete("/api/prompts/{id}", promptHandler.HandleDelete)
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}
