package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/snjhope/content-api/internal/config"
	"github.com/snjhope/content-api/internal/handler"
	"github.com/snjhope/content-api/internal/middleware"
	"github.com/snjhope/content-api/internal/notion"
	"github.com/snjhope/content-api/internal/service"
)

func main() {
	// Initialize structured logging
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	// Load .env in development; production injects real environment variables
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		slog.Warn("failed to load .env file", slog.String("error", err.Error()))
	}

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Validate configuration once; services never re-check credentials
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Initialize content store client
	store := notion.NewClient(notion.Config{
		APIKey:  cfg.Notion.APIKey,
		BaseURL: cfg.Notion.BaseURL,
		Version: cfg.Notion.Version,
		Timeout: cfg.Notion.Timeout,
	})

	// Initialize services
	contentService := service.NewContentService(service.ContentServiceConfig{
		Store:     store,
		Databases: cfg.Notion.Databases,
		PageSize:  cfg.Notion.PageSize,
	})

	relayService := service.NewRelayService(service.RelayServiceConfig{
		AllowedHosts: cfg.Asset.AllowedHosts,
		Timeout:      cfg.Asset.Timeout,
	})

	// Initialize handlers
	contentHandler := handler.NewContentHandler(contentService)
	relayHandler := handler.NewRelayHandler(relayService)

	// Create router and register routes
	mux := http.NewServeMux()

	// Health check endpoint
	mux.HandleFunc("GET /health", handler.Health)

	// Content endpoints (public, read-only)
	mux.HandleFunc("GET /v1/notices", contentHandler.Notices)
	mux.HandleFunc("GET /v1/activities", contentHandler.Activities)
	mux.HandleFunc("GET /v1/programs", contentHandler.Programs)
	mux.HandleFunc("GET /v1/business", contentHandler.Business)
	mux.HandleFunc("GET /v1/banners", contentHandler.Banners)
	mux.HandleFunc("GET /v1/about", contentHandler.About)

	// Asset relay endpoint
	mux.HandleFunc("GET /v1/assets/relay", relayHandler.Relay)

	// Apply global middleware
	wrapped := middleware.Chain(
		mux,
		middleware.RequestID,
		middleware.Logger,
		middleware.Recovery,
		middleware.CORS(cfg.Server.AllowedOrigins),
		middleware.Compress,
	)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      wrapped,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  120 * time.Second,
	}

	// Start server in goroutine
	go func() {
		slog.Info("starting server",
			slog.String("port", cfg.Server.Port),
			slog.String("env", cfg.Server.Env),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.String("error", err.Error()))
	}

	slog.Info("server exited")
}
