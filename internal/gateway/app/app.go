package app

import (
	"context"
	"fmt"
	"log"

	"codereview/internal/gateway/config"
	"codereview/internal/gateway/handler"
	"codereview/internal/gateway/server"
	"codereview/internal/llm"
	"codereview/internal/review"
)

type App struct {
	server   *server.Server
	provider *llm.Provider
}

func New() (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if cfg.Model.APIKey == "" {
		log.Println("GEMINI_API_KEY environment variable not set. API calls will fail.")
	} else {
		log.Println("Gemini API key found. Service ready for code reviews.")
	}

	// Dependencies
	provider := llm.NewProvider(llm.ProviderOptions{
		APIKey: cfg.Model.APIKey,
		Model:  cfg.Model.Name,
		RPS:    cfg.Model.RPS,
		Burst:  cfg.Model.Burst,
	})
	reviewSvc := review.NewService(provider)

	reviewHandler := handler.NewReviewHandler(reviewSvc, cfg.Upload.MaxBytes, cfg.Model.Name)
	healthHandler := handler.NewHealthHandler(reviewSvc)

	// Routing & Server
	mux := server.NewMux(reviewHandler, healthHandler, cfg.StaticDir)
	srv := server.New(cfg.Port, mux)

	return &App{
		server:   srv,
		provider: provider,
	}, nil
}

func (a *App) Start() error {
	return a.server.Start()
}

func (a *App) Shutdown(ctx context.Context) error {
	if err := a.provider.Close(); err != nil {
		log.Printf("failed to close model client: %v", err)
	}
	return a.server.Shutdown(ctx)
}
