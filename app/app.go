// Package app wires configuration into the stores, services and pipeline
// shared by the blogsum binaries.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/pevans/blogsum/config"
	"github.com/pevans/blogsum/contents"
	"github.com/pevans/blogsum/pipeline"
	"github.com/pevans/blogsum/scraper"
	"github.com/pevans/blogsum/summaries"
	"github.com/pevans/blogsum/summarizer"
	"github.com/pevans/blogsum/translator"
)

// App holds the wired components.
type App struct {
	Config     *config.Config
	Logger     *slog.Logger
	Summaries  *summaries.Store
	Contents   *contents.Store
	Summarizer *summarizer.Service
	Translator *translator.Service
	Pipeline   *pipeline.Pipeline
}

// New opens the stores and builds the services described by cfg. A nil
// logger uses cfg.NewLogger.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	if logger == nil {
		logger = cfg.NewLogger()
	}

	summaryStore, err := summaries.NewStore(cfg.Storage.SummariesDSN)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary store: %w", err)
	}

	contentStore, err := contents.NewStore(cfg.Storage.ContentsDir)
	if err != nil {
		summaryStore.Close()
		return nil, fmt.Errorf("failed to open content store: %w", err)
	}

	var llm summarizer.Generator
	gemini, err := summarizer.NewGemini(ctx, cfg.Gemini.APIKey, cfg.Gemini.Model)
	switch {
	case errors.Is(err, summarizer.ErrNotConfigured):
		logger.Info("Gemini API key not set, using static summaries")
	case err != nil:
		logger.Warn("Gemini unavailable, using static summaries", "error", err)
	default:
		llm = gemini
	}

	summarySvc := summarizer.NewService(summarizer.ServiceConfig{
		LLM:           llm,
		MinLLMContent: cfg.Gemini.MinContentLength,
		Logger:        logger,
	})

	var remote translator.Remote
	if cfg.Translate.Enabled {
		google := translator.NewGoogleClient(cfg.Translate.Timeout)
		if cfg.Translate.BaseURL != "" {
			google.BaseURL = cfg.Translate.BaseURL
		}
		remote = google
	}
	translateSvc := translator.NewService(remote, translator.NewTranslator(nil), logger)

	articleConfig := scraper.DefaultArticleConfig()
	p := pipeline.New(pipeline.Config{
		Scraper: scraper.New(scraper.Options{
			Timeout:   cfg.Scraper.Timeout,
			UserAgent: cfg.Scraper.UserAgent,
			Article:   &articleConfig,
		}),
		Summarizer: summarySvc,
		Translator: translateSvc,
		Summaries:  summaryStore,
		Contents:   contentStore,
		Logger:     logger,
	})

	return &App{
		Config:     cfg,
		Logger:     logger,
		Summaries:  summaryStore,
		Contents:   contentStore,
		Summarizer: summarySvc,
		Translator: translateSvc,
		Pipeline:   p,
	}, nil
}

// Router returns a gin engine serving every blogsum API under /api/v1.
func (a *App) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(a.Logger), summaries.CORSMiddleware())

	api := router.Group("/api/v1")
	pipeline.NewAPIServer(a.Pipeline, a.Config.Server.RequestTimeout).RegisterRoutes(api)
	summaries.NewAPIServer(a.Summaries).RegisterRoutes(api)
	config.NewAPIServer(a.Config).RegisterRoutes(api)

	return router
}

// Close releases the stores.
func (a *App) Close() error {
	return a.Summaries.Close()
}
