package app

import (
	"context"
	"log"
	"time"

	"resume-match/internal/config"
	"resume-match/internal/infrastructure/ai"
	"resume-match/internal/infrastructure/cache"
	"resume-match/internal/infrastructure/pdftext"
	"resume-match/internal/infrastructure/storage"
	"resume-match/internal/search"
	"resume-match/internal/usecase"
)

// Container wires the process-wide collaborators: the upload store, the
// optional Redis cache, the search providers and the two usecases.
type Container struct {
	Config   config.Config
	Cache    *cache.Redis
	Store    *storage.Store
	Search   *usecase.JobSearchUsecase
	Analysis *usecase.AnalysisUsecase
	Extract  func(path string) string
}

func NewContainer(cfg config.Config, logger *log.Logger) (*Container, error) {
	if logger == nil {
		logger = log.Default()
	}

	store, err := storage.New(cfg.App.UploadDir)
	if err != nil {
		return nil, err
	}

	redisCache := cache.NewRedis(logger)

	providers := []search.Provider{search.NewDuckDuckGo()}
	if cfg.Adzuna.Configured() {
		providers = append(providers, search.NewAdzuna(cfg.Adzuna.AppID, cfg.Adzuna.AppKey, cfg.Adzuna.Country))
	}
	searchUC := usecase.NewJobSearchUsecase(providers, redisCache, logger)

	var gen usecase.TextGenerator
	if cfg.Gemini.APIKey != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		g, err := ai.NewGemini(ctx, cfg.Gemini.APIKey)
		cancel()
		if err != nil {
			logger.Printf("[AI] Gemini unavailable, using local scoring only: %v", err)
		} else {
			gen = g
		}
	}
	analysisUC := usecase.NewAnalysisUsecase(gen, cfg.Gemini.Models, logger)

	return &Container{
		Config:   cfg,
		Cache:    redisCache,
		Store:    store,
		Search:   searchUC,
		Analysis: analysisUC,
		Extract:  pdftext.Extract,
	}, nil
}

func (c *Container) Close() error {
	if c == nil || c.Cache == nil {
		return nil
	}
	return c.Cache.Close()
}
