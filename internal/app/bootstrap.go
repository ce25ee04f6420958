package app

import (
	"fmt"
	"log"
	"strings"

	"resume-match/internal/config"
	"resume-match/internal/delivery/http/handler"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/delivery/http/routes"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
)

type App struct {
	Fiber     *fiber.App
	Container *Container
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	c, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	f := fiber.New(fiber.Config{
		AppName:   cfg.App.AppName,
		BodyLimit: 10 << 20,
	})

	registerGlobalMiddleware(f, logger)
	registerRoutes(f, c)

	cleanup := func() error { return c.Close() }
	return &App{Fiber: f, Container: c}, cleanup, nil
}

func registerGlobalMiddleware(app *fiber.App, logger *log.Logger) {
	if app == nil {
		return
	}

	app.Use(cors.New())
	app.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	app.Use(middleware.NewErrorMiddleware().Middleware())
}

func registerRoutes(app *fiber.App, c *Container) {
	if app == nil || c == nil {
		return
	}

	registry := routes.NewRegistry(
		handler.NewJobsHandler(c.Search),
		handler.NewResumeHandler(c.Store),
		handler.NewAnalysisHandler(c.Analysis, c.Store, c.Extract),
	)
	registry.Register(app)
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
