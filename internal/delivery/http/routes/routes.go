package routes

import (
	"resume-match/internal/delivery/http/handler"

	"github.com/gofiber/fiber/v3"
)

type Registry struct {
	health   *handler.HealthHandler
	jobs     *handler.JobsHandler
	resume   *handler.ResumeHandler
	analysis *handler.AnalysisHandler
}

func NewRegistry(jobs *handler.JobsHandler, resume *handler.ResumeHandler, analysis *handler.AnalysisHandler) *Registry {
	return &Registry{
		health:   handler.NewHealthHandler(),
		jobs:     jobs,
		resume:   resume,
		analysis: analysis,
	}
}

func (r *Registry) Register(app *fiber.App) {
	if app == nil {
		return
	}

	r.health.RegisterRoutes(app)
	app.Post("/search-jobs", r.jobs.HandleSearchJobs)
	app.Post("/upload-resume", r.resume.HandleUpload)
	app.Post("/analyze-match", r.analysis.HandleAnalyzeMatch)
}
