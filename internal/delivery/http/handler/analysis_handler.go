package handler

import (
	"strings"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/infrastructure/storage"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

// TextExtractor pulls plain text out of a stored resume file. It returns an
// empty string on any extraction failure.
type TextExtractor func(path string) string

type AnalysisHandler struct {
	uc      *usecase.AnalysisUsecase
	store   *storage.Store
	extract TextExtractor
}

func NewAnalysisHandler(uc *usecase.AnalysisUsecase, store *storage.Store, extract TextExtractor) *AnalysisHandler {
	return &AnalysisHandler{uc: uc, store: store, extract: extract}
}

// HandleAnalyzeMatch serves POST /analyze-match. An unreadable resume file
// degrades to empty-text analysis; only missing request fields fail.
func (h *AnalysisHandler) HandleAnalyzeMatch(c fiber.Ctx) error {
	filename := strings.TrimSpace(c.FormValue("filename"))
	if filename == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "filename is required", nil, nil)
	}
	jobTitle := strings.TrimSpace(c.FormValue("job_title"))
	if jobTitle == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "job_title is required", nil, nil)
	}
	jobDesc := strings.TrimSpace(c.FormValue("job_desc"))

	path, err := h.store.Resolve(filename)
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "invalid filename", nil, err)
	}

	resumeText := h.extract(path)
	res := h.uc.Analyze(c.Context(), resumeText, jobTitle, jobDesc)

	return c.Status(fiber.StatusOK).JSON(dto.AnalysisResponse{
		MatchScore:    res.MatchScore,
		MissingSkills: res.MissingSkills,
		Improvements:  res.Improvements,
		Roadmap:       res.Roadmap,
	})
}
