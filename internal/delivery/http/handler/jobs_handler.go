package handler

import (
	"strings"

	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

type JobsHandler struct {
	uc *usecase.JobSearchUsecase
}

func NewJobsHandler(uc *usecase.JobSearchUsecase) *JobsHandler {
	return &JobsHandler{uc: uc}
}

// HandleSearchJobs serves POST /search-jobs. Provider failures never reach
// the caller; the response always carries at least one listing.
func (h *JobsHandler) HandleSearchJobs(c fiber.Ctx) error {
	role := strings.TrimSpace(c.FormValue("role"))
	if role == "" {
		return middleware.NewAppError(fiber.StatusBadRequest, "role is required", nil, nil)
	}
	location := strings.TrimSpace(c.FormValue("location"))
	company := strings.TrimSpace(c.FormValue("company"))

	listings := h.uc.Search(c.Context(), role, location, company)

	out := dto.JobSearchResponse{Jobs: make([]dto.JobListingResponse, 0, len(listings))}
	for _, l := range listings {
		out.Jobs = append(out.Jobs, dto.JobListingResponse{
			ID:      l.ID,
			Title:   l.Title,
			Source:  string(l.Source),
			Link:    l.Link,
			Snippet: l.Snippet,
		})
	}
	return c.Status(fiber.StatusOK).JSON(out)
}
