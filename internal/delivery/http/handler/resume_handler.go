package handler

import (
	"resume-match/internal/delivery/http/dto"
	"resume-match/internal/delivery/http/middleware"
	"resume-match/internal/infrastructure/storage"

	"github.com/gofiber/fiber/v3"
)

type ResumeHandler struct {
	store *storage.Store
}

func NewResumeHandler(store *storage.Store) *ResumeHandler {
	return &ResumeHandler{store: store}
}

// HandleUpload serves POST /upload-resume.
func (h *ResumeHandler) HandleUpload(c fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "resume file is required", nil, err)
	}

	f, err := fh.Open()
	if err != nil {
		return middleware.NewAppError(fiber.StatusBadRequest, "unable to read uploaded file", nil, err)
	}
	defer f.Close()

	stored, err := h.store.Save(fh.Filename, f)
	if err != nil {
		return middleware.NewAppError(fiber.StatusInternalServerError, "failed to store resume", nil, err)
	}

	return c.Status(fiber.StatusOK).JSON(dto.UploadResponse{
		Filename: stored,
		Message:  "Resume uploaded successfully",
	})
}
