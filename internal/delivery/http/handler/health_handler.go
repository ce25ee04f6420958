package handler

import "github.com/gofiber/fiber/v3"

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) RegisterRoutes(app *fiber.App) {
	if app == nil {
		return
	}
	app.Get("/", h.Status)
	app.Get("/health", h.Status)
}

func (h *HealthHandler) Status(c fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"status": "resume match service is online",
	})
}
