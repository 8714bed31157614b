package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
)

type ExportHandler struct {
	s service.ExportService
}

func NewExportHandler(service service.ExportService) *ExportHandler {
	return &ExportHandler{s: service}
}

func (h *ExportHandler) Export(c *fiber.Ctx) error {
	userID := GetUserID(c)
	format := c.Query("format", "json")

	data, contentType, err := h.s.Export(c.Context(), userID, format)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to export analytics",
		})
	}

	c.Set("Content-Type", contentType)
	return c.Status(fiber.StatusOK).Send(data)
}
