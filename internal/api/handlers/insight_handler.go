package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type InsightHandler struct {
	s service.InsightService
}

func NewInsightHandler(service service.InsightService) *InsightHandler {
	return &InsightHandler{s: service}
}

func (h *InsightHandler) Analyze(c *fiber.Ctx) error {
	var req transfer.AnalyzeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	return c.Status(fiber.StatusOK).JSON(h.s.Analyze(req.Content))
}

func (h *InsightHandler) Insights(c *fiber.Ctx) error {
	userID := GetUserID(c)

	insights, err := h.s.Insights(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to generate insights",
		})
	}

	return c.Status(fiber.StatusOK).JSON(insights)
}

func (h *InsightHandler) Summary(c *fiber.Ctx) error {
	userID := GetUserID(c)
	period := c.Query("period", "7")

	summary, err := h.s.Summary(c.Context(), userID, period)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to compute summary",
		})
	}

	return c.Status(fiber.StatusOK).JSON(summary)
}

func (h *InsightHandler) Recommendations(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(h.s.Recommendations())
}

func (h *InsightHandler) Stats(c *fiber.Ctx) error {
	userID := GetUserID(c)

	stats, err := h.s.Stats(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to compute stats",
		})
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}
