package handlers

import (
	"github.com/gofiber/fiber/v2"

	"socialpulse/internal/service"
	"socialpulse/internal/transfer"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) Hashtags(c *fiber.Ctx) error {
	userID := GetUserID(c)

	analysis, err := h.s.Hashtags(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to analyze hashtags",
		})
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}

func (h *AnalyticsHandler) PredictEngagement(c *fiber.Ctx) error {
	var req transfer.PredictEngagementRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Unable to parse json",
		})
	}

	prediction, err := h.s.PredictEngagement(req.Content, req.Platform)
	if err != nil {
		return serviceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(prediction)
}

func (h *AnalyticsHandler) AudienceInsights(c *fiber.Ctx) error {
	userID := GetUserID(c)

	insights, err := h.s.AudienceInsights(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to analyze audience",
		})
	}

	return c.Status(fiber.StatusOK).JSON(insights)
}

func (h *AnalyticsHandler) CompetitorAnalysis(c *fiber.Ctx) error {
	userID := GetUserID(c)
	industry := c.Query("industry", "technology")

	analysis, err := h.s.CompetitorAnalysis(c.Context(), userID, industry)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to run competitor analysis",
		})
	}

	return c.Status(fiber.StatusOK).JSON(analysis)
}

func (h *AnalyticsHandler) ContentCalendar(c *fiber.Ctx) error {
	userID := GetUserID(c)

	calendar, err := h.s.ContentCalendar(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to build content calendar",
		})
	}

	return c.Status(fiber.StatusOK).JSON(calendar)
}

func (h *AnalyticsHandler) Anomalies(c *fiber.Ctx) error {
	userID := GetUserID(c)

	report, err := h.s.Anomalies(c.Context(), userID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to detect anomalies",
		})
	}

	return c.Status(fiber.StatusOK).JSON(report)
}

func (h *AnalyticsHandler) Forecast(c *fiber.Ctx) error {
	userID := GetUserID(c)
	months := c.QueryInt("months", 3)

	forecast, err := h.s.Forecast(c.Context(), userID, months)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Unable to forecast growth",
		})
	}

	return c.Status(fiber.StatusOK).JSON(forecast)
}
