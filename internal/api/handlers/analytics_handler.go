package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/maheshrc27/shutterpost/internal/service"
)

type AnalyticsHandler struct {
	s service.AnalyticsService
}

func NewAnalyticsHandler(service service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{s: service}
}

func (h *AnalyticsHandler) GetAnalytics(c *fiber.Ctx) error {
	a, err := h.s.Summary(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(a)
}
