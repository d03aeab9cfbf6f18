package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/swapitsneil/ai-job-tracker/internal/models"
	"github.com/swapitsneil/ai-job-tracker/internal/services"
)

// InsightHandler exposes the analyzer reports. The advisor is optional;
// when it is absent the advice route reports the feature as unavailable.
type InsightHandler struct {
	insightService services.InsightService
	advisorService services.AdvisorService
}

func NewInsightHandler(
	insightService services.InsightService,
	advisorService services.AdvisorService,
) *InsightHandler {
	return &InsightHandler{
		insightService: insightService,
		advisorService: advisorService,
	}
}

// HandleSourceInsights handles GET /insights/sources
func (h *InsightHandler) HandleSourceInsights(c *fiber.Ctx) error {
	report, err := h.insightService.SourceRejection(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute source insights",
		})
	}

	return c.JSON(report)
}

// HandleResumeInsights handles GET /insights/resumes
func (h *InsightHandler) HandleResumeInsights(c *fiber.Ctx) error {
	report, err := h.insightService.ResumePerformance(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute resume insights",
		})
	}

	return c.JSON(report)
}

// HandleResponseTimeInsights handles GET /insights/response-times
func (h *InsightHandler) HandleResponseTimeInsights(c *fiber.Ctx) error {
	report, err := h.insightService.ResponseTime(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute response time insights",
		})
	}

	return c.JSON(report)
}

// HandleComprehensiveInsights handles GET /insights
func (h *InsightHandler) HandleComprehensiveInsights(c *fiber.Ctx) error {
	report, err := h.insightService.Comprehensive(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute insights",
		})
	}

	return c.JSON(report)
}

// HandleAdvice handles GET /insights/advice
func (h *InsightHandler) HandleAdvice(c *fiber.Ctx) error {
	if h.advisorService == nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": "Advice is unavailable: GEMINI_API_KEY is not configured",
		})
	}

	report, err := h.insightService.Comprehensive(c.UserContext())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to compute insights",
		})
	}

	advice, err := h.advisorService.Advise(c.UserContext(), report)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Failed to generate advice",
		})
	}

	return c.JSON(models.AdviceResponse{Advice: advice})
}
