package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"hiring-intel/internal/models"
	"hiring-intel/internal/repositories"
	"hiring-intel/internal/services"
)

type RiskHandler struct {
	analyzer services.RiskAnalyzerService
}

func NewRiskHandler(analyzer services.RiskAnalyzerService) *RiskHandler {
	return &RiskHandler{analyzer: analyzer}
}

// HandleAnalyzeRisk handles POST /analyze-risk. An unknown interview,
// candidate, or application maps to 404; any other failure is a 500.
func (h *RiskHandler) HandleAnalyzeRisk(c *fiber.Ctx) error {
	var req models.AnalyzeRiskRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}

	if req.InterviewID == "" || req.CandidateID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields: interview_id, candidate_id",
		})
	}

	interviewID, err := uuid.Parse(req.InterviewID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid interview_id format",
		})
	}

	candidateID, err := uuid.Parse(req.CandidateID)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid candidate_id format",
		})
	}

	result, err := h.analyzer.AnalyzeRisk(c.UserContext(), interviewID, candidateID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"success": false,
				"error":   err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   "Failed to analyze risk",
		})
	}

	return c.JSON(result)
}
