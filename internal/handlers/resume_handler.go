package handlers

import (
	"github.com/gofiber/fiber/v2"

	"hiring-intel/internal/models"
	"hiring-intel/internal/services"
)

type ResumeHandler struct {
	ranker services.RankerService
}

func NewResumeHandler(ranker services.RankerService) *ResumeHandler {
	return &ResumeHandler{ranker: ranker}
}

// HandleProcessResume handles POST /process-resume. Processing failures are
// reported inside a 200 response with success=false; only a malformed
// request is a 400.
func (h *ResumeHandler) HandleProcessResume(c *fiber.Ctx) error {
	var req models.ProcessResumeRequest

	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Invalid request payload",
		})
	}

	if req.ApplicationID == "" || req.ResumeURL == "" || req.JobDescription == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"success": false,
			"error":   "Missing required fields: application_id, resume_url, job_description",
		})
	}

	result := h.ranker.ProcessApplication(c.UserContext(), req.ApplicationID, req.ResumeURL, req.JobDescription)

	return c.JSON(result)
}
