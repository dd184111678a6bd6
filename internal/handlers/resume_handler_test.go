package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hiring-intel/internal/models"
)

type stubRanker struct {
	response *models.ProcessResumeResponse
}

func (s *stubRanker) ProcessApplication(ctx context.Context, applicationID, resumeURL, jobDescription string) *models.ProcessResumeResponse {
	return s.response
}

func newResumeApp(ranker *stubRanker) *fiber.App {
	app := fiber.New()
	app.Post("/process-resume", NewResumeHandler(ranker).HandleProcessResume)
	return app
}

func postJSON(t *testing.T, app *fiber.App, path string, body any) *http.Response {
	t.Helper()

	payload, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp
}

func TestHandleProcessResumeSuccess(t *testing.T) {
	ranker := &stubRanker{response: &models.ProcessResumeResponse{
		Success:  true,
		FitScore: 76.67,
		Summary:  "Senior engineer with strong platform background",
		ExtractedFeatures: models.ExtractedFeatures{
			Skills:          []string{"Python", "Aws"},
			YearsExperience: 8,
			ProjectCount:    12,
			EducationScore:  4,
		},
	}}

	resp := postJSON(t, newResumeApp(ranker), "/process-resume", models.ProcessResumeRequest{
		ApplicationID:  "7b0f3a9e-9d4e-4c4b-8d6f-2f5a1f3f9e01",
		ResumeURL:      "https://cdn.example.com/resume.pdf",
		JobDescription: "Backend engineer role",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ProcessResumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.True(t, body.Success)
	assert.Equal(t, 76.67, body.FitScore)
	assert.Equal(t, []string{"Python", "Aws"}, body.ExtractedFeatures.Skills)
}

func TestHandleProcessResumeFailureStillOK(t *testing.T) {
	// Processing failures ride inside a 200 envelope with success=false.
	ranker := &stubRanker{response: &models.ProcessResumeResponse{
		Success:           false,
		FitScore:          0.0,
		ExtractedFeatures: models.ExtractedFeatures{Skills: []string{}},
		Error:             "resume text is empty or too short",
	}}

	resp := postJSON(t, newResumeApp(ranker), "/process-resume", models.ProcessResumeRequest{
		ApplicationID:  "7b0f3a9e-9d4e-4c4b-8d6f-2f5a1f3f9e01",
		ResumeURL:      "https://cdn.example.com/resume.pdf",
		JobDescription: "Backend engineer role",
	})
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body models.ProcessResumeResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Equal(t, 0.0, body.FitScore)
	assert.NotEmpty(t, body.Error)
}

func TestHandleProcessResumeMissingFields(t *testing.T) {
	resp := postJSON(t, newResumeApp(&stubRanker{}), "/process-resume", models.ProcessResumeRequest{
		ApplicationID: "7b0f3a9e-9d4e-4c4b-8d6f-2f5a1f3f9e01",
	})
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestHandleProcessResumeMalformedBody(t *testing.T) {
	app := newResumeApp(&stubRanker{})

	req := httptest.NewRequest(http.MethodPost, "/process-resume", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}
