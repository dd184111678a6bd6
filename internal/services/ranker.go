package services

import (
	"context"
	"errors"
	"math"
	"strings"

	"hiring-intel/internal/logger"
	"hiring-intel/internal/models"
)

// FitWeights are the fixed coefficients combining the fit sub-scores.
// They must sum to 1.0 and are never mutated after construction.
type FitWeights struct {
	Similarity float64
	Experience float64
	Projects   float64
	Skills     float64
	Education  float64
}

var DefaultFitWeights = FitWeights{
	Similarity: 0.40,
	Experience: 0.25,
	Projects:   0.20,
	Skills:     0.10,
	Education:  0.05,
}

// Sum returns the total of the weight coefficients.
func (w FitWeights) Sum() float64 {
	return w.Similarity + w.Experience + w.Projects + w.Skills + w.Education
}

// Saturation points for normalizing raw features into [0,1].
const (
	experienceSaturationYears = 10.0
	projectSaturationCount    = 15.0
	skillSaturationCount      = 10.0
	educationMaxScore         = 5.0
)

// minResumeLength is the minimum usable resume text length; anything
// shorter fails processing outright.
const minResumeLength = 50

type RankerService interface {
	// ProcessApplication fetches the resume, extracts features, generates a
	// summary, and computes the fit score against the job description.
	// Failures are reported inside the response (success=false, zeroed
	// values), never as an error.
	ProcessApplication(ctx context.Context, applicationID, resumeURL, jobDescription string) *models.ProcessResumeResponse
}

type rankerService struct {
	fetcher          ResumeFetcher
	weights          FitWeights
	summaryMaxLength int
}

func NewRankerService(fetcher ResumeFetcher, summaryMaxLength int) RankerService {
	return &rankerService{
		fetcher:          fetcher,
		weights:          DefaultFitWeights,
		summaryMaxLength: summaryMaxLength,
	}
}

// ProcessApplication implements RankerService.
func (s *rankerService) ProcessApplication(ctx context.Context, applicationID, resumeURL, jobDescription string) *models.ProcessResumeResponse {
	resumeText, err := s.fetcher.Fetch(ctx, resumeURL)
	if err != nil {
		logger.Error().Err(err).Str("application_id", applicationID).Msg("failed to retrieve resume")
		return failedResumeResponse(err)
	}

	if len(strings.TrimSpace(resumeText)) < minResumeLength {
		err := errors.New("resume text is empty or too short")
		logger.Warn().Str("application_id", applicationID).Msg(err.Error())
		return failedResumeResponse(err)
	}

	features := ExtractFeatures(resumeText)
	summary := Summarize(resumeText, s.summaryMaxLength)
	fitScore := s.computeFitScore(resumeText, jobDescription, features)

	logger.Info().
		Str("application_id", applicationID).
		Float64("fit_score", fitScore).
		Int("skills", len(features.Skills)).
		Msg("resume processed")

	return &models.ProcessResumeResponse{
		Success:           true,
		FitScore:          fitScore,
		Summary:           summary,
		ExtractedFeatures: features,
	}
}

// computeFitScore normalizes each extracted feature into [0,1], applies the
// fixed weights, and scales to [0,100] rounded to 2 decimals. Every
// sub-score is clamped before weighting so an unexpected upstream value can
// never push the total out of range.
func (s *rankerService) computeFitScore(resumeText, jobDescription string, features models.ExtractedFeatures) float64 {
	similarityScore := clamp01(DocumentSimilarity(resumeText, jobDescription))
	experienceScore := clamp01(float64(features.YearsExperience) / experienceSaturationYears)
	projectScore := clamp01(float64(features.ProjectCount) / projectSaturationCount)
	skillsScore := clamp01(float64(len(features.Skills)) / skillSaturationCount)
	educationScore := clamp01(float64(features.EducationScore) / educationMaxScore)

	fitScore := similarityScore*s.weights.Similarity +
		experienceScore*s.weights.Experience +
		projectScore*s.weights.Projects +
		skillsScore*s.weights.Skills +
		educationScore*s.weights.Education

	return round2(fitScore * 100)
}

func failedResumeResponse(err error) *models.ProcessResumeResponse {
	return &models.ProcessResumeResponse{
		Success:  false,
		FitScore: 0.0,
		Summary:  "",
		ExtractedFeatures: models.ExtractedFeatures{
			Skills:          []string{},
			YearsExperience: 0,
			ProjectCount:    0,
			EducationScore:  0,
		},
		Error: err.Error(),
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
