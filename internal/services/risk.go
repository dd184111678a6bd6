package services

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"hiring-intel/internal/logger"
	"hiring-intel/internal/models"
	"hiring-intel/internal/repositories"
)

// RiskWeights are the fixed coefficients combining the four risk factors.
// They must sum to 1.0 and are never mutated after construction.
type RiskWeights struct {
	ResponseTime float64
	Negotiation  float64
	Profile      float64
	Historical   float64
}

var DefaultRiskWeights = RiskWeights{
	ResponseTime: 0.30,
	Negotiation:  0.25,
	Profile:      0.20,
	Historical:   0.25,
}

// Sum returns the total of the weight coefficients.
func (w RiskWeights) Sum() float64 {
	return w.ResponseTime + w.Negotiation + w.Profile + w.Historical
}

// FactorScore is one risk contribution in [0,1], 0 meaning reliable. When a
// calculator could not compute from records it carries the documented
// default and Fallback names why, so degraded inputs stay visible instead
// of hiding inside a catch block.
type FactorScore struct {
	Score    float64
	Fallback string
}

// Risk level bands over the combined score, half-open.
const (
	RiskLevelLow    = "low"
	RiskLevelMedium = "medium"
	RiskLevelHigh   = "high"

	mediumRiskThreshold = 0.3
	highRiskThreshold   = 0.7
)

// Documented fallback defaults.
const (
	unknownResponseRisk   = 0.5 // invitation unanswered or timestamps missing
	noNegotiationRisk     = 0.1 // negotiation never needed
	noHistoryRisk         = 0.5 // no terminal interviews on record
	meaningfulFieldLength = 10  // application fields shorter than this are placeholders
	profileFieldCount     = 6.0
)

type RiskAnalyzerService interface {
	// AnalyzeRisk scores the no-show risk for an interview/candidate pair.
	// A missing interview, candidate, or application surfaces as
	// repositories.ErrNotFound.
	AnalyzeRisk(ctx context.Context, interviewID, candidateID uuid.UUID) (*models.AnalyzeRiskResponse, error)
}

type riskAnalyzerService struct {
	interviews   repositories.InterviewRepository
	candidates   repositories.CandidateRepository
	applications repositories.ApplicationRepository
	negotiations repositories.NegotiationRepository
	weights      RiskWeights
}

func NewRiskAnalyzerService(
	interviews repositories.InterviewRepository,
	candidates repositories.CandidateRepository,
	applications repositories.ApplicationRepository,
	negotiations repositories.NegotiationRepository,
) RiskAnalyzerService {
	return &riskAnalyzerService{
		interviews:   interviews,
		candidates:   candidates,
		applications: applications,
		negotiations: negotiations,
		weights:      DefaultRiskWeights,
	}
}

// AnalyzeRisk implements RiskAnalyzerService.
func (s *riskAnalyzerService) AnalyzeRisk(ctx context.Context, interviewID, candidateID uuid.UUID) (*models.AnalyzeRiskResponse, error) {
	interview, err := s.interviews.FindByID(ctx, interviewID)
	if err != nil {
		return nil, err
	}

	candidate, err := s.candidates.FindByID(ctx, candidateID)
	if err != nil {
		return nil, err
	}

	application, err := s.applications.FindByID(ctx, interview.ApplicationID)
	if err != nil {
		return nil, err
	}

	responseRisk := ResponseTimeRisk(interview)
	negotiationRisk := s.negotiationRisk(ctx, interviewID)
	profileRisk := ProfileCompletenessRisk(candidate, application)
	historicalRisk := s.historicalRisk(ctx, candidateID, interviewID)

	for _, factor := range []FactorScore{responseRisk, negotiationRisk, profileRisk, historicalRisk} {
		if factor.Fallback != "" {
			logger.Debug().
				Str("interview_id", interviewID.String()).
				Str("fallback", factor.Fallback).
				Msg("risk factor used default")
		}
	}

	totalRisk := round2(
		responseRisk.Score*s.weights.ResponseTime +
			negotiationRisk.Score*s.weights.Negotiation +
			profileRisk.Score*s.weights.Profile +
			historicalRisk.Score*s.weights.Historical,
	)

	return &models.AnalyzeRiskResponse{
		NoShowRisk: totalRisk,
		RiskLevel:  CategorizeRisk(totalRisk),
		Factors: models.RiskFactorReport{
			ResponseTimeHours:     ResponseTimeHours(interview),
			NegotiationRounds:     NegotiationRoundsFromRisk(negotiationRisk.Score),
			ProfileCompleteness:   round2(1 - profileRisk.Score),
			HistoricalReliability: round2(1 - historicalRisk.Score),
		},
	}, nil
}

// ResponseTimeRisk scores how slowly the candidate responded to the
// interview invitation. An unanswered invitation or a missing timestamp is
// ambiguous and scores the neutral default; otherwise the elapsed hours
// between creation and last update fall into a monotonic step function.
func ResponseTimeRisk(interview *models.Interview) FactorScore {
	if interview.Status == models.StatusInvitationSent {
		return FactorScore{Score: unknownResponseRisk, Fallback: "invitation not yet answered"}
	}
	if interview.CreatedAt.IsZero() || interview.UpdatedAt.IsZero() {
		return FactorScore{Score: unknownResponseRisk, Fallback: "missing timestamps"}
	}

	hours := interview.UpdatedAt.Sub(interview.CreatedAt).Hours()
	switch {
	case hours < 6:
		return FactorScore{Score: 0.1}
	case hours < 24:
		return FactorScore{Score: 0.3}
	case hours < 48:
		return FactorScore{Score: 0.7}
	default:
		return FactorScore{Score: 0.9}
	}
}

// negotiationRisk scores slot-negotiation complexity from the most recent
// session's round count. More rounds means a harder-to-pin-down candidate.
func (s *riskAnalyzerService) negotiationRisk(ctx context.Context, interviewID uuid.UUID) FactorScore {
	session, err := s.negotiations.FindLatestByInterview(ctx, interviewID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return FactorScore{Score: noNegotiationRisk, Fallback: "no negotiation session"}
		}
		logger.Warn().Err(err).Str("interview_id", interviewID.String()).Msg("negotiation lookup failed")
		return FactorScore{Score: noNegotiationRisk, Fallback: "negotiation lookup failed"}
	}

	return FactorScore{Score: NegotiationRoundRisk(session.Round)}
}

// NegotiationRoundRisk maps a round count onto its risk band.
func NegotiationRoundRisk(rounds int) float64 {
	switch rounds {
	case 1:
		return 0.2
	case 2:
		return 0.5
	default:
		return 0.8
	}
}

// ProfileCompletenessRisk scores how much of the candidate's profile and
// application is meaningfully filled in: name, email, and phone count when
// non-empty; cover letter, address, and resume reference must exceed a
// minimum length to filter out placeholder values.
func ProfileCompletenessRisk(candidate *models.Candidate, application *models.Application) FactorScore {
	filled := 0

	for _, field := range []*string{candidate.Name, candidate.Email, candidate.Phone} {
		if field != nil && len(*field) > 0 {
			filled++
		}
	}

	for _, field := range []*string{application.CoverLetter, application.Address, application.ResumeURL} {
		if field != nil && len(*field) > meaningfulFieldLength {
			filled++
		}
	}

	return FactorScore{Score: 1 - float64(filled)/profileFieldCount}
}

// historicalRisk scores the candidate's track record over past interviews
// that reached a terminal state.
func (s *riskAnalyzerService) historicalRisk(ctx context.Context, candidateID, interviewID uuid.UUID) FactorScore {
	history, err := s.interviews.FindTerminalByCandidate(ctx, candidateID, interviewID)
	if err != nil {
		logger.Warn().Err(err).Str("candidate_id", candidateID.String()).Msg("history lookup failed")
		return FactorScore{Score: noHistoryRisk, Fallback: "history lookup failed"}
	}
	if len(history) == 0 {
		return FactorScore{Score: noHistoryRisk, Fallback: "no interview history"}
	}

	return FactorScore{Score: HistoricalRisk(history)}
}

// HistoricalRisk combines the no-show rate and completion rate of past
// terminal interviews. The two rates are computed independently over the
// same set, so their contributions can overlap; the sum is clamped at 1.0
// rather than assumed to stay in range.
func HistoricalRisk(history []models.Interview) float64 {
	total := float64(len(history))

	var noShows, completed float64
	for _, past := range history {
		switch past.Status {
		case models.StatusNoShow:
			noShows++
		case models.StatusCompleted:
			completed++
		}
	}

	noShowRate := noShows / total
	completionRate := completed / total

	risk := noShowRate + (1-completionRate)*0.5
	if risk > 1.0 {
		risk = 1.0
	}
	return risk
}

// CategorizeRisk buckets a combined risk score into its level. Bands are
// half-open: [0,0.3) low, [0.3,0.7) medium, [0.7,1] high.
func CategorizeRisk(risk float64) string {
	switch {
	case risk < mediumRiskThreshold:
		return RiskLevelLow
	case risk < highRiskThreshold:
		return RiskLevelMedium
	default:
		return RiskLevelHigh
	}
}

// ResponseTimeHours reports the elapsed response time for the factors
// payload. An unanswered invitation reports 0.0 regardless of wall-clock
// time.
func ResponseTimeHours(interview *models.Interview) float64 {
	if interview.Status == models.StatusInvitationSent {
		return 0.0
	}
	if interview.CreatedAt.IsZero() || interview.UpdatedAt.IsZero() {
		return 0.0
	}
	return round1(interview.UpdatedAt.Sub(interview.CreatedAt).Hours())
}

// NegotiationRoundsFromRisk backs an estimated round count out of the risk
// value via the same banding thresholds. Lossy on purpose: the report shows
// the band the score came from, not the stored count.
func NegotiationRoundsFromRisk(risk float64) int {
	switch {
	case risk <= 0.1:
		return 0
	case risk <= 0.2:
		return 1
	case risk <= 0.5:
		return 2
	default:
		return 3
	}
}
