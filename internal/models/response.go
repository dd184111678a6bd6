package models

type ProcessResumeRequest struct {
	ApplicationID  string `json:"application_id"`
	ResumeURL      string `json:"resume_url"`
	JobDescription string `json:"job_description"`
}

type ExtractedFeatures struct {
	Skills          []string `json:"skills"`
	YearsExperience int      `json:"years_experience"`
	ProjectCount    int      `json:"project_count"`
	EducationScore  int      `json:"education_score"`
}

type ProcessResumeResponse struct {
	Success           bool              `json:"success"`
	FitScore          float64           `json:"fit_score"`
	Summary           string            `json:"summary"`
	ExtractedFeatures ExtractedFeatures `json:"extracted_features"`
	Error             string            `json:"error,omitempty"`
}

type AnalyzeRiskRequest struct {
	InterviewID string `json:"interview_id"`
	CandidateID string `json:"candidate_id"`
}

type RiskFactorReport struct {
	ResponseTimeHours     float64 `json:"response_time_hours"`
	NegotiationRounds     int     `json:"negotiation_rounds"`
	ProfileCompleteness   float64 `json:"profile_completeness"`
	HistoricalReliability float64 `json:"historical_reliability"`
}

type AnalyzeRiskResponse struct {
	NoShowRisk float64          `json:"no_show_risk"`
	RiskLevel  string           `json:"risk_level"`
	Factors    RiskFactorReport `json:"factors"`
}
