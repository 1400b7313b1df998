package models

import "onboarding-service/internal/app/services/catalog"

type FlowResultType string

const (
	FlowResultQuestion         FlowResultType = "question"
	FlowResultDomainTransition FlowResultType = "domain_transition"
	FlowResultEmergency        FlowResultType = "emergency"
	FlowResultComplete         FlowResultType = "complete"
)

// Progress describes how far through the questionnaire the session is.
type Progress struct {
	Answered       int `json:"answered"`
	TotalEstimated int `json:"total_estimated"`
	Percent        int `json:"percent"`
}

// CompletionResults is the combined terminal outcome of a session.
type CompletionResults struct {
	RiskLevel           RiskLevel      `json:"risk_level" bson:"riskLevel"`
	RiskScores          map[string]int `json:"risk_scores" bson:"riskScores"`
	Flags               []string       `json:"flags" bson:"flags"`
	Recommendations     []string       `json:"recommendations" bson:"recommendations"`
	NextSteps           []string       `json:"next_steps" bson:"nextSteps"`
	ICD10Codes          []string       `json:"icd10_codes" bson:"icd10Codes"`
	FraudDetectionScore float64        `json:"fraud_detection_score" bson:"fraudDetectionScore"`
	FraudRecommendation FraudRecommendation `json:"fraud_recommendation" bson:"fraudRecommendation"`
	Responses           []Response     `json:"responses" bson:"responses"`
}

// FlowResult is the orchestrator's answer to one submission. Exactly one
// payload field is populated, selected by Type.
type FlowResult struct {
	Type FlowResultType `json:"type"`

	Question      *catalog.Question `json:"question,omitempty"`
	CurrentDomain string            `json:"current_domain,omitempty"`
	Progress      *Progress         `json:"progress,omitempty"`
	// EstimatedTimeRemainingSec is a coarse estimate from unanswered count.
	EstimatedTimeRemainingSec int `json:"estimated_time_remaining_sec,omitempty"`

	TransitionDomain  string `json:"transition_domain,omitempty"`
	TransitionMessage string `json:"transition_message,omitempty"`

	Protocol *EmergencyProtocol `json:"protocol,omitempty"`

	Results *CompletionResults `json:"results,omitempty"`
}
