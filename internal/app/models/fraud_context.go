package models

type Pathway string

const (
	PathwayOnboarding Pathway = "onboarding"
	PathwayPeriodic   Pathway = "periodic"
	PathwayEmergency  Pathway = "emergency"
	PathwayClinical   Pathway = "clinical"
)

type QuestionnaireMode string

const (
	ModeClinical QuestionnaireMode = "clinical"
	ModeEnhanced QuestionnaireMode = "enhanced"
)

// UserFraudContext is the caller-supplied risk profile and history for the
// respondent.
type UserFraudContext struct {
	FirstTimeUser        bool    `json:"first_time_user" bson:"firstTimeUser"`
	TrustScore           float64 `json:"trust_score" bson:"trustScore"`
	PriorFraudAttempts   int     `json:"prior_fraud_attempts" bson:"priorFraudAttempts"`
	MotivationScore      float64 `json:"motivation_score" bson:"motivationScore"`
	DemographicRiskScore float64 `json:"demographic_risk_score" bson:"demographicRiskScore"`
	BaselineResponseMs   int64   `json:"baseline_response_ms,omitempty" bson:"baselineResponseMs,omitempty"`
}

// ValidationPair declares two questions whose answers are expected to be
// consistent with each other.
type ValidationPair struct {
	QuestionA string `json:"question_a" bson:"questionA"`
	QuestionB string `json:"question_b" bson:"questionB"`
}

// PathwayFraudContext describes the questionnaire pathway being taken and
// its expectations.
type PathwayFraudContext struct {
	Pathway            Pathway           `json:"pathway" bson:"pathway"`
	Mode               QuestionnaireMode `json:"mode" bson:"mode"`
	ExpectedDurationMs int64             `json:"expected_duration_ms" bson:"expectedDurationMs"`
	ValidationPairs    []ValidationPair  `json:"validation_pairs,omitempty" bson:"validationPairs,omitempty"`
	DiagnosticGrade    bool              `json:"diagnostic_grade" bson:"diagnosticGrade"`
}
