package models

type FraudRecommendation string

const (
	FraudAccept           FraudRecommendation = "accept"
	FraudFlag             FraudRecommendation = "flag"
	FraudEscalate         FraudRecommendation = "escalate"
	FraudTerminate        FraudRecommendation = "terminate"
	FraudAdaptiveResponse FraudRecommendation = "adaptive_response"
)

type FraudCategory string

const (
	FraudCategoryBehavioral FraudCategory = "behavioral"
	FraudCategoryTechnical  FraudCategory = "technical"
	FraudCategoryContextual FraudCategory = "contextual"
)

// FraudRiskFactor is one named, evidenced signal contributing to the
// aggregate score.
type FraudRiskFactor struct {
	Name     string        `json:"name" bson:"name"`
	Category FraudCategory `json:"category" bson:"category"`
	Severity float64       `json:"severity" bson:"severity"`
	Evidence string        `json:"evidence" bson:"evidence"`
}

// MonitoringCadence controls how often fraud analysis reruns.
type MonitoringCadence string

const (
	CadencePerSection  MonitoringCadence = "per_section"
	CadencePerQuestion MonitoringCadence = "per_question"
	CadenceContinuous  MonitoringCadence = "continuous"
)

// ThresholdAdjustment records one adaptive-threshold change and why it was
// made.
type ThresholdAdjustment struct {
	Parameter     string  `json:"parameter" bson:"parameter"`
	From          float64 `json:"from" bson:"from"`
	To            float64 `json:"to" bson:"to"`
	Justification string  `json:"justification" bson:"justification"`
}

// FraudAnalysis is the aggregated fraud verdict over the session so far.
type FraudAnalysis struct {
	OverallRiskScore float64               `json:"overall_risk_score" bson:"overallRiskScore"`
	Confidence       float64               `json:"confidence" bson:"confidence"`
	RiskFactors      []FraudRiskFactor     `json:"risk_factors" bson:"riskFactors"`
	Recommendation   FraudRecommendation   `json:"recommendation" bson:"recommendation"`
	Interventions    []string              `json:"interventions" bson:"interventions"`
	Adjustments      []ThresholdAdjustment `json:"threshold_adjustments,omitempty" bson:"thresholdAdjustments,omitempty"`
	Cadence          MonitoringCadence     `json:"monitoring_cadence" bson:"monitoringCadence"`
	EvaluatedAtCount int                   `json:"evaluated_at_count" bson:"evaluatedAtCount"`
}

func NewFraudAnalysis() *FraudAnalysis {
	return &FraudAnalysis{
		Recommendation: FraudAccept,
		RiskFactors:    []FraudRiskFactor{},
		Interventions:  []string{},
		Cadence:        CadencePerSection,
	}
}
