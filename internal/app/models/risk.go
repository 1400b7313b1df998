package models

type RiskLevel string

const (
	RiskLevelLow      RiskLevel = "low"
	RiskLevelModerate RiskLevel = "moderate"
	RiskLevelHigh     RiskLevel = "high"
	RiskLevelCritical RiskLevel = "critical"
)

const (
	FlagSuicideRisk     = "suicide_risk"
	FlagSevereSymptoms  = "severe_symptoms"
	FlagModerateSymptoms = "moderate_symptoms"
	FlagPoorWellbeing   = "poor_wellbeing"
	FlagLikelyDepression = "likely_depression"
)

// RiskAssessment accumulates clinical risk over the session. It is
// recomputed incrementally and never rolled back: flags are only added.
type RiskAssessment struct {
	DomainScores    map[string]int `json:"domain_scores" bson:"domainScores"`
	OverallLevel    RiskLevel      `json:"overall_risk_level" bson:"overallRiskLevel"`
	Flags           []string       `json:"flags" bson:"flags"`
	Recommendations []string       `json:"recommendations" bson:"recommendations"`
	ICD10Codes      []string       `json:"icd10_codes" bson:"icd10Codes"`
	Confidence      int            `json:"confidence" bson:"confidence"`
}

func NewRiskAssessment() *RiskAssessment {
	return &RiskAssessment{
		DomainScores:    make(map[string]int),
		OverallLevel:    RiskLevelLow,
		Flags:           []string{},
		Recommendations: []string{},
		ICD10Codes:      []string{},
	}
}

// AddFlag records a qualitative flag exactly once.
func (r *RiskAssessment) AddFlag(flag string) {
	for _, f := range r.Flags {
		if f == flag {
			return
		}
	}
	r.Flags = append(r.Flags, flag)
}

func (r *RiskAssessment) HasFlag(flag string) bool {
	for _, f := range r.Flags {
		if f == flag {
			return true
		}
	}
	return false
}

// AddICD10 records a diagnostic code exactly once.
func (r *RiskAssessment) AddICD10(code string) {
	for _, c := range r.ICD10Codes {
		if c == code {
			return
		}
	}
	r.ICD10Codes = append(r.ICD10Codes, code)
}

// Escalate raises the overall level; it never lowers it.
func (r *RiskAssessment) Escalate(level RiskLevel) {
	if riskRank(level) > riskRank(r.OverallLevel) {
		r.OverallLevel = level
	}
}

func riskRank(l RiskLevel) int {
	switch l {
	case RiskLevelCritical:
		return 3
	case RiskLevelHigh:
		return 2
	case RiskLevelModerate:
		return 1
	default:
		return 0
	}
}
