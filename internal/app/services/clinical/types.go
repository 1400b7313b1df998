package clinical

import (
	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
)

type Severity string

const (
	SeverityMinimal  Severity = "minimal"
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
	SeverityCritical Severity = "critical"
)

type EvidenceGrade string

const (
	GradeA      EvidenceGrade = "A"
	GradeB      EvidenceGrade = "B"
	GradeC      EvidenceGrade = "C"
	GradeExpert EvidenceGrade = "Expert"
)

// RecommendedAction is one entry of the static severity-to-action lookup.
type RecommendedAction struct {
	Action              string        `json:"action"`
	Evidence            EvidenceGrade `json:"evidence_grade"`
	Priority            int           `json:"priority"`
	TimeToInterventionH int           `json:"time_to_intervention_hours"`
}

// Decision is the pure scoring outcome for one instrument.
type Decision struct {
	Instrument catalog.Instrument        `json:"instrument"`
	Total      int                       `json:"total"`
	Severity   Severity                  `json:"severity"`
	Confidence int                       `json:"confidence"`
	Partial    bool                      `json:"partial"`
	ICD10Codes []string                  `json:"icd10_codes"`
	Actions    []RecommendedAction       `json:"actions"`
	Emergency  *models.EmergencyProtocol `json:"emergency,omitempty"`
}
