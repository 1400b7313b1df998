package fraud

import "onboarding-service/internal/app/models"

// Monitoring cadence escalates automatically as the risk score crosses
// the 40 and 60 marks.
const (
	perQuestionRisk = 40
	continuousRisk  = 60

	// perSectionInterval bounds how many responses may pass between
	// evaluations on the lowest cadence.
	perSectionInterval = 5
)

func cadenceFor(score float64) models.MonitoringCadence {
	switch {
	case score >= continuousRisk:
		return models.CadenceContinuous
	case score >= perQuestionRisk:
		return models.CadencePerQuestion
	default:
		return models.CadencePerSection
	}
}

// ShouldEvaluate decides whether the detector reruns for this submission,
// based on the cadence chosen at the previous evaluation. sectionBoundary
// is true when the current domain just completed.
func ShouldEvaluate(prev *models.FraudAnalysis, responseCount int, sectionBoundary bool) bool {
	if prev == nil || prev.EvaluatedAtCount == 0 {
		return true
	}
	switch prev.Cadence {
	case models.CadenceContinuous, models.CadencePerQuestion:
		return true
	default:
		if sectionBoundary {
			return true
		}
		return responseCount-prev.EvaluatedAtCount >= perSectionInterval
	}
}
