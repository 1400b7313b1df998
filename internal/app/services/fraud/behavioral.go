package fraud

import (
	"fmt"

	"onboarding-service/internal/app/models"
)

// analysis is one analyzer's contribution before aggregation. Scores are
// derived from the factor severities after reweighting.
type analysis struct {
	Confidence float64
	Factors    []models.FraudRiskFactor

	// MachinePaced marks a session answered faster than a human reads,
	// with no behavioral metadata to account for it.
	MachinePaced bool
}

const (
	excessiveRevisionRate  = 0.30
	excessiveRevisionCount = 3
	hesitationPerQuestion  = 2

	// machinePacedMs is the mean response time below which an entirely
	// unobserved session is treated as machine-paced.
	machinePacedMs = 500
)

// analyzeBehavioral inspects completion speed, revision churn and
// attention signals over the full response list.
func analyzeBehavioral(responses []models.Response, t Thresholds) analysis {
	a := analysis{}
	n := len(responses)
	if n == 0 {
		return a
	}

	var totalMs int64
	withMeta := 0
	heavyRevisions := 0
	lowAttention := 0
	for _, r := range responses {
		totalMs += r.ResponseTimeMs
		if r.Metadata != nil {
			withMeta++
			if (r.Metadata.ReadTimeMs > 0 && r.Metadata.ReadTimeMs < int64(t.AttentionFloorMs)) ||
				r.Metadata.HesitationMarkers > hesitationPerQuestion {
				lowAttention++
			}
		}
		if r.RevisionCount > excessiveRevisionCount {
			heavyRevisions++
		}
	}

	meanMs := float64(totalMs) / float64(n)
	a.MachinePaced = withMeta == 0 && meanMs < machinePacedMs
	if meanMs < t.ResponseTimeFloorMs {
		severity := 30 + 30*(t.ResponseTimeFloorMs-meanMs)/t.ResponseTimeFloorMs
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "abnormally_fast_completion",
			Category: models.FraudCategoryBehavioral,
			Severity: severity,
			Evidence: fmt.Sprintf("mean response time %.0fms below floor %.0fms", meanMs, t.ResponseTimeFloorMs),
		})
	}

	if rate := float64(heavyRevisions) / float64(n); rate > excessiveRevisionRate {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "excessive_revisions",
			Category: models.FraudCategoryBehavioral,
			Severity: 25,
			Evidence: fmt.Sprintf("%.0f%% of responses revised more than %d times", rate*100, excessiveRevisionCount),
		})
	}

	if lowAttention > 0 {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "low_attention_signals",
			Category: models.FraudCategoryBehavioral,
			Severity: 10 + 5*float64(lowAttention),
			Evidence: fmt.Sprintf("%d responses with sub-floor read time or excessive hesitation", lowAttention),
		})
	}

	// No behavioral metadata at all on a full session is itself anomalous.
	if withMeta == 0 && n >= 3 {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "missing_behavioral_metadata",
			Category: models.FraudCategoryBehavioral,
			Severity: 20,
			Evidence: "no response carried behavioral metadata",
		})
	}

	// Confidence scales with sample size and metadata completeness.
	sample := float64(n) / 10
	if sample > 1 {
		sample = 1
	}
	completeness := 0.5 + 0.5*float64(withMeta)/float64(n)
	a.Confidence = sample * completeness
	return a
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
