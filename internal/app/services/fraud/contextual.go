package fraud

import (
	"fmt"
	"math"

	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
)

// analyzeContextual folds in what is known about the respondent and the
// pathway: prior fraud history, trust, motivation and declared
// validation-pair consistency.
func analyzeContextual(responses []models.Response, user models.UserFraudContext, pathway models.PathwayFraudContext, t Thresholds) analysis {
	a := analysis{}

	if user.PriorFraudAttempts > 0 {
		severity := math.Min(float64(user.PriorFraudAttempts)*15, 45)
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "prior_fraud_attempts",
			Category: models.FraudCategoryContextual,
			Severity: severity,
			Evidence: fmt.Sprintf("%d prior fraud attempts on record", user.PriorFraudAttempts),
		})
	}

	if user.TrustScore < 0.5 {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "low_trust_score",
			Category: models.FraudCategoryContextual,
			Severity: (0.5 - user.TrustScore) * 40,
			Evidence: fmt.Sprintf("trust score %.2f", user.TrustScore),
		})
	}

	if user.MotivationScore < 0.4 && pathway.Pathway == models.PathwayOnboarding {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "low_motivation_onboarding",
			Category: models.FraudCategoryContextual,
			Severity: 15,
			Evidence: fmt.Sprintf("motivation %.2f on an onboarding pathway", user.MotivationScore),
		})
	}

	if user.DemographicRiskScore > 0 {
		a.Factors = append(a.Factors, models.FraudRiskFactor{
			Name:     "demographic_risk",
			Category: models.FraudCategoryContextual,
			Severity: clamp(user.DemographicRiskScore*20, 0, 20),
			Evidence: fmt.Sprintf("demographic risk score %.2f", user.DemographicRiskScore),
		})
	}

	for _, pair := range pathway.ValidationPairs {
		if mismatched(responses, pair, t.InconsistencyTolerance) {
			a.Factors = append(a.Factors, models.FraudRiskFactor{
				Name:     "validation_pair_mismatch",
				Category: models.FraudCategoryContextual,
				Severity: 20,
				Evidence: fmt.Sprintf("answers to %s and %s are inconsistent", pair.QuestionA, pair.QuestionB),
			})
		}
	}

	// Context signals arrive with the session; confidence grows only with
	// the richness of the supplied profile.
	a.Confidence = 0.5
	if user.TrustScore > 0 || user.PriorFraudAttempts > 0 {
		a.Confidence = 0.8
	}
	return a
}

// mismatched reports whether the two declared paired answers diverge by
// more than the tolerated fraction.
func mismatched(responses []models.Response, pair models.ValidationPair, tolerance float64) bool {
	a, okA := find(responses, pair.QuestionA)
	b, okB := find(responses, pair.QuestionB)
	if !okA || !okB {
		return false
	}
	if a.Value.Kind != catalog.ValueKindNumber || b.Value.Kind != catalog.ValueKindNumber {
		return !a.Value.Equal(b.Value)
	}
	max := math.Max(math.Abs(a.Value.Number), math.Abs(b.Value.Number))
	if max == 0 {
		return false
	}
	return math.Abs(a.Value.Number-b.Value.Number)/max > tolerance
}

func find(responses []models.Response, questionID string) (*models.Response, bool) {
	for i := range responses {
		if responses[i].QuestionID == questionID {
			return &responses[i], true
		}
	}
	return nil, false
}
