package fraud

import "onboarding-service/internal/app/models"

// Detector runs the three independent analyzers over a session's response
// list and aggregates their output into a single fraud verdict. All state
// is per-call; one Detector is safe to share across sessions.
type Detector struct{}

func NewDetector() *Detector {
	return &Detector{}
}

// pathwayWeights combine analyzer scores per pathway context.
type pathwayWeights struct {
	Behavioral float64
	Technical  float64
	Contextual float64
	// Discount scales the aggregate after weighting.
	Discount float64
}

var weightsByPathway = map[models.Pathway]pathwayWeights{
	models.PathwayOnboarding: {Behavioral: 0.3, Technical: 0.5, Contextual: 0.2, Discount: 1},
	models.PathwayClinical:   {Behavioral: 0.6, Technical: 0.25, Contextual: 0.15, Discount: 1},
	models.PathwayPeriodic:   {Behavioral: 0.4, Technical: 0.35, Contextual: 0.25, Discount: 1},
	// Emergency pathways discount severity: distressed users look anomalous.
	models.PathwayEmergency: {Behavioral: 0.34, Technical: 0.33, Contextual: 0.33, Discount: 0.8},
}

// falsePositiveRate is the observed historical false-positive rate per
// risk factor; each factor's severity is discounted accordingly.
var falsePositiveRate = map[string]float64{
	"abnormally_fast_completion":   0.20,
	"excessive_revisions":          0.30,
	"low_attention_signals":        0.35,
	"missing_behavioral_metadata":  0.15,
	"multiple_device_fingerprints": 0.05,
	"timing_periodicity":           0.05,
	"missing_interaction_metadata": 0.10,
	"collinear_pointer_movement":   0.10,
	"prior_fraud_attempts":         0.02,
	"low_trust_score":              0.25,
	"low_motivation_onboarding":    0.40,
	"demographic_risk":             0.45,
	"validation_pair_mismatch":     0.15,
}

// Analyze produces the aggregated fraud analysis for the session so far.
func (d *Detector) Analyze(sess *models.Session) *models.FraudAnalysis {
	thresholds := ThresholdsFor(sess.UserContext, sess.PathwayContext)

	behavioral := analyzeBehavioral(sess.Responses, thresholds)
	technical := analyzeTechnical(sess.Responses)
	contextual := analyzeContextual(sess.Responses, sess.UserContext, sess.PathwayContext, thresholds)

	// Mode and false-positive reweighting happens before aggregation, so
	// the reported severities reconcile with the final score.
	mode := sess.PathwayContext.Mode
	behavioral.Factors = reweightFactors(mode, behavioral.Factors)
	technical.Factors = reweightFactors(mode, technical.Factors)
	contextual.Factors = reweightFactors(mode, contextual.Factors)

	w, ok := weightsByPathway[sess.PathwayContext.Pathway]
	if !ok {
		w = weightsByPathway[models.PathwayOnboarding]
	}

	score := analyzerScore(behavioral.Factors)*w.Behavioral +
		analyzerScore(technical.Factors)*w.Technical +
		analyzerScore(contextual.Factors)*w.Contextual
	score *= w.Discount

	// A machine-paced session that ships no behavioral metadata never
	// scores below the flag band, whatever the pathway weighting.
	if behavioral.MachinePaced && score < flagThreshold {
		score = flagThreshold
	}

	factors := append(append(behavioral.Factors, technical.Factors...), contextual.Factors...)

	confidence := behavioral.Confidence*w.Behavioral + technical.Confidence*w.Technical + contextual.Confidence*w.Contextual

	out := &models.FraudAnalysis{
		OverallRiskScore: clamp(score, 0, 100),
		Confidence:       clamp(confidence, 0, 1),
		RiskFactors:      factors,
		Adjustments:      thresholds.Adjustments,
		EvaluatedAtCount: len(sess.Responses),
	}
	out.Recommendation = recommend(out.OverallRiskScore, sess.PathwayContext.Pathway, sess.UserContext.TrustScore)
	out.Interventions = interventionsFor(out.Recommendation)
	out.Cadence = cadenceFor(out.OverallRiskScore)
	return out
}

// reweightFactors applies the questionnaire-mode weighting and each
// factor's historical false-positive discount.
func reweightFactors(mode models.QuestionnaireMode, factors []models.FraudRiskFactor) []models.FraudRiskFactor {
	modeWeight := 1.0
	switch mode {
	case models.ModeClinical:
		modeWeight = 0.9
	case models.ModeEnhanced:
		modeWeight = 1.1
	}
	out := make([]models.FraudRiskFactor, 0, len(factors))
	for _, f := range factors {
		f.Severity *= modeWeight * (1 - falsePositiveRate[f.Name])
		out = append(out, f)
	}
	return out
}

// analyzerScore sums one analyzer's reweighted severities, clamped to the
// shared 0-100 scale.
func analyzerScore(factors []models.FraudRiskFactor) float64 {
	sum := 0.0
	for _, f := range factors {
		sum += f.Severity
	}
	return clamp(sum, 0, 100)
}

const (
	terminateThreshold = 80
	escalateThreshold  = 60
	flagThreshold      = 40
	adaptiveThreshold  = 25

	highTrust = 0.7
)

// recommend bands the aggregate score, then applies pathway and trust
// adjustments: emergency pathways never terminate or escalate, and highly
// trusted users are not escalated.
func recommend(score float64, pathway models.Pathway, trust float64) models.FraudRecommendation {
	var rec models.FraudRecommendation
	switch {
	case score >= terminateThreshold:
		rec = models.FraudTerminate
	case score >= escalateThreshold:
		rec = models.FraudEscalate
	case score >= flagThreshold:
		rec = models.FraudFlag
	case score >= adaptiveThreshold:
		rec = models.FraudAdaptiveResponse
	default:
		rec = models.FraudAccept
	}

	if pathway == models.PathwayEmergency && (rec == models.FraudTerminate || rec == models.FraudEscalate) {
		rec = models.FraudFlag
	}
	if trust >= highTrust && rec == models.FraudEscalate {
		rec = models.FraudFlag
	}
	return rec
}

func interventionsFor(rec models.FraudRecommendation) []string {
	switch rec {
	case models.FraudTerminate:
		return []string{"terminate_session", "manual_review"}
	case models.FraudEscalate:
		return []string{"manual_review", "identity_verification"}
	case models.FraudFlag:
		return []string{"post_completion_review"}
	case models.FraudAdaptiveResponse:
		return []string{"insert_validation_questions", "tighten_monitoring"}
	default:
		return []string{}
	}
}
