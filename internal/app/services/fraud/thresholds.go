package fraud

import "onboarding-service/internal/app/models"

// Thresholds are the per-session detection floors. They start from fixed
// base defaults and are adjusted for the user and pathway; every
// adjustment records its justification.
type Thresholds struct {
	ResponseTimeFloorMs    float64
	InconsistencyTolerance float64
	BehavioralAnomalyFloor float64
	AttentionFloorMs       float64

	Adjustments []models.ThresholdAdjustment
}

const (
	baseResponseTimeFloorMs    = 2000
	baseInconsistencyTolerance = 0.30
	baseBehavioralAnomalyFloor = 0.50
	baseAttentionFloorMs       = 1000
)

// ThresholdsFor derives the session's adaptive thresholds from the base
// defaults: loosened for first-time users and emergency pathways,
// tightened for diagnostic-grade clinical rigor.
func ThresholdsFor(user models.UserFraudContext, pathway models.PathwayFraudContext) Thresholds {
	t := Thresholds{
		ResponseTimeFloorMs:    baseResponseTimeFloorMs,
		InconsistencyTolerance: baseInconsistencyTolerance,
		BehavioralAnomalyFloor: baseBehavioralAnomalyFloor,
		AttentionFloorMs:       baseAttentionFloorMs,
	}

	if user.FirstTimeUser {
		t.adjust("response_time_floor_ms", &t.ResponseTimeFloorMs, t.ResponseTimeFloorMs*0.75,
			"first-time user: no behavioral baseline, loosen timing floor")
		t.adjust("inconsistency_tolerance", &t.InconsistencyTolerance, t.InconsistencyTolerance*1.2,
			"first-time user: allow more answer variance")
	}

	if pathway.Pathway == models.PathwayEmergency {
		t.adjust("response_time_floor_ms", &t.ResponseTimeFloorMs, t.ResponseTimeFloorMs*0.5,
			"emergency pathway: fast answers are expected under distress")
		t.adjust("attention_floor_ms", &t.AttentionFloorMs, t.AttentionFloorMs*0.5,
			"emergency pathway: reduced attention requirements")
	}

	if pathway.DiagnosticGrade {
		t.adjust("response_time_floor_ms", &t.ResponseTimeFloorMs, t.ResponseTimeFloorMs*1.25,
			"diagnostic-grade rigor: tighten timing floor")
		t.adjust("inconsistency_tolerance", &t.InconsistencyTolerance, t.InconsistencyTolerance*0.8,
			"diagnostic-grade rigor: tighten consistency tolerance")
		t.adjust("behavioral_anomaly_floor", &t.BehavioralAnomalyFloor, t.BehavioralAnomalyFloor*0.8,
			"diagnostic-grade rigor: lower anomaly floor")
	}

	return t
}

func (t *Thresholds) adjust(name string, field *float64, to float64, justification string) {
	t.Adjustments = append(t.Adjustments, models.ThresholdAdjustment{
		Parameter:     name,
		From:          *field,
		To:            to,
		Justification: justification,
	})
	*field = to
}
