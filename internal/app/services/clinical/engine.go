package clinical

import (
	"fmt"

	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
)

// Engine scores completed (or partially completed) clinical instruments
// and maintains the session's running risk assessment. It is a pure
// function of the response set: no I/O, safe for concurrent use across
// sessions.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(cat *catalog.Catalog) *Engine {
	return &Engine{catalog: cat}
}

// SuicidalIdeationItem is the PHQ-9 item whose positive answer overrides
// every sum-based band.
const SuicidalIdeationItem = "phq9_9"

const (
	confidenceFull    = 92
	confidencePartial = 70
)

// Score computes the decision for one instrument over the session's
// current answers. It never fails on partial data: missing items lower
// the confidence instead.
func (e *Engine) Score(inst catalog.Instrument, sess *models.Session) (Decision, error) {
	items := e.catalog.InstrumentQuestions(inst)
	if len(items) == 0 {
		return Decision{}, fmt.Errorf("instrument %q has no catalog questions", inst)
	}

	total := 0
	answered := 0
	for _, id := range items {
		v := sess.Answer(id)
		if v.IsZero() {
			continue
		}
		if v.Kind != catalog.ValueKindNumber {
			return Decision{}, fmt.Errorf("item %q: non-numeric answer for instrument scoring", id)
		}
		total += int(v.Number)
		answered++
	}

	d := Decision{
		Instrument: inst,
		Total:      total,
		Partial:    answered < len(items),
		Confidence: confidenceFull,
	}
	if d.Partial {
		d.Confidence = confidencePartial
	}

	switch inst {
	case catalog.InstrumentPHQ9:
		e.bandPHQ9(&d, sess)
	case catalog.InstrumentGAD7:
		bandGAD7(&d)
	case catalog.InstrumentWHO5:
		bandWHO5(&d)
	default:
		return Decision{}, fmt.Errorf("unknown instrument %q", inst)
	}
	return d, nil
}

func (e *Engine) bandPHQ9(d *Decision, sess *models.Session) {
	// The suicidal-ideation item overrides the sum-based band whenever it
	// is positive, regardless of the total score.
	if si := sess.Answer(SuicidalIdeationItem); si.Kind == catalog.ValueKindNumber && si.Number > 0 {
		if si.Number >= 2 {
			d.Severity = SeverityCritical
		} else {
			d.Severity = SeveritySevere
		}
		d.Emergency = EmergencyProtocolFor(models.EmergencySeverityCritical, "suicidal ideation reported", SuicidalIdeationItem)
		d.ICD10Codes = append([]string{}, depressionICD10[SeverityCritical]...)
		d.Actions = depressionActions[SeverityCritical]
		return
	}

	switch {
	case d.Total >= 20:
		d.Severity = SeveritySevere
	case d.Total >= 15:
		d.Severity = SeverityModerate
	case d.Total >= 10:
		d.Severity = SeverityMild
	case d.Total >= 5:
		d.Severity = SeverityMinimal
		d.ICD10Codes = []string{depressionScreeningCode}
	default:
		d.Severity = SeverityMinimal
	}
	d.ICD10Codes = append(d.ICD10Codes, depressionICD10[d.Severity]...)
	d.Actions = depressionActions[d.Severity]
}

func bandGAD7(d *Decision) {
	switch {
	case d.Total >= 15:
		d.Severity = SeveritySevere
	case d.Total >= 10:
		d.Severity = SeverityModerate
	case d.Total >= 5:
		d.Severity = SeverityMild
	default:
		d.Severity = SeverityMinimal
	}
	d.ICD10Codes = append([]string{}, anxietyICD10[d.Severity]...)
	d.Actions = anxietyActions[d.Severity]
}

// bandWHO5 applies the standard WHO-5 cut-offs to the scaled 0-100 score:
// below 50 indicates poor well-being, 28 or below likely depression.
func bandWHO5(d *Decision) {
	scaled := d.Total * 4
	switch {
	case scaled <= 28:
		d.Severity = SeverityModerate
	case scaled < 50:
		d.Severity = SeverityMild
	default:
		d.Severity = SeverityMinimal
	}
	d.ICD10Codes = append([]string{}, wellbeingICD10[d.Severity]...)
	d.Actions = wellbeingActions[d.Severity]
}

// EmergencyProtocolFor builds the safety payload attached whenever
// severity is critical or severe due to self-harm or physical indicators.
func EmergencyProtocolFor(sev models.EmergencySeverity, reason, triggerQuestion string) *models.EmergencyProtocol {
	actions := physicalImmediateActions
	if sev == models.EmergencySeverityCritical {
		actions = suicideImmediateActions
	}
	return &models.EmergencyProtocol{
		Severity:         sev,
		Reason:           reason,
		TriggerQuestion:  triggerQuestion,
		ContactNumbers:   append([]string{}, crisisContactNumbers...),
		ImmediateActions: append([]string{}, actions...),
		SafetyPlan:       append([]string{}, safetyPlanChecklist...),
	}
}

// instrumentComplete reports whether every catalog item of the instrument
// has a current answer.
func (e *Engine) instrumentComplete(inst catalog.Instrument, sess *models.Session) bool {
	for _, id := range e.catalog.InstrumentQuestions(inst) {
		if !sess.Answered(id) {
			return false
		}
	}
	return true
}

// UpdateRisk recomputes the running risk assessment after a response.
// Instrument severities fold into the overall level only once their
// question set is complete; domain scores update on every response.
func (e *Engine) UpdateRisk(sess *models.Session) error {
	e.updateDomainScores(sess)

	for _, inst := range []catalog.Instrument{catalog.InstrumentPHQ9, catalog.InstrumentGAD7, catalog.InstrumentWHO5} {
		if !e.instrumentComplete(inst, sess) {
			continue
		}
		d, err := e.Score(inst, sess)
		if err != nil {
			return err
		}
		applyDecision(sess.Risk, d)
	}

	// The suicide flag does not wait for instrument completion.
	if si := sess.Answer(SuicidalIdeationItem); si.Kind == catalog.ValueKindNumber && si.Number > 0 {
		sess.Risk.AddFlag(models.FlagSuicideRisk)
		sess.Risk.AddICD10("R45.851")
		sess.Risk.Escalate(models.RiskLevelCritical)
	}
	return nil
}

func applyDecision(risk *models.RiskAssessment, d Decision) {
	for _, code := range d.ICD10Codes {
		risk.AddICD10(code)
	}
	for _, a := range d.Actions {
		addRecommendation(risk, a.Action)
	}
	risk.Confidence = d.Confidence

	switch d.Instrument {
	case catalog.InstrumentPHQ9, catalog.InstrumentGAD7:
		switch d.Severity {
		case SeverityCritical:
			risk.AddFlag(models.FlagSuicideRisk)
			risk.Escalate(models.RiskLevelCritical)
		case SeveritySevere:
			risk.AddFlag(models.FlagSevereSymptoms)
			risk.Escalate(models.RiskLevelHigh)
		case SeverityModerate:
			risk.AddFlag(models.FlagModerateSymptoms)
			risk.Escalate(models.RiskLevelModerate)
		}
	case catalog.InstrumentWHO5:
		switch d.Severity {
		case SeverityModerate:
			risk.AddFlag(models.FlagLikelyDepression)
			risk.Escalate(models.RiskLevelModerate)
		case SeverityMild:
			risk.AddFlag(models.FlagPoorWellbeing)
		}
	}
}

func addRecommendation(risk *models.RiskAssessment, rec string) {
	for _, r := range risk.Recommendations {
		if r == rec {
			return
		}
	}
	risk.Recommendations = append(risk.Recommendations, rec)
}

// updateDomainScores recomputes the per-domain numeric scores from
// question risk weights and the risk score of each selected option.
func (e *Engine) updateDomainScores(sess *models.Session) {
	scores := make(map[string]int)
	for i := range sess.Responses {
		r := &sess.Responses[i]
		q, ok := e.catalog.Question(r.QuestionID)
		if !ok {
			continue
		}
		scores[q.Domain] += responseRiskScore(q, r.Value)
	}
	sess.Risk.DomainScores = scores
}

func responseRiskScore(q *catalog.Question, v catalog.Value) int {
	switch q.Type {
	case catalog.QuestionTypeBoolean:
		if v.Kind == catalog.ValueKindBool && v.Bool {
			return q.RiskWeight
		}
	case catalog.QuestionTypeScale, catalog.QuestionTypeSelect:
		for _, opt := range q.Options {
			if opt.Value.Equal(v) {
				return q.RiskWeight * opt.RiskScore
			}
		}
	case catalog.QuestionTypeMultiselect:
		if v.Kind != catalog.ValueKindList {
			return 0
		}
		sum := 0
		for _, opt := range q.Options {
			if opt.Value.Kind == catalog.ValueKindText && v.Contains(opt.Value.Text) {
				sum += opt.RiskScore
			}
		}
		return q.RiskWeight * sum
	}
	return 0
}
