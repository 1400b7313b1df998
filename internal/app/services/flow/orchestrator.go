package flow

import (
	"fmt"
	"sync"

	"go.uber.org/zap"

	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
	"onboarding-service/internal/app/services/clinical"
	"onboarding-service/internal/app/services/fraud"
)

// secondsPerQuestion feeds the coarse time-remaining estimate.
const secondsPerQuestion = 30

// Orchestrator drives the questionnaire state machine for one submission
// at a time. It holds no per-session state itself; the caller owns the
// Session and must serialize submissions to it.
type Orchestrator struct {
	catalog  *catalog.Catalog
	clinical *clinical.Engine
	fraud    *fraud.Detector
	log      *zap.Logger
}

func NewOrchestrator(cat *catalog.Catalog, log *zap.Logger) *Orchestrator {
	return &Orchestrator{
		catalog:  cat,
		clinical: clinical.NewEngine(cat),
		fraud:    fraud.NewDetector(),
		log:      log,
	}
}

// Bootstrap enters the session into the fixed triage domain and returns
// its first question.
func (o *Orchestrator) Bootstrap(sess *models.Session) (*models.FlowResult, error) {
	triage, ok := o.catalog.Domain(o.catalog.TriageDomain)
	if !ok {
		return nil, fmt.Errorf("triage domain %q missing from catalog", o.catalog.TriageDomain)
	}
	sess.Queue.EnqueueIfAbsent(triage.Name, triage.Class)
	name, _ := sess.Queue.PopHighestPriority()
	sess.CurrentDomain = name
	sess.CurrentQuestionID = triage.Questions[0].ID
	return o.questionResult(sess, &triage.Questions[0]), nil
}

// Submit executes one transition of the state machine. Validation errors
// leave the session untouched; scoring failures degrade to safe defaults
// and never abort the flow.
func (o *Orchestrator) Submit(sess *models.Session, questionID string, value catalog.Value, meta *models.Signals, responseTimeMs int64) (*models.FlowResult, error) {
	q, ok := o.catalog.Question(questionID)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuestion, questionID)
	}
	if err := validateValue(q, value); err != nil {
		return nil, err
	}
	if err := o.checkAccepting(sess, q, value); err != nil {
		return nil, err
	}

	// Post-acknowledgement submissions append safety-plan material; the
	// session stays terminal and no new question is ever served.
	if sess.State == models.StateEmergency {
		sess.Record(questionID, value, responseTimeMs, meta)
		return &models.FlowResult{Type: models.FlowResultEmergency, Protocol: sess.Emergency}, nil
	}

	sess.Record(questionID, value, responseTimeMs, meta)

	// Highest priority: the emergency check short-circuits everything
	// else for this response.
	if protocol := emergencyFrom(q, value); protocol != nil {
		sess.State = models.StateEmergency
		sess.Emergency = protocol
		sess.Risk.Escalate(models.RiskLevelCritical)
		if protocol.Severity == models.EmergencySeverityCritical {
			sess.Risk.AddFlag(models.FlagSuicideRisk)
		}
		return &models.FlowResult{Type: models.FlowResultEmergency, Protocol: protocol}, nil
	}

	o.evaluateTriggers(sess)

	domainDone := o.currentDomainComplete(sess)
	o.scoreConcurrently(sess, domainDone)

	// Next unanswered question within the current domain, catalog order.
	if next, ok := o.catalog.NextUnanswered(sess.CurrentDomain, sess.Answered); ok {
		sess.CurrentQuestionID = next.ID
		return o.questionResult(sess, next), nil
	}
	sess.MarkDomainComplete(sess.CurrentDomain)

	if name, ok := sess.Queue.PopHighestPriority(); ok {
		domain, _ := o.catalog.Domain(name)
		sess.CurrentDomain = name
		first := &domain.Questions[0]
		sess.CurrentQuestionID = first.ID
		result := o.questionResult(sess, first)
		result.Type = models.FlowResultDomainTransition
		result.TransitionDomain = name
		result.TransitionMessage = fmt.Sprintf("Moving on to the %s section", name)
		return result, nil
	}

	return o.complete(sess), nil
}

// checkAccepting enforces terminal-state rules and the suicide-item
// supersede invariant.
func (o *Orchestrator) checkAccepting(sess *models.Session, q *catalog.Question, value catalog.Value) error {
	switch sess.State {
	case models.StateComplete, models.StateAbandoned:
		return ErrSessionTerminal
	case models.StateEmergency:
		if !sess.EmergencyAcknowledged {
			return ErrEmergencyNotAcknowledged
		}
		return nil
	}

	// A positive suicidal-ideation answer may only be lowered after the
	// critical re-evaluation (the emergency protocol) has fired.
	if q.Emergency == catalog.EmergencyRoleSuicidalIdeation {
		current := sess.Answer(q.ID)
		if current.Kind == catalog.ValueKindNumber && current.Number > 0 &&
			value.Kind == catalog.ValueKindNumber && value.Number < current.Number &&
			sess.Emergency == nil {
			return fmt.Errorf("%w: positive self-harm answer cannot be lowered before re-evaluation", ErrInvalidValue)
		}
	}
	return nil
}

// emergencyFrom maps an answer to the protocol it triggers, if any.
func emergencyFrom(q *catalog.Question, v catalog.Value) *models.EmergencyProtocol {
	switch q.Emergency {
	case catalog.EmergencyRoleSuicidalIdeation:
		if v.Kind == catalog.ValueKindNumber && v.Number > 0 {
			return clinical.EmergencyProtocolFor(models.EmergencySeverityCritical, "suicidal ideation reported", q.ID)
		}
	case catalog.EmergencyRoleHarmfulThoughts:
		if v.Kind == catalog.ValueKindBool && v.Bool {
			return clinical.EmergencyProtocolFor(models.EmergencySeverityCritical, "harmful thoughts reported", q.ID)
		}
	case catalog.EmergencyRoleEmergencySymptoms:
		if v.Kind == catalog.ValueKindList {
			for _, item := range v.List {
				if item != catalog.EmergencySymptomNone {
					return clinical.EmergencyProtocolFor(models.EmergencySeveritySevere, "physical emergency symptoms reported", q.ID)
				}
			}
		}
	}
	return nil
}

// evaluateTriggers enqueues every domain whose trigger set is newly
// satisfied. Enqueueing is idempotent per domain.
func (o *Orchestrator) evaluateTriggers(sess *models.Session) {
	for _, d := range o.catalog.Domains() {
		if len(d.Triggers) == 0 || sess.Queue.WasEnqueued(d.Name) || d.Name == sess.CurrentDomain || sess.DomainCompleted(d.Name) {
			continue
		}
		for _, trigger := range d.Triggers {
			if trigger.Matches(sess.Answer(trigger.QuestionID)) {
				sess.Queue.EnqueueIfAbsent(d.Name, d.Class)
				break
			}
		}
	}
}

// scoreConcurrently runs the clinical engine and, when the monitoring
// cadence calls for it, the fraud detector. The two are independent and
// both must finish before the next question is emitted. Failures inside
// either are contained: the flow degrades to the previous assessment
// rather than aborting the session.
func (o *Orchestrator) scoreConcurrently(sess *models.Session, sectionBoundary bool) {
	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		defer o.recoverScoring(sess, "clinical")
		if err := o.clinical.UpdateRisk(sess); err != nil {
			o.log.Error("clinical scoring degraded",
				zap.String("session_id", sess.ID),
				zap.Error(err),
			)
		}
	}()

	if fraud.ShouldEvaluate(sess.Fraud, len(sess.Responses), sectionBoundary) {
		wg.Add(1)
		result := make(chan *models.FraudAnalysis, 1)
		go func() {
			defer wg.Done()
			defer o.recoverScoring(sess, "fraud")
			result <- o.fraud.Analyze(sess)
		}()
		wg.Wait()
		select {
		case analysis := <-result:
			sess.Fraud = analysis
		default:
			// Detector panicked; keep the previous analysis.
		}
		return
	}
	wg.Wait()
}

func (o *Orchestrator) recoverScoring(sess *models.Session, component string) {
	if r := recover(); r != nil {
		o.log.Error("scoring panic recovered",
			zap.String("session_id", sess.ID),
			zap.String("component", component),
			zap.Any("panic", r),
		)
	}
}

func (o *Orchestrator) complete(sess *models.Session) *models.FlowResult {
	// Final pass over the full response set: full clinical scoring plus
	// the final fraud aggregation, regardless of cadence.
	func() {
		defer o.recoverScoring(sess, "clinical")
		if err := o.clinical.UpdateRisk(sess); err != nil {
			o.log.Error("final clinical scoring degraded", zap.String("session_id", sess.ID), zap.Error(err))
		}
	}()
	func() {
		defer o.recoverScoring(sess, "fraud")
		sess.Fraud = o.fraud.Analyze(sess)
	}()

	sess.State = models.StateComplete
	sess.CurrentQuestionID = ""

	return &models.FlowResult{
		Type: models.FlowResultComplete,
		Results: &models.CompletionResults{
			RiskLevel:           sess.Risk.OverallLevel,
			RiskScores:          sess.Risk.DomainScores,
			Flags:               sess.Risk.Flags,
			Recommendations:     sess.Risk.Recommendations,
			NextSteps:           nextSteps(sess.Risk),
			ICD10Codes:          sess.Risk.ICD10Codes,
			FraudDetectionScore: sess.Fraud.OverallRiskScore,
			FraudRecommendation: sess.Fraud.Recommendation,
			Responses:           sess.Responses,
		},
	}
}

func nextSteps(risk *models.RiskAssessment) []string {
	switch risk.OverallLevel {
	case models.RiskLevelCritical:
		return []string{"Immediate clinical contact", "Crisis resources provided"}
	case models.RiskLevelHigh:
		return []string{"Priority appointment with a clinician within 48 hours"}
	case models.RiskLevelModerate:
		return []string{"Schedule an appointment within two weeks"}
	default:
		return []string{"Proceed with standard onboarding"}
	}
}

func (o *Orchestrator) currentDomainComplete(sess *models.Session) bool {
	_, hasNext := o.catalog.NextUnanswered(sess.CurrentDomain, sess.Answered)
	return !hasNext
}

func (o *Orchestrator) questionResult(sess *models.Session, q *catalog.Question) *models.FlowResult {
	progress := o.progress(sess)
	remaining := progress.TotalEstimated - progress.Answered
	return &models.FlowResult{
		Type:                      models.FlowResultQuestion,
		Question:                  q,
		CurrentDomain:             sess.CurrentDomain,
		Progress:                  progress,
		EstimatedTimeRemainingSec: remaining * secondsPerQuestion,
	}
}

// progress estimates completion from the answered count against the
// questions of the current domain and everything still queued.
func (o *Orchestrator) progress(sess *models.Session) *models.Progress {
	total := 0
	count := func(name string) {
		if d, ok := o.catalog.Domain(name); ok {
			total += len(d.Questions)
		}
	}
	for _, name := range sess.CompletedDomains {
		count(name)
	}
	if !sess.DomainCompleted(sess.CurrentDomain) {
		count(sess.CurrentDomain)
	}
	for _, pending := range sess.Queue.Pending {
		for _, name := range pending {
			count(name)
		}
	}
	answered := len(sess.Responses)
	if total < answered {
		total = answered
	}
	percent := 0
	if total > 0 {
		percent = answered * 100 / total
	}
	return &models.Progress{Answered: answered, TotalEstimated: total, Percent: percent}
}
