package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
)

func newOrchestratorAndSession(t *testing.T) (*Orchestrator, *models.Session) {
	t.Helper()
	cat, err := catalog.Default()
	assert.NoError(t, err)
	sess := models.NewSession("s1", models.PathwayOnboarding, cat.TriageDomain, nil)
	sess.UserContext = models.UserFraudContext{TrustScore: 0.8, MotivationScore: 0.8}
	sess.PathwayContext = models.PathwayFraudContext{Pathway: models.PathwayOnboarding, Mode: models.ModeClinical}
	return NewOrchestrator(cat, zap.NewNop()), sess
}

func TestBootstrap(t *testing.T) {
	o, sess := newOrchestratorAndSession(t)

	result, err := o.Bootstrap(sess)

	assert.NoError(t, err)
	assert.Equal(t, models.FlowResultQuestion, result.Type)
	assert.Equal(t, "age", result.Question.ID)
	assert.Equal(t, catalog.DomainTriage, result.CurrentDomain)
	assert.Equal(t, catalog.DomainTriage, sess.CurrentDomain)
	assert.Equal(t, 0, result.Progress.Answered)
	assert.Positive(t, result.EstimatedTimeRemainingSec)
}

func TestSubmitValidation(t *testing.T) {
	o, sess := newOrchestratorAndSession(t)
	_, err := o.Bootstrap(sess)
	assert.NoError(t, err)

	t.Run("Unknown Question", func(t *testing.T) {
		_, err := o.Submit(sess, "nope", catalog.NumberValue(1), nil, 2500)

		assert.ErrorIs(t, err, ErrUnknownQuestion)
	})

	t.Run("Wrong Value Kind", func(t *testing.T) {
		_, err := o.Submit(sess, "age", catalog.TextValue("thirty"), nil, 2500)

		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("Value Outside Options", func(t *testing.T) {
		_, err := o.Submit(sess, "pain_severity", catalog.NumberValue(11), nil, 2500)

		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("Multiselect With Unknown Option", func(t *testing.T) {
		_, err := o.Submit(sess, "emergency_check", catalog.ListValue([]string{"sneezing"}), nil, 2500)

		assert.ErrorIs(t, err, ErrInvalidValue)
	})

	t.Run("Rejected Submission Leaves Session Untouched", func(t *testing.T) {
		assert.Empty(t, sess.Responses)
		assert.Equal(t, models.StateAwaitingResponse, sess.State)
	})
}

func TestSubmitEmergencySymptoms(t *testing.T) {
	t.Run("Physical Symptom Short-Circuits The Flow", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		result, err := o.Submit(sess, "emergency_check", catalog.ListValue([]string{"chest_pain"}), nil, 2500)

		assert.NoError(t, err)
		assert.Equal(t, models.FlowResultEmergency, result.Type)
		assert.Equal(t, models.EmergencySeveritySevere, result.Protocol.Severity)
		assert.Equal(t, models.StateEmergency, sess.State)
		assert.NotNil(t, sess.Emergency)
		assert.Equal(t, models.RiskLevelCritical, sess.Risk.OverallLevel)
	})

	t.Run("None Of The Above Continues", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		result, err := o.Submit(sess, "emergency_check", catalog.ListValue([]string{"none"}), nil, 2500)

		assert.NoError(t, err)
		assert.Equal(t, models.FlowResultQuestion, result.Type)
		assert.Equal(t, models.StateAwaitingResponse, sess.State)
		assert.Nil(t, sess.Emergency)
	})

	t.Run("Submissions Blocked Until Acknowledged", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		_, err = o.Submit(sess, "emergency_check", catalog.ListValue([]string{"fainting"}), nil, 2500)
		assert.NoError(t, err)

		_, err = o.Submit(sess, "age", catalog.NumberValue(30), nil, 2500)
		assert.ErrorIs(t, err, ErrEmergencyNotAcknowledged)
	})

	t.Run("Acknowledged Session Stays Terminal", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		_, err = o.Submit(sess, "emergency_check", catalog.ListValue([]string{"fainting"}), nil, 2500)
		assert.NoError(t, err)

		sess.EmergencyAcknowledged = true
		result, err := o.Submit(sess, "age", catalog.NumberValue(30), nil, 2500)

		assert.NoError(t, err)
		assert.Equal(t, models.FlowResultEmergency, result.Type)
		assert.Equal(t, models.StateEmergency, sess.State)
		assert.True(t, sess.Answered("age"))
	})
}

func TestSubmitHarmfulThoughts(t *testing.T) {
	o, sess := newOrchestratorAndSession(t)
	_, err := o.Bootstrap(sess)
	assert.NoError(t, err)

	result, err := o.Submit(sess, "harmful_thoughts", catalog.BoolValue(true), nil, 2500)

	assert.NoError(t, err)
	assert.Equal(t, models.FlowResultEmergency, result.Type)
	assert.Equal(t, models.EmergencySeverityCritical, result.Protocol.Severity)
	assert.Contains(t, result.Protocol.ContactNumbers, "188 (CVV)")
	assert.NotEmpty(t, result.Protocol.SafetyPlan)
	assert.True(t, sess.Risk.HasFlag(models.FlagSuicideRisk))
}

func TestSubmitSuicidalIdeation(t *testing.T) {
	t.Run("Positive Answer Fires Critical Protocol", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		result, err := o.Submit(sess, "phq9_9", catalog.NumberValue(1), nil, 2500)

		assert.NoError(t, err)
		assert.Equal(t, models.FlowResultEmergency, result.Type)
		assert.Equal(t, models.EmergencySeverityCritical, result.Protocol.Severity)
		assert.Equal(t, "phq9_9", result.Protocol.TriggerQuestion)
	})

	t.Run("Lowering A Positive Answer Requires Re-Evaluation", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		// A positive answer on record with no protocol fired yet.
		sess.Record("phq9_9", catalog.NumberValue(2), 2500, nil)

		_, err = o.Submit(sess, "phq9_9", catalog.NumberValue(0), nil, 2500)

		assert.ErrorIs(t, err, ErrInvalidValue)
		assert.Equal(t, catalog.NumberValue(2), sess.Answer("phq9_9"))
	})
}

func TestTriggerEvaluation(t *testing.T) {
	t.Run("Mood Interest Enqueues Mental Health And Wellbeing", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		_, err = o.Submit(sess, "mood_interest", catalog.NumberValue(2), nil, 2500)

		assert.NoError(t, err)
		assert.True(t, sess.Queue.WasEnqueued(catalog.DomainMentalHealth))
		assert.True(t, sess.Queue.WasEnqueued(catalog.DomainWellbeing))
	})

	t.Run("Revision Does Not Re-Enqueue", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		_, err = o.Submit(sess, "mood_interest", catalog.NumberValue(2), nil, 2500)
		assert.NoError(t, err)
		_, err = o.Submit(sess, "mood_interest", catalog.NumberValue(1), nil, 2500)
		assert.NoError(t, err)

		assert.Len(t, sess.Queue.Pending[catalog.ClassMentalHealth], 1)
	})

	t.Run("Unsatisfied Trigger Stays Out", func(t *testing.T) {
		o, sess := newOrchestratorAndSession(t)
		_, err := o.Bootstrap(sess)
		assert.NoError(t, err)

		_, err = o.Submit(sess, "pain_severity", catalog.NumberValue(3), nil, 2500)

		assert.NoError(t, err)
		assert.False(t, sess.Queue.WasEnqueued(catalog.DomainPainManagement))
	})
}

// answerTriage walks the whole triage domain with the given mood and
// chronic answers; everything else is benign.
func answerTriage(t *testing.T, o *Orchestrator, sess *models.Session, mood float64, chronic bool) *models.FlowResult {
	t.Helper()
	var result *models.FlowResult
	var err error
	answers := []struct {
		id    string
		value catalog.Value
		ms    int64
	}{
		{"age", catalog.NumberValue(30), 2600},
		{"biological_sex", catalog.TextValue("female"), 3400},
		{"emergency_check", catalog.ListValue([]string{"none"}), 2900},
		{"pain_severity", catalog.NumberValue(0), 4100},
		{"mood_interest", catalog.NumberValue(mood), 3100},
		{"chronic_conditions_flag", catalog.BoolValue(chronic), 3700},
	}
	for _, a := range answers {
		result, err = o.Submit(sess, a.id, a.value, nil, a.ms)
		assert.NoError(t, err)
	}
	return result
}

func TestDomainTransition(t *testing.T) {
	o, sess := newOrchestratorAndSession(t)
	_, err := o.Bootstrap(sess)
	assert.NoError(t, err)

	result := answerTriage(t, o, sess, 1, false)

	assert.Equal(t, models.FlowResultDomainTransition, result.Type)
	assert.Equal(t, catalog.DomainMentalHealth, result.TransitionDomain)
	assert.Equal(t, "phq9_1", result.Question.ID)
	assert.Equal(t, catalog.DomainMentalHealth, sess.CurrentDomain)
	assert.True(t, sess.DomainCompleted(catalog.DomainTriage))
	assert.NotEmpty(t, result.TransitionMessage)
}

func TestCompletion(t *testing.T) {
	o, sess := newOrchestratorAndSession(t)
	_, err := o.Bootstrap(sess)
	assert.NoError(t, err)

	result := answerTriage(t, o, sess, 0, false)

	assert.Equal(t, models.FlowResultComplete, result.Type)
	assert.Equal(t, models.StateComplete, sess.State)
	assert.True(t, sess.Terminal())

	assert.NotNil(t, result.Results)
	assert.Equal(t, models.RiskLevelLow, result.Results.RiskLevel)
	assert.Empty(t, result.Results.Flags)
	assert.Equal(t, []string{"Proceed with standard onboarding"}, result.Results.NextSteps)
	assert.Len(t, result.Results.Responses, 6)
	assert.NotEmpty(t, result.Results.FraudRecommendation)

	_, err = o.Submit(sess, "age", catalog.NumberValue(31), nil, 2500)
	assert.ErrorIs(t, err, ErrSessionTerminal)
}

func TestProgressAccounting(t *testing.T) {
	o, sess := newOrchestratorAndSession(t)
	_, err := o.Bootstrap(sess)
	assert.NoError(t, err)

	// Triage only: 6 questions total until a trigger fires.
	result, err := o.Submit(sess, "age", catalog.NumberValue(30), nil, 2600)
	assert.NoError(t, err)
	assert.Equal(t, 1, result.Progress.Answered)
	assert.Equal(t, 6, result.Progress.TotalEstimated)

	// Triggering pain management grows the estimate.
	result, err = o.Submit(sess, "pain_severity", catalog.NumberValue(7), nil, 3100)
	assert.NoError(t, err)
	assert.Equal(t, 2, result.Progress.Answered)
	assert.Equal(t, 9, result.Progress.TotalEstimated)
}
