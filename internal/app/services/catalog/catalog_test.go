package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultCatalog(t *testing.T) {
	t.Run("Builds Without Error", func(t *testing.T) {
		cat, err := Default()

		assert.NoError(t, err)
		assert.NotNil(t, cat)
		assert.Equal(t, DomainTriage, cat.TriageDomain)
		assert.Equal(t, 41, cat.TotalQuestions())
	})

	t.Run("Question Lookup Carries Domain", func(t *testing.T) {
		cat, err := Default()
		assert.NoError(t, err)

		q, ok := cat.Question("phq9_9")
		assert.True(t, ok)
		assert.Equal(t, DomainMentalHealth, q.Domain)
		assert.Equal(t, EmergencyRoleSuicidalIdeation, q.Emergency)
		assert.Equal(t, SensitivityCritical, q.Sensitivity)
	})

	t.Run("Instrument Questions In Catalog Order", func(t *testing.T) {
		cat, err := Default()
		assert.NoError(t, err)

		phq9 := cat.InstrumentQuestions(InstrumentPHQ9)
		assert.Len(t, phq9, 9)
		assert.Equal(t, "phq9_1", phq9[0])
		assert.Equal(t, "phq9_9", phq9[8])

		assert.Len(t, cat.InstrumentQuestions(InstrumentGAD7), 7)
		assert.Len(t, cat.InstrumentQuestions(InstrumentWHO5), 5)
	})
}

func TestNewCatalogValidation(t *testing.T) {
	question := func(id string) Question {
		return Question{ID: id, Text: "q", Type: QuestionTypeBoolean}
	}

	t.Run("Missing Triage Domain", func(t *testing.T) {
		_, err := New("triage", []Domain{
			{Name: "other", Class: ClassLifestyle, Questions: []Question{question("q1")}},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "triage")
	})

	t.Run("Triage Domain With Triggers", func(t *testing.T) {
		_, err := New("triage", []Domain{
			{
				Name: "triage", Class: ClassTriage,
				Questions: []Question{question("q1")},
				Triggers:  []TriggerCondition{{QuestionID: "q1", Operator: OperatorEqual, Operand: BoolValue(true)}},
			},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not carry triggers")
	})

	t.Run("Duplicate Question ID", func(t *testing.T) {
		_, err := New("triage", []Domain{
			{Name: "triage", Class: ClassTriage, Questions: []Question{question("q1"), question("q1")}},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate question")
	})

	t.Run("Trigger References Unknown Question", func(t *testing.T) {
		_, err := New("triage", []Domain{
			{Name: "triage", Class: ClassTriage, Questions: []Question{question("q1")}},
			{
				Name: "followup", Class: ClassLifestyle,
				Questions: []Question{question("q2")},
				Triggers:  []TriggerCondition{{QuestionID: "missing", Operator: OperatorEqual, Operand: BoolValue(true)}},
			},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown question")
	})

	t.Run("Scale Question Without Options", func(t *testing.T) {
		_, err := New("triage", []Domain{
			{Name: "triage", Class: ClassTriage, Questions: []Question{
				{ID: "q1", Text: "q", Type: QuestionTypeScale},
			}},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "require options")
	})

	t.Run("Boolean Question With Options", func(t *testing.T) {
		_, err := New("triage", []Domain{
			{Name: "triage", Class: ClassTriage, Questions: []Question{
				{ID: "q1", Text: "q", Type: QuestionTypeBoolean, Options: []Option{{Value: BoolValue(true), Label: "yes"}}},
			}},
		})

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must not carry options")
	})
}

func TestTriggerConditionMatches(t *testing.T) {
	testCases := []struct {
		name      string
		condition TriggerCondition
		answer    Value
		expected  bool
	}{
		{"Equal Bool Match", TriggerCondition{Operator: OperatorEqual, Operand: BoolValue(true)}, BoolValue(true), true},
		{"Equal Bool Mismatch", TriggerCondition{Operator: OperatorEqual, Operand: BoolValue(true)}, BoolValue(false), false},
		{"Equal Text Match", TriggerCondition{Operator: OperatorEqual, Operand: TextValue("current")}, TextValue("current"), true},
		{"Greater Or Equal At Boundary", TriggerCondition{Operator: OperatorGreaterOrEqual, Operand: NumberValue(4)}, NumberValue(4), true},
		{"Greater Or Equal Below Boundary", TriggerCondition{Operator: OperatorGreaterOrEqual, Operand: NumberValue(4)}, NumberValue(3), false},
		{"Greater Strict", TriggerCondition{Operator: OperatorGreater, Operand: NumberValue(4)}, NumberValue(4), false},
		{"Less Or Equal", TriggerCondition{Operator: OperatorLessOrEqual, Operand: NumberValue(2)}, NumberValue(2), true},
		{"Less Strict", TriggerCondition{Operator: OperatorLess, Operand: NumberValue(2)}, NumberValue(1), true},
		{"Numeric Operator On Text Answer", TriggerCondition{Operator: OperatorGreaterOrEqual, Operand: NumberValue(1)}, TextValue("1"), false},
		{"Includes On List", TriggerCondition{Operator: OperatorIncludes, Operand: TextValue("opioids")}, ListValue([]string{"cannabis", "opioids"}), true},
		{"Includes Absent", TriggerCondition{Operator: OperatorIncludes, Operand: TextValue("opioids")}, ListValue([]string{"cannabis"}), false},
		{"Excludes On List", TriggerCondition{Operator: OperatorExcludes, Operand: TextValue("none")}, ListValue([]string{"cannabis"}), true},
		{"Excludes Present", TriggerCondition{Operator: OperatorExcludes, Operand: TextValue("none")}, ListValue([]string{"none"}), false},
		{"Unanswered Never Matches", TriggerCondition{Operator: OperatorExcludes, Operand: TextValue("none")}, Value{}, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.condition.Matches(tc.answer))
		})
	}
}

func TestNextUnanswered(t *testing.T) {
	cat, err := Default()
	assert.NoError(t, err)

	t.Run("First Question When Nothing Answered", func(t *testing.T) {
		q, ok := cat.NextUnanswered(DomainTriage, func(string) bool { return false })

		assert.True(t, ok)
		assert.Equal(t, "age", q.ID)
	})

	t.Run("Skips Answered Questions", func(t *testing.T) {
		answered := map[string]bool{"age": true, "biological_sex": true}
		q, ok := cat.NextUnanswered(DomainTriage, func(id string) bool { return answered[id] })

		assert.True(t, ok)
		assert.Equal(t, "emergency_check", q.ID)
	})

	t.Run("Exhausted Domain", func(t *testing.T) {
		_, ok := cat.NextUnanswered(DomainTriage, func(string) bool { return true })

		assert.False(t, ok)
	})

	t.Run("Unknown Domain", func(t *testing.T) {
		_, ok := cat.NextUnanswered("nope", func(string) bool { return false })

		assert.False(t, ok)
	})
}

func TestValueFromAny(t *testing.T) {
	t.Run("Bool", func(t *testing.T) {
		v, ok := ValueFromAny(true)

		assert.True(t, ok)
		assert.Equal(t, BoolValue(true), v)
	})

	t.Run("Number", func(t *testing.T) {
		v, ok := ValueFromAny(float64(3))

		assert.True(t, ok)
		assert.Equal(t, NumberValue(3), v)
	})

	t.Run("Text", func(t *testing.T) {
		v, ok := ValueFromAny("male")

		assert.True(t, ok)
		assert.Equal(t, TextValue("male"), v)
	})

	t.Run("List Of Strings", func(t *testing.T) {
		v, ok := ValueFromAny([]interface{}{"chest_pain", "fainting"})

		assert.True(t, ok)
		assert.Equal(t, ListValue([]string{"chest_pain", "fainting"}), v)
	})

	t.Run("List With Non String Element", func(t *testing.T) {
		_, ok := ValueFromAny([]interface{}{"chest_pain", 3})

		assert.False(t, ok)
	})

	t.Run("Unsupported Shape", func(t *testing.T) {
		_, ok := ValueFromAny(map[string]interface{}{"x": 1})

		assert.False(t, ok)
	})

	t.Run("Nil", func(t *testing.T) {
		_, ok := ValueFromAny(nil)

		assert.False(t, ok)
	})
}

func TestValueContains(t *testing.T) {
	t.Run("List Membership", func(t *testing.T) {
		assert.True(t, ListValue([]string{"a", "b"}).Contains("b"))
		assert.False(t, ListValue([]string{"a", "b"}).Contains("c"))
	})

	t.Run("Text Equality", func(t *testing.T) {
		assert.True(t, TextValue("none").Contains("none"))
		assert.False(t, TextValue("none").Contains("all"))
	})

	t.Run("Other Kinds", func(t *testing.T) {
		assert.False(t, NumberValue(1).Contains("1"))
		assert.False(t, BoolValue(true).Contains("true"))
	})
}
