package catalog

// Operator compares an accumulated answer against a trigger operand.
type Operator string

const (
	OperatorEqual          Operator = "="
	OperatorGreaterOrEqual Operator = ">="
	OperatorGreater        Operator = ">"
	OperatorLessOrEqual    Operator = "<="
	OperatorLess           Operator = "<"
	OperatorIncludes       Operator = "includes"
	OperatorExcludes       Operator = "excludes"
)

// TriggerCondition is a predicate over one question's current answer that,
// when satisfied, enqueues the owning domain.
type TriggerCondition struct {
	QuestionID string   `json:"question_id"`
	Operator   Operator `json:"operator"`
	Operand    Value    `json:"operand"`
}

// Matches evaluates the condition against the current answer for its
// question. A zero (unanswered) value never matches.
func (c TriggerCondition) Matches(answer Value) bool {
	if answer.IsZero() {
		return false
	}
	switch c.Operator {
	case OperatorEqual:
		return answer.Equal(c.Operand)
	case OperatorGreaterOrEqual:
		return answer.Kind == ValueKindNumber && c.Operand.Kind == ValueKindNumber && answer.Number >= c.Operand.Number
	case OperatorGreater:
		return answer.Kind == ValueKindNumber && c.Operand.Kind == ValueKindNumber && answer.Number > c.Operand.Number
	case OperatorLessOrEqual:
		return answer.Kind == ValueKindNumber && c.Operand.Kind == ValueKindNumber && answer.Number <= c.Operand.Number
	case OperatorLess:
		return answer.Kind == ValueKindNumber && c.Operand.Kind == ValueKindNumber && answer.Number < c.Operand.Number
	case OperatorIncludes:
		return answer.Contains(c.Operand.Text)
	case OperatorExcludes:
		return !answer.Contains(c.Operand.Text)
	default:
		return false
	}
}
