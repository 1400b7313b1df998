package flow

import (
	"fmt"

	"onboarding-service/internal/app/services/catalog"
)

// validateValue checks a submitted value against the question's declared
// type and options. It runs before any session mutation.
func validateValue(q *catalog.Question, v catalog.Value) error {
	switch q.Type {
	case catalog.QuestionTypeBoolean:
		if v.Kind != catalog.ValueKindBool {
			return fmt.Errorf("%w: question %q expects a boolean", ErrInvalidValue, q.ID)
		}
	case catalog.QuestionTypeNumber:
		if v.Kind != catalog.ValueKindNumber {
			return fmt.Errorf("%w: question %q expects a number", ErrInvalidValue, q.ID)
		}
	case catalog.QuestionTypeText:
		if v.Kind != catalog.ValueKindText || v.Text == "" {
			return fmt.Errorf("%w: question %q expects non-empty text", ErrInvalidValue, q.ID)
		}
	case catalog.QuestionTypeScale, catalog.QuestionTypeSelect:
		if !optionExists(q, v) {
			return fmt.Errorf("%w: value is not an option of question %q", ErrInvalidValue, q.ID)
		}
	case catalog.QuestionTypeMultiselect:
		if v.Kind != catalog.ValueKindList || len(v.List) == 0 {
			return fmt.Errorf("%w: question %q expects a non-empty selection", ErrInvalidValue, q.ID)
		}
		for _, item := range v.List {
			if !optionExists(q, catalog.TextValue(item)) {
				return fmt.Errorf("%w: %q is not an option of question %q", ErrInvalidValue, item, q.ID)
			}
		}
	}
	return nil
}

func optionExists(q *catalog.Question, v catalog.Value) bool {
	for _, opt := range q.Options {
		if opt.Value.Equal(v) {
			return true
		}
	}
	return false
}
