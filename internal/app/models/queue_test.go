package models

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"onboarding-service/internal/app/services/catalog"
)

func TestDomainQueue(t *testing.T) {
	t.Run("Pops By Class Priority", func(t *testing.T) {
		q := NewDomainQueue(nil)

		q.EnqueueIfAbsent("risk_behaviors", catalog.ClassRiskBehaviors)
		q.EnqueueIfAbsent("mental_health", catalog.ClassMentalHealth)
		q.EnqueueIfAbsent("pain_management", catalog.ClassPainManagement)

		name, ok := q.PopHighestPriority()
		assert.True(t, ok)
		assert.Equal(t, "mental_health", name)

		name, ok = q.PopHighestPriority()
		assert.True(t, ok)
		assert.Equal(t, "pain_management", name)

		name, ok = q.PopHighestPriority()
		assert.True(t, ok)
		assert.Equal(t, "risk_behaviors", name)

		_, ok = q.PopHighestPriority()
		assert.False(t, ok)
	})

	t.Run("FIFO Within A Class", func(t *testing.T) {
		q := NewDomainQueue(nil)

		q.EnqueueIfAbsent("wellbeing", catalog.ClassLifestyle)
		q.EnqueueIfAbsent("lifestyle", catalog.ClassLifestyle)

		name, _ := q.PopHighestPriority()
		assert.Equal(t, "wellbeing", name)
		name, _ = q.PopHighestPriority()
		assert.Equal(t, "lifestyle", name)
	})

	t.Run("Enqueue Is Idempotent", func(t *testing.T) {
		q := NewDomainQueue(nil)

		assert.True(t, q.EnqueueIfAbsent("mental_health", catalog.ClassMentalHealth))
		assert.False(t, q.EnqueueIfAbsent("mental_health", catalog.ClassMentalHealth))
		assert.Len(t, q.Pending[catalog.ClassMentalHealth], 1)
	})

	t.Run("Popped Domain Never Re-Enters", func(t *testing.T) {
		q := NewDomainQueue(nil)

		q.EnqueueIfAbsent("mental_health", catalog.ClassMentalHealth)
		_, _ = q.PopHighestPriority()

		assert.False(t, q.EnqueueIfAbsent("mental_health", catalog.ClassMentalHealth))
		assert.True(t, q.WasEnqueued("mental_health"))
		assert.True(t, q.IsEmpty())
	})

	t.Run("Empty Queue", func(t *testing.T) {
		q := NewDomainQueue(nil)

		assert.True(t, q.IsEmpty())
		_, ok := q.PopHighestPriority()
		assert.False(t, ok)
		assert.False(t, q.WasEnqueued("anything"))
	})
}
