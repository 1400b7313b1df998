package models

import "onboarding-service/internal/app/services/catalog"

// DomainQueue orders pending questionnaire domains by class priority,
// FIFO within a class. A domain that has ever been enqueued (or popped)
// is never enqueued or popped again.
type DomainQueue struct {
	// Pending holds queued entries in enqueue order per class.
	Pending map[catalog.DomainClass][]string `json:"pending" bson:"pending"`
	// Seen tracks every domain ever enqueued, for idempotent triggering.
	Seen map[string]bool `json:"seen" bson:"seen"`

	Ranking []catalog.DomainClass `json:"ranking" bson:"ranking"`
}

func NewDomainQueue(ranking []catalog.DomainClass) *DomainQueue {
	if len(ranking) == 0 {
		ranking = catalog.DefaultClassRanking
	}
	return &DomainQueue{
		Pending: make(map[catalog.DomainClass][]string),
		Seen:    make(map[string]bool),
		Ranking: ranking,
	}
}

// EnqueueIfAbsent queues the domain unless it was ever queued before.
// Returns true when the domain was actually added.
func (q *DomainQueue) EnqueueIfAbsent(name string, class catalog.DomainClass) bool {
	if q.Seen[name] {
		return false
	}
	q.Seen[name] = true
	q.Pending[class] = append(q.Pending[class], name)
	return true
}

// PopHighestPriority removes and returns the front domain of the highest
// ranked non-empty class.
func (q *DomainQueue) PopHighestPriority() (string, bool) {
	for _, class := range q.Ranking {
		pending := q.Pending[class]
		if len(pending) == 0 {
			continue
		}
		name := pending[0]
		q.Pending[class] = pending[1:]
		return name, true
	}
	return "", false
}

func (q *DomainQueue) IsEmpty() bool {
	for _, pending := range q.Pending {
		if len(pending) > 0 {
			return false
		}
	}
	return true
}

// WasEnqueued reports whether the domain has ever entered the queue.
func (q *DomainQueue) WasEnqueued(name string) bool {
	return q.Seen[name]
}
