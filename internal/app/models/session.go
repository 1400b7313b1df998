package models

import (
	"time"

	"onboarding-service/internal/app/services/catalog"
)

type SessionState string

const (
	StateAwaitingResponse SessionState = "awaiting_response"
	StateEmergency        SessionState = "emergency"
	StateComplete         SessionState = "complete"
	StateAbandoned        SessionState = "abandoned"
)

// Session is the full per-attempt state of one questionnaire run. It is
// mutated only under the session lock, by one submission at a time.
type Session struct {
	ID      string  `json:"id" bson:"_id"`
	Pathway Pathway `json:"pathway" bson:"pathway"`

	State             SessionState `json:"state" bson:"state"`
	CurrentDomain     string       `json:"current_domain" bson:"currentDomain"`
	CurrentQuestionID string       `json:"current_question_id" bson:"currentQuestionId"`

	Responses []Response `json:"responses" bson:"responses"`

	Queue            *DomainQueue `json:"queue" bson:"queue"`
	CompletedDomains []string     `json:"completed_domains" bson:"completedDomains"`

	Risk  *RiskAssessment `json:"risk_assessment" bson:"riskAssessment"`
	Fraud *FraudAnalysis  `json:"fraud_analysis" bson:"fraudAnalysis"`

	UserContext    UserFraudContext    `json:"user_context" bson:"userContext"`
	PathwayContext PathwayFraudContext `json:"pathway_context" bson:"pathwayContext"`

	Emergency             *EmergencyProtocol `json:"emergency,omitempty" bson:"emergency,omitempty"`
	EmergencyAcknowledged bool               `json:"emergency_acknowledged" bson:"emergencyAcknowledged"`

	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" bson:"updatedAt"`

	// responseIndex maps questionID to its slot in Responses. Rebuilt
	// lazily after deserialization.
	responseIndex map[string]int
}

func NewSession(id string, pathway Pathway, triageDomain string, ranking []catalog.DomainClass) *Session {
	now := time.Now().UTC()
	return &Session{
		ID:               id,
		Pathway:          pathway,
		State:            StateAwaitingResponse,
		CurrentDomain:    triageDomain,
		Queue:            NewDomainQueue(ranking),
		CompletedDomains: []string{},
		Risk:             NewRiskAssessment(),
		Fraud:            NewFraudAnalysis(),
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Record stores the answer for a question, replacing an existing response
// in place and incrementing its revision count. It returns the stored
// response and whether this was a revision.
func (s *Session) Record(questionID string, value catalog.Value, responseTimeMs int64, meta *Signals) (*Response, bool) {
	s.ensureIndex()
	now := time.Now().UTC()
	if idx, ok := s.responseIndex[questionID]; ok {
		r := &s.Responses[idx]
		r.Value = value
		r.Timestamp = now
		r.ResponseTimeMs = responseTimeMs
		r.RevisionCount++
		if meta != nil {
			r.Metadata = meta
		}
		s.UpdatedAt = now
		return r, true
	}
	s.Responses = append(s.Responses, Response{
		QuestionID:     questionID,
		Value:          value,
		Timestamp:      now,
		ResponseTimeMs: responseTimeMs,
		Metadata:       meta,
	})
	s.responseIndex[questionID] = len(s.Responses) - 1
	s.UpdatedAt = now
	return &s.Responses[len(s.Responses)-1], false
}

// Answer returns the current value for a question, zero if unanswered.
func (s *Session) Answer(questionID string) catalog.Value {
	s.ensureIndex()
	if idx, ok := s.responseIndex[questionID]; ok {
		return s.Responses[idx].Value
	}
	return catalog.Value{}
}

func (s *Session) Answered(questionID string) bool {
	s.ensureIndex()
	_, ok := s.responseIndex[questionID]
	return ok
}

func (s *Session) Response(questionID string) (*Response, bool) {
	s.ensureIndex()
	if idx, ok := s.responseIndex[questionID]; ok {
		return &s.Responses[idx], true
	}
	return nil, false
}

func (s *Session) ensureIndex() {
	if s.responseIndex != nil && len(s.responseIndex) == len(s.Responses) {
		return
	}
	s.responseIndex = make(map[string]int, len(s.Responses))
	for i := range s.Responses {
		s.responseIndex[s.Responses[i].QuestionID] = i
	}
}

func (s *Session) MarkDomainComplete(name string) {
	for _, d := range s.CompletedDomains {
		if d == name {
			return
		}
	}
	s.CompletedDomains = append(s.CompletedDomains, name)
}

func (s *Session) DomainCompleted(name string) bool {
	for _, d := range s.CompletedDomains {
		if d == name {
			return true
		}
	}
	return false
}

// Terminal reports whether the session accepts no further flow
// transitions.
func (s *Session) Terminal() bool {
	return s.State == StateEmergency || s.State == StateComplete || s.State == StateAbandoned
}
