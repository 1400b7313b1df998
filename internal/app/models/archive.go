package models

import "time"

// ArchivedSession is the immutable record written when a session reaches a
// terminal state. It outlives the redis snapshot.
type ArchivedSession struct {
	SessionID string       `json:"session_id" bson:"sessionId"`
	Pathway   Pathway      `json:"pathway" bson:"pathway"`
	State     SessionState `json:"state" bson:"state"`

	StartedAt  time.Time `json:"started_at" bson:"startedAt"`
	FinishedAt time.Time `json:"finished_at" bson:"finishedAt"`

	Results   *CompletionResults `json:"results,omitempty" bson:"results,omitempty"`
	Emergency *EmergencyProtocol `json:"emergency,omitempty" bson:"emergency,omitempty"`
	Fraud     *FraudAnalysis     `json:"fraud,omitempty" bson:"fraud,omitempty"`
	Risk      *RiskAssessment    `json:"risk,omitempty" bson:"risk,omitempty"`

	ReportObjectName string `json:"report_object_name,omitempty" bson:"reportObjectName,omitempty"`
}

// EmergencyNotification is the message published to the on-call queue when
// an emergency protocol fires.
type EmergencyNotification struct {
	SessionID  string            `json:"session_id"`
	Pathway    Pathway           `json:"pathway"`
	Protocol   EmergencyProtocol `json:"protocol"`
	DetectedAt time.Time         `json:"detected_at"`
}
