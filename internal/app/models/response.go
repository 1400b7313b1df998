package models

import (
	"time"

	"onboarding-service/internal/app/services/catalog"
)

// Signals is the normalized behavioral metadata attached to a response by
// the collector. All fields are optional; absence is itself a signal.
type Signals struct {
	ReadTimeMs        int64    `json:"read_time_ms,omitempty" bson:"readTimeMs,omitempty"`
	HesitationMarkers int      `json:"hesitation_markers,omitempty" bson:"hesitationMarkers,omitempty"`
	KeystrokeCount    int      `json:"keystroke_count,omitempty" bson:"keystrokeCount,omitempty"`
	PointerSamples    int      `json:"pointer_samples,omitempty" bson:"pointerSamples,omitempty"`
	PointerLinearity  float64  `json:"pointer_linearity,omitempty" bson:"pointerLinearity,omitempty"`
	DeviceFingerprint string   `json:"device_fingerprint,omitempty" bson:"deviceFingerprint,omitempty"`
	NetworkFlags      []string `json:"network_flags,omitempty" bson:"networkFlags,omitempty"`
	HasInteractionLog bool     `json:"has_interaction_log" bson:"hasInteractionLog"`
}

// Response is the single current answer for one question. Re-answering
// replaces the value in place and increments RevisionCount.
type Response struct {
	QuestionID     string        `json:"question_id" bson:"questionId"`
	Value          catalog.Value `json:"value" bson:"value"`
	Timestamp      time.Time     `json:"timestamp" bson:"timestamp"`
	ResponseTimeMs int64         `json:"response_time_ms" bson:"responseTimeMs"`
	RevisionCount  int           `json:"revision_count" bson:"revisionCount"`
	Metadata       *Signals      `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
