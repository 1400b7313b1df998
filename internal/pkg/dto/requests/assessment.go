package requests

type CreateSession struct {
	Pathway     string              `json:"pathway" validate:"required,pathway"`
	Mode        string              `json:"mode" validate:"omitempty,oneof=clinical enhanced"`
	UserContext *SessionUserContext `json:"user_context"`
}

// SessionUserContext carries the caller's prior-account signals used to
// seed fraud detection. Absent fields default to the first-time profile.
type SessionUserContext struct {
	FirstTimeUser        bool    `json:"first_time_user"`
	TrustScore           float64 `json:"trust_score" validate:"gte=0,lte=1"`
	PriorFraudAttempts   int     `json:"prior_fraud_attempts" validate:"gte=0"`
	MotivationScore      float64 `json:"motivation_score" validate:"gte=0,lte=1"`
	DemographicRiskScore float64 `json:"demographic_risk_score" validate:"gte=0,lte=1"`
	BaselineResponseMs   int64   `json:"baseline_response_ms" validate:"gte=0"`
}

type SubmitResponse struct {
	QuestionID     string         `json:"question_id" validate:"required"`
	Value          interface{}    `json:"value" validate:"required"`
	ResponseTimeMs int64          `json:"response_time_ms" validate:"gte=0"`
	Metadata       *RawTelemetry  `json:"metadata"`
}

// RawTelemetry mirrors the interaction log shape the UI submits alongside
// an answer. Everything in it is optional.
type RawTelemetry struct {
	ReadTimeMs     int64              `json:"read_time_ms"`
	PointerSamples []RawPointerSample `json:"pointer_samples"`
	KeyEvents      []RawKeyEvent      `json:"key_events"`
	Device         *RawDevice         `json:"device"`
}

type RawPointerSample struct {
	X  float64 `json:"x"`
	Y  float64 `json:"y"`
	At int64   `json:"at"`
}

type RawKeyEvent struct {
	At int64 `json:"at"`
}

type RawDevice struct {
	UserAgent    string   `json:"user_agent"`
	Screen       string   `json:"screen"`
	Timezone     string   `json:"timezone"`
	Languages    []string `json:"languages"`
	NetworkFlags []string `json:"network_flags"`
}

type AcknowledgeEmergency struct {
	Acknowledged bool `json:"acknowledged" validate:"required"`
}
