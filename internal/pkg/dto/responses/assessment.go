package responses

import (
	"time"

	"onboarding-service/internal/app/models"
)

type SessionCreated struct {
	SessionID string             `json:"session_id"`
	Token     string             `json:"token"`
	State     string             `json:"state"`
	Result    *models.FlowResult `json:"result"`
}

type SubmissionResult struct {
	SessionID string             `json:"session_id"`
	State     string             `json:"state"`
	Result    *models.FlowResult `json:"result"`
}

type EmergencyAcknowledged struct {
	SessionID string             `json:"session_id"`
	State     string             `json:"state"`
	Resumed   bool               `json:"resumed"`
	Result    *models.FlowResult `json:"result,omitempty"`
}

type SessionAbandoned struct {
	SessionID string `json:"session_id"`
	State     string `json:"state"`
}

type SessionResult struct {
	SessionID   string                    `json:"session_id"`
	CompletedAt time.Time                 `json:"completed_at"`
	State       string                    `json:"state"`
	Results     *models.CompletionResults `json:"results"`
	ReportURL   string                    `json:"report_url,omitempty"`
}
