package constvars

const (
	ResponseUnknown = "unknown"

	SessionCreatedSuccess          = "assessment session created successfully"
	ResponseSubmittedSuccess       = "response submitted successfully"
	EmergencyAcknowledgedSuccess   = "emergency protocol acknowledged"
	SessionAbandonedSuccess        = "assessment session closed"
	FindSessionResultSuccess       = "assessment result retrieved successfully"
)
