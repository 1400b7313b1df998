package constvars

// Client-facing messages. These are safe to return to the UI layer.
const (
	ErrClientCannotProcessRequest          = "We cannot process your request, please check your input"
	ErrClientSomethingWrongWithApplication = "Something went wrong with the application, please try again later"
	ErrClientServerLongRespond             = "Server takes too long to respond, please try again"
	ErrClientSessionNotFound               = "Assessment session not found or expired"
	ErrClientSessionBusy                   = "Another submission for this session is still being processed"
	ErrClientSessionFinished               = "This assessment has already finished"
	ErrClientEmergencyNotAcknowledged      = "Crisis resources must be acknowledged before continuing"
	ErrClientEmergencyDelivery             = "We could not deliver the emergency notification, please retry immediately"
	ErrClientInvalidResponseValue          = "The submitted answer is not valid for this question"
	ErrClientNotAuthorized                 = "You are not authorized to access this session"
	ErrClientResultNotReady                = "Assessment results are not available yet"
)

// Developer-facing messages. Logged, never returned in production.
const (
	ErrDevCannotParseJSON           = "Failed to parse JSON body"
	ErrDevCannotMarshalJSON         = "Failed to marshal JSON"
	ErrDevValidationFailed          = "Request validation failed"
	ErrDevServerDeadlineExceeded    = "Request processing exceeded its deadline"
	ErrDevSessionNotFound           = "Session not found in session store"
	ErrDevSessionLockNotAcquired    = "Session lock held by another submission"
	ErrDevSessionTerminal           = "Submission to a terminal session"
	ErrDevEmergencyNotAcknowledged  = "Submission before emergency acknowledgement"
	ErrDevEmergencyPublishFailed    = "Emergency queue publish failed or was not confirmed"
	ErrDevUnknownQuestion           = "Submitted question is not in the catalog"
	ErrDevInvalidResponseValue      = "Response value failed catalog validation"
	ErrDevTokenInvalidOrExpired     = "Session token invalid or expired"
	ErrDevTokenGenerate             = "Failed to sign session token"
	ErrDevSessionTokenMismatch      = "Session token does not match the requested session"
	ErrDevRedisSet                  = "Redis SET failed"
	ErrDevRedisGet                  = "Redis GET failed"
	ErrDevRedisDelete               = "Redis DEL failed"
	ErrDevRedisSetNX                = "Redis SETNX failed"
	ErrDevRedisUnlock               = "Redis lock release failed"
	ErrDevDBInsertDocument          = "Failed to insert document"
	ErrDevDBFindDocument            = "Failed to find document"
	ErrDevMinioCreateObject         = "Failed to store object in bucket %s"
	ErrDevMinioPresignObject        = "Failed to presign object URL in bucket %s"
	ErrDevRabbitMQPublish           = "Failed to publish message to queue %s"
	ErrDevCatalogInvalid            = "Question catalog failed validation"
	ErrDevResultNotReady            = "No archived result for session"
)

// CustomValidationErrorMessages maps validator tags to user-facing text.
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"oneof":    "must be one of [%s]",
	"gte":      "must be greater than or equal to %s",
	"lte":      "must be less than or equal to %s",
	"uuid":     "must be a valid UUID",
	"pathway":  "must be one of 'onboarding', 'periodic', 'emergency', 'clinical'",
}

// TagsWithParams marks tags whose message needs parameter substitution.
var TagsWithParams = map[string]bool{
	"min":   true,
	"max":   true,
	"oneof": true,
	"gte":   true,
	"lte":   true,
}
