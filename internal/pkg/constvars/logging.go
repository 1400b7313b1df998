package constvars

const (
	LoggingRequestIDKey   = "request_id"
	LoggingSessionIDKey   = "session_id"
	LoggingQuestionIDKey  = "question_id"
	LoggingStateKey       = "state"
	LoggingDomainKey      = "domain"
	LoggingRedisKey       = "redis_key"
	LoggingLockValueKey   = "lock_value"
	LoggingQueueMessageID = "queue_message_id"
	LoggingBucketKey      = "bucket"
	LoggingObjectKey      = "object"

	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
)
