package constvars

type ContextKey string

const (
	ContextRequestIDKey ContextKey = "request_id"
	ContextSessionIDKey ContextKey = "session_id"
)

const (
	ResourceAssessments = "assessments"
	ResourceSessions    = "sessions"
)

const (
	RedisSessionKeyPrefix = "assessment:session:"
	RedisSessionLockPrefix = "assessment:lock:"
)
