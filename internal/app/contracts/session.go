package contracts

import (
	"context"
	"time"

	"onboarding-service/internal/app/models"
)

// SessionStore persists in-flight assessment sessions.
type SessionStore interface {
	Save(ctx context.Context, session *models.Session, ttl time.Duration) error
	Find(ctx context.Context, sessionID string) (*models.Session, error)
	Delete(ctx context.Context, sessionID string) error
}

// SessionTokenManager issues and verifies the bearer token that scopes a
// caller to a single assessment session.
type SessionTokenManager interface {
	Generate(sessionID string) (string, error)
	Verify(token string) (sessionID string, err error)
}
