package contracts

import (
	"context"

	"onboarding-service/internal/app/models"
)

// SessionArchiveRepository stores terminal session outcomes for later
// retrieval and audit.
type SessionArchiveRepository interface {
	Insert(ctx context.Context, record *models.ArchivedSession) error
	FindBySessionID(ctx context.Context, sessionID string) (*models.ArchivedSession, error)
}
