package contracts

import (
	"context"

	"onboarding-service/internal/app/models"
)

// EmergencyPublisher delivers emergency notifications to the on-call
// pipeline. Publish must not return nil unless the broker confirmed the
// message.
type EmergencyPublisher interface {
	Publish(ctx context.Context, notification *models.EmergencyNotification) error
}
