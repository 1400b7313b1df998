package assessments

import (
	"context"

	"onboarding-service/internal/pkg/dto/requests"
	"onboarding-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.SessionCreated, error)
	SubmitResponse(ctx context.Context, sessionID string, request *requests.SubmitResponse) (*responses.SubmissionResult, error)
	AcknowledgeEmergency(ctx context.Context, sessionID string, request *requests.AcknowledgeEmergency) (*responses.EmergencyAcknowledged, error)
	AbandonSession(ctx context.Context, sessionID string) (*responses.SessionAbandoned, error)
	FindSessionResult(ctx context.Context, sessionID string) (*responses.SessionResult, error)
}
