package assessments

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"onboarding-service/internal/app/contracts"
	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
	"onboarding-service/internal/app/services/flow"
	"onboarding-service/internal/app/services/telemetry"
	"onboarding-service/internal/pkg/constvars"
	"onboarding-service/internal/pkg/dto/requests"
	"onboarding-service/internal/pkg/dto/responses"
	"onboarding-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	Catalog            *catalog.Catalog
	Flow               *flow.Orchestrator
	SessionStore       contracts.SessionStore
	Locker             contracts.LockerService
	ArchiveRepository  contracts.SessionArchiveRepository
	EmergencyPublisher contracts.EmergencyPublisher
	ReportStorage      contracts.ReportStorage
	TokenManager       contracts.SessionTokenManager
	Log                *zap.Logger

	SessionTTL      time.Duration
	LockTTL         time.Duration
	ReportURLExpiry time.Duration
}

var (
	assessmentUsecaseInstance AssessmentUsecase
	onceAssessmentUsecase     sync.Once
)

type UsecaseDependencies struct {
	Catalog            *catalog.Catalog
	Flow               *flow.Orchestrator
	SessionStore       contracts.SessionStore
	Locker             contracts.LockerService
	ArchiveRepository  contracts.SessionArchiveRepository
	EmergencyPublisher contracts.EmergencyPublisher
	ReportStorage      contracts.ReportStorage
	TokenManager       contracts.SessionTokenManager
	Log                *zap.Logger
	SessionTTL         time.Duration
	LockTTL            time.Duration
	ReportURLExpiry    time.Duration
}

func NewAssessmentUsecase(deps UsecaseDependencies) AssessmentUsecase {
	onceAssessmentUsecase.Do(func() {
		assessmentUsecaseInstance = &assessmentUsecase{
			Catalog:            deps.Catalog,
			Flow:               deps.Flow,
			SessionStore:       deps.SessionStore,
			Locker:             deps.Locker,
			ArchiveRepository:  deps.ArchiveRepository,
			EmergencyPublisher: deps.EmergencyPublisher,
			ReportStorage:      deps.ReportStorage,
			TokenManager:       deps.TokenManager,
			Log:                deps.Log,
			SessionTTL:         deps.SessionTTL,
			LockTTL:            deps.LockTTL,
			ReportURLExpiry:    deps.ReportURLExpiry,
		}
	})
	return assessmentUsecaseInstance
}

func (uc *assessmentUsecase) CreateSession(ctx context.Context, request *requests.CreateSession) (*responses.SessionCreated, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("assessmentUsecase.CreateSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("pathway", request.Pathway),
	)

	sessionID := uuid.NewString()
	session := models.NewSession(sessionID, models.Pathway(request.Pathway), uc.Catalog.TriageDomain, catalog.DefaultClassRanking)
	session.UserContext = userContextFrom(request.UserContext)
	session.PathwayContext = uc.pathwayContextFrom(request)

	result, err := uc.Flow.Bootstrap(session)
	if err != nil {
		uc.Log.Error("assessmentUsecase.CreateSession error bootstrapping flow",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, exceptions.ErrCatalogInvalid(err)
	}

	if err := uc.SessionStore.Save(ctx, session, uc.SessionTTL); err != nil {
		return nil, err
	}

	token, err := uc.TokenManager.Generate(sessionID)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("assessmentUsecase.CreateSession session created",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)
	return &responses.SessionCreated{
		SessionID: sessionID,
		Token:     token,
		State:     string(session.State),
		Result:    result,
	}, nil
}

func (uc *assessmentUsecase) SubmitResponse(ctx context.Context, sessionID string, request *requests.SubmitResponse) (*responses.SubmissionResult, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("assessmentUsecase.SubmitResponse called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
		zap.String(constvars.LoggingQuestionIDKey, request.QuestionID),
	)

	unlock, err := uc.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	value, ok := catalog.ValueFromAny(request.Value)
	if !ok {
		return nil, exceptions.ErrInvalidResponseValue(fmt.Errorf("unsupported value shape"))
	}

	wasEmergency := session.State == models.StateEmergency

	result, err := uc.Flow.Submit(session, request.QuestionID, value, telemetry.Normalize(rawTelemetryFrom(request.Metadata)), request.ResponseTimeMs)
	if err != nil {
		return nil, mapFlowError(err)
	}

	// A freshly detected emergency must reach the on-call pipeline before
	// the submission is considered accepted. The session is persisted
	// either way so the protocol payload survives a delivery retry.
	if !wasEmergency && session.State == models.StateEmergency {
		notification := &models.EmergencyNotification{
			SessionID:  session.ID,
			Pathway:    session.Pathway,
			Protocol:   *session.Emergency,
			DetectedAt: time.Now().UTC(),
		}
		publishErr := uc.EmergencyPublisher.Publish(ctx, notification)
		if saveErr := uc.SessionStore.Save(ctx, session, uc.SessionTTL); saveErr != nil {
			return nil, saveErr
		}
		if publishErr != nil {
			uc.Log.Error("assessmentUsecase.SubmitResponse emergency delivery failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(publishErr),
			)
			return nil, exceptions.ErrEmergencyDelivery(publishErr)
		}
		return &responses.SubmissionResult{
			SessionID: sessionID,
			State:     string(session.State),
			Result:    result,
		}, nil
	}

	if session.State == models.StateComplete {
		uc.archiveSession(ctx, session, result.Results)
	}

	if err := uc.SessionStore.Save(ctx, session, uc.SessionTTL); err != nil {
		return nil, err
	}

	return &responses.SubmissionResult{
		SessionID: sessionID,
		State:     string(session.State),
		Result:    result,
	}, nil
}

func (uc *assessmentUsecase) AcknowledgeEmergency(ctx context.Context, sessionID string, request *requests.AcknowledgeEmergency) (*responses.EmergencyAcknowledged, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("assessmentUsecase.AcknowledgeEmergency called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	unlock, err := uc.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.State != models.StateEmergency || session.Emergency == nil {
		return nil, exceptions.ErrInputValidation(fmt.Errorf("session %s is not in the emergency state", sessionID), constvars.ErrClientCannotProcessRequest)
	}

	alreadyAcknowledged := session.EmergencyAcknowledged
	session.EmergencyAcknowledged = true
	if !alreadyAcknowledged {
		uc.archiveSession(ctx, session, nil)
	}

	if err := uc.SessionStore.Save(ctx, session, uc.SessionTTL); err != nil {
		return nil, err
	}

	return &responses.EmergencyAcknowledged{
		SessionID: sessionID,
		State:     string(session.State),
		Resumed:   false,
		Result:    &models.FlowResult{Type: models.FlowResultEmergency, Protocol: session.Emergency},
	}, nil
}

func (uc *assessmentUsecase) AbandonSession(ctx context.Context, sessionID string) (*responses.SessionAbandoned, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("assessmentUsecase.AbandonSession called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	unlock, err := uc.lockSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	session, err := uc.SessionStore.Find(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Terminal() {
		return nil, exceptions.ErrSessionTerminal(fmt.Errorf("session %s is already in state %s", sessionID, session.State))
	}

	session.State = models.StateAbandoned
	uc.archiveSession(ctx, session, nil)

	if err := uc.SessionStore.Delete(ctx, sessionID); err != nil {
		return nil, err
	}

	return &responses.SessionAbandoned{
		SessionID: sessionID,
		State:     string(session.State),
	}, nil
}

func (uc *assessmentUsecase) FindSessionResult(ctx context.Context, sessionID string) (*responses.SessionResult, error) {
	requestID, _ := ctx.Value(constvars.ContextRequestIDKey).(string)
	uc.Log.Info("assessmentUsecase.FindSessionResult called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingSessionIDKey, sessionID),
	)

	record, err := uc.ArchiveRepository.FindBySessionID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if record == nil {
		return nil, exceptions.ErrResultNotReady(nil)
	}

	response := &responses.SessionResult{
		SessionID:   record.SessionID,
		CompletedAt: record.FinishedAt,
		State:       string(record.State),
		Results:     record.Results,
	}
	if record.ReportObjectName != "" {
		reportURL, urlErr := uc.ReportStorage.GetObjectUrlWithExpiryTime(ctx, record.ReportObjectName, uc.ReportURLExpiry)
		if urlErr != nil {
			uc.Log.Error("assessmentUsecase.FindSessionResult error presigning report",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.String(constvars.LoggingObjectKey, record.ReportObjectName),
				zap.Error(urlErr),
			)
		} else {
			response.ReportURL = reportURL
		}
	}
	return response, nil
}

// lockSession serializes submissions per session. The caller must invoke
// the returned unlock func once done.
func (uc *assessmentUsecase) lockSession(ctx context.Context, sessionID string) (func(), error) {
	lockKey := constvars.RedisSessionLockPrefix + sessionID
	acquired, lockValue, err := uc.Locker.TryLock(ctx, lockKey, uc.LockTTL)
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, exceptions.ErrSessionBusy(nil)
	}
	return func() {
		if unlockErr := uc.Locker.Unlock(ctx, lockKey, lockValue); unlockErr != nil {
			uc.Log.Error("assessmentUsecase failed releasing session lock",
				zap.String(constvars.LoggingSessionIDKey, sessionID),
				zap.Error(unlockErr),
			)
		}
	}, nil
}

// archiveSession writes the terminal record and, for completed sessions,
// uploads the rendered report. Failures are logged but do not fail the
// submission: the redis snapshot still holds the authoritative state.
func (uc *assessmentUsecase) archiveSession(ctx context.Context, session *models.Session, results *models.CompletionResults) {
	record := &models.ArchivedSession{
		SessionID:  session.ID,
		Pathway:    session.Pathway,
		State:      session.State,
		StartedAt:  session.CreatedAt,
		FinishedAt: time.Now().UTC(),
		Results:    results,
		Emergency:  session.Emergency,
		Fraud:      session.Fraud,
		Risk:       session.Risk,
	}

	if record.Results != nil {
		report, err := json.Marshal(record.Results)
		if err == nil {
			objectName := fmt.Sprintf("reports/%s.json", session.ID)
			if uploadErr := uc.ReportStorage.UploadReport(ctx, objectName, report); uploadErr != nil {
				uc.Log.Error("assessmentUsecase.archiveSession report upload failed",
					zap.String(constvars.LoggingSessionIDKey, session.ID),
					zap.String(constvars.LoggingObjectKey, objectName),
					zap.Error(uploadErr),
				)
			} else {
				record.ReportObjectName = objectName
			}
		}
	}

	if err := uc.ArchiveRepository.Insert(ctx, record); err != nil {
		uc.Log.Error("assessmentUsecase.archiveSession archive insert failed",
			zap.String(constvars.LoggingSessionIDKey, session.ID),
			zap.Error(err),
		)
	}
}

func mapFlowError(err error) error {
	switch {
	case errors.Is(err, flow.ErrUnknownQuestion):
		return exceptions.ErrUnknownQuestion(err)
	case errors.Is(err, flow.ErrInvalidValue):
		return exceptions.ErrInvalidResponseValue(err)
	case errors.Is(err, flow.ErrSessionTerminal):
		return exceptions.ErrSessionTerminal(err)
	case errors.Is(err, flow.ErrEmergencyNotAcknowledged):
		return exceptions.ErrEmergencyNotAcknowledged(err)
	default:
		return err
	}
}

func userContextFrom(dto *requests.SessionUserContext) models.UserFraudContext {
	if dto == nil {
		// First-time profile: neutral trust, nothing known yet.
		return models.UserFraudContext{
			FirstTimeUser:   true,
			TrustScore:      0.5,
			MotivationScore: 0.5,
		}
	}
	return models.UserFraudContext{
		FirstTimeUser:        dto.FirstTimeUser,
		TrustScore:           dto.TrustScore,
		PriorFraudAttempts:   dto.PriorFraudAttempts,
		MotivationScore:      dto.MotivationScore,
		DemographicRiskScore: dto.DemographicRiskScore,
		BaselineResponseMs:   dto.BaselineResponseMs,
	}
}

func (uc *assessmentUsecase) pathwayContextFrom(request *requests.CreateSession) models.PathwayFraudContext {
	mode := models.QuestionnaireMode(request.Mode)
	if mode == "" {
		mode = models.ModeClinical
	}
	pathway := models.Pathway(request.Pathway)
	return models.PathwayFraudContext{
		Pathway:            pathway,
		Mode:               mode,
		ExpectedDurationMs: int64(uc.Catalog.TotalQuestions()) * 30000,
		DiagnosticGrade:    pathway == models.PathwayClinical,
	}
}

func rawTelemetryFrom(dto *requests.RawTelemetry) *telemetry.Raw {
	if dto == nil {
		return nil
	}
	raw := &telemetry.Raw{
		ReadTimeMs: dto.ReadTimeMs,
	}
	for _, p := range dto.PointerSamples {
		raw.PointerSamples = append(raw.PointerSamples, telemetry.PointerSample{X: p.X, Y: p.Y, At: p.At})
	}
	for _, k := range dto.KeyEvents {
		raw.KeyEvents = append(raw.KeyEvents, telemetry.KeyEvent{At: k.At})
	}
	if dto.Device != nil {
		raw.Device = &telemetry.Device{
			UserAgent:    dto.Device.UserAgent,
			Screen:       dto.Device.Screen,
			Timezone:     dto.Device.Timezone,
			Languages:    dto.Device.Languages,
			NetworkFlags: dto.Device.NetworkFlags,
		}
	}
	return raw
}
