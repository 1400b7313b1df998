package assessments

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"onboarding-service/internal/app/models"
	"onboarding-service/internal/app/services/catalog"
	"onboarding-service/internal/app/services/flow"
	"onboarding-service/internal/pkg/dto/requests"
	"onboarding-service/internal/pkg/exceptions"
)

type fakeSessionStore struct {
	sessions map[string]*models.Session
	saveErr  error
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: make(map[string]*models.Session)}
}

func (f *fakeSessionStore) Save(_ context.Context, session *models.Session, _ time.Duration) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sessions[session.ID] = session
	return nil
}

func (f *fakeSessionStore) Find(_ context.Context, sessionID string) (*models.Session, error) {
	session, ok := f.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(nil)
	}
	return session, nil
}

func (f *fakeSessionStore) Delete(_ context.Context, sessionID string) error {
	delete(f.sessions, sessionID)
	return nil
}

type fakeLocker struct {
	denied  bool
	unlocks int
}

func (f *fakeLocker) TryLock(_ context.Context, _ string, _ time.Duration) (bool, string, error) {
	if f.denied {
		return false, "", nil
	}
	return true, "lock-value", nil
}

func (f *fakeLocker) Unlock(_ context.Context, _, _ string) error {
	f.unlocks++
	return nil
}

type fakeArchiveRepository struct {
	inserted []*models.ArchivedSession
	record   *models.ArchivedSession
}

func (f *fakeArchiveRepository) Insert(_ context.Context, record *models.ArchivedSession) error {
	f.inserted = append(f.inserted, record)
	return nil
}

func (f *fakeArchiveRepository) FindBySessionID(_ context.Context, _ string) (*models.ArchivedSession, error) {
	return f.record, nil
}

type fakeEmergencyPublisher struct {
	err       error
	published []*models.EmergencyNotification
}

func (f *fakeEmergencyPublisher) Publish(_ context.Context, notification *models.EmergencyNotification) error {
	if f.err != nil {
		return f.err
	}
	f.published = append(f.published, notification)
	return nil
}

type fakeReportStorage struct {
	uploads map[string][]byte
	urlErr  error
}

func newFakeReportStorage() *fakeReportStorage {
	return &fakeReportStorage{uploads: make(map[string][]byte)}
}

func (f *fakeReportStorage) UploadReport(_ context.Context, objectName string, content []byte) error {
	f.uploads[objectName] = content
	return nil
}

func (f *fakeReportStorage) GetObjectUrlWithExpiryTime(_ context.Context, objectName string, _ time.Duration) (string, error) {
	if f.urlErr != nil {
		return "", f.urlErr
	}
	return "https://storage.local/" + objectName, nil
}

type fakeTokenManager struct{}

func (fakeTokenManager) Generate(sessionID string) (string, error) { return "token-" + sessionID, nil }
func (fakeTokenManager) Verify(token string) (string, error)       { return "", nil }

type usecaseFixture struct {
	uc        *assessmentUsecase
	store     *fakeSessionStore
	locker    *fakeLocker
	archive   *fakeArchiveRepository
	publisher *fakeEmergencyPublisher
	storage   *fakeReportStorage
}

func newUsecaseFixture(t *testing.T) *usecaseFixture {
	t.Helper()
	cat, err := catalog.Default()
	assert.NoError(t, err)

	f := &usecaseFixture{
		store:     newFakeSessionStore(),
		locker:    &fakeLocker{},
		archive:   &fakeArchiveRepository{},
		publisher: &fakeEmergencyPublisher{},
		storage:   newFakeReportStorage(),
	}
	f.uc = &assessmentUsecase{
		Catalog:            cat,
		Flow:               flow.NewOrchestrator(cat, zap.NewNop()),
		SessionStore:       f.store,
		Locker:             f.locker,
		ArchiveRepository:  f.archive,
		EmergencyPublisher: f.publisher,
		ReportStorage:      f.storage,
		TokenManager:       fakeTokenManager{},
		Log:                zap.NewNop(),
		SessionTTL:         24 * time.Hour,
		LockTTL:            15 * time.Second,
		ReportURLExpiry:    time.Hour,
	}
	return f
}

func statusCodeOf(t *testing.T, err error) int {
	t.Helper()
	var customErr *exceptions.CustomError
	assert.True(t, errors.As(err, &customErr), "expected a CustomError, got %v", err)
	return customErr.StatusCode
}

func TestCreateSession(t *testing.T) {
	t.Run("Returns Token And First Question", func(t *testing.T) {
		f := newUsecaseFixture(t)

		response, err := f.uc.CreateSession(context.Background(), &requests.CreateSession{Pathway: "onboarding"})

		assert.NoError(t, err)
		assert.NotEmpty(t, response.SessionID)
		assert.Equal(t, "token-"+response.SessionID, response.Token)
		assert.Equal(t, string(models.StateAwaitingResponse), response.State)
		assert.Equal(t, models.FlowResultQuestion, response.Result.Type)
		assert.Equal(t, "age", response.Result.Question.ID)
	})

	t.Run("Persists The Session", func(t *testing.T) {
		f := newUsecaseFixture(t)

		response, err := f.uc.CreateSession(context.Background(), &requests.CreateSession{Pathway: "clinical"})

		assert.NoError(t, err)
		stored, ok := f.store.sessions[response.SessionID]
		assert.True(t, ok)
		assert.Equal(t, models.PathwayClinical, stored.Pathway)
		assert.True(t, stored.PathwayContext.DiagnosticGrade)
	})

	t.Run("Defaults The User Context", func(t *testing.T) {
		f := newUsecaseFixture(t)

		response, err := f.uc.CreateSession(context.Background(), &requests.CreateSession{Pathway: "onboarding"})

		assert.NoError(t, err)
		stored := f.store.sessions[response.SessionID]
		assert.True(t, stored.UserContext.FirstTimeUser)
		assert.Equal(t, 0.5, stored.UserContext.TrustScore)
	})
}

func TestSubmitResponse(t *testing.T) {
	ctx := context.Background()

	createSession := func(t *testing.T, f *usecaseFixture) string {
		t.Helper()
		response, err := f.uc.CreateSession(ctx, &requests.CreateSession{Pathway: "onboarding"})
		assert.NoError(t, err)
		return response.SessionID
	}

	t.Run("Accepts An Answer And Serves The Next Question", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := createSession(t, f)

		response, err := f.uc.SubmitResponse(ctx, sessionID, &requests.SubmitResponse{
			QuestionID:     "age",
			Value:          float64(30),
			ResponseTimeMs: 2600,
		})

		assert.NoError(t, err)
		assert.Equal(t, string(models.StateAwaitingResponse), response.State)
		assert.Equal(t, "biological_sex", response.Result.Question.ID)
		assert.Equal(t, 1, f.locker.unlocks)
	})

	t.Run("Busy Session Is Rejected", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := createSession(t, f)
		f.locker.denied = true

		_, err := f.uc.SubmitResponse(ctx, sessionID, &requests.SubmitResponse{QuestionID: "age", Value: float64(30)})

		assert.Equal(t, 409, statusCodeOf(t, err))
	})

	t.Run("Unknown Session", func(t *testing.T) {
		f := newUsecaseFixture(t)

		_, err := f.uc.SubmitResponse(ctx, "missing", &requests.SubmitResponse{QuestionID: "age", Value: float64(30)})

		assert.Equal(t, 404, statusCodeOf(t, err))
	})

	t.Run("Unsupported Value Shape", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := createSession(t, f)

		_, err := f.uc.SubmitResponse(ctx, sessionID, &requests.SubmitResponse{
			QuestionID: "age",
			Value:      map[string]interface{}{"x": 1},
		})

		assert.Equal(t, 400, statusCodeOf(t, err))
	})

	t.Run("Emergency Is Published Before Acceptance", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := createSession(t, f)

		response, err := f.uc.SubmitResponse(ctx, sessionID, &requests.SubmitResponse{
			QuestionID:     "emergency_check",
			Value:          []interface{}{"chest_pain"},
			ResponseTimeMs: 2600,
		})

		assert.NoError(t, err)
		assert.Equal(t, string(models.StateEmergency), response.State)
		assert.Equal(t, models.FlowResultEmergency, response.Result.Type)
		assert.Len(t, f.publisher.published, 1)
		assert.Equal(t, sessionID, f.publisher.published[0].SessionID)
		assert.Equal(t, models.EmergencySeveritySevere, f.publisher.published[0].Protocol.Severity)
	})

	t.Run("Failed Emergency Delivery Keeps The Session And Fails The Call", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := createSession(t, f)
		f.publisher.err = fmt.Errorf("broker unavailable")

		_, err := f.uc.SubmitResponse(ctx, sessionID, &requests.SubmitResponse{
			QuestionID: "emergency_check",
			Value:      []interface{}{"chest_pain"},
		})

		assert.Equal(t, 502, statusCodeOf(t, err))
		stored := f.store.sessions[sessionID]
		assert.Equal(t, models.StateEmergency, stored.State)
		assert.NotNil(t, stored.Emergency)
	})

	t.Run("Completion Archives And Uploads The Report", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := createSession(t, f)

		answers := []struct {
			id    string
			value interface{}
			ms    int64
		}{
			{"age", float64(30), 2600},
			{"biological_sex", "female", 3400},
			{"emergency_check", []interface{}{"none"}, 2900},
			{"pain_severity", float64(0), 4100},
			{"mood_interest", float64(0), 3100},
			{"chronic_conditions_flag", false, 3700},
		}
		var lastState string
		for _, a := range answers {
			res, err := f.uc.SubmitResponse(ctx, sessionID, &requests.SubmitResponse{
				QuestionID:     a.id,
				Value:          a.value,
				ResponseTimeMs: a.ms,
			})
			assert.NoError(t, err)
			lastState = res.State
		}

		assert.Equal(t, string(models.StateComplete), lastState)
		assert.Len(t, f.archive.inserted, 1)
		record := f.archive.inserted[0]
		assert.Equal(t, sessionID, record.SessionID)
		assert.NotNil(t, record.Results)
		assert.Equal(t, fmt.Sprintf("reports/%s.json", sessionID), record.ReportObjectName)
		assert.Contains(t, f.storage.uploads, record.ReportObjectName)
	})
}

func TestAcknowledgeEmergency(t *testing.T) {
	ctx := context.Background()

	emergencySession := func(t *testing.T, f *usecaseFixture) string {
		t.Helper()
		response, err := f.uc.CreateSession(ctx, &requests.CreateSession{Pathway: "onboarding"})
		assert.NoError(t, err)
		_, err = f.uc.SubmitResponse(ctx, response.SessionID, &requests.SubmitResponse{
			QuestionID: "emergency_check",
			Value:      []interface{}{"breathing_difficulty"},
		})
		assert.NoError(t, err)
		return response.SessionID
	}

	t.Run("Acknowledges And Archives Once", func(t *testing.T) {
		f := newUsecaseFixture(t)
		sessionID := emergencySession(t, f)

		response, err := f.uc.AcknowledgeEmergency(ctx, sessionID, &requests.AcknowledgeEmergency{Acknowledged: true})

		assert.NoError(t, err)
		assert.Equal(t, string(models.StateEmergency), response.State)
		assert.False(t, response.Resumed)
		assert.Equal(t, models.FlowResultEmergency, response.Result.Type)
		assert.Len(t, f.archive.inserted, 1)
		assert.NotNil(t, f.archive.inserted[0].Emergency)

		_, err = f.uc.AcknowledgeEmergency(ctx, sessionID, &requests.AcknowledgeEmergency{Acknowledged: true})
		assert.NoError(t, err)
		assert.Len(t, f.archive.inserted, 1)
	})

	t.Run("Rejects Sessions Not In Emergency", func(t *testing.T) {
		f := newUsecaseFixture(t)
		response, err := f.uc.CreateSession(ctx, &requests.CreateSession{Pathway: "onboarding"})
		assert.NoError(t, err)

		_, err = f.uc.AcknowledgeEmergency(ctx, response.SessionID, &requests.AcknowledgeEmergency{Acknowledged: true})

		assert.Equal(t, 400, statusCodeOf(t, err))
	})
}

func TestAbandonSession(t *testing.T) {
	ctx := context.Background()

	t.Run("Abandons And Drops The Snapshot", func(t *testing.T) {
		f := newUsecaseFixture(t)
		created, err := f.uc.CreateSession(ctx, &requests.CreateSession{Pathway: "onboarding"})
		assert.NoError(t, err)

		response, err := f.uc.AbandonSession(ctx, created.SessionID)

		assert.NoError(t, err)
		assert.Equal(t, string(models.StateAbandoned), response.State)
		assert.NotContains(t, f.store.sessions, created.SessionID)
		assert.Len(t, f.archive.inserted, 1)
		assert.Equal(t, models.StateAbandoned, f.archive.inserted[0].State)
	})

	t.Run("Terminal Session Cannot Be Abandoned", func(t *testing.T) {
		f := newUsecaseFixture(t)
		created, err := f.uc.CreateSession(ctx, &requests.CreateSession{Pathway: "onboarding"})
		assert.NoError(t, err)
		f.store.sessions[created.SessionID].State = models.StateComplete

		_, err = f.uc.AbandonSession(ctx, created.SessionID)

		assert.Equal(t, 409, statusCodeOf(t, err))
	})
}

func TestFindSessionResult(t *testing.T) {
	ctx := context.Background()

	t.Run("Not Ready", func(t *testing.T) {
		f := newUsecaseFixture(t)

		_, err := f.uc.FindSessionResult(ctx, "s1")

		assert.Equal(t, 404, statusCodeOf(t, err))
	})

	t.Run("Returns Archived Results With Report Link", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.archive.record = &models.ArchivedSession{
			SessionID:        "s1",
			State:            models.StateComplete,
			FinishedAt:       time.Now().UTC(),
			Results:          &models.CompletionResults{RiskLevel: models.RiskLevelLow},
			ReportObjectName: "reports/s1.json",
		}

		response, err := f.uc.FindSessionResult(ctx, "s1")

		assert.NoError(t, err)
		assert.Equal(t, "s1", response.SessionID)
		assert.Equal(t, string(models.StateComplete), response.State)
		assert.Equal(t, "https://storage.local/reports/s1.json", response.ReportURL)
	})

	t.Run("Presign Failure Omits The Link", func(t *testing.T) {
		f := newUsecaseFixture(t)
		f.storage.urlErr = fmt.Errorf("minio down")
		f.archive.record = &models.ArchivedSession{
			SessionID:        "s1",
			State:            models.StateComplete,
			ReportObjectName: "reports/s1.json",
		}

		response, err := f.uc.FindSessionResult(ctx, "s1")

		assert.NoError(t, err)
		assert.Empty(t, response.ReportURL)
	})
}
