package sessionstore

import (
	"context"
	"time"

	"onboarding-service/internal/app/contracts"
	"onboarding-service/internal/app/models"
	"onboarding-service/internal/pkg/constvars"
	"onboarding-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type sessionStore struct {
	redisRepo contracts.RedisRepository
}

func NewSessionStore(redisRepo contracts.RedisRepository) contracts.SessionStore {
	return &sessionStore{redisRepo: redisRepo}
}

func (s *sessionStore) Save(ctx context.Context, session *models.Session, ttl time.Duration) error {
	return s.redisRepo.Set(ctx, constvars.RedisSessionKeyPrefix+session.ID, session, ttl)
}

func (s *sessionStore) Find(ctx context.Context, sessionID string) (*models.Session, error) {
	data, err := s.redisRepo.Get(ctx, constvars.RedisSessionKeyPrefix+sessionID)
	if err != nil {
		return nil, err
	}
	if data == "" {
		return nil, exceptions.ErrSessionNotFound(nil)
	}

	session := new(models.Session)
	if err := json.Unmarshal([]byte(data), session); err != nil {
		return nil, exceptions.ErrCannotParseJSON(err)
	}
	return session, nil
}

func (s *sessionStore) Delete(ctx context.Context, sessionID string) error {
	return s.redisRepo.Delete(ctx, constvars.RedisSessionKeyPrefix+sessionID)
}
