package tokenmanager

import (
	"errors"
	"time"

	"onboarding-service/internal/app/contracts"
	"onboarding-service/internal/pkg/exceptions"

	"github.com/golang-jwt/jwt/v4"
)

// jwtTokenManager scopes a bearer token to exactly one assessment
// session via the session_id claim.
type jwtTokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewJWTTokenManager(secret string, ttl time.Duration) contracts.SessionTokenManager {
	return &jwtTokenManager{
		secret: []byte(secret),
		ttl:    ttl,
	}
}

func (m *jwtTokenManager) Generate(sessionID string) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"session_id": sessionID,
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
		"exp":        now.Add(m.ttl).Unix(),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", exceptions.ErrTokenGenerate(err)
	}
	return signed, nil
}

func (m *jwtTokenManager) Verify(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", exceptions.ErrTokenInvalidOrExpired(err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		if sessionID, ok := claims["session_id"].(string); ok && sessionID != "" {
			return sessionID, nil
		}
	}
	return "", exceptions.ErrTokenInvalidOrExpired(errors.New("missing session_id claim"))
}
