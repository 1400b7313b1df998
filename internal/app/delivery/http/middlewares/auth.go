package middlewares

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"onboarding-service/internal/pkg/constvars"
	"onboarding-service/internal/pkg/exceptions"
	"onboarding-service/internal/pkg/utils"
)

// SessionTokenAuth verifies the session bearer token and stashes the
// session it was issued for in the request context.
func (m *Middlewares) SessionTokenAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get(constvars.HeaderAuthorization)
		token := strings.TrimPrefix(authorization, "Bearer ")
		if token == "" || token == authorization {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(errors.New("missing bearer token")))
			return
		}

		sessionID, err := m.TokenManager.Verify(token)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		ctx := context.WithValue(r.Context(), constvars.ContextSessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
