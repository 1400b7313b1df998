package middlewares

import (
	"fmt"
	"net/http"

	"onboarding-service/internal/pkg/utils"

	"go.uber.org/zap"
)

func (m *Middlewares) Recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				m.Log.Error("panic recovered in handler",
					zap.Any("panic", rec),
					zap.String("endpoint", r.URL.Path),
				)
				utils.BuildErrorResponse(m.Log, w, fmt.Errorf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
