package routers

import (
	"fmt"
	"time"

	"onboarding-service/internal/app/config"
	"onboarding-service/internal/app/delivery/http/middlewares"
	"onboarding-service/internal/app/services/assessments"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	assessmentController *assessments.AssessmentController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.Recoverer)

	endpointPrefix := internalConfig.App.EndpointPrefix
	if endpointPrefix == "" {
		endpointPrefix = "/v1"
	}
	router.Route(fmt.Sprintf("%s/assessments", endpointPrefix), func(r chi.Router) {
		attachAssessmentRoutes(r, middlewares, assessmentController)
	})
}
