package routers

import (
	"onboarding-service/internal/app/delivery/http/middlewares"
	"onboarding-service/internal/app/services/assessments"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, middlewares *middlewares.Middlewares, assessmentController *assessments.AssessmentController) {
	router.Post("/sessions", assessmentController.CreateSession)

	router.Group(func(r chi.Router) {
		r.Use(middlewares.SessionTokenAuth)
		r.Post("/sessions/{sessionID}/responses", assessmentController.SubmitResponse)
		r.Post("/sessions/{sessionID}/emergency-acknowledgement", assessmentController.AcknowledgeEmergency)
		r.Delete("/sessions/{sessionID}", assessmentController.AbandonSession)
		r.Get("/sessions/{sessionID}/result", assessmentController.FindSessionResult)
	})
}
