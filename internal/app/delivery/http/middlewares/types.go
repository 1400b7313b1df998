package middlewares

import (
	"onboarding-service/internal/app/config"
	"onboarding-service/internal/app/contracts"

	"go.uber.org/zap"
)

type Middlewares struct {
	Log            *zap.Logger
	TokenManager   contracts.SessionTokenManager
	InternalConfig *config.InternalConfig
}
