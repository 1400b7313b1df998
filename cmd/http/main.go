package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"onboarding-service/internal/app/config"
	"onboarding-service/internal/app/delivery/http/middlewares"
	"onboarding-service/internal/app/delivery/http/routers"
	"onboarding-service/internal/app/drivers/database"
	"onboarding-service/internal/app/drivers/logger"
	"onboarding-service/internal/app/drivers/messaging"
	"onboarding-service/internal/app/drivers/storage"
	"onboarding-service/internal/app/services/assessments"
	"onboarding-service/internal/app/services/catalog"
	"onboarding-service/internal/app/services/flow"
	"onboarding-service/internal/app/services/shared/emergencyqueue"
	"onboarding-service/internal/app/services/shared/locker"
	"onboarding-service/internal/app/services/shared/redis"
	"onboarding-service/internal/app/services/shared/reportstorage"
	"onboarding-service/internal/app/services/shared/sessionstore"
	"onboarding-service/internal/app/services/shared/tokenmanager"

	"github.com/go-chi/chi/v5"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	bootLog := logger.NewLogrusLogger(internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		bootLog.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	mongoClient := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitConn := messaging.NewRabbitMQ(driverConfig)
	minioClient := storage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitConn,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	questionCatalog, err := catalog.Default()
	if err != nil {
		bootLog.Fatalf("Question catalog failed validation: %v", err)
	}

	// Shared infrastructure
	redisRepository := redis.NewRedisRepository(redisClient)
	lockerService := locker.NewLockService(redisRepository, zapLogger)
	sessionStore := sessionstore.NewSessionStore(redisRepository)
	tokenManager := tokenmanager.NewJWTTokenManager(
		internalConfig.JWT.Secret,
		time.Duration(internalConfig.JWT.ExpTimeInHour)*time.Hour,
	)
	emergencyPublisher, err := emergencyqueue.NewService(
		rabbitConn,
		zapLogger,
		internalConfig.Assessment.EmergencyQueue,
		internalConfig.Assessment.EmergencyDLQ,
		internalConfig.Assessment.EmergencyPublishRatePerSec,
	)
	if err != nil {
		bootLog.Fatalf("Failed to initialize emergency queue: %v", err)
	}
	reportStorage := reportstorage.NewMinioReportStorage(minioClient, internalConfig.Assessment.ReportBucketName)

	// Assessments
	archiveRepository := assessments.NewSessionArchiveMongoRepository(
		mongoClient,
		driverConfig.MongoDB.DbName,
		internalConfig.Assessment.ArchiveCollection,
	)
	assessmentUsecase := assessments.NewAssessmentUsecase(assessments.UsecaseDependencies{
		Catalog:            questionCatalog,
		Flow:               flow.NewOrchestrator(questionCatalog, zapLogger),
		SessionStore:       sessionStore,
		Locker:             lockerService,
		ArchiveRepository:  archiveRepository,
		EmergencyPublisher: emergencyPublisher,
		ReportStorage:      reportStorage,
		TokenManager:       tokenManager,
		Log:                zapLogger,
		SessionTTL:         time.Duration(internalConfig.Assessment.SessionTTLInHours) * time.Hour,
		LockTTL:            time.Duration(internalConfig.Assessment.LockTTLInSeconds) * time.Second,
		ReportURLExpiry:    time.Duration(internalConfig.Assessment.ReportURLExpiryTimeInHours) * time.Hour,
	})
	assessmentController := assessments.NewAssessmentController(zapLogger, assessmentUsecase)

	appMiddlewares := &middlewares.Middlewares{
		Log:            zapLogger,
		TokenManager:   tokenManager,
		InternalConfig: internalConfig,
	}

	routers.SetupRoutes(chiRouter, internalConfig, appMiddlewares, assessmentController)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLog.Fatalf("Server failed to start: %v", err)
		}
	}()
	bootLog.Printf("Server listening on %s", internalConfig.App.Port)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)
	<-c

	bootLog.Println("Waiting for pending requests to finish..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeoutInSeconds),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLog.Fatalf("Error closing drivers: %v", err)
	}

	bootLog.Println("Server exiting")
}
