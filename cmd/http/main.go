package main

import (
	"caregate-service/internal/app/config"
	"caregate-service/internal/app/delivery/http/middlewares"
	"caregate-service/internal/app/delivery/http/routers"
	"caregate-service/internal/app/drivers/database"
	"caregate-service/internal/app/drivers/logger"
	"caregate-service/internal/app/services/core/audit"
	"caregate-service/internal/app/services/core/patients"
	patientsFhir "caregate-service/internal/app/services/fhir/patients"
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	mongoClient := database.NewMongoDB(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoClient:    mongoClient,
		Logger:         zapLogger,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}
	bootstrapingTheApp(bootstrap)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	zapLogger.Info("server started",
		zap.String("port", internalConfig.App.Port),
		zap.String("env", internalConfig.App.Env),
	)

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	zapLogger.Info("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Error while closing resources: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap) {
	// Middlewares
	middleware := middlewares.NewMiddlewares(bootstrap.Logger, bootstrap.InternalConfig)

	// Patient FHIR client
	patientFhirClient := patientsFhir.NewPatientFhirClient(bootstrap.InternalConfig.FHIR.BaseUrl, bootstrap.Logger)

	// Audit log
	auditLogRepository := audit.NewAuditLogMongoRepository(
		bootstrap.MongoClient,
		bootstrap.DriverConfig.MongoDB.DbName,
	)

	// Patient
	patientUsecase := patients.NewPatientUsecase(patientFhirClient, auditLogRepository, bootstrap.Logger)
	patientController := patients.NewPatientController(bootstrap.Logger, patientUsecase)
	patientPageController := patients.NewPatientPageController(bootstrap.Logger, patientFhirClient)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		bootstrap.Logger,
		middleware,
		patientController,
		patientPageController,
	)
}
