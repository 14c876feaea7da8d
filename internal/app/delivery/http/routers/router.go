package routers

import (
	"caregate-service/internal/app/config"
	"caregate-service/internal/app/delivery/http/middlewares"
	"caregate-service/internal/app/services/core/patients"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	logger *zap.Logger,
	middleware *middlewares.Middlewares,
	patientController *patients.PatientController,
	patientPageController *patients.PatientPageController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.Logging(logger))
	router.Use(middleware.ErrorHandler)

	router.Route("/api/patients", func(r chi.Router) {
		r.Use(middleware.APIRateLimiter())
		attachPatientAPIRoutes(r, patientController)
	})

	// The page surface gets the blocking limiter: a client that keeps
	// hammering the forms is cut off for a while instead of retrying
	// against the upstream every second.
	pageRateLimiter := middlewares.NewRateLimiter(
		internalConfig.App.PageRequestsPerSecond,
		internalConfig.App.PageRequestsBurst,
		time.Duration(internalConfig.App.PageBlockTimeInSecond)*time.Second,
	)
	router.Group(func(r chi.Router) {
		r.Use(pageRateLimiter.Limit)
		attachPatientPageRoutes(r, patientPageController)
	})
}
