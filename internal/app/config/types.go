package config

import (
	"context"
	"log"

	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type (
	Bootstrap struct {
		Router         *chi.Mux
		MongoClient    *mongo.Client
		Logger         *zap.Logger
		DriverConfig   *DriverConfig
		InternalConfig *InternalConfig
	}

	InternalConfig struct {
		App  App
		FHIR FHIR
	}

	DriverConfig struct {
		MongoDB MongoDB
		Logger  Logger
	}

	App struct {
		Env                   string
		Port                  string
		Version               string
		Address               string
		ShutdownTimeout       int
		MaxRequests           int
		PageRequestsPerSecond float64
		PageRequestsBurst     int
		PageBlockTimeInSecond int
	}

	MongoDB struct {
		Port     string
		Host     string
		DbName   string
		Username string
		Password string
	}

	Logger struct {
		Level               string
		OutputFileName      string
		OutputErrorFileName string
	}

	FHIR struct {
		BaseUrl string
	}
)

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.MongoClient != nil {
		if err := b.MongoClient.Disconnect(ctx); err != nil {
			return err
		}
		log.Println("Successfully closing MongoDB")
	}

	if b.Logger != nil {
		if err := b.Logger.Sync(); err != nil {
			return err
		}
	}

	return nil
}
