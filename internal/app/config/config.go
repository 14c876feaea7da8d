package config

import (
	"caregate-service/internal/pkg/utils"

	"github.com/joho/godotenv"
)

func init() {
	godotenv.Load()
}

func NewDriverConfig() *DriverConfig {
	return &DriverConfig{
		MongoDB: MongoDB{
			Port:     utils.GetEnvString("MONGODB_PORT", "27017"),
			Host:     utils.GetEnvString("MONGODB_HOST", "localhost"),
			DbName:   utils.GetEnvString("MONGODB_DB_NAME", "caregate"),
			Username: utils.GetEnvString("MONGODB_USERNAME", "defaultUsername"),
			Password: utils.GetEnvString("MONGODB_PASSWORD", "defaultPassword"),
		},
		Logger: Logger{
			Level:               utils.GetEnvString("LOGGER_LEVEL", "debug"),
			OutputFileName:      utils.GetEnvString("LOGGER_OUTPUT_FILENAME", "logger.log"),
			OutputErrorFileName: utils.GetEnvString("LOGGER_OUTPUT_ERROR_FILENAME", "logger_error.log"),
		},
	}
}

func NewInternalConfig() *InternalConfig {
	return &InternalConfig{
		App: App{
			Env:                   utils.GetEnvString("APP_ENV", "development"),
			Port:                  utils.GetEnvString("APP_PORT", ":8080"),
			Version:               utils.GetEnvString("APP_VERSION", "v1.0"),
			Address:               utils.GetEnvString("APP_ADDRESS", "localhost"),
			ShutdownTimeout:       utils.GetEnvInt("APP_SHUTDOWN_TIMEOUT", 10),
			MaxRequests:           utils.GetEnvInt("APP_MAX_REQUEST", 10),
			PageRequestsPerSecond: utils.GetEnvFloat("APP_PAGE_REQUESTS_PER_SECOND", 5),
			PageRequestsBurst:     utils.GetEnvInt("APP_PAGE_REQUESTS_BURST", 10),
			PageBlockTimeInSecond: utils.GetEnvInt("APP_PAGE_BLOCK_TIME_IN_SECOND", 60),
		},
		FHIR: FHIR{
			BaseUrl: utils.GetEnvString("FHIR_BASE_URL", "http://localhost:5555/fhir"),
		},
	}
}
