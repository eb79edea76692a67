package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration
type Config struct {
	// Server
	Port        string
	Environment string
	LogLevel    string
	AppURL      string

	// Database
	DatabaseURL string
	AutoMigrate bool

	// JWT
	JWTSecret          string
	JWTExpirationHours int

	// Storage
	StoragePath string

	// Background Workers
	WorkerCount int

	// CORS
	AllowedOrigins []string

	// Email (Resend)
	EnableEmailNotifications bool
	ResendAPIKey             string
	FromEmail                string

	// Sentry
	SentryDSN string

	// Documents
	WkhtmltopdfTimeout time.Duration

	// Numbering
	NumberingAttempts int
	NumberingBackoff  time.Duration

	// Business defaults, used to seed the settings row on first load
	AgencyName               string
	DefaultProposalValidity  int
	DefaultContractValidity  int
	DefaultContractExtension int
	DefaultBrokerageFee      decimal.Decimal
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Port:                     getEnv("PORT", "8080"),
		Environment:              getEnv("ENVIRONMENT", "development"),
		LogLevel:                 getEnv("LOG_LEVEL", "info"),
		AppURL:                   getEnv("APP_URL", "http://localhost:3000"),
		DatabaseURL:              getEnv("DATABASE_URL", ""),
		AutoMigrate:              getEnvAsBool("AUTO_MIGRATE", true),
		JWTSecret:                getEnv("JWT_SECRET", ""),
		JWTExpirationHours:       getEnvAsInt("JWT_EXPIRATION_HOURS", 24),
		StoragePath:              getEnv("STORAGE_PATH", "./storage"),
		WorkerCount:              getEnvAsInt("WORKER_COUNT", 5),
		AllowedOrigins:           getEnvAsSlice("ALLOWED_ORIGINS", []string{"*"}),
		EnableEmailNotifications: getEnvAsBool("ENABLE_EMAIL_NOTIFICATIONS", false),
		ResendAPIKey:             getEnv("RESEND_API_KEY", ""),
		FromEmail:                getEnv("FROM_EMAIL", "noreply@contratus.app"),
		SentryDSN:                getEnv("SENTRY_DSN", ""),
		WkhtmltopdfTimeout:       getEnvAsDuration("WKHTMLTOPDF_TIMEOUT", 30*time.Second),
		NumberingAttempts:        getEnvAsInt("NUMBERING_ATTEMPTS", 4),
		NumberingBackoff:         getEnvAsDuration("NUMBERING_BACKOFF", 20*time.Millisecond),
		AgencyName:               getEnv("AGENCY_NAME", "Contratus Imóveis"),
		DefaultProposalValidity:  getEnvAsInt("DEFAULT_PROPOSAL_VALIDITY_DAYS", 30),
		DefaultContractValidity:  getEnvAsInt("DEFAULT_CONTRACT_VALIDITY_DAYS", 180),
		DefaultContractExtension: getEnvAsInt("DEFAULT_CONTRACT_EXTENSION_DAYS", 90),
		DefaultBrokerageFee:      getEnvAsDecimal("DEFAULT_BROKERAGE_FEE", decimal.NewFromInt(5)),
	}

	// Validate required configuration
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}

	if cfg.JWTSecret == "" && cfg.Environment == "production" {
		return nil, fmt.Errorf("JWT_SECRET is required in production")
	}

	// Set default JWT secret for development
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "dev-secret-change-in-production"
	}

	if cfg.NumberingAttempts < 1 {
		cfg.NumberingAttempts = 1
	}

	return cfg, nil
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt reads an environment variable as integer
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDecimal(key string, defaultValue decimal.Decimal) decimal.Decimal {
	value, err := decimal.NewFromString(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsSlice reads an environment variable as comma-separated slice
func getEnvAsSlice(key string, defaultValue []string) []string {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	parts := strings.Split(valueStr, ",")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
