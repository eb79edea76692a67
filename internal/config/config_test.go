package config

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresDatabaseURL(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	_, err := Load()

	assert.EqualError(t, err, "DATABASE_URL is required")
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/contratus")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("JWT_SECRET", "")
	t.Setenv("ALLOWED_ORIGINS", "")
	t.Setenv("DEFAULT_BROKERAGE_FEE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev-secret-change-in-production", cfg.JWTSecret)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.True(t, cfg.DefaultBrokerageFee.Equal(decimal.NewFromInt(5)))
	assert.Equal(t, 30, cfg.DefaultProposalValidity)
}

func TestLoad_ProductionNeedsSecret(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/contratus")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoad_ParsesOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/contratus")
	t.Setenv("ENVIRONMENT", "development")
	t.Setenv("ALLOWED_ORIGINS", "https://app.contratus.app, http://localhost:3000")
	t.Setenv("WKHTMLTOPDF_TIMEOUT", "45s")
	t.Setenv("DEFAULT_BROKERAGE_FEE", "6.5")
	t.Setenv("NUMBERING_ATTEMPTS", "0")
	t.Setenv("AUTO_MIGRATE", "false")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"https://app.contratus.app", "http://localhost:3000"}, cfg.AllowedOrigins)
	assert.Equal(t, 45*time.Second, cfg.WkhtmltopdfTimeout)
	assert.Equal(t, "6.5", cfg.DefaultBrokerageFee.String())
	assert.Equal(t, 1, cfg.NumberingAttempts)
	assert.False(t, cfg.AutoMigrate)
}
