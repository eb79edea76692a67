package services

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmailService_checkEmailPreconditions(t *testing.T) {
	logger.Setup("test", "error")
	user := &models.User{Email: "corretor@example.com", FullName: "Corretor", ID: 1}

	t.Run("disabled", func(t *testing.T) {
		service := NewEmailService(&config.Config{EnableEmailNotifications: false})
		ok, err := service.checkEmailPreconditions(user, "test operation")
		assert.False(t, ok)
		assert.NoError(t, err)
	})

	t.Run("configured", func(t *testing.T) {
		service := NewEmailService(&config.Config{
			EnableEmailNotifications: true,
			ResendAPIKey:             "test_key",
			FromEmail:                "from@example.com",
		})
		ok, err := service.checkEmailPreconditions(user, "test operation")
		assert.True(t, ok)
		assert.NoError(t, err)
	})

	t.Run("missing key", func(t *testing.T) {
		service := NewEmailService(&config.Config{EnableEmailNotifications: true, FromEmail: "from@example.com"})
		ok, err := service.checkEmailPreconditions(user, "test operation")
		assert.False(t, ok)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "RESEND_API_KEY is not set")
	})

	t.Run("empty address", func(t *testing.T) {
		service := NewEmailService(&config.Config{EnableEmailNotifications: true, ResendAPIKey: "test_key"})
		ok, err := service.checkEmailPreconditions(&models.User{ID: 2}, "test operation")
		assert.False(t, ok)
		require.Error(t, err)
		assert.Equal(t, "email address is empty", err.Error())
	})
}

func TestEmailService_RenderProposalAnswered(t *testing.T) {
	service := NewEmailService(&config.Config{AppURL: "https://app.example.com"})
	reason := "Renda insuficiente"

	body, err := service.renderTemplate("proposal_answered.html", map[string]any{
		"Name":            "Ana",
		"Number":          "PROP-2025-00001",
		"Approved":        false,
		"ClientName":      "João",
		"DevelopmentName": "Residencial Aurora",
		"UnitLabel":       "Bloco B - 101",
		"Total":           "R$ 150.000,00",
		"Reason":          reason,
		"AppURL":          "https://app.example.com",
	})
	require.NoError(t, err)
	assert.Contains(t, body, "PROP-2025-00001")
	assert.Contains(t, body, "reprovada")
	assert.Contains(t, body, reason)
}

func TestEmailService_SendSkippedWhenDisabled(t *testing.T) {
	logger.Setup("test", "error")
	service := NewEmailService(&config.Config{EnableEmailNotifications: false})

	err := service.SendContractCreated(t.Context(), &models.Contract{
		Number:        "CONT-2025-00001",
		PropertyValue: decimal.NewFromInt(150000),
		Agent:         models.User{Email: "a@example.com"},
	})
	assert.NoError(t, err)
}
