package main

import (
	"context"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/services"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

// Sends every transactional email to TEST_EMAIL_TO so templates can be
// checked in a real inbox.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Setup("development", "debug")

	if cfg.ResendAPIKey == "" {
		log.Fatal("RESEND_API_KEY is not set")
	}
	cfg.EnableEmailNotifications = true

	emailService := services.NewEmailService(cfg)

	toEmail := os.Getenv("TEST_EMAIL_TO")
	if toEmail == "" {
		toEmail = "test@example.com"
		log.Println("TEST_EMAIL_TO not set, using test@example.com. Delivery fails unless the domain is verified.")
	}

	agent := models.User{FullName: "Corretor Teste", Email: toEmail, Role: models.RoleAgent, Status: models.StatusActive}
	client := models.Client{FullName: "Maria da Silva"}
	development := models.Development{Name: "Residencial Jardim das Flores"}
	unit := models.Unit{Identifier: "Apto 101"}
	ctx := context.Background()

	log.Printf("Sending account created email to %s...", toEmail)
	if err := emailService.SendAccountCreated(ctx, &agent); err != nil {
		log.Fatalf("Failed to send account created email: %v", err)
	}

	proposal := &models.Proposal{
		Number:        "PROP-2024-00001",
		Status:        models.ProposalStatusApproved,
		Agent:         agent,
		Client:        client,
		Development:   development,
		Unit:          unit,
		MarkedUpTotal: decimal.NewFromInt(300000),
	}
	log.Printf("Sending proposal answered email to %s...", toEmail)
	if err := emailService.SendProposalAnswered(ctx, proposal); err != nil {
		log.Fatalf("Failed to send proposal email: %v", err)
	}

	now := time.Now()
	contract := &models.Contract{
		Number:        "CONT-2024-00001",
		Agent:         agent,
		Client:        client,
		Development:   development,
		Unit:          unit,
		PropertyValue: decimal.NewFromInt(250000),
		SignatureDate: now,
		DueDate:       now.AddDate(0, 0, 180),
	}
	log.Printf("Sending contract created email to %s...", toEmail)
	if err := emailService.SendContractCreated(ctx, contract); err != nil {
		log.Fatalf("Failed to send contract email: %v", err)
	}

	log.Println("All emails sent")
}
