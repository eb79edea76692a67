package services

import (
	"bytes"
	"context"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"strings"

	"github.com/resend/resend-go/v2"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/currency"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/pkg/logger"
)

//go:embed templates/email/*.html
var emailTemplates embed.FS

type EmailService struct {
	config       *config.Config
	resendClient *resend.Client
}

func NewEmailService(cfg *config.Config) *EmailService {
	client := resend.NewClient(cfg.ResendAPIKey)
	return &EmailService{
		config:       cfg,
		resendClient: client,
	}
}

// checkEmailPreconditions reports whether an email to user should be sent.
// Disabled notifications are not an error; missing configuration is.
func (s *EmailService) checkEmailPreconditions(user *models.User, operation string) (bool, error) {
	if !s.config.EnableEmailNotifications {
		logger.Debug(fmt.Sprintf("[Email] notifications disabled, skipping %s", operation))
		return false, nil
	}
	if s.config.ResendAPIKey == "" {
		return false, errors.New("RESEND_API_KEY is not set")
	}
	if user == nil || strings.TrimSpace(user.Email) == "" {
		return false, errors.New("email address is empty")
	}
	return true, nil
}

func (s *EmailService) SendAccountCreated(ctx context.Context, user *models.User) error {
	data := struct {
		Name   string
		Email  string
		Role   string
		AppURL string
	}{
		Name:   user.FullName,
		Email:  user.Email,
		Role:   roleLabel(user.Role),
		AppURL: s.config.AppURL,
	}
	return s.send(ctx, user, "Bem-vindo ao Contratus", "account_created.html", data)
}

// SendProposalAnswered tells the agent a proposal was approved or rejected
func (s *EmailService) SendProposalAnswered(ctx context.Context, proposal *models.Proposal) error {
	approved := proposal.Status == models.ProposalStatusApproved
	reason := ""
	if proposal.RejectionReason != nil {
		reason = *proposal.RejectionReason
	}

	data := struct {
		Name            string
		Number          string
		Approved        bool
		ClientName      string
		DevelopmentName string
		UnitLabel       string
		Total           string
		Reason          string
		AppURL          string
	}{
		Name:            proposal.Agent.FullName,
		Number:          proposal.Number,
		Approved:        approved,
		ClientName:      proposal.Client.FullName,
		DevelopmentName: proposal.Development.Name,
		UnitLabel:       proposal.Unit.Label(),
		Total:           currency.Format(proposal.MarkedUpTotal),
		Reason:          reason,
		AppURL:          s.config.AppURL,
	}

	subject := fmt.Sprintf("Proposta %s reprovada", proposal.Number)
	if approved {
		subject = fmt.Sprintf("Proposta %s aprovada", proposal.Number)
	}
	return s.send(ctx, &proposal.Agent, subject, "proposal_answered.html", data)
}

func (s *EmailService) SendContractCreated(ctx context.Context, contract *models.Contract) error {
	data := struct {
		Name            string
		Number          string
		ClientName      string
		DevelopmentName string
		UnitLabel       string
		PropertyValue   string
		SignatureDate   string
		DueDate         string
		AppURL          string
	}{
		Name:            contract.Agent.FullName,
		Number:          contract.Number,
		ClientName:      contract.Client.FullName,
		DevelopmentName: contract.Development.Name,
		UnitLabel:       contract.Unit.Label(),
		PropertyValue:   currency.Format(contract.PropertyValue),
		SignatureDate:   contract.SignatureDate.Format("02/01/2006"),
		DueDate:         contract.DueDate.Format("02/01/2006"),
		AppURL:          s.config.AppURL,
	}
	return s.send(ctx, &contract.Agent, fmt.Sprintf("Contrato %s criado", contract.Number), "contract_created.html", data)
}

func (s *EmailService) send(ctx context.Context, user *models.User, subject, tmpl string, data interface{}) error {
	ok, err := s.checkEmailPreconditions(user, subject)
	if !ok {
		return err
	}

	body, err := s.renderTemplate(tmpl, data)
	if err != nil {
		return err
	}

	params := &resend.SendEmailRequest{
		From:    s.config.FromEmail,
		To:      []string{user.Email},
		Subject: subject,
		Html:    body,
	}
	if _, err := s.resendClient.Emails.Send(params); err != nil {
		logger.Error(fmt.Sprintf("Failed to send email to %s: %v", user.Email, err))
		return err
	}

	logger.Info(fmt.Sprintf("📧 [Email Sent] To: %s | Subject: %s", user.Email, subject))
	return nil
}

func (s *EmailService) renderTemplate(name string, data interface{}) (string, error) {
	tmpl, err := template.ParseFS(emailTemplates, "templates/email/"+name)
	if err != nil {
		return "", fmt.Errorf("failed to parse template %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template %s: %w", name, err)
	}

	return buf.String(), nil
}

func roleLabel(role string) string {
	switch role {
	case models.RoleAdmin:
		return "Administrador"
	case models.RoleManager:
		return "Gerente"
	default:
		return "Corretor"
	}
}
