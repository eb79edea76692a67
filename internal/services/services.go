package services

import (
	"path/filepath"

	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/jobs"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/storage"
)

// Services holds all service instances
type Services struct {
	Auth                *AuthService
	User                *UserService
	Team                *TeamService
	ConstructionCompany *ConstructionCompanyService
	Development         *DevelopmentService
	UnitType            *UnitTypeService
	Unit                *UnitService
	Client              *ClientService
	Proposal            *ProposalService
	Contract            *ContractService
	Commission          *CommissionService
	Document            *DocumentService
	Settings            *SettingsService
	Notification        *NotificationService
	Audit               *AuditService
	Email               *EmailService
	Dashboard           *DashboardService
	Export              *ExportService
	Job                 *JobService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, worker *jobs.Worker, files *storage.LocalStorage, cfg *config.Config, metrics *observability.Metrics) *Services {
	uploadDir := filepath.Join(cfg.StoragePath, "uploads")

	notificationSvc := NewNotificationService(repos.Notification, repos.User)
	emailSvc := NewEmailService(cfg)
	auditSvc := NewAuditService(repos.Audit)
	imageSvc := NewImageService(uploadDir)
	settingsSvc := NewSettingsService(repos.Settings, DefaultSettings(cfg), imageSvc, auditSvc)
	numbers := newNumberer(cfg, metrics)

	proposalSvc := NewProposalService(repos, repos, settingsSvc, worker, notificationSvc, emailSvc, auditSvc, numbers, metrics)
	contractSvc := NewContractService(repos, repos, settingsSvc, files, worker, notificationSvc, emailSvc, auditSvc, numbers, metrics)
	commissionSvc := NewCommissionService(repos.Commission, worker, notificationSvc, auditSvc)

	renderer := NewBreakerRenderer(NewWkhtmltopdfRenderer(cfg.WkhtmltopdfTimeout), cfg.WkhtmltopdfTimeout*2, metrics)

	return &Services{
		Auth:                NewAuthService(repos.User, repos.RefreshToken, cfg, auditSvc),
		User:                NewUserService(repos.User, repos.RefreshToken, worker, emailSvc, notificationSvc, auditSvc),
		Team:                NewTeamService(repos.Team, repos.User, repos, auditSvc),
		ConstructionCompany: NewConstructionCompanyService(repos.ConstructionCompany, auditSvc),
		Development:         NewDevelopmentService(repos.Development, settingsSvc, imageSvc, auditSvc),
		UnitType:            NewUnitTypeService(repos.UnitType, repos.Development, imageSvc, auditSvc),
		Unit:                NewUnitService(repos, repos, worker, notificationSvc, auditSvc),
		Client:              NewClientService(repos.Client, repos.Proposal, auditSvc),
		Proposal:            proposalSvc,
		Contract:            contractSvc,
		Commission:          commissionSvc,
		Document:            NewDocumentService(proposalSvc, contractSvc, repos, settingsSvc, files, renderer, metrics, uploadDir),
		Settings:            settingsSvc,
		Notification:        notificationSvc,
		Audit:               auditSvc,
		Email:               emailSvc,
		Dashboard:           NewDashboardService(repos.Dashboard),
		Export:              NewExportService(proposalSvc, contractSvc, commissionSvc),
		Job:                 NewJobService(worker, metrics, proposalSvc.ExpireOverdue),
	}
}
