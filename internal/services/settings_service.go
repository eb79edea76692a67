package services

import (
	"context"
	"mime/multipart"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/config"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
)

// SettingsService owns the agency settings row
type SettingsService struct {
	repo     repository.SettingsRepository
	defaults models.Settings
	imageSvc *ImageService
	auditSvc *AuditService
}

// DefaultSettings builds the row created on first load from configuration
func DefaultSettings(cfg *config.Config) models.Settings {
	return models.Settings{
		AgencyName:               cfg.AgencyName,
		DefaultProposalValidity:  cfg.DefaultProposalValidity,
		DefaultContractValidity:  cfg.DefaultContractValidity,
		DefaultContractExtension: cfg.DefaultContractExtension,
		DefaultBrokerageFee:      cfg.DefaultBrokerageFee,
	}
}

func NewSettingsService(repo repository.SettingsRepository, defaults models.Settings, imageSvc *ImageService, auditSvc *AuditService) *SettingsService {
	return &SettingsService{repo: repo, defaults: defaults, imageSvc: imageSvc, auditSvc: auditSvc}
}

// Get returns a copy of the current settings
func (s *SettingsService) Get(ctx context.Context) (models.Settings, error) {
	settings, err := s.repo.Get(ctx, s.defaults)
	if err != nil {
		return models.Settings{}, err
	}
	return *settings, nil
}

// SettingsInput is the editable part of the settings
type SettingsInput struct {
	AgencyName               string          `json:"agency_name" binding:"required"`
	CNPJ                     string          `json:"cnpj"`
	Address                  string          `json:"address"`
	PostalCode               string          `json:"postal_code"`
	Phone                    string          `json:"phone"`
	Email                    string          `json:"email"`
	Website                  string          `json:"website"`
	Instagram                string          `json:"instagram"`
	DefaultProposalValidity  int             `json:"default_proposal_validity"`
	DefaultContractValidity  int             `json:"default_contract_validity"`
	DefaultContractExtension int             `json:"default_contract_extension"`
	DefaultBrokerageFee      decimal.Decimal `json:"default_brokerage_fee"`
}

func (in SettingsInput) validate() error {
	if in.DefaultProposalValidity < 1 || in.DefaultContractValidity < 1 {
		return validationError("prazos de validade devem ser de pelo menos 1 dia")
	}
	if in.DefaultContractExtension < 0 {
		return validationError("prorrogação não pode ser negativa")
	}
	if in.DefaultBrokerageFee.IsNegative() || in.DefaultBrokerageFee.GreaterThan(decimal.NewFromInt(100)) {
		return validationError("percentual de corretagem deve estar entre 0 e 100")
	}
	return nil
}

// Update replaces the editable settings
func (s *SettingsService) Update(ctx context.Context, in SettingsInput, actorID uint) (models.Settings, error) {
	if err := in.validate(); err != nil {
		return models.Settings{}, err
	}
	current, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}

	current.AgencyName = in.AgencyName
	current.CNPJ = in.CNPJ
	current.Address = in.Address
	current.PostalCode = in.PostalCode
	current.Phone = in.Phone
	current.Email = in.Email
	current.Website = in.Website
	current.Instagram = in.Instagram
	current.DefaultProposalValidity = in.DefaultProposalValidity
	current.DefaultContractValidity = in.DefaultContractValidity
	current.DefaultContractExtension = in.DefaultContractExtension
	current.DefaultBrokerageFee = in.DefaultBrokerageFee

	if err := s.repo.Update(ctx, &current); err != nil {
		return models.Settings{}, err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "Settings", current.ID, "Configurações atualizadas")
	return current, nil
}

// UploadLogo stores a new agency logo
func (s *SettingsService) UploadLogo(ctx context.Context, file multipart.File, header *multipart.FileHeader, actorID uint) (models.Settings, error) {
	current, err := s.Get(ctx)
	if err != nil {
		return models.Settings{}, err
	}
	saved, err := s.imageSvc.Save(file, header, "logos", LogoSize)
	if err != nil {
		return models.Settings{}, err
	}
	current.LogoPath = &saved.Original
	if err := s.repo.Update(ctx, &current); err != nil {
		return models.Settings{}, err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "Settings", current.ID, "Logo atualizado")
	return current, nil
}
