package services

import (
	"context"
	"fmt"
	"mime/multipart"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/sjperalta/contratus-api/internal/statemachine"
)

// ConstructionCompanyService manages the builders behind developments
type ConstructionCompanyService struct {
	repo     repository.ConstructionCompanyRepository
	auditSvc *AuditService
}

func NewConstructionCompanyService(repo repository.ConstructionCompanyRepository, auditSvc *AuditService) *ConstructionCompanyService {
	return &ConstructionCompanyService{repo: repo, auditSvc: auditSvc}
}

func (s *ConstructionCompanyService) FindByID(ctx context.Context, id uint) (*models.ConstructionCompany, error) {
	company, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "construtora não encontrada")
	}
	return company, nil
}

func (s *ConstructionCompanyService) List(ctx context.Context, query *repository.ListQuery) ([]models.ConstructionCompany, int64, error) {
	return s.repo.List(ctx, query)
}

func validateCompany(company *models.ConstructionCompany) error {
	company.LegalName = strings.TrimSpace(company.LegalName)
	if company.LegalName == "" {
		return validationError("razão social é obrigatória")
	}
	if !models.ValidCNPJ(company.CNPJ) {
		return validationError("CNPJ inválido")
	}
	company.CNPJ = models.FormatCNPJ(company.CNPJ)
	return nil
}

func duplicateCNPJ(err error) error {
	if repository.IsUniqueViolation(err) {
		return conflictError("já existe uma construtora com este CNPJ")
	}
	return err
}

func (s *ConstructionCompanyService) Create(ctx context.Context, company *models.ConstructionCompany, actorID uint) error {
	if err := validateCompany(company); err != nil {
		return err
	}
	company.ID = 0
	company.RegisteredByID = &actorID
	company.Active = true
	if err := s.repo.Create(ctx, company); err != nil {
		return duplicateCNPJ(err)
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "ConstructionCompany", company.ID,
		fmt.Sprintf("Construtora %s cadastrada", company.LegalName))
	return nil
}

func (s *ConstructionCompanyService) Update(ctx context.Context, id uint, in *models.ConstructionCompany, actorID uint) (*models.ConstructionCompany, error) {
	company, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateCompany(in); err != nil {
		return nil, err
	}

	company.LegalName = in.LegalName
	company.TradeName = in.TradeName
	company.CNPJ = in.CNPJ
	company.Address = in.Address
	company.Phone = in.Phone
	company.Email = in.Email
	company.LegalRepresentative = in.LegalRepresentative
	company.Notes = in.Notes
	company.Active = in.Active

	if err := s.repo.Update(ctx, company); err != nil {
		return nil, duplicateCNPJ(err)
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "ConstructionCompany", id,
		fmt.Sprintf("Construtora %s atualizada", company.LegalName))
	return company, nil
}

// Delete removes a company that has no developments
func (s *ConstructionCompanyService) Delete(ctx context.Context, id, actorID uint) error {
	company, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.CountDevelopments(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return preconditionError("a construtora possui %d empreendimento(s) e não pode ser excluída", n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionDelete, "ConstructionCompany", id,
		fmt.Sprintf("Construtora %s excluída", company.LegalName))
	return nil
}

// DevelopmentService manages developments and their images
type DevelopmentService struct {
	repo     repository.DevelopmentRepository
	settings SettingsSource
	imageSvc *ImageService
	auditSvc *AuditService
}

func NewDevelopmentService(repo repository.DevelopmentRepository, settings SettingsSource, imageSvc *ImageService, auditSvc *AuditService) *DevelopmentService {
	return &DevelopmentService{repo: repo, settings: settings, imageSvc: imageSvc, auditSvc: auditSvc}
}

func (s *DevelopmentService) FindByID(ctx context.Context, id uint) (*models.Development, error) {
	development, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "empreendimento não encontrado")
	}
	return development, nil
}

// Info returns the development with its company, active unit types and units
func (s *DevelopmentService) Info(ctx context.Context, id uint) (*models.Development, error) {
	development, err := s.repo.FindWithInventory(ctx, id)
	if err != nil {
		return nil, lookupError(err, "empreendimento não encontrado")
	}
	return development, nil
}

func (s *DevelopmentService) List(ctx context.Context, query *repository.ListQuery) ([]models.Development, int64, error) {
	return s.repo.List(ctx, query)
}

func validateDevelopment(d *models.Development) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return validationError("nome do empreendimento é obrigatório")
	}
	if d.ConstructionCompanyID == 0 {
		return validationError("construtora é obrigatória")
	}
	if d.Status != "" && !models.ValidDevelopmentStatus(d.Status) {
		return validationError("status de empreendimento inválido: %s", d.Status)
	}
	if d.PropertyType != "" && !models.ValidPropertyType(d.PropertyType) {
		return validationError("tipo de imóvel inválido: %s", d.PropertyType)
	}
	if d.TotalUnits < 0 {
		return validationError("total de unidades não pode ser negativo")
	}
	if d.BrokerageFee.IsNegative() || d.BrokerageFee.GreaterThan(decimal.NewFromInt(100)) {
		return validationError("percentual de corretagem deve estar entre 0 e 100")
	}
	return nil
}

func (s *DevelopmentService) Create(ctx context.Context, development *models.Development, actorID uint) error {
	if err := validateDevelopment(development); err != nil {
		return err
	}
	if development.BrokerageFee.IsZero() {
		settings, err := s.settings.Get(ctx)
		if err != nil {
			return err
		}
		development.BrokerageFee = settings.DefaultBrokerageFee
	}
	development.ID = 0
	development.Active = true
	development.AvailableUnits = development.TotalUnits

	if err := s.repo.Create(ctx, development); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "Development", development.ID,
		fmt.Sprintf("Empreendimento %s cadastrado", development.Name))
	return nil
}

func (s *DevelopmentService) Update(ctx context.Context, id uint, in *models.Development, actorID uint) (*models.Development, error) {
	development, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateDevelopment(in); err != nil {
		return nil, err
	}

	development.ConstructionCompanyID = in.ConstructionCompanyID
	development.Name = in.Name
	if in.PropertyType != "" {
		development.PropertyType = in.PropertyType
	}
	if in.Status != "" {
		development.Status = in.Status
	}
	development.Address = in.Address
	development.Description = in.Description
	development.TotalUnits = in.TotalUnits
	if in.BrokerageFee.IsPositive() {
		development.BrokerageFee = in.BrokerageFee
	}
	development.LaunchDate = in.LaunchDate
	development.ExpectedDeliveryDate = in.ExpectedDeliveryDate
	development.Active = in.Active

	if err := s.repo.Update(ctx, development); err != nil {
		return nil, err
	}
	if err := s.repo.RefreshAvailableUnits(ctx, id); err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "Development", id,
		fmt.Sprintf("Empreendimento %s atualizado", development.Name))
	return s.FindByID(ctx, id)
}

// Delete removes a development no proposal refers to, with its units and types
func (s *DevelopmentService) Delete(ctx context.Context, id, actorID uint) error {
	development, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	referenced, err := s.repo.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return preconditionError("o empreendimento possui propostas e não pode ser excluído")
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionDelete, "Development", id,
		fmt.Sprintf("Empreendimento %s excluído", development.Name))
	return nil
}

// UploadImage stores the main image of a development and its thumbnail
func (s *DevelopmentService) UploadImage(ctx context.Context, id uint, file multipart.File, header *multipart.FileHeader, actorID uint) (*models.Development, error) {
	development, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	saved, err := s.imageSvc.Save(file, header, "developments", DevelopmentImageSize)
	if err != nil {
		return nil, err
	}
	development.ImagePath = &saved.Original
	development.ThumbnailPath = &saved.Thumbnail
	if err := s.repo.Update(ctx, development); err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "Development", id, "Imagem do empreendimento atualizada")
	return development, nil
}

// UnitTypeService manages the unit templates of a development
type UnitTypeService struct {
	repo     repository.UnitTypeRepository
	devRepo  repository.DevelopmentRepository
	imageSvc *ImageService
	auditSvc *AuditService
}

func NewUnitTypeService(repo repository.UnitTypeRepository, devRepo repository.DevelopmentRepository, imageSvc *ImageService, auditSvc *AuditService) *UnitTypeService {
	return &UnitTypeService{repo: repo, devRepo: devRepo, imageSvc: imageSvc, auditSvc: auditSvc}
}

func (s *UnitTypeService) FindByID(ctx context.Context, id uint) (*models.UnitType, error) {
	unitType, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "tipologia não encontrada")
	}
	return unitType, nil
}

func (s *UnitTypeService) FindByDevelopment(ctx context.Context, developmentID uint, activeOnly bool) ([]models.UnitType, error) {
	return s.repo.FindByDevelopment(ctx, developmentID, activeOnly)
}

func validateUnitType(t *models.UnitType) error {
	t.Name = strings.TrimSpace(t.Name)
	if t.Name == "" {
		return validationError("nome da tipologia é obrigatório")
	}
	if t.Bedrooms < 0 || t.Bathrooms < 0 || t.ParkingSpaces < 0 {
		return validationError("quantidades não podem ser negativas")
	}
	if t.Price.IsNegative() || t.EngineeringCost.IsNegative() || t.UsableArea.IsNegative() {
		return validationError("valores não podem ser negativos")
	}
	return nil
}

func duplicateUnitType(err error, name string) error {
	if repository.IsUniqueViolation(err) {
		return conflictError("já existe a tipologia %s neste empreendimento", name)
	}
	return err
}

func (s *UnitTypeService) Create(ctx context.Context, developmentID uint, unitType *models.UnitType, actorID uint) error {
	if _, err := s.devRepo.FindByID(ctx, developmentID); err != nil {
		return lookupError(err, "empreendimento não encontrado")
	}
	if err := validateUnitType(unitType); err != nil {
		return err
	}
	unitType.ID = 0
	unitType.DevelopmentID = developmentID
	unitType.Active = true
	if err := s.repo.Create(ctx, unitType); err != nil {
		return duplicateUnitType(err, unitType.Name)
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "UnitType", unitType.ID,
		fmt.Sprintf("Tipologia %s cadastrada", unitType.Name))
	return nil
}

func (s *UnitTypeService) Update(ctx context.Context, id uint, in *models.UnitType, actorID uint) (*models.UnitType, error) {
	unitType, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := validateUnitType(in); err != nil {
		return nil, err
	}

	unitType.Name = in.Name
	unitType.Bedrooms = in.Bedrooms
	unitType.Bathrooms = in.Bathrooms
	unitType.ParkingSpaces = in.ParkingSpaces
	unitType.UsableArea = in.UsableArea
	unitType.Price = in.Price
	unitType.EngineeringCost = in.EngineeringCost
	unitType.Active = in.Active

	if err := s.repo.Update(ctx, unitType); err != nil {
		return nil, duplicateUnitType(err, unitType.Name)
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "UnitType", id,
		fmt.Sprintf("Tipologia %s atualizada", unitType.Name))
	return unitType, nil
}

// Delete removes a unit type no unit uses
func (s *UnitTypeService) Delete(ctx context.Context, id, actorID uint) error {
	unitType, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.repo.CountUnits(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return preconditionError("a tipologia está vinculada a %d unidade(s)", n)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionDelete, "UnitType", id,
		fmt.Sprintf("Tipologia %s excluída", unitType.Name))
	return nil
}

// UploadImage stores the floor-plan image of a unit type
func (s *UnitTypeService) UploadImage(ctx context.Context, id uint, file multipart.File, header *multipart.FileHeader, actorID uint) (*models.UnitType, error) {
	unitType, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	saved, err := s.imageSvc.Save(file, header, "unit_types", UnitTypeImageSize)
	if err != nil {
		return nil, err
	}
	unitType.ImagePath = &saved.Original
	unitType.ThumbnailPath = &saved.Thumbnail
	if err := s.repo.Update(ctx, unitType); err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "UnitType", id, "Imagem da tipologia atualizada")
	return unitType, nil
}

// UnitService manages the inventory of a development
type UnitService struct {
	repos    *repository.Repositories
	tx       repository.Transactor
	jobs     Enqueuer
	notifier *NotificationService
	auditSvc *AuditService
}

func NewUnitService(repos *repository.Repositories, tx repository.Transactor, jobs Enqueuer, notifier *NotificationService, auditSvc *AuditService) *UnitService {
	return &UnitService{repos: repos, tx: tx, jobs: jobs, notifier: notifier, auditSvc: auditSvc}
}

func (s *UnitService) FindByID(ctx context.Context, id uint) (*models.Unit, error) {
	unit, err := s.repos.Unit.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, "unidade não encontrada")
	}
	return unit, nil
}

// FindByDevelopment lists units, optionally only those in status
func (s *UnitService) FindByDevelopment(ctx context.Context, developmentID uint, status string) ([]models.Unit, error) {
	return s.repos.Unit.FindByDevelopment(ctx, developmentID, status)
}

func duplicateIdentifier(err error, identifier string) error {
	if repository.IsUniqueViolation(err) {
		return conflictError("já existe a unidade %s neste empreendimento", identifier)
	}
	return err
}

func (s *UnitService) checkUnitType(ctx context.Context, tx *repository.Repositories, developmentID uint, unitTypeID *uint) error {
	if unitTypeID == nil {
		return nil
	}
	unitType, err := tx.UnitType.FindByID(ctx, *unitTypeID)
	if err != nil {
		return lookupError(err, "tipologia não encontrada")
	}
	if unitType.DevelopmentID != developmentID {
		return validationError("a tipologia não pertence a este empreendimento")
	}
	return nil
}

// Create adds one available unit to a development
func (s *UnitService) Create(ctx context.Context, developmentID uint, unit *models.Unit, actorID uint) error {
	unit.Identifier = strings.TrimSpace(unit.Identifier)
	if unit.Identifier == "" {
		return validationError("identificação da unidade é obrigatória")
	}
	if unit.OverridePrice != nil && unit.OverridePrice.IsNegative() {
		return validationError("preço não pode ser negativo")
	}

	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Development.FindByID(ctx, developmentID); err != nil {
			return lookupError(err, "empreendimento não encontrado")
		}
		if err := s.checkUnitType(ctx, tx, developmentID, unit.UnitTypeID); err != nil {
			return err
		}
		unit.ID = 0
		unit.DevelopmentID = developmentID
		unit.Status = models.UnitStatusAvailable
		if err := tx.Unit.Create(ctx, unit); err != nil {
			return duplicateIdentifier(err, unit.Identifier)
		}
		return growDevelopment(ctx, tx, developmentID)
	})
	if err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "Unit", unit.ID,
		fmt.Sprintf("Unidade %s cadastrada", unit.Label()))
	return nil
}

// growDevelopment raises total units to the number of registered units and
// refreshes the available counter
func growDevelopment(ctx context.Context, tx *repository.Repositories, developmentID uint) error {
	development, err := tx.Development.FindByID(ctx, developmentID)
	if err != nil {
		return err
	}
	n, err := tx.Unit.CountByDevelopment(ctx, developmentID)
	if err != nil {
		return err
	}
	if int(n) > development.TotalUnits {
		development.TotalUnits = int(n)
		if err := tx.Development.Update(ctx, development); err != nil {
			return err
		}
	}
	return tx.Development.RefreshAvailableUnits(ctx, developmentID)
}

// BatchInput describes a run of units named "<prefix> NN"
type BatchInput struct {
	Prefix     string `json:"prefix"`
	Start      int    `json:"start"`
	Quantity   int    `json:"quantity"`
	UnitTypeID *uint  `json:"unit_type_id"`
	Floor      string `json:"floor"`
	Block      string `json:"block"`
}

// MaxBatchSize bounds one batch creation
const MaxBatchSize = 500

// BatchResult reports what a batch creation did
type BatchResult struct {
	Created []models.Unit `json:"created"`
	Skipped []string      `json:"skipped"`
}

// Identifiers lists the identifiers a batch would create
func (in BatchInput) Identifiers() []string {
	ids := make([]string, 0, in.Quantity)
	for n := in.Start; n < in.Start+in.Quantity; n++ {
		ids = append(ids, fmt.Sprintf("%s %02d", in.Prefix, n))
	}
	return ids
}

func (in BatchInput) validate() error {
	if strings.TrimSpace(in.Prefix) == "" {
		return validationError("prefixo é obrigatório")
	}
	if in.Start < 0 {
		return validationError("número inicial não pode ser negativo")
	}
	if in.Quantity < 1 || in.Quantity > MaxBatchSize {
		return validationError("quantidade deve estar entre 1 e %d", MaxBatchSize)
	}
	return nil
}

// CreateBatch creates a run of units in one transaction, skipping
// identifiers that already exist in the development
func (s *UnitService) CreateBatch(ctx context.Context, developmentID uint, in BatchInput, actorID uint) (*BatchResult, error) {
	in.Prefix = strings.TrimSpace(in.Prefix)
	if err := in.validate(); err != nil {
		return nil, err
	}

	result := &BatchResult{Skipped: []string{}}
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		if _, err := tx.Development.FindByID(ctx, developmentID); err != nil {
			return lookupError(err, "empreendimento não encontrado")
		}
		if err := s.checkUnitType(ctx, tx, developmentID, in.UnitTypeID); err != nil {
			return err
		}

		identifiers := in.Identifiers()
		existing, err := tx.Unit.ExistingIdentifiers(ctx, developmentID, identifiers)
		if err != nil {
			return err
		}

		units := make([]models.Unit, 0, len(identifiers))
		for _, identifier := range identifiers {
			if existing[identifier] {
				result.Skipped = append(result.Skipped, identifier)
				continue
			}
			units = append(units, models.Unit{
				DevelopmentID: developmentID,
				UnitTypeID:    in.UnitTypeID,
				Identifier:    identifier,
				Floor:         in.Floor,
				Block:         in.Block,
				Status:        models.UnitStatusAvailable,
			})
		}
		if len(units) == 0 {
			return nil
		}
		if err := tx.Unit.CreateBatch(ctx, units); err != nil {
			return duplicateIdentifier(err, in.Prefix)
		}
		result.Created = units
		return growDevelopment(ctx, tx, developmentID)
	})
	if err != nil {
		return nil, err
	}

	s.auditSvc.Record(ctx, actorID, models.AuditActionCreate, "Unit", developmentID,
		fmt.Sprintf("%d unidade(s) criadas em lote, %d ignorada(s)", len(result.Created), len(result.Skipped)))
	return result, nil
}

// Update edits identification and pricing. Status only changes through
// proposals, contracts and block/unblock.
func (s *UnitService) Update(ctx context.Context, id uint, in *models.Unit, actorID uint) (*models.Unit, error) {
	in.Identifier = strings.TrimSpace(in.Identifier)
	if in.Identifier == "" {
		return nil, validationError("identificação da unidade é obrigatória")
	}
	if in.OverridePrice != nil && in.OverridePrice.IsNegative() {
		return nil, validationError("preço não pode ser negativo")
	}

	var label string
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		unit, err := tx.Unit.FindForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "unidade não encontrada")
		}
		if err := s.checkUnitType(ctx, tx, unit.DevelopmentID, in.UnitTypeID); err != nil {
			return err
		}

		unit.Identifier = in.Identifier
		unit.UnitTypeID = in.UnitTypeID
		unit.Floor = in.Floor
		unit.Block = in.Block
		unit.OverridePrice = in.OverridePrice
		unit.Notes = in.Notes
		label = unit.Label()

		if err := tx.Unit.Update(ctx, unit); err != nil {
			return duplicateIdentifier(err, unit.Identifier)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionUpdate, "Unit", id,
		fmt.Sprintf("Unidade %s atualizada", label))
	return s.FindByID(ctx, id)
}

// Delete removes a unit no proposal or contract refers to
func (s *UnitService) Delete(ctx context.Context, id, actorID uint) error {
	unit, err := s.FindByID(ctx, id)
	if err != nil {
		return err
	}
	referenced, err := s.repos.Unit.IsReferenced(ctx, id)
	if err != nil {
		return err
	}
	if referenced {
		return preconditionError("a unidade %s possui propostas ou contratos e não pode ser excluída", unit.Label())
	}
	if err := s.repos.Unit.Delete(ctx, id); err != nil {
		return err
	}
	s.auditSvc.Record(ctx, actorID, models.AuditActionDelete, "Unit", id,
		fmt.Sprintf("Unidade %s excluída", unit.Label()))
	return nil
}

// Block takes a unit off the market. Admin only.
func (s *UnitService) Block(ctx context.Context, policy access.Policy, id uint, reason string) (*models.Unit, error) {
	unit, err := s.changeStatus(ctx, policy, id, func(f *statemachine.UnitFSM) error { return f.Block(ctx) })
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionStatus, "Unit", id,
		fmt.Sprintf("Unidade %s bloqueada. %s", unit.Label(), reason))

	label := unit.Label()
	s.jobs.EnqueueAsync(func(ctx context.Context) error {
		return s.notifier.NotifyAdmins(ctx, "Unidade bloqueada",
			fmt.Sprintf("A unidade %s foi bloqueada", label),
			models.NotificationTypeUnitBlocked)
	})
	return unit, nil
}

// Unblock returns a blocked unit to the market. Admin only.
func (s *UnitService) Unblock(ctx context.Context, policy access.Policy, id uint) (*models.Unit, error) {
	unit, err := s.changeStatus(ctx, policy, id, func(f *statemachine.UnitFSM) error { return f.Unblock(ctx) })
	if err != nil {
		return nil, err
	}
	s.auditSvc.Record(ctx, policy.UserID(), models.AuditActionStatus, "Unit", id,
		fmt.Sprintf("Unidade %s desbloqueada", unit.Label()))
	return unit, nil
}

func (s *UnitService) changeStatus(ctx context.Context, policy access.Policy, id uint, event func(*statemachine.UnitFSM) error) (*models.Unit, error) {
	if err := requireAdmin(policy); err != nil {
		return nil, err
	}
	err := s.tx.Transaction(ctx, func(tx *repository.Repositories) error {
		unit, err := tx.Unit.FindForUpdate(ctx, id)
		if err != nil {
			return lookupError(err, "unidade não encontrada")
		}
		if err := event(statemachine.NewUnitFSM(unit)); err != nil {
			return preconditionError("%s", err.Error())
		}
		return tx.Unit.UpdateStatus(ctx, unit.ID, unit.Status, nil)
	})
	if err != nil {
		return nil, err
	}
	return s.FindByID(ctx, id)
}
