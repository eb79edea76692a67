package repository

import (
	"context"

	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ConstructionCompanyRepository defines the interface for construction company data access
type ConstructionCompanyRepository interface {
	FindByID(ctx context.Context, id uint) (*models.ConstructionCompany, error)
	Create(ctx context.Context, company *models.ConstructionCompany) error
	Update(ctx context.Context, company *models.ConstructionCompany) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.ConstructionCompany, int64, error)
	CountDevelopments(ctx context.Context, id uint) (int64, error)
}

type constructionCompanyRepository struct {
	db *gorm.DB
}

// NewConstructionCompanyRepository creates a new construction company repository
func NewConstructionCompanyRepository(db *gorm.DB) ConstructionCompanyRepository {
	return &constructionCompanyRepository{db: db}
}

func (r *constructionCompanyRepository) FindByID(ctx context.Context, id uint) (*models.ConstructionCompany, error) {
	var company models.ConstructionCompany
	err := r.db.WithContext(ctx).Preload("Developments").First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *constructionCompanyRepository) Create(ctx context.Context, company *models.ConstructionCompany) error {
	return r.db.WithContext(ctx).Omit("Developments").Create(company).Error
}

func (r *constructionCompanyRepository) Update(ctx context.Context, company *models.ConstructionCompany) error {
	return r.db.WithContext(ctx).Omit("Developments").Save(company).Error
}

func (r *constructionCompanyRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.ConstructionCompany{}, id).Error
}

func (r *constructionCompanyRepository) List(ctx context.Context, query *ListQuery) ([]models.ConstructionCompany, int64, error) {
	var companies []models.ConstructionCompany

	db := r.db.WithContext(ctx).Model(&models.ConstructionCompany{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("legal_name ILIKE ? OR trade_name ILIKE ? OR cnpj ILIKE ? OR city ILIKE ?",
			search, search, search, search)
	}
	if query.Filters["active"] != "" {
		db = db.Where("active = ?", query.Filters["active"] == "true")
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	sortable := map[string]string{
		"legal_name": "legal_name",
		"trade_name": "trade_name",
		"created_at": "created_at",
	}
	err = paginate(db, query, sortable, "legal_name ASC").
		Preload("Developments").
		Find(&companies).Error
	return companies, total, err
}

func (r *constructionCompanyRepository) CountDevelopments(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Development{}).
		Where("construction_company_id = ?", id).
		Count(&n).Error
	return n, err
}

// DevelopmentRepository defines the interface for development data access
type DevelopmentRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Development, error)
	FindWithInventory(ctx context.Context, id uint) (*models.Development, error)
	Create(ctx context.Context, development *models.Development) error
	Update(ctx context.Context, development *models.Development) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Development, int64, error)
	RefreshAvailableUnits(ctx context.Context, id uint) error
	IsReferenced(ctx context.Context, id uint) (bool, error)
}

type developmentRepository struct {
	db *gorm.DB
}

// NewDevelopmentRepository creates a new development repository
func NewDevelopmentRepository(db *gorm.DB) DevelopmentRepository {
	return &developmentRepository{db: db}
}

func (r *developmentRepository) FindByID(ctx context.Context, id uint) (*models.Development, error) {
	var development models.Development
	err := r.db.WithContext(ctx).
		Joins("ConstructionCompany").
		First(&development, id).Error
	if err != nil {
		return nil, err
	}
	return &development, nil
}

// FindWithInventory also loads active unit types and every unit
func (r *developmentRepository) FindWithInventory(ctx context.Context, id uint) (*models.Development, error) {
	var development models.Development
	err := r.db.WithContext(ctx).
		Joins("ConstructionCompany").
		Preload("UnitTypes", func(db *gorm.DB) *gorm.DB {
			return db.Where("active = ?", true).Order("name ASC")
		}).
		Preload("Units", func(db *gorm.DB) *gorm.DB {
			return db.Order("block ASC, identifier ASC")
		}).
		First(&development, id).Error
	if err != nil {
		return nil, err
	}
	return &development, nil
}

func (r *developmentRepository) Create(ctx context.Context, development *models.Development) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(development).Error
}

func (r *developmentRepository) Update(ctx context.Context, development *models.Development) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(development).Error
}

func (r *developmentRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("development_id = ?", id).Delete(&models.Unit{}).Error; err != nil {
			return err
		}
		if err := tx.Where("development_id = ?", id).Delete(&models.UnitType{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Development{}, id).Error
	})
}

func (r *developmentRepository) List(ctx context.Context, query *ListQuery) ([]models.Development, int64, error) {
	var developments []models.Development

	db := r.db.WithContext(ctx).Model(&models.Development{})

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("developments.name ILIKE ? OR developments.city ILIKE ? OR developments.district ILIKE ?",
			search, search, search)
	}
	if query.Filters["status"] != "" {
		db = db.Where("developments.status = ?", query.Filters["status"])
	}
	if query.Filters["property_type"] != "" {
		db = db.Where("developments.property_type = ?", query.Filters["property_type"])
	}
	if query.Filters["construction_company_id"] != "" {
		db = db.Where("developments.construction_company_id = ?", query.Filters["construction_company_id"])
	}
	if query.Filters["active"] != "" {
		db = db.Where("developments.active = ?", query.Filters["active"] == "true")
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	sortable := map[string]string{
		"name":            "developments.name",
		"status":          "developments.status",
		"available_units": "developments.available_units",
		"created_at":      "developments.created_at",
	}
	err = paginate(db, query, sortable, "developments.name ASC").
		Joins("ConstructionCompany").
		Find(&developments).Error
	return developments, total, err
}

// RefreshAvailableUnits recomputes total units minus occupying contracts
func (r *developmentRepository) RefreshAvailableUnits(ctx context.Context, id uint) error {
	var development models.Development
	if err := r.db.WithContext(ctx).Select("id", "total_units").First(&development, id).Error; err != nil {
		return err
	}

	var occupied int64
	err := r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("development_id = ? AND status IN ?", id, models.OccupyingContractStatuses).
		Count(&occupied).Error
	if err != nil {
		return err
	}

	development.ApplyAvailableUnits(occupied)
	return r.db.WithContext(ctx).
		Model(&models.Development{}).
		Where("id = ?", id).
		Update("available_units", development.AvailableUnits).Error
}

// IsReferenced reports whether any proposal points at the development
func (r *developmentRepository) IsReferenced(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("development_id = ?", id).
		Count(&n).Error
	return n > 0, err
}

// UnitTypeRepository defines the interface for unit type data access
type UnitTypeRepository interface {
	FindByID(ctx context.Context, id uint) (*models.UnitType, error)
	FindByDevelopment(ctx context.Context, developmentID uint, activeOnly bool) ([]models.UnitType, error)
	Create(ctx context.Context, unitType *models.UnitType) error
	Update(ctx context.Context, unitType *models.UnitType) error
	Delete(ctx context.Context, id uint) error
	CountUnits(ctx context.Context, id uint) (int64, error)
}

type unitTypeRepository struct {
	db *gorm.DB
}

// NewUnitTypeRepository creates a new unit type repository
func NewUnitTypeRepository(db *gorm.DB) UnitTypeRepository {
	return &unitTypeRepository{db: db}
}

func (r *unitTypeRepository) FindByID(ctx context.Context, id uint) (*models.UnitType, error) {
	var unitType models.UnitType
	if err := r.db.WithContext(ctx).First(&unitType, id).Error; err != nil {
		return nil, err
	}
	return &unitType, nil
}

func (r *unitTypeRepository) FindByDevelopment(ctx context.Context, developmentID uint, activeOnly bool) ([]models.UnitType, error) {
	var types []models.UnitType
	db := r.db.WithContext(ctx).Where("development_id = ?", developmentID)
	if activeOnly {
		db = db.Where("active = ?", true)
	}
	err := db.Order("name ASC").Find(&types).Error
	return types, err
}

func (r *unitTypeRepository) Create(ctx context.Context, unitType *models.UnitType) error {
	return r.db.WithContext(ctx).Omit("Development").Create(unitType).Error
}

func (r *unitTypeRepository) Update(ctx context.Context, unitType *models.UnitType) error {
	return r.db.WithContext(ctx).Omit("Development").Save(unitType).Error
}

func (r *unitTypeRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.UnitType{}, id).Error
}

func (r *unitTypeRepository) CountUnits(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Unit{}).Where("unit_type_id = ?", id).Count(&n).Error
	return n, err
}

// UnitRepository defines the interface for unit data access
type UnitRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Unit, error)
	FindForUpdate(ctx context.Context, id uint) (*models.Unit, error)
	FindByDevelopment(ctx context.Context, developmentID uint, status string) ([]models.Unit, error)
	Create(ctx context.Context, unit *models.Unit) error
	CreateBatch(ctx context.Context, units []models.Unit) error
	Update(ctx context.Context, unit *models.Unit) error
	UpdateStatus(ctx context.Context, id uint, status string, reservedBy *uint) error
	Delete(ctx context.Context, id uint) error
	IsReferenced(ctx context.Context, id uint) (bool, error)
	ExistingIdentifiers(ctx context.Context, developmentID uint, identifiers []string) (map[string]bool, error)
	CountByDevelopment(ctx context.Context, developmentID uint) (int64, error)
}

type unitRepository struct {
	db *gorm.DB
}

// NewUnitRepository creates a new unit repository
func NewUnitRepository(db *gorm.DB) UnitRepository {
	return &unitRepository{db: db}
}

func (r *unitRepository) FindByID(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).
		Joins("Development").
		Joins("UnitType").
		First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	return &unit, nil
}

// FindForUpdate locks the unit row until the surrounding transaction ends
func (r *unitRepository) FindForUpdate(ctx context.Context, id uint) (*models.Unit, error) {
	var unit models.Unit
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&unit, id).Error
	if err != nil {
		return nil, err
	}
	if unit.UnitTypeID != nil {
		var unitType models.UnitType
		if err := r.db.WithContext(ctx).First(&unitType, *unit.UnitTypeID).Error; err == nil {
			unit.UnitType = &unitType
		}
	}
	return &unit, nil
}

func (r *unitRepository) FindByDevelopment(ctx context.Context, developmentID uint, status string) ([]models.Unit, error) {
	var units []models.Unit
	db := r.db.WithContext(ctx).
		Joins("UnitType").
		Where("units.development_id = ?", developmentID)
	if status != "" {
		db = db.Where("units.status = ?", status)
	}
	err := db.Order("units.block ASC, units.identifier ASC").Find(&units).Error
	return units, err
}

func (r *unitRepository) Create(ctx context.Context, unit *models.Unit) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(unit).Error
}

func (r *unitRepository) CreateBatch(ctx context.Context, units []models.Unit) error {
	if len(units) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Omit(clause.Associations).CreateInBatches(units, 100).Error
}

// Update writes the descriptive columns only. Status and reservation move
// through UpdateStatus.
func (r *unitRepository) Update(ctx context.Context, unit *models.Unit) error {
	return r.db.WithContext(ctx).
		Model(unit).
		Select("identifier", "unit_type_id", "floor", "block", "override_price", "notes", "updated_at").
		Updates(unit).Error
}

func (r *unitRepository) UpdateStatus(ctx context.Context, id uint, status string, reservedBy *uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Unit{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": status, "reserved_by_proposal_id": reservedBy}).Error
}

func (r *unitRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Unit{}, id).Error
}

// IsReferenced reports whether any proposal or contract points at the unit
func (r *unitRepository) IsReferenced(ctx context.Context, id uint) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Proposal{}).Where("unit_id = ?", id).Count(&n).Error
	if err != nil || n > 0 {
		return n > 0, err
	}
	err = r.db.WithContext(ctx).Model(&models.Contract{}).Where("unit_id = ?", id).Count(&n).Error
	return n > 0, err
}

func (r *unitRepository) ExistingIdentifiers(ctx context.Context, developmentID uint, identifiers []string) (map[string]bool, error) {
	existing := make(map[string]bool)
	if len(identifiers) == 0 {
		return existing, nil
	}
	var found []string
	err := r.db.WithContext(ctx).
		Model(&models.Unit{}).
		Where("development_id = ? AND identifier IN ?", developmentID, identifiers).
		Pluck("identifier", &found).Error
	if err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = true
	}
	return existing, nil
}

func (r *unitRepository) CountByDevelopment(ctx context.Context, developmentID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Unit{}).Where("development_id = ?", developmentID).Count(&n).Error
	return n, err
}
