package repository

import (
	"context"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// CommissionRepository defines the interface for commission data access
type CommissionRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Commission, error)
	FindByContract(ctx context.Context, contractID uint) (*models.Commission, error)
	Create(ctx context.Context, commission *models.Commission) error
	Update(ctx context.Context, commission *models.Commission) error
	UpdateFrom(ctx context.Context, commission *models.Commission, status string) error
	List(ctx context.Context, query *CommissionQuery) ([]models.Commission, int64, error)
}

// CommissionQuery extends ListQuery with commission-specific filters
type CommissionQuery struct {
	*ListQuery
	Scope   access.Predicate
	Status  string
	AgentID uint
	From    *time.Time
	To      *time.Time
}

type commissionRepository struct {
	db *gorm.DB
}

// NewCommissionRepository creates a new commission repository
func NewCommissionRepository(db *gorm.DB) CommissionRepository {
	return &commissionRepository{db: db}
}

func (r *commissionRepository) FindByID(ctx context.Context, id uint) (*models.Commission, error) {
	var commission models.Commission
	err := r.db.WithContext(ctx).
		Joins("Contract").
		Joins("Agent").
		First(&commission, id).Error
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

func (r *commissionRepository) FindByContract(ctx context.Context, contractID uint) (*models.Commission, error) {
	var commission models.Commission
	err := r.db.WithContext(ctx).Where("contract_id = ?", contractID).First(&commission).Error
	if err != nil {
		return nil, err
	}
	return &commission, nil
}

func (r *commissionRepository) Create(ctx context.Context, commission *models.Commission) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(commission).Error
}

func (r *commissionRepository) Update(ctx context.Context, commission *models.Commission) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(commission).Error
}

// UpdateFrom saves the commission only while its stored status is still
// status, failing with ErrStaleWrite when another writer moved it first.
func (r *commissionRepository) UpdateFrom(ctx context.Context, commission *models.Commission, status string) error {
	result := r.db.WithContext(ctx).
		Model(commission).
		Where("status = ?", status).
		Select("*").
		Omit(clause.Associations, "created_at").
		Updates(commission)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrStaleWrite
	}
	return nil
}

var commissionSortable = map[string]string{
	"status":                "commissions.status",
	"net_amount":            "commissions.net_amount",
	"expected_payment_date": "commissions.expected_payment_date",
	"created_at":            "commissions.created_at",
}

func (r *commissionRepository) List(ctx context.Context, query *CommissionQuery) ([]models.Commission, int64, error) {
	var commissions []models.Commission

	db := scoped(r.db.WithContext(ctx).Model(&models.Commission{}), query.Scope)

	if query.Status != "" {
		db = db.Where("commissions.status = ?", query.Status)
	}
	if query.AgentID > 0 {
		db = db.Where("commissions.agent_id = ?", query.AgentID)
	}
	if query.From != nil {
		db = db.Where("commissions.created_at >= ?", *query.From)
	}
	if query.To != nil {
		db = db.Where("commissions.created_at < ?", *query.To)
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query.ListQuery, commissionSortable, "commissions.created_at DESC").
		Joins("Contract").
		Joins("Agent").
		Find(&commissions).Error
	return commissions, total, err
}
