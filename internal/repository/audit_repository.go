package repository

import (
	"context"

	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
)

// AuditRepository defines the interface for audit log access
type AuditRepository interface {
	Create(ctx context.Context, log *models.AuditLog) error
	List(ctx context.Context, query *ListQuery) ([]models.AuditLog, int64, error)
}

type auditRepository struct {
	db *gorm.DB
}

// NewAuditRepository creates a new audit repository
func NewAuditRepository(db *gorm.DB) AuditRepository {
	return &auditRepository{db: db}
}

func (r *auditRepository) Create(ctx context.Context, log *models.AuditLog) error {
	return r.db.WithContext(ctx).Omit("User").Create(log).Error
}

func (r *auditRepository) List(ctx context.Context, query *ListQuery) ([]models.AuditLog, int64, error) {
	var logs []models.AuditLog

	db := r.db.WithContext(ctx).Model(&models.AuditLog{})

	if v := query.Filters["entity"]; v != "" {
		db = db.Where("audit_logs.entity = ?", v)
	}
	if v := query.Filters["entity_id"]; v != "" {
		db = db.Where("audit_logs.entity_id = ?", v)
	}
	if v := query.Filters["action"]; v != "" {
		db = db.Where("audit_logs.action = ?", v)
	}
	if v := query.Filters["user_id"]; v != "" {
		db = db.Where("audit_logs.user_id = ?", v)
	}
	if query.Search != "" {
		db = db.Where("audit_logs.details ILIKE ?", "%"+query.Search+"%")
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query, map[string]string{"created_at": "audit_logs.created_at"}, "audit_logs.created_at DESC").
		Joins("User").
		Find(&logs).Error
	return logs, total, err
}
