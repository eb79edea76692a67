package repository

import (
	"context"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
)

// ClientRepository defines the interface for client data access
type ClientRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Client, error)
	Create(ctx context.Context, client *models.Client) error
	Update(ctx context.Context, client *models.Client) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ClientQuery) ([]models.Client, int64, error)
	CountProposals(ctx context.Context, id uint) (int64, error)
}

// ClientQuery extends ListQuery with client-specific filters
type ClientQuery struct {
	*ListQuery
	Scope      access.Predicate
	LeadSource string
	AgentID    uint
}

type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository
func NewClientRepository(db *gorm.DB) ClientRepository {
	return &clientRepository{db: db}
}

func (r *clientRepository) FindByID(ctx context.Context, id uint) (*models.Client, error) {
	var client models.Client
	err := r.db.WithContext(ctx).
		Joins("RegisteredBy").
		First(&client, id).Error
	if err != nil {
		return nil, err
	}
	return &client, nil
}

func (r *clientRepository) Create(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Omit("RegisteredBy").Create(client).Error
}

func (r *clientRepository) Update(ctx context.Context, client *models.Client) error {
	return r.db.WithContext(ctx).Omit("RegisteredBy").Save(client).Error
}

func (r *clientRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Client{}, id).Error
}

var clientSortable = map[string]string{
	"full_name":  "clients.full_name",
	"created_at": "clients.created_at",
}

func (r *clientRepository) List(ctx context.Context, query *ClientQuery) ([]models.Client, int64, error) {
	var clients []models.Client

	db := scoped(r.db.WithContext(ctx).Model(&models.Client{}), query.Scope)

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("clients.full_name ILIKE ? OR clients.cpf ILIKE ? OR clients.phone ILIKE ? OR clients.email ILIKE ?",
			search, search, search, search)
	}
	if query.LeadSource != "" {
		db = db.Where("clients.lead_source = ?", query.LeadSource)
	}
	if query.AgentID > 0 {
		db = db.Where("clients.registered_by_id = ?", query.AgentID)
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query.ListQuery, clientSortable, "clients.created_at DESC").
		Joins("RegisteredBy").
		Find(&clients).Error
	return clients, total, err
}

func (r *clientRepository) CountProposals(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&models.Proposal{}).Where("client_id = ?", id).Count(&n).Error
	return n, err
}
