package repository

import (
	"context"
	"strings"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ContractRepository defines the interface for contract data access
type ContractRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Contract, error)
	FindForUpdate(ctx context.Context, id uint) (*models.Contract, error)
	FindByIDWithDetails(ctx context.Context, id uint) (*models.Contract, error)
	FindByProposal(ctx context.Context, proposalID uint) (*models.Contract, error)
	Create(ctx context.Context, contract *models.Contract) error
	Update(ctx context.Context, contract *models.Contract) error
	List(ctx context.Context, query *ContractQuery) ([]models.Contract, int64, error)
	LatestNumber(ctx context.Context, prefix string) (string, error)
	SetDocumentPath(ctx context.Context, id uint, column, path string) error
}

// ContractQuery extends ListQuery with contract-specific filters
type ContractQuery struct {
	*ListQuery
	Scope         access.Predicate
	Statuses      []string
	DevelopmentID uint
	AgentID       uint
	From          *time.Time
	To            *time.Time
}

type contractRepository struct {
	db *gorm.DB
}

// NewContractRepository creates a new contract repository
func NewContractRepository(db *gorm.DB) ContractRepository {
	return &contractRepository{db: db}
}

func (r *contractRepository) FindByID(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Joins("Agent").
		First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

// FindForUpdate locks the contract row until the surrounding transaction ends
func (r *contractRepository) FindForUpdate(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&contract.Agent, contract.AgentID).Error; err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) FindByIDWithDetails(ctx context.Context, id uint) (*models.Contract, error) {
	var contract models.Contract
	// One-to-one associations come in the same query; history is one-to-many.
	err := r.db.WithContext(ctx).
		Joins("Proposal").
		Joins("Development").
		Joins("Unit").
		Joins("Client").
		Joins("Agent").
		Joins("Commission").
		Preload("Development.ConstructionCompany").
		Preload("Unit.UnitType").
		Preload("History", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC, id ASC")
		}).
		Preload("History.Actor").
		First(&contract, id).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) FindByProposal(ctx context.Context, proposalID uint) (*models.Contract, error) {
	var contract models.Contract
	err := r.db.WithContext(ctx).Where("proposal_id = ?", proposalID).First(&contract).Error
	if err != nil {
		return nil, err
	}
	return &contract, nil
}

func (r *contractRepository) Create(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(contract).Error
}

func (r *contractRepository) Update(ctx context.Context, contract *models.Contract) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(contract).Error
}

var contractSortable = map[string]string{
	"number":         "contracts.number",
	"status":         "contracts.status",
	"signature_date": "contracts.signature_date",
	"due_date":       "contracts.due_date",
	"property_value": "contracts.property_value",
	"created_at":     "contracts.created_at",
}

func (r *contractRepository) List(ctx context.Context, query *ContractQuery) ([]models.Contract, int64, error) {
	var contracts []models.Contract

	db := scoped(r.db.WithContext(ctx).Model(&models.Contract{}), query.Scope)

	// Apply status filter (single or multiple via status_in)
	statuses := query.Statuses
	if val := query.Filters["status_in"]; val != "" {
		for _, s := range strings.Split(val, ",") {
			if s = strings.TrimSpace(s); s != "" {
				statuses = append(statuses, s)
			}
		}
	}
	if len(statuses) > 0 {
		db = db.Where("contracts.status IN ?", statuses)
	}

	if query.DevelopmentID > 0 {
		db = db.Where("contracts.development_id = ?", query.DevelopmentID)
	}
	if query.AgentID > 0 {
		db = db.Where("contracts.agent_id = ?", query.AgentID)
	}
	if query.From != nil {
		db = db.Where("contracts.created_at >= ?", *query.From)
	}
	if query.To != nil {
		db = db.Where("contracts.created_at < ?", *query.To)
	}

	// Due date filters (YYYY-MM-DD)
	if val := query.Filters["due_from"]; val != "" {
		db = db.Where("contracts.due_date >= ?", val)
	}
	if val := query.Filters["due_to"]; val != "" {
		db = db.Where("contracts.due_date <= ?", val)
	}

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("contracts.number ILIKE ? OR contracts.client_id IN (SELECT id FROM clients WHERE full_name ILIKE ? OR cpf ILIKE ?)",
			search, search, search)
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query.ListQuery, contractSortable, "contracts.created_at DESC").
		Joins("Development").
		Joins("Unit").
		Joins("Client").
		Joins("Agent").
		Find(&contracts).Error
	return contracts, total, err
}

func (r *contractRepository) LatestNumber(ctx context.Context, prefix string) (string, error) {
	return latestNumber(r.db.WithContext(ctx).Model(&models.Contract{}), prefix)
}

// SetDocumentPath stores a generated or signed document path
func (r *contractRepository) SetDocumentPath(ctx context.Context, id uint, column, path string) error {
	return r.db.WithContext(ctx).
		Model(&models.Contract{}).
		Where("id = ?", id).
		Update(column, path).Error
}

// ContractHistoryRepository is append-only
type ContractHistoryRepository interface {
	Create(ctx context.Context, entry *models.ContractHistory) error
	FindByContract(ctx context.Context, contractID uint) ([]models.ContractHistory, error)
}

type contractHistoryRepository struct {
	db *gorm.DB
}

// NewContractHistoryRepository creates a new contract history repository
func NewContractHistoryRepository(db *gorm.DB) ContractHistoryRepository {
	return &contractHistoryRepository{db: db}
}

func (r *contractHistoryRepository) Create(ctx context.Context, entry *models.ContractHistory) error {
	return r.db.WithContext(ctx).Omit("Actor").Create(entry).Error
}

func (r *contractHistoryRepository) FindByContract(ctx context.Context, contractID uint) ([]models.ContractHistory, error) {
	var entries []models.ContractHistory
	err := r.db.WithContext(ctx).
		Preload("Actor").
		Where("contract_id = ?", contractID).
		Order("created_at ASC, id ASC").
		Find(&entries).Error
	return entries, err
}

// NotificationRepository defines the interface for notification data access
type NotificationRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Notification, error)
	FindByUser(ctx context.Context, userID uint, query *ListQuery) ([]models.Notification, int64, error)
	Create(ctx context.Context, notification *models.Notification) error
	Update(ctx context.Context, notification *models.Notification) error
	Delete(ctx context.Context, id uint) error
	MarkAllAsRead(ctx context.Context, userID uint) error
	CountUnread(ctx context.Context, userID uint) (int64, error)
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) FindByID(ctx context.Context, id uint) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.WithContext(ctx).First(&notification, id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepository) FindByUser(ctx context.Context, userID uint, query *ListQuery) ([]models.Notification, int64, error) {
	var notifications []models.Notification

	db := r.db.WithContext(ctx).Model(&models.Notification{}).Where("user_id = ?", userID)

	switch strings.ToLower(query.Filters["status"]) {
	case "unread":
		db = db.Where("read_at IS NULL")
	case "read":
		db = db.Where("read_at IS NOT NULL")
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query, nil, "created_at DESC").Find(&notifications).Error
	return notifications, total, err
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Omit("User").Create(notification).Error
}

func (r *notificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	return r.db.WithContext(ctx).Omit("User").Save(notification).Error
}

func (r *notificationRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Notification{}, id).Error
}

func (r *notificationRepository) MarkAllAsRead(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Update("read_at", time.Now()).Error
}

func (r *notificationRepository) CountUnread(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Notification{}).
		Where("user_id = ? AND read_at IS NULL", userID).
		Count(&n).Error
	return n, err
}

// RefreshTokenRepository defines the interface for refresh token data access
type RefreshTokenRepository interface {
	FindByToken(ctx context.Context, token string) (*models.RefreshToken, error)
	Create(ctx context.Context, rt *models.RefreshToken) error
	Delete(ctx context.Context, token string) error
	DeleteByUser(ctx context.Context, userID uint) error
}

type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a new refresh token repository
func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) FindByToken(ctx context.Context, token string) (*models.RefreshToken, error) {
	var rt models.RefreshToken
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&rt).Error
	if err != nil {
		return nil, err
	}
	return &rt, nil
}

func (r *refreshTokenRepository) Create(ctx context.Context, rt *models.RefreshToken) error {
	return r.db.WithContext(ctx).Omit("User").Create(rt).Error
}

func (r *refreshTokenRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).Where("token = ?", token).Delete(&models.RefreshToken{}).Error
}

func (r *refreshTokenRepository) DeleteByUser(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.RefreshToken{}).Error
}
