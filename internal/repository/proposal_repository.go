package repository

import (
	"context"
	"errors"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Unique indexes guarding proposal and contract numbering
const (
	ProposalNumberIndex   = "idx_proposals_number"
	ContractNumberIndex   = "idx_contracts_number"
	ContractProposalIndex = "idx_contracts_proposal"
)

// ProposalRepository defines the interface for proposal data access
type ProposalRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Proposal, error)
	FindForUpdate(ctx context.Context, id uint) (*models.Proposal, error)
	Create(ctx context.Context, proposal *models.Proposal) error
	Update(ctx context.Context, proposal *models.Proposal) error
	List(ctx context.Context, query *ProposalQuery) ([]models.Proposal, int64, error)
	LatestNumber(ctx context.Context, prefix string) (string, error)
	FindOverdue(ctx context.Context, now time.Time) ([]models.Proposal, error)
	SetDocumentPath(ctx context.Context, id uint, path string) error
}

// ProposalQuery extends ListQuery with proposal-specific filters
type ProposalQuery struct {
	*ListQuery
	Scope         access.Predicate
	Status        string
	DevelopmentID uint
	ClientID      uint
	AgentID       uint
	From          *time.Time
	To            *time.Time
}

type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository
func NewProposalRepository(db *gorm.DB) ProposalRepository {
	return &proposalRepository{db: db}
}

func (r *proposalRepository) withDetails(db *gorm.DB) *gorm.DB {
	return db.
		Joins("Development").
		Joins("Unit").
		Joins("UnitType").
		Joins("Client").
		Joins("Agent").
		Joins("Contract")
}

func (r *proposalRepository) FindByID(ctx context.Context, id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.withDetails(r.db.WithContext(ctx)).
		Preload("Development.ConstructionCompany").
		First(&proposal, id).Error
	if err != nil {
		return nil, err
	}
	return &proposal, nil
}

// FindForUpdate locks the proposal row and loads what derivation needs
func (r *proposalRepository) FindForUpdate(ctx context.Context, id uint) (*models.Proposal, error) {
	var proposal models.Proposal
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Table: clause.Table{Name: clause.CurrentTable}}).
		First(&proposal, id).Error
	if err != nil {
		return nil, err
	}

	var contract models.Contract
	err = r.db.WithContext(ctx).Where("proposal_id = ?", id).First(&contract).Error
	switch {
	case err == nil:
		proposal.Contract = &contract
	case !errors.Is(err, gorm.ErrRecordNotFound):
		return nil, err
	}

	if err := r.db.WithContext(ctx).First(&proposal.Unit, proposal.UnitID).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&proposal.Development, proposal.DevelopmentID).Error; err != nil {
		return nil, err
	}
	if err := r.db.WithContext(ctx).First(&proposal.Agent, proposal.AgentID).Error; err != nil {
		return nil, err
	}
	return &proposal, nil
}

func (r *proposalRepository) Create(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(proposal).Error
}

func (r *proposalRepository) Update(ctx context.Context, proposal *models.Proposal) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(proposal).Error
}

var proposalSortable = map[string]string{
	"number":          "proposals.number",
	"status":          "proposals.status",
	"marked_up_total": "proposals.marked_up_total",
	"created_at":      "proposals.created_at",
}

func (r *proposalRepository) List(ctx context.Context, query *ProposalQuery) ([]models.Proposal, int64, error) {
	var proposals []models.Proposal

	db := scoped(r.db.WithContext(ctx).Model(&models.Proposal{}), query.Scope)

	if query.Status != "" {
		db = db.Where("proposals.status = ?", query.Status)
	}
	if query.DevelopmentID > 0 {
		db = db.Where("proposals.development_id = ?", query.DevelopmentID)
	}
	if query.ClientID > 0 {
		db = db.Where("proposals.client_id = ?", query.ClientID)
	}
	if query.AgentID > 0 {
		db = db.Where("proposals.agent_id = ?", query.AgentID)
	}
	if query.From != nil {
		db = db.Where("proposals.created_at >= ?", *query.From)
	}
	if query.To != nil {
		db = db.Where("proposals.created_at < ?", *query.To)
	}

	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("proposals.number ILIKE ? OR proposals.client_id IN (SELECT id FROM clients WHERE full_name ILIKE ? OR cpf ILIKE ?)",
			search, search, search)
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = r.withDetails(paginate(db, query.ListQuery, proposalSortable, "proposals.created_at DESC")).
		Find(&proposals).Error
	return proposals, total, err
}

// LatestNumber returns the highest number starting with prefix. Longer
// numbers sort first so sequences past the padding width stay ordered.
func (r *proposalRepository) LatestNumber(ctx context.Context, prefix string) (string, error) {
	return latestNumber(r.db.WithContext(ctx).Model(&models.Proposal{}), prefix)
}

func latestNumber(db *gorm.DB, prefix string) (string, error) {
	var numbers []string
	err := db.
		Where("number LIKE ?", prefix+"%").
		Order("LENGTH(number) DESC, number DESC").
		Limit(1).
		Pluck("number", &numbers).Error
	if err != nil || len(numbers) == 0 {
		return "", err
	}
	return numbers[0], nil
}

// FindOverdue returns sent proposals whose validity window has elapsed
func (r *proposalRepository) FindOverdue(ctx context.Context, now time.Time) ([]models.Proposal, error) {
	var proposals []models.Proposal
	err := r.db.WithContext(ctx).
		Where("status = ? AND sent_at IS NOT NULL", models.ProposalStatusSent).
		Where("sent_at + (validity_days * INTERVAL '1 day') < ?", now).
		Find(&proposals).Error
	return proposals, err
}

func (r *proposalRepository) SetDocumentPath(ctx context.Context, id uint, path string) error {
	return r.db.WithContext(ctx).
		Model(&models.Proposal{}).
		Where("id = ?", id).
		Update("document_path", path).Error
}
