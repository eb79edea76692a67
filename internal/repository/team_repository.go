package repository

import (
	"context"

	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
)

// TeamRepository defines the interface for team data access
type TeamRepository interface {
	FindByID(ctx context.Context, id uint) (*models.Team, error)
	Create(ctx context.Context, team *models.Team) error
	Update(ctx context.Context, team *models.Team) error
	Delete(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.Team, int64, error)
}

type teamRepository struct {
	db *gorm.DB
}

// NewTeamRepository creates a new team repository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepository{db: db}
}

func (r *teamRepository) FindByID(ctx context.Context, id uint) (*models.Team, error) {
	var team models.Team
	err := r.db.WithContext(ctx).
		Preload("Manager").
		Preload("Members", func(db *gorm.DB) *gorm.DB {
			return db.Order("full_name ASC")
		}).
		First(&team, id).Error
	if err != nil {
		return nil, err
	}
	return &team, nil
}

func (r *teamRepository) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Omit("Manager", "Members").Create(team).Error
}

func (r *teamRepository) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Omit("Manager", "Members").Save(team).Error
}

func (r *teamRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&models.Team{}, id).Error
}

func (r *teamRepository) List(ctx context.Context, query *ListQuery) ([]models.Team, int64, error) {
	var teams []models.Team

	db := r.db.WithContext(ctx).Model(&models.Team{})

	if query.Search != "" {
		db = db.Where("name ILIKE ?", "%"+query.Search+"%")
	}
	if query.Filters["active"] != "" {
		db = db.Where("active = ?", query.Filters["active"] == "true")
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query, map[string]string{"name": "teams.name", "created_at": "teams.created_at"}, "teams.name ASC").
		Preload("Manager").
		Preload("Members").
		Find(&teams).Error
	return teams, total, err
}
