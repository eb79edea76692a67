package repository

import (
	"context"
	"errors"

	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, user *models.User) error
	UpdateLastLogin(ctx context.Context, id uint) error
	List(ctx context.Context, query *ListQuery) ([]models.User, int64, error)
	FindAdmins(ctx context.Context) ([]models.User, error)
	FindByTeam(ctx context.Context, teamID uint) ([]models.User, error)
	ClearTeam(ctx context.Context, teamID uint) error
}

// Errors returned when email or CPF is already taken
var (
	ErrDuplicateEmail = errors.New("já existe um usuário com este e-mail")
	ErrDuplicateCPF   = errors.New("já existe um usuário com este CPF")
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Preload("Team").
		First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := r.db.WithContext(ctx).
		Where("LOWER(email) = LOWER(?)", email).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) Create(ctx context.Context, user *models.User) error {
	return duplicateUser(r.db.WithContext(ctx).Create(user).Error)
}

func (r *userRepository) Update(ctx context.Context, user *models.User) error {
	return duplicateUser(r.db.WithContext(ctx).Omit("Team").Save(user).Error)
}

func duplicateUser(err error) error {
	switch {
	case err == nil:
		return nil
	case IsUniqueViolation(err, "idx_users_email"):
		return ErrDuplicateEmail
	case IsUniqueViolation(err, "idx_users_cpf"):
		return ErrDuplicateCPF
	}
	return err
}

func (r *userRepository) UpdateLastLogin(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("id = ?", id).
		Update("last_login_at", gorm.Expr("NOW()")).Error
}

var userSortable = map[string]string{
	"full_name":  "users.full_name",
	"email":      "users.email",
	"role":       "users.role",
	"created_at": "users.created_at",
}

func (r *userRepository) List(ctx context.Context, query *ListQuery) ([]models.User, int64, error) {
	var users []models.User

	db := r.db.WithContext(ctx).Model(&models.User{})

	// Apply search
	if query.Search != "" {
		search := "%" + query.Search + "%"
		db = db.Where("full_name ILIKE ? OR email ILIKE ? OR phone ILIKE ? OR cpf ILIKE ? OR creci ILIKE ?",
			search, search, search, search, search)
	}

	if query.Filters["role"] != "" {
		db = db.Where("role = ?", query.Filters["role"])
	}
	if query.Filters["status"] != "" {
		db = db.Where("status = ?", query.Filters["status"])
	}
	if query.Filters["team_id"] != "" {
		db = db.Where("team_id = ?", query.Filters["team_id"])
	}

	total, err := count(db)
	if err != nil {
		return nil, 0, err
	}

	err = paginate(db, query, userSortable, "users.created_at DESC").
		Preload("Team").
		Find(&users).Error
	return users, total, err
}

func (r *userRepository) FindAdmins(ctx context.Context) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("role = ? AND status = ?", models.RoleAdmin, models.StatusActive).
		Find(&users).Error
	return users, err
}

func (r *userRepository) FindByTeam(ctx context.Context, teamID uint) ([]models.User, error) {
	var users []models.User
	err := r.db.WithContext(ctx).
		Where("team_id = ?", teamID).
		Order("full_name ASC").
		Find(&users).Error
	return users, err
}

func (r *userRepository) ClearTeam(ctx context.Context, teamID uint) error {
	return r.db.WithContext(ctx).
		Model(&models.User{}).
		Where("team_id = ?", teamID).
		Update("team_id", nil).Error
}

// ListQuery represents common query parameters
type ListQuery struct {
	Page    int
	PerPage int
	Search  string
	SortBy  string
	SortDir string
	Filters map[string]string
}

// NewListQuery creates a ListQuery with defaults
func NewListQuery() *ListQuery {
	return &ListQuery{
		Page:    1,
		PerPage: 20,
		Filters: make(map[string]string),
	}
}
