package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/sjperalta/contratus-api/internal/access"
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	db *gorm.DB

	User                UserRepository
	Team                TeamRepository
	ConstructionCompany ConstructionCompanyRepository
	Development         DevelopmentRepository
	UnitType            UnitTypeRepository
	Unit                UnitRepository
	Client              ClientRepository
	Proposal            ProposalRepository
	Contract            ContractRepository
	ContractHistory     ContractHistoryRepository
	Commission          CommissionRepository
	Settings            SettingsRepository
	Notification        NotificationRepository
	RefreshToken        RefreshTokenRepository
	Audit               AuditRepository
	Dashboard           DashboardRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		db:                  db,
		User:                NewUserRepository(db),
		Team:                NewTeamRepository(db),
		ConstructionCompany: NewConstructionCompanyRepository(db),
		Development:         NewDevelopmentRepository(db),
		UnitType:            NewUnitTypeRepository(db),
		Unit:                NewUnitRepository(db),
		Client:              NewClientRepository(db),
		Proposal:            NewProposalRepository(db),
		Contract:            NewContractRepository(db),
		ContractHistory:     NewContractHistoryRepository(db),
		Commission:          NewCommissionRepository(db),
		Settings:            NewSettingsRepository(db),
		Notification:        NewNotificationRepository(db),
		RefreshToken:        NewRefreshTokenRepository(db),
		Audit:               NewAuditRepository(db),
		Dashboard:           NewDashboardRepository(db),
	}
}

// Transactor runs fn with repositories bound to one database transaction
type Transactor interface {
	Transaction(ctx context.Context, fn func(tx *Repositories) error) error
}

// Transaction commits when fn returns nil and rolls back otherwise
func (r *Repositories) Transaction(ctx context.Context, fn func(tx *Repositories) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRepositories(tx))
	})
}

// IsUniqueViolation reports whether err is a PostgreSQL unique violation,
// optionally restricted to the given constraint names.
func IsUniqueViolation(err error, constraints ...string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pgErr.ConstraintName == c {
			return true
		}
	}
	return false
}

// ErrStaleWrite means a conditional update found the row already changed
var ErrStaleWrite = errors.New("stale write")

// IsNotFound reports whether err means the row does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// scoped restricts db to the rows a policy predicate allows
func scoped(db *gorm.DB, pred access.Predicate) *gorm.DB {
	if pred.Unrestricted() {
		return db
	}
	return db.Where(pred.Clause, pred.Args...)
}

// paginate applies sorting from an allow-list and the page window
func paginate(db *gorm.DB, query *ListQuery, sortable map[string]string, defaultOrder string) *gorm.DB {
	order := defaultOrder
	if col, ok := sortable[query.SortBy]; ok {
		order = col
		if query.SortDir == "desc" {
			order += " DESC"
		} else {
			order += " ASC"
		}
	}
	db = db.Order(order)

	if query.PerPage > 0 {
		page := query.Page
		if page < 1 {
			page = 1
		}
		db = db.Offset((page - 1) * query.PerPage).Limit(query.PerPage)
	}
	return db
}

// count runs Count on a separate session so the main query is not altered
func count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Session(&gorm.Session{}).Count(&total).Error
	return total, err
}
