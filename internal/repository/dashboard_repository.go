package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"gorm.io/gorm"
)

// DashboardFilter narrows every aggregate of one dashboard request
type DashboardFilter struct {
	Policy        access.Policy
	Since         *time.Time
	TeamID        uint
	AgentID       uint
	DevelopmentID uint
	Status        string
}

// DashboardRepository computes scoped aggregates
type DashboardRepository interface {
	ProposalsByStatus(ctx context.Context, f DashboardFilter) (map[string]int64, error)
	ContractsByStatus(ctx context.Context, f DashboardFilter) (map[string]int64, error)
	ContractValue(ctx context.Context, f DashboardFilter) (decimal.Decimal, error)
	UnitsByStatus(ctx context.Context, developmentID uint) (map[string]int64, error)
	CommissionsByStatus(ctx context.Context, f DashboardFilter) (map[string]decimal.Decimal, error)
	TopAgents(ctx context.Context, f DashboardFilter, limit int) ([]models.AgentRanking, error)
	RecentProposals(ctx context.Context, f DashboardFilter, limit int) ([]models.ProposalBrief, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

// NewDashboardRepository creates a new dashboard repository
func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// filtered applies scope, period and the optional filters to table
func (r *dashboardRepository) filtered(ctx context.Context, entity access.Entity, f DashboardFilter) *gorm.DB {
	table := string(entity)
	db := r.db.WithContext(ctx).Table(table)
	if f.Policy != nil {
		db = scoped(db, f.Policy.Visible(entity))
	}
	if f.Since != nil {
		db = db.Where(table+".created_at >= ?", *f.Since)
	}
	if f.AgentID > 0 {
		db = db.Where(table+".agent_id = ?", f.AgentID)
	}
	if f.TeamID > 0 {
		db = db.Where(table+".agent_id IN (SELECT id FROM users WHERE team_id = ?)", f.TeamID)
	}
	if f.DevelopmentID > 0 && entity != access.Commissions {
		db = db.Where(table+".development_id = ?", f.DevelopmentID)
	}
	return db
}

type statusCount struct {
	Status string
	Total  int64
}

func groupByStatus(db *gorm.DB, table string) (map[string]int64, error) {
	var rows []statusCount
	err := db.Select(table + ".status AS status, COUNT(*) AS total").
		Group(table + ".status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]int64, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}

func (r *dashboardRepository) ProposalsByStatus(ctx context.Context, f DashboardFilter) (map[string]int64, error) {
	return groupByStatus(r.filtered(ctx, access.Proposals, f), "proposals")
}

func (r *dashboardRepository) ContractsByStatus(ctx context.Context, f DashboardFilter) (map[string]int64, error) {
	db := r.filtered(ctx, access.Contracts, f)
	if f.Status != "" {
		db = db.Where("contracts.status = ?", f.Status)
	}
	return groupByStatus(db, "contracts")
}

func (r *dashboardRepository) ContractValue(ctx context.Context, f DashboardFilter) (decimal.Decimal, error) {
	var total decimal.NullDecimal
	db := r.filtered(ctx, access.Contracts, f).
		Where("contracts.status NOT IN ?", []string{models.ContractStatusCancelled, models.ContractStatusRescinded})
	if f.Status != "" {
		db = db.Where("contracts.status = ?", f.Status)
	}
	err := db.Select("SUM(contracts.property_value)").Row().Scan(&total)
	if err != nil {
		return decimal.Zero, err
	}
	if !total.Valid {
		return decimal.Zero, nil
	}
	return total.Decimal, nil
}

func (r *dashboardRepository) UnitsByStatus(ctx context.Context, developmentID uint) (map[string]int64, error) {
	db := r.db.WithContext(ctx).Table("units")
	if developmentID > 0 {
		db = db.Where("units.development_id = ?", developmentID)
	}
	return groupByStatus(db, "units")
}

func (r *dashboardRepository) CommissionsByStatus(ctx context.Context, f DashboardFilter) (map[string]decimal.Decimal, error) {
	var rows []struct {
		Status string
		Total  decimal.Decimal
	}
	err := r.filtered(ctx, access.Commissions, f).
		Select("commissions.status AS status, COALESCE(SUM(commissions.net_amount), 0) AS total").
		Group("commissions.status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		out[row.Status] = row.Total
	}
	return out, nil
}

func (r *dashboardRepository) TopAgents(ctx context.Context, f DashboardFilter, limit int) ([]models.AgentRanking, error) {
	var rows []models.AgentRanking
	err := r.filtered(ctx, access.Contracts, f).
		Select("contracts.agent_id AS agent_id, users.full_name AS agent_name, COUNT(*) AS contracts, COALESCE(SUM(contracts.property_value), 0) AS total_value").
		Joins("JOIN users ON users.id = contracts.agent_id").
		Where("contracts.status NOT IN ?", []string{models.ContractStatusCancelled, models.ContractStatusRescinded}).
		Group("contracts.agent_id, users.full_name").
		Order("total_value DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) RecentProposals(ctx context.Context, f DashboardFilter, limit int) ([]models.ProposalBrief, error) {
	var rows []models.ProposalBrief
	db := r.filtered(ctx, access.Proposals, f)
	if f.Status != "" {
		db = db.Where("proposals.status = ?", f.Status)
	}
	err := db.
		Select("proposals.id, proposals.number, proposals.status, clients.full_name AS client_name, users.full_name AS agent_name, proposals.marked_up_total AS total").
		Joins("JOIN clients ON clients.id = proposals.client_id").
		Joins("JOIN users ON users.id = proposals.agent_id").
		Order("proposals.created_at DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
