package services

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"golang.org/x/sync/errgroup"
)

// Dashboard periods
const (
	Period7Days  = "7"
	Period30Days = "30"
	Period90Days = "90"
	PeriodYear   = "year"
	PeriodAll    = "all"
)

const (
	topAgentsLimit       = 5
	recentProposalsLimit = 10
)

// DashboardFilters are the optional narrowing parameters of the dashboard
type DashboardFilters struct {
	Period        string
	TeamID        uint
	AgentID       uint
	DevelopmentID uint
	Status        string
}

// DashboardService computes the per-caller overview
type DashboardService struct {
	repo repository.DashboardRepository
	now  func() time.Time
}

func NewDashboardService(repo repository.DashboardRepository) *DashboardService {
	return &DashboardService{repo: repo, now: time.Now}
}

// PeriodStart returns the first instant counted by period, nil for "all"
func PeriodStart(period string, now time.Time) (*time.Time, error) {
	y, m, d := now.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	var since time.Time
	switch period {
	case Period7Days:
		since = midnight.AddDate(0, 0, -7)
	case "", Period30Days:
		since = midnight.AddDate(0, 0, -30)
	case Period90Days:
		since = midnight.AddDate(0, 0, -90)
	case PeriodYear:
		since = time.Date(y, time.January, 1, 0, 0, 0, 0, now.Location())
	case PeriodAll:
		return nil, nil
	default:
		return nil, validationError("período inválido: %s", period)
	}
	return &since, nil
}

// Get runs every aggregate concurrently, each scoped by policy
func (s *DashboardService) Get(ctx context.Context, policy access.Policy, filters DashboardFilters) (*models.Dashboard, error) {
	since, err := PeriodStart(filters.Period, s.now())
	if err != nil {
		return nil, err
	}
	if filters.Period == "" {
		filters.Period = Period30Days
	}

	f := repository.DashboardFilter{
		Policy:        policy,
		Since:         since,
		TeamID:        filters.TeamID,
		AgentID:       filters.AgentID,
		DevelopmentID: filters.DevelopmentID,
		Status:        filters.Status,
	}

	var (
		proposals   map[string]int64
		contracts   map[string]int64
		value       decimal.Decimal
		units       map[string]int64
		commissions map[string]decimal.Decimal
		top         []models.AgentRanking
		recent      []models.ProposalBrief
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		proposals, err = s.repo.ProposalsByStatus(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		contracts, err = s.repo.ContractsByStatus(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		value, err = s.repo.ContractValue(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		units, err = s.repo.UnitsByStatus(gctx, filters.DevelopmentID)
		return err
	})
	g.Go(func() (err error) {
		commissions, err = s.repo.CommissionsByStatus(gctx, f)
		return err
	})
	g.Go(func() (err error) {
		top, err = s.repo.TopAgents(gctx, f, topAgentsLimit)
		return err
	})
	g.Go(func() (err error) {
		recent, err = s.repo.RecentProposals(gctx, f, recentProposalsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return buildDashboard(filters.Period, proposals, contracts, value, units, commissions, top, recent), nil
}

func buildDashboard(period string, proposals, contracts map[string]int64, value decimal.Decimal,
	units map[string]int64, commissions map[string]decimal.Decimal,
	top []models.AgentRanking, recent []models.ProposalBrief) *models.Dashboard {

	dashboard := &models.Dashboard{
		Period: period,
		Proposals: models.ProposalStats{
			Total:    sum(proposals),
			ByStatus: proposals,
		},
		Contracts: models.ContractStats{
			Total:      sum(contracts),
			ByStatus:   contracts,
			TotalValue: value,
		},
		Units: models.UnitStats{
			Total:     sum(units),
			Available: units[models.UnitStatusAvailable],
			Reserved:  units[models.UnitStatusReserved],
			Sold:      units[models.UnitStatusSold],
			Blocked:   units[models.UnitStatusBlocked],
		},
		Commissions: models.CommissionStats{
			Pending:  commissions[models.CommissionStatusPending],
			Approved: commissions[models.CommissionStatusApproved],
			Paid:     commissions[models.CommissionStatusPaid],
		},
		TopAgents: top,
		Recent:    recent,
	}
	if dashboard.TopAgents == nil {
		dashboard.TopAgents = []models.AgentRanking{}
	}
	if dashboard.Recent == nil {
		dashboard.Recent = []models.ProposalBrief{}
	}

	// conversion: approved proposals over answered ones
	answered := proposals[models.ProposalStatusApproved] + proposals[models.ProposalStatusRejected]
	if answered > 0 {
		dashboard.Proposals.ConversionRate = float64(proposals[models.ProposalStatusApproved]) / float64(answered) * 100
	}
	return dashboard
}

func sum(counts map[string]int64) int64 {
	var total int64
	for _, n := range counts {
		total += n
	}
	return total
}
