package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type mockDashboardRepo struct {
	proposals map[string]int64
	err       error
	filter    repository.DashboardFilter
}

func (m *mockDashboardRepo) ProposalsByStatus(ctx context.Context, f repository.DashboardFilter) (map[string]int64, error) {
	m.filter = f
	return m.proposals, m.err
}

func (m *mockDashboardRepo) ContractsByStatus(ctx context.Context, f repository.DashboardFilter) (map[string]int64, error) {
	return map[string]int64{models.ContractStatusActive: 2, models.ContractStatusSigned: 1}, nil
}

func (m *mockDashboardRepo) ContractValue(ctx context.Context, f repository.DashboardFilter) (decimal.Decimal, error) {
	return dec("900000"), nil
}

func (m *mockDashboardRepo) UnitsByStatus(ctx context.Context, developmentID uint) (map[string]int64, error) {
	return map[string]int64{models.UnitStatusAvailable: 7, models.UnitStatusSold: 3}, nil
}

func (m *mockDashboardRepo) CommissionsByStatus(ctx context.Context, f repository.DashboardFilter) (map[string]decimal.Decimal, error) {
	return map[string]decimal.Decimal{models.CommissionStatusPending: dec("15000")}, nil
}

func (m *mockDashboardRepo) TopAgents(ctx context.Context, f repository.DashboardFilter, limit int) ([]models.AgentRanking, error) {
	return nil, nil
}

func (m *mockDashboardRepo) RecentProposals(ctx context.Context, f repository.DashboardFilter, limit int) ([]models.ProposalBrief, error) {
	return nil, nil
}

func TestPeriodStart(t *testing.T) {
	now := time.Date(2025, time.March, 15, 16, 30, 0, 0, time.UTC)

	tests := []struct {
		period string
		want   time.Time
	}{
		{Period7Days, time.Date(2025, time.March, 8, 0, 0, 0, 0, time.UTC)},
		{"", time.Date(2025, time.February, 13, 0, 0, 0, 0, time.UTC)},
		{Period30Days, time.Date(2025, time.February, 13, 0, 0, 0, 0, time.UTC)},
		{Period90Days, time.Date(2024, time.December, 15, 0, 0, 0, 0, time.UTC)},
		{PeriodYear, time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			got, err := PeriodStart(tt.period, now)
			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, *got)
		})
	}

	got, err := PeriodStart(PeriodAll, now)
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = PeriodStart("14", now)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDashboardService_Get(t *testing.T) {
	repo := &mockDashboardRepo{proposals: map[string]int64{
		models.ProposalStatusDraft:    2,
		models.ProposalStatusApproved: 3,
		models.ProposalStatusRejected: 1,
	}}
	svc := NewDashboardService(repo)

	d, err := svc.Get(context.Background(), access.ForUser(&testAgent), DashboardFilters{DevelopmentID: 4})
	require.NoError(t, err)

	assert.Equal(t, Period30Days, d.Period)
	assert.Equal(t, int64(6), d.Proposals.Total)
	assert.InDelta(t, 75.0, d.Proposals.ConversionRate, 0.001)
	assert.Equal(t, int64(3), d.Contracts.Total)
	assert.True(t, dec("900000").Equal(d.Contracts.TotalValue))
	assert.Equal(t, int64(10), d.Units.Total)
	assert.Equal(t, int64(7), d.Units.Available)
	assert.True(t, dec("15000").Equal(d.Commissions.Pending))
	assert.NotNil(t, d.TopAgents)
	assert.NotNil(t, d.Recent)

	assert.Equal(t, uint(4), repo.filter.DevelopmentID)
	assert.NotNil(t, repo.filter.Since)
	assert.Equal(t, testAgent.ID, repo.filter.Policy.UserID())
}

func TestDashboardService_Get_NoAnsweredProposals(t *testing.T) {
	svc := NewDashboardService(&mockDashboardRepo{proposals: map[string]int64{models.ProposalStatusSent: 4}})

	d, err := svc.Get(context.Background(), access.ForUser(&testAdmin), DashboardFilters{Period: PeriodAll})
	require.NoError(t, err)
	assert.Zero(t, d.Proposals.ConversionRate)
	assert.Equal(t, PeriodAll, d.Period)
}

func TestDashboardService_Get_PropagatesErrors(t *testing.T) {
	svc := NewDashboardService(&mockDashboardRepo{err: errors.New("db down")})

	_, err := svc.Get(context.Background(), access.ForUser(&testAdmin), DashboardFilters{})
	assert.EqualError(t, err, "db down")
}
