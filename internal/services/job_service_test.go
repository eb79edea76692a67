package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobService_RunExpiry(t *testing.T) {
	s := seedStore()
	proposals := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := proposals.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	_, err = proposals.Send(context.Background(), policy, p.ID)
	require.NoError(t, err)
	proposals.now = func() time.Time { return time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC) }

	metrics := observability.NewMetrics()
	svc := NewJobService(nil, metrics, proposals.ExpireOverdue)

	expired, err := svc.RunExpiry(context.Background(), testAdmin.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, models.ProposalStatusExpired, s.proposals[p.ID].Status)
	assert.Equal(t, models.UnitStatusAvailable, s.units[10].Status)

	// nothing left to expire
	expired, err = svc.RunExpiry(context.Background(), testAdmin.ID)
	require.NoError(t, err)
	assert.Zero(t, expired)
	assert.Equal(t, float64(2), metrics.JobCount(JobExpireProposals, "ok"))
}

func TestJobService_RunExpiry_Failure(t *testing.T) {
	metrics := observability.NewMetrics()
	svc := NewJobService(nil, metrics, func(ctx context.Context) (int, error) {
		return 0, errors.New("connection reset")
	})

	_, err := svc.RunExpiry(context.Background(), testAdmin.ID)
	require.Error(t, err)
	assert.Equal(t, float64(1), metrics.JobCount(JobExpireProposals, "error"))
	assert.Zero(t, metrics.JobCount(JobExpireProposals, "ok"))
}
