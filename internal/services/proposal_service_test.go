package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

var (
	testAdmin = models.User{ID: 1, FullName: "Admin", Role: models.RoleAdmin, Status: models.StatusActive}
	testAgent = models.User{ID: 2, FullName: "Ana Corretora", Role: models.RoleAgent, Status: models.StatusActive, TeamID: uintPtr(9)}
	otherUser = models.User{ID: 3, FullName: "Bruno Corretor", Role: models.RoleAgent, Status: models.StatusActive}
)

func testSettings() staticSettings {
	return staticSettings{
		AgencyName:               "Contratus Imóveis",
		DefaultProposalValidity:  30,
		DefaultContractValidity:  180,
		DefaultContractExtension: 90,
		DefaultBrokerageFee:      dec("5"),
	}
}

// seedStore holds two agents, a client of testAgent and one available unit
func seedStore() *memStore {
	s := newMemStore()
	for _, u := range []models.User{testAdmin, testAgent, otherUser} {
		s.users[u.ID] = u
	}
	s.clients[20] = models.Client{ID: 20, FullName: "Carla Cliente", CPF: "529.982.247-25", RegisteredByID: testAgent.ID}
	s.units[10] = models.Unit{
		ID:            10,
		DevelopmentID: 1,
		UnitTypeID:    uintPtr(5),
		Identifier:    "101",
		Status:        models.UnitStatusAvailable,
		UnitType:      &models.UnitType{ID: 5, Price: dec("300000"), EngineeringCost: dec("250000")},
	}
	return s
}

func newTestProposalService(s *memStore, q *queuedJobs) *ProposalService {
	svc := NewProposalService(s.repos(), s, testSettings(), q, nil, nil, nil, Numberer{attempts: 1}, nil)
	svc.now = func() time.Time { return time.Date(2025, time.May, 2, 9, 0, 0, 0, time.UTC) }
	return svc
}

func proposalInput() CreateProposalInput {
	return CreateProposalInput{
		DevelopmentID: 1,
		UnitID:        10,
		ClientID:      20,
		ProposalValues: ProposalValues{
			FinancingAmount:   dec("200000"),
			SubsidyAmount:     dec("10000"),
			FGTSAmount:        dec("5000"),
			BasePrice:         dec("100000"),
			ClientInstallment: dec("1000"),
		},
	}
}

func TestProposalService_Create_ReservesUnit(t *testing.T) {
	s := seedStore()
	q := &queuedJobs{}
	svc := newTestProposalService(s, q)

	p, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	assert.Equal(t, "PROP-2025-00001", p.Number)
	assert.Equal(t, models.ProposalStatusDraft, p.Status)
	assert.Equal(t, testAgent.ID, p.AgentID)
	assert.Equal(t, 30, p.ValidityDays)
	assert.True(t, dec("150000").Equal(p.MarkedUpTotal))
	assert.Equal(t, 150, p.InstallmentCount)
	assert.True(t, dec("215000").Equal(p.TotalApproval))

	// blank values come from the unit
	assert.True(t, dec("300000").Equal(p.PropertyValue))
	assert.True(t, dec("250000").Equal(p.EngineeringCost))
	require.NotNil(t, p.UnitTypeID)
	assert.Equal(t, uint(5), *p.UnitTypeID)

	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)
	assert.Empty(t, q.jobs, "no notification when agents open their own proposal")
}

func TestProposalService_Create_SequentialNumbers(t *testing.T) {
	s := seedStore()
	s.units[11] = models.Unit{ID: 11, DevelopmentID: 1, Identifier: "102", Status: models.UnitStatusAvailable}
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	first, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	in := proposalInput()
	in.UnitID = 11
	second, err := svc.Create(context.Background(), policy, in)
	require.NoError(t, err)

	assert.Equal(t, "PROP-2025-00001", first.Number)
	assert.Equal(t, "PROP-2025-00002", second.Number)
}

func numberTaken() error {
	return &pgconn.PgError{Code: "23505", ConstraintName: repository.ProposalNumberIndex}
}

func TestProposalService_Create_RetriesTakenNumber(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	svc.numberer = Numberer{attempts: 3}

	// another agent commits PROP-2025-00001 between our two attempts
	s.proposalCreateErrs = []error{numberTaken()}
	s.beforeTx = []func(){nil, func() {
		s.proposals[500] = models.Proposal{ID: 500, Number: "PROP-2025-00001", Status: models.ProposalStatusDraft}
	}}

	p, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)
	assert.Equal(t, "PROP-2025-00002", p.Number)
	assert.Len(t, s.proposals, 2)
	require.NotNil(t, s.units[10].ReservedByProposalID)
	assert.Equal(t, p.ID, *s.units[10].ReservedByProposalID)
}

func TestProposalService_Create_NumberingExhausted(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	svc.numberer = Numberer{attempts: 3}
	s.proposalCreateErrs = []error{numberTaken(), numberTaken(), numberTaken()}

	_, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, s.proposals)
	assert.Equal(t, models.UnitStatusAvailable, s.units[10].Status)
	assert.Nil(t, s.units[10].ReservedByProposalID)
	assert.Empty(t, s.proposalCreateErrs)
}

func TestProposalService_Create_OtherUniqueViolationIsNotRetried(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	svc.numberer = Numberer{attempts: 3}
	s.proposalCreateErrs = []error{&pgconn.PgError{Code: "23505", ConstraintName: "idx_other"}}

	_, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Empty(t, s.proposals)
}

func TestProposalService_Create_UnitUnavailable(t *testing.T) {
	s := seedStore()
	u := s.units[10]
	u.Status = models.UnitStatusReserved
	s.units[10] = u
	svc := newTestProposalService(s, &queuedJobs{})

	_, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	assert.ErrorIs(t, err, ErrConflict)
	assert.Empty(t, s.proposals)
}

func TestProposalService_Create_FailureLeavesUnitAvailable(t *testing.T) {
	s := seedStore()
	s.failProposalCreate = errors.New("insert failed")
	svc := newTestProposalService(s, &queuedJobs{})

	_, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.Error(t, err)
	assert.Equal(t, models.UnitStatusAvailable, s.units[10].Status)
}

func TestProposalService_Create_Validation(t *testing.T) {
	svc := newTestProposalService(seedStore(), &queuedJobs{})
	policy := access.ForUser(&testAgent)

	in := proposalInput()
	in.UnitID = 0
	_, err := svc.Create(context.Background(), policy, in)
	assert.ErrorIs(t, err, ErrValidation)

	in = proposalInput()
	in.ClientInstallment = decimal.Zero
	_, err = svc.Create(context.Background(), policy, in)
	assert.ErrorIs(t, err, ErrValidation)

	count := 120
	in = proposalInput()
	in.ClientInstallment = decimal.Zero
	in.Overrides.InstallmentCount = &count
	_, err = svc.Create(context.Background(), policy, in)
	assert.ErrorIs(t, err, ErrValidation)

	in = proposalInput()
	in.DevelopmentID = 2
	_, err = svc.Create(context.Background(), policy, in)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestProposalService_Create_ClientOutOfScope(t *testing.T) {
	svc := newTestProposalService(seedStore(), &queuedJobs{})

	_, err := svc.Create(context.Background(), access.ForUser(&otherUser), proposalInput())
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestProposalService_Create_AssignedAgentIsNotified(t *testing.T) {
	s := seedStore()
	q := &queuedJobs{}
	svc := newTestProposalService(s, q)

	in := proposalInput()
	in.AgentID = testAgent.ID
	p, err := svc.Create(context.Background(), access.ForUser(&testAdmin), in)
	require.NoError(t, err)
	assert.Equal(t, testAgent.ID, p.AgentID)
	assert.Len(t, q.jobs, 1)
}

func TestProposalService_Update_KeepsFiguresWhenInputsUnchanged(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)

	count := 140
	in := UpdateProposalInput{
		ProposalValues: proposalInput().ProposalValues,
	}
	in.Overrides.InstallmentCount = &count
	p, err = svc.Update(context.Background(), policy, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 140, p.InstallmentCount)

	// a notes-only edit keeps the override
	in.Overrides.InstallmentCount = nil
	in.Notes = "cliente pediu retorno"
	p, err = svc.Update(context.Background(), policy, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 140, p.InstallmentCount)

	// changing the installment recomputes the count
	in.ClientInstallment = dec("1500")
	p, err = svc.Update(context.Background(), policy, p.ID, in)
	require.NoError(t, err)
	assert.Equal(t, 100, p.InstallmentCount)
}

func TestProposalService_Reject_ReleasesUnit(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	require.Equal(t, models.UnitStatusReserved, s.units[10].Status)

	p, err = svc.Reject(context.Background(), policy, p.ID, "sem renda")
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusRejected, p.Status)
	require.NotNil(t, p.RejectionReason)
	assert.Equal(t, "sem renda", *p.RejectionReason)
	assert.Equal(t, models.UnitStatusAvailable, s.units[10].Status)

	_, err = svc.Approve(context.Background(), policy, p.ID)
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestProposalService_UnitRemembersHolder(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	require.NotNil(t, s.units[10].ReservedByProposalID)
	assert.Equal(t, p.ID, *s.units[10].ReservedByProposalID)

	_, err = svc.Cancel(context.Background(), policy, p.ID)
	require.NoError(t, err)
	assert.Equal(t, models.UnitStatusAvailable, s.units[10].Status)
	assert.Nil(t, s.units[10].ReservedByProposalID)
}

func TestProposalService_Reject_KeepsReservationOfAnotherProposal(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)

	// the unit now belongs to a different proposal
	u := s.units[10]
	u.ReservedByProposalID = uintPtr(777)
	s.units[10] = u

	_, err = svc.Reject(context.Background(), policy, p.ID, "desistiu")
	require.NoError(t, err)
	assert.Equal(t, models.ProposalStatusRejected, s.proposals[p.ID].Status)
	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)
	require.NotNil(t, s.units[10].ReservedByProposalID)
	assert.Equal(t, uint(777), *s.units[10].ReservedByProposalID)
}

func TestProposalService_Update_SeesConcurrentApproval(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)

	// the client answers while the agent is still editing
	s.beforeTx = []func(){func() {
		_, err := svc.Approve(context.Background(), policy, p.ID)
		require.NoError(t, err)
	}}

	in := UpdateProposalInput{ProposalValues: proposalInput().ProposalValues}
	in.Notes = "edição tardia"
	_, err = svc.Update(context.Background(), policy, p.ID, in)
	assert.ErrorIs(t, err, ErrPrecondition)

	stored := s.proposals[p.ID]
	assert.Equal(t, models.ProposalStatusApproved, stored.Status)
	assert.NotNil(t, stored.AnsweredAt)
	assert.Empty(t, stored.Notes)
}

func TestProposalService_Approve_KeepsUnitReserved(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	p, err = svc.Approve(context.Background(), policy, p.ID)
	require.NoError(t, err)

	assert.Equal(t, models.ProposalStatusApproved, p.Status)
	assert.NotNil(t, p.AnsweredAt)
	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)

	_, err = svc.Update(context.Background(), policy, p.ID, UpdateProposalInput{ProposalValues: proposalInput().ProposalValues})
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestProposalService_OtherAgentCannotAnswer(t *testing.T) {
	s := seedStore()
	svc := newTestProposalService(s, &queuedJobs{})

	p, err := svc.Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), access.ForUser(&otherUser), p.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)
}

func TestProposalService_ExpireOverdue(t *testing.T) {
	s := seedStore()
	q := &queuedJobs{}
	svc := newTestProposalService(s, q)
	policy := access.ForUser(&testAgent)

	p, err := svc.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	_, err = svc.Send(context.Background(), policy, p.ID)
	require.NoError(t, err)

	// still within validity
	n, err := svc.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	svc.now = func() time.Time { return time.Date(2025, time.June, 5, 9, 0, 0, 0, time.UTC) }
	n, err = svc.ExpireOverdue(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, models.ProposalStatusExpired, s.proposals[p.ID].Status)
	assert.Equal(t, models.UnitStatusAvailable, s.units[10].Status)
	assert.Len(t, q.jobs, 1)
}
