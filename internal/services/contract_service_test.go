package services

import (
	"context"
	"testing"
	"time"

	"github.com/sjperalta/contratus-api/internal/access"
	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/sjperalta/contratus-api/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContractService(s *memStore, q *queuedJobs) *ContractService {
	svc := NewContractService(s.repos(), s, testSettings(), nil, q, nil, nil, nil, Numberer{attempts: 1}, nil)
	svc.now = func() time.Time { return time.Date(2025, time.May, 10, 9, 0, 0, 0, time.UTC) }
	return svc
}

// approvedProposal opens and approves a proposal for testAgent on unit 10
func approvedProposal(t *testing.T, s *memStore) *models.Proposal {
	t.Helper()
	proposals := newTestProposalService(s, &queuedJobs{})
	policy := access.ForUser(&testAgent)

	p, err := proposals.Create(context.Background(), policy, proposalInput())
	require.NoError(t, err)
	p, err = proposals.Approve(context.Background(), policy, p.ID)
	require.NoError(t, err)
	return p
}

func TestContractService_CreateFromProposal(t *testing.T) {
	s := seedStore()
	q := &queuedJobs{}
	svc := newTestContractService(s, q)
	p := approvedProposal(t, s)

	signed := time.Date(2025, time.May, 12, 0, 0, 0, 0, time.UTC)
	c, created, err := svc.CreateFromProposal(context.Background(), access.ForUser(&testAgent), p.ID, DeriveContractInput{
		SignatureDate: &signed,
		Witnesses:     Witnesses{Witness1Name: " Davi Testemunha ", Witness1CPF: "52998224725"},
	})
	require.NoError(t, err)
	assert.True(t, created)

	assert.Equal(t, "CONT-2025-00001", c.Number)
	assert.Equal(t, models.ContractStatusActive, c.Status)
	assert.Equal(t, p.ID, c.ProposalID)
	assert.True(t, p.PropertyValue.Equal(c.PropertyValue))
	assert.True(t, p.MarkedUpTotal.Equal(c.MarkedUpTotal))
	assert.Equal(t, p.InstallmentCount, c.InstallmentCount)
	assert.True(t, p.TotalApproval.Equal(c.TotalApproval))

	assert.Equal(t, 180, c.ValidityDays)
	assert.Equal(t, 90, c.ExtensionDays)
	assert.Equal(t, signed.AddDate(0, 0, 180), c.DueDate)
	assert.Equal(t, "Davi Testemunha", c.Witness1Name)
	assert.Equal(t, "529.982.247-25", c.Witness1CPF)

	assert.Equal(t, models.UnitStatusSold, s.units[10].Status)
	require.Len(t, s.history, 1)
	assert.Equal(t, models.ContractStatusActive, s.history[0].NewStatus)
	assert.Equal(t, []uint{1}, s.refreshed)

	commission, err := s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommissionStatusPending, commission.Status)
	assert.True(t, dec("15000").Equal(commission.GrossAmount))
	assert.True(t, dec("15000").Equal(commission.NetAmount))

	assert.Len(t, q.jobs, 1)
}

func TestContractService_CreateFromProposal_Idempotent(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)
	policy := access.ForUser(&testAgent)

	first, created, err := svc.CreateFromProposal(context.Background(), policy, p.ID, DeriveContractInput{})
	require.NoError(t, err)
	require.True(t, created)

	second, created, err := svc.CreateFromProposal(context.Background(), policy, p.ID, DeriveContractInput{})
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)
	assert.Len(t, s.contracts, 1)
	assert.Len(t, s.commissions, 1)
}

func TestContractService_CreateFromProposal_RequiresApproval(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p, err := newTestProposalService(s, &queuedJobs{}).Create(context.Background(), access.ForUser(&testAgent), proposalInput())
	require.NoError(t, err)

	_, _, err = svc.CreateFromProposal(context.Background(), access.ForUser(&testAgent), p.ID, DeriveContractInput{})
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Empty(t, s.contracts)
	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)
}

func TestContractService_CreateFromProposal_InvalidWitnessCPF(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)

	_, _, err := svc.CreateFromProposal(context.Background(), access.ForUser(&testAgent), p.ID, DeriveContractInput{
		Witnesses: Witnesses{Witness2Name: "Eva", Witness2CPF: "123.456.789-00"},
	})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "CPF da testemunha 2 inválido", err.Error())
	assert.Empty(t, s.contracts)
}

func TestContractService_CreateFromProposal_OutOfScope(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)

	_, _, err := svc.CreateFromProposal(context.Background(), access.ForUser(&otherUser), p.ID, DeriveContractInput{})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)
}

func TestContractService_ChangeStatus_CancelVoidsCommission(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)
	policy := access.ForUser(&testAgent)

	c, _, err := svc.CreateFromProposal(context.Background(), policy, p.ID, DeriveContractInput{})
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), policy, c.ID, models.ContractStatusFinalized, "")
	assert.ErrorIs(t, err, ErrPrecondition)

	c, err = svc.ChangeStatus(context.Background(), policy, c.ID, models.ContractStatusCancelled, "desistência")
	require.NoError(t, err)
	assert.Equal(t, models.ContractStatusCancelled, c.Status)
	require.NotNil(t, c.CancellationReason)
	assert.Equal(t, "desistência", *c.CancellationReason)

	commission, err := s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommissionStatusCancelled, commission.Status)

	// the unit stays sold
	assert.Equal(t, models.UnitStatusSold, s.units[10].Status)

	history, err := svc.History(context.Background(), policy, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, models.ContractStatusActive, history[1].PreviousStatus)
	assert.Equal(t, models.ContractStatusCancelled, history[1].NewStatus)

	_, err = svc.UpdateDetails(context.Background(), policy, c.ID, ContractDetailsInput{})
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestContractService_RescindKeepsPaidCommission(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	commissions := NewCommissionService(s.repos().Commission, &queuedJobs{}, nil, nil)
	p := approvedProposal(t, s)
	admin := access.ForUser(&testAdmin)

	c, _, err := svc.CreateFromProposal(context.Background(), admin, p.ID, DeriveContractInput{})
	require.NoError(t, err)
	for _, status := range []string{models.ContractStatusAwaitingSignature, models.ContractStatusSigned} {
		_, err = svc.ChangeStatus(context.Background(), admin, c.ID, status, "")
		require.NoError(t, err)
	}

	commission, err := s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)
	_, err = commissions.Approve(context.Background(), admin, commission.ID)
	require.NoError(t, err)
	_, err = commissions.Pay(context.Background(), admin, commission.ID, nil, "pix")
	require.NoError(t, err)

	_, err = svc.ChangeStatus(context.Background(), admin, c.ID, models.ContractStatusRescinded, "distrato")
	require.NoError(t, err)

	commission, err = s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, models.CommissionStatusPaid, commission.Status)
	assert.Equal(t, "pix", commission.PaymentMethod)
	assert.NotNil(t, commission.PaymentDate)
}

func TestCommissionService_AdminOnly(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	commissions := NewCommissionService(s.repos().Commission, &queuedJobs{}, nil, nil)
	p := approvedProposal(t, s)

	c, _, err := svc.CreateFromProposal(context.Background(), access.ForUser(&testAgent), p.ID, DeriveContractInput{})
	require.NoError(t, err)
	commission, err := s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)

	_, err = commissions.Approve(context.Background(), access.ForUser(&testAgent), commission.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// the owning agent can still read it
	got, err := commissions.FindByID(context.Background(), access.ForUser(&testAgent), commission.ID)
	require.NoError(t, err)
	assert.Equal(t, commission.ID, got.ID)

	_, err = commissions.Pay(context.Background(), access.ForUser(&testAdmin), commission.ID, nil, "")
	assert.ErrorIs(t, err, ErrPrecondition)
}

func TestCommissionService_UpdateRecalculates(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	commissions := NewCommissionService(s.repos().Commission, &queuedJobs{}, nil, nil)
	p := approvedProposal(t, s)
	admin := access.ForUser(&testAdmin)

	c, _, err := svc.CreateFromProposal(context.Background(), admin, p.ID, DeriveContractInput{})
	require.NoError(t, err)
	commission, err := s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)

	pct, deductions := dec("4"), dec("500")
	updated, err := commissions.Update(context.Background(), admin, commission.ID, CommissionInput{Percentage: &pct, Deductions: &deductions})
	require.NoError(t, err)
	assert.True(t, dec("12000").Equal(updated.GrossAmount))
	assert.True(t, dec("11500").Equal(updated.NetAmount))

	tooMuch := dec("20000")
	_, err = commissions.Update(context.Background(), admin, commission.ID, CommissionInput{Deductions: &tooMuch})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestContractService_CreateFromProposal_UnitHeldByAnotherProposal(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)

	u := s.units[10]
	u.ReservedByProposalID = uintPtr(777)
	s.units[10] = u

	_, _, err := svc.CreateFromProposal(context.Background(), access.ForUser(&testAgent), p.ID, DeriveContractInput{})
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Empty(t, s.contracts)
	assert.Equal(t, models.UnitStatusReserved, s.units[10].Status)
	assert.Equal(t, uint(777), *s.units[10].ReservedByProposalID)
}

func TestContractService_IgnoresLaterProposalEdits(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	proposals := newTestProposalService(s, &queuedJobs{})
	p := approvedProposal(t, s)
	policy := access.ForUser(&testAgent)

	c, _, err := svc.CreateFromProposal(context.Background(), policy, p.ID, DeriveContractInput{})
	require.NoError(t, err)
	require.NotNil(t, s.units[10].ReservedByProposalID)
	assert.Equal(t, p.ID, *s.units[10].ReservedByProposalID, "the sold unit keeps its buyer")

	in := UpdateProposalInput{ProposalValues: proposalInput().ProposalValues}
	in.BasePrice = dec("200000")
	_, err = proposals.Update(context.Background(), policy, p.ID, in)
	assert.ErrorIs(t, err, ErrPrecondition)

	// a direct write to the proposal row does not reach the contract
	stored, err := s.repos().Proposal.FindByID(context.Background(), p.ID)
	require.NoError(t, err)
	stored.PropertyValue = dec("999999")
	stored.MarkedUpTotal = dec("1")
	stored.InstallmentCount = 1
	stored.TotalApproval = dec("2")
	require.NoError(t, s.repos().Proposal.Update(context.Background(), stored))

	got, err := s.repos().Contract.FindByID(context.Background(), c.ID)
	require.NoError(t, err)
	assert.True(t, p.PropertyValue.Equal(got.PropertyValue))
	assert.True(t, p.MarkedUpTotal.Equal(got.MarkedUpTotal))
	assert.Equal(t, p.InstallmentCount, got.InstallmentCount)
	assert.True(t, p.TotalApproval.Equal(got.TotalApproval))
}

func TestContractService_ChangeStatus_SeesConcurrentTransition(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)
	policy := access.ForUser(&testAgent)

	c, _, err := svc.CreateFromProposal(context.Background(), policy, p.ID, DeriveContractInput{})
	require.NoError(t, err)

	s.beforeTx = []func(){func() {
		_, err := svc.ChangeStatus(context.Background(), policy, c.ID, models.ContractStatusAwaitingSignature, "")
		require.NoError(t, err)
	}}

	// active allows in_progress, awaiting_signature does not
	_, err = svc.ChangeStatus(context.Background(), policy, c.ID, models.ContractStatusInProgress, "")
	assert.ErrorIs(t, err, ErrPrecondition)
	assert.Equal(t, models.ContractStatusAwaitingSignature, s.contracts[c.ID].Status)

	history, err := svc.History(context.Background(), policy, c.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	for i := 1; i < len(history); i++ {
		assert.Equal(t, history[i-1].NewStatus, history[i].PreviousStatus)
	}
}

func TestContractService_UpdateDetails_SeesConcurrentCancel(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)
	policy := access.ForUser(&testAgent)

	c, _, err := svc.CreateFromProposal(context.Background(), policy, p.ID, DeriveContractInput{})
	require.NoError(t, err)

	s.beforeTx = []func(){func() {
		_, err := svc.ChangeStatus(context.Background(), policy, c.ID, models.ContractStatusCancelled, "desistência")
		require.NoError(t, err)
	}}

	notes := "testemunha trocada"
	_, err = svc.UpdateDetails(context.Background(), policy, c.ID, ContractDetailsInput{Notes: &notes})
	assert.ErrorIs(t, err, ErrPrecondition)

	stored := s.contracts[c.ID]
	assert.Equal(t, models.ContractStatusCancelled, stored.Status)
	assert.Empty(t, stored.Notes)
}

// interleavedCommissions lets another operation commit right before a write
type interleavedCommissions struct {
	repository.CommissionRepository
	before func()
}

func (r *interleavedCommissions) UpdateFrom(ctx context.Context, c *models.Commission, status string) error {
	if hook := r.before; hook != nil {
		r.before = nil
		hook()
	}
	return r.CommissionRepository.UpdateFrom(ctx, c, status)
}

func TestCommissionService_PayLosesToConcurrentCancel(t *testing.T) {
	s := seedStore()
	svc := newTestContractService(s, &queuedJobs{})
	p := approvedProposal(t, s)
	admin := access.ForUser(&testAdmin)

	c, _, err := svc.CreateFromProposal(context.Background(), admin, p.ID, DeriveContractInput{})
	require.NoError(t, err)
	commission, err := s.repos().Commission.FindByContract(context.Background(), c.ID)
	require.NoError(t, err)

	other := NewCommissionService(s.repos().Commission, &queuedJobs{}, nil, nil)
	_, err = other.Approve(context.Background(), admin, commission.ID)
	require.NoError(t, err)

	repo := &interleavedCommissions{CommissionRepository: s.repos().Commission}
	repo.before = func() {
		_, err := other.Cancel(context.Background(), admin, commission.ID)
		require.NoError(t, err)
	}
	commissions := NewCommissionService(repo, &queuedJobs{}, nil, nil)

	_, err = commissions.Pay(context.Background(), admin, commission.ID, nil, "pix")
	assert.ErrorIs(t, err, ErrConflict)

	stored := s.commissions[commission.ID]
	assert.Equal(t, models.CommissionStatusCancelled, stored.Status)
	assert.Nil(t, stored.PaymentDate)
}
