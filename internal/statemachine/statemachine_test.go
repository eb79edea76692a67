package statemachine

import (
	"context"
	"testing"

	"github.com/sjperalta/contratus-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitFSM_Lifecycle(t *testing.T) {
	ctx := context.Background()
	unit := &models.Unit{Status: models.UnitStatusAvailable}

	require.NoError(t, NewUnitFSM(unit).Reserve(ctx))
	assert.Equal(t, models.UnitStatusReserved, unit.Status)

	require.NoError(t, NewUnitFSM(unit).Release(ctx))
	assert.Equal(t, models.UnitStatusAvailable, unit.Status)

	f := NewUnitFSM(unit)
	require.NoError(t, f.Reserve(ctx))
	require.NoError(t, f.Sell(ctx))
	assert.Equal(t, models.UnitStatusSold, unit.Status)

	idle := &models.Unit{Status: models.UnitStatusAvailable}
	f = NewUnitFSM(idle)
	require.NoError(t, f.Block(ctx))
	assert.Equal(t, models.UnitStatusBlocked, idle.Status)
	require.NoError(t, f.Unblock(ctx))
	assert.Equal(t, models.UnitStatusAvailable, idle.Status)
}

func TestUnitFSM_InvalidTransitions(t *testing.T) {
	ctx := context.Background()

	sold := &models.Unit{Status: models.UnitStatusSold}
	err := NewUnitFSM(sold).Reserve(ctx)
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, models.UnitStatusSold, sold.Status)

	available := &models.Unit{Status: models.UnitStatusAvailable}
	assert.ErrorIs(t, NewUnitFSM(available).Sell(ctx), ErrInvalidTransition)
	assert.ErrorIs(t, NewUnitFSM(available).Release(ctx), ErrInvalidTransition)
	assert.ErrorIs(t, NewUnitFSM(available).Unblock(ctx), ErrInvalidTransition)

	blocked := &models.Unit{Status: models.UnitStatusBlocked}
	assert.ErrorIs(t, NewUnitFSM(blocked).Block(ctx), ErrInvalidTransition)

	// a unit held by a proposal or sold cannot be taken off the market
	reserved := &models.Unit{Status: models.UnitStatusReserved}
	assert.ErrorIs(t, NewUnitFSM(reserved).Block(ctx), ErrInvalidTransition)
	assert.ErrorIs(t, NewUnitFSM(sold).Block(ctx), ErrInvalidTransition)
	assert.Equal(t, models.UnitStatusReserved, reserved.Status)
}

func TestProposalFSM(t *testing.T) {
	ctx := context.Background()

	p := &models.Proposal{Status: models.ProposalStatusDraft}
	f := NewProposalFSM(p)
	require.NoError(t, f.Send(ctx))
	assert.Equal(t, models.ProposalStatusSent, p.Status)
	require.NoError(t, f.Approve(ctx))
	assert.Equal(t, models.ProposalStatusApproved, p.Status)
	assert.ErrorIs(t, f.Reject(ctx), ErrInvalidTransition)
	require.NoError(t, f.Cancel(ctx))
	assert.Equal(t, models.ProposalStatusCancelled, p.Status)

	draft := &models.Proposal{Status: models.ProposalStatusDraft}
	assert.ErrorIs(t, NewProposalFSM(draft).Expire(ctx), ErrInvalidTransition)
	require.NoError(t, NewProposalFSM(draft).Reject(ctx))
	assert.Equal(t, models.ProposalStatusRejected, draft.Status)
}

func TestProposalFSM_FrozenOnceContracted(t *testing.T) {
	p := &models.Proposal{
		Status:   models.ProposalStatusApproved,
		Contract: &models.Contract{ID: 1},
	}
	f := NewProposalFSM(p)
	assert.False(t, f.Can(ProposalEventCancel))
	assert.ErrorIs(t, f.Cancel(context.Background()), ErrInvalidTransition)
	assert.Equal(t, models.ProposalStatusApproved, p.Status)
}

func TestContractFSM(t *testing.T) {
	ctx := context.Background()
	c := &models.Contract{Status: models.ContractStatusActive}
	f := NewContractFSM(c)

	assert.ElementsMatch(t, []string{
		models.ContractStatusInProgress,
		models.ContractStatusAwaitingSignature,
		models.ContractStatusCancelled,
	}, f.Available())

	for _, next := range []string{
		models.ContractStatusAwaitingSignature,
		models.ContractStatusSigned,
		models.ContractStatusUnderBankReview,
		models.ContractStatusBankRejected,
		models.ContractStatusUnderBankReview,
		models.ContractStatusBankApproved,
		models.ContractStatusFinalized,
	} {
		require.NoError(t, f.TransitionTo(ctx, next), next)
		assert.Equal(t, next, c.Status)
	}

	assert.ErrorIs(t, f.TransitionTo(ctx, models.ContractStatusActive), ErrInvalidTransition)
	require.NoError(t, f.TransitionTo(ctx, models.ContractStatusRescinded))
	assert.Empty(t, f.Available())
}

func TestContractFSM_UnknownStatus(t *testing.T) {
	f := NewContractFSM(&models.Contract{Status: models.ContractStatusActive})
	assert.ErrorIs(t, f.TransitionTo(context.Background(), "archived"), ErrInvalidTransition)
	assert.ErrorIs(t, f.TransitionTo(context.Background(), models.ContractStatusActive), ErrInvalidTransition)
}

func TestCommissionFSM(t *testing.T) {
	ctx := context.Background()
	c := &models.Commission{Status: models.CommissionStatusPending}
	f := NewCommissionFSM(c)

	assert.ErrorIs(t, f.Pay(ctx), ErrInvalidTransition)
	require.NoError(t, f.Approve(ctx))
	require.NoError(t, f.Pay(ctx))
	assert.Equal(t, models.CommissionStatusPaid, c.Status)
	assert.ErrorIs(t, f.Cancel(ctx), ErrInvalidTransition)
}
