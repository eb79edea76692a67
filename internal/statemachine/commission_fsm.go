package statemachine

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sjperalta/contratus-api/internal/models"
)

// CommissionFSM wraps a commission with its state machine
type CommissionFSM struct {
	commission *models.Commission
	fsm        *fsm.FSM
}

// NewCommissionFSM creates a new commission state machine
func NewCommissionFSM(commission *models.Commission) *CommissionFSM {
	c := &CommissionFSM{commission: commission}

	c.fsm = fsm.NewFSM(
		commission.Status,
		fsm.Events{
			// pending → approved
			{Name: "approve", Src: []string{models.CommissionStatusPending}, Dst: models.CommissionStatusApproved},

			// approved → paid
			{Name: "pay", Src: []string{models.CommissionStatusApproved}, Dst: models.CommissionStatusPaid},

			// pending/approved → cancelled
			{Name: "cancel", Src: []string{models.CommissionStatusPending, models.CommissionStatusApproved}, Dst: models.CommissionStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return c
}

func (c *CommissionFSM) fire(ctx context.Context, event string) error {
	return fire(ctx, c.fsm, "comissão", event, func(s string) { c.commission.Status = s })
}

// Approve transitions commission to approved state
func (c *CommissionFSM) Approve(ctx context.Context) error {
	return c.fire(ctx, "approve")
}

// Pay transitions commission to paid state
func (c *CommissionFSM) Pay(ctx context.Context) error {
	return c.fire(ctx, "pay")
}

// Cancel transitions commission to cancelled state
func (c *CommissionFSM) Cancel(ctx context.Context) error {
	return c.fire(ctx, "cancel")
}

// Current returns the current state
func (c *CommissionFSM) Current() string {
	return c.fsm.Current()
}
