package statemachine

import (
	"context"
	"fmt"

	"github.com/looplab/fsm"
	"github.com/sjperalta/contratus-api/internal/models"
)

// Proposal events
const (
	ProposalEventSend    = "send"
	ProposalEventApprove = "approve"
	ProposalEventReject  = "reject"
	ProposalEventExpire  = "expire"
	ProposalEventCancel  = "cancel"
)

// ProposalFSM wraps a proposal with its state machine
type ProposalFSM struct {
	proposal *models.Proposal
	fsm      *fsm.FSM
}

// NewProposalFSM creates a new proposal state machine
func NewProposalFSM(proposal *models.Proposal) *ProposalFSM {
	p := &ProposalFSM{proposal: proposal}

	p.fsm = fsm.NewFSM(
		proposal.Status,
		fsm.Events{
			// draft → sent
			{Name: ProposalEventSend, Src: []string{models.ProposalStatusDraft}, Dst: models.ProposalStatusSent},

			// draft/sent → approved
			{Name: ProposalEventApprove, Src: []string{models.ProposalStatusDraft, models.ProposalStatusSent}, Dst: models.ProposalStatusApproved},

			// draft/sent → rejected
			{Name: ProposalEventReject, Src: []string{models.ProposalStatusDraft, models.ProposalStatusSent}, Dst: models.ProposalStatusRejected},

			// sent → expired (validity elapsed)
			{Name: ProposalEventExpire, Src: []string{models.ProposalStatusSent}, Dst: models.ProposalStatusExpired},

			// draft/sent/approved → cancelled
			{Name: ProposalEventCancel, Src: []string{models.ProposalStatusDraft, models.ProposalStatusSent, models.ProposalStatusApproved}, Dst: models.ProposalStatusCancelled},
		},
		fsm.Callbacks{},
	)

	return p
}

func (p *ProposalFSM) fire(ctx context.Context, event string) error {
	if p.proposal.HasContract() {
		return fmt.Errorf("%w: proposta já possui contrato", ErrInvalidTransition)
	}
	return fire(ctx, p.fsm, "proposta", event, func(s string) { p.proposal.Status = s })
}

// Send marks the proposal as sent to the client
func (p *ProposalFSM) Send(ctx context.Context) error {
	return p.fire(ctx, ProposalEventSend)
}

// Approve transitions the proposal to approved
func (p *ProposalFSM) Approve(ctx context.Context) error {
	return p.fire(ctx, ProposalEventApprove)
}

// Reject transitions the proposal to rejected
func (p *ProposalFSM) Reject(ctx context.Context) error {
	return p.fire(ctx, ProposalEventReject)
}

// Expire transitions a sent proposal to expired
func (p *ProposalFSM) Expire(ctx context.Context) error {
	return p.fire(ctx, ProposalEventExpire)
}

// Cancel transitions the proposal to cancelled
func (p *ProposalFSM) Cancel(ctx context.Context) error {
	return p.fire(ctx, ProposalEventCancel)
}

// Current returns the current state
func (p *ProposalFSM) Current() string {
	return p.fsm.Current()
}

// Can checks if a transition is possible
func (p *ProposalFSM) Can(event string) bool {
	if p.proposal.HasContract() {
		return false
	}
	return p.fsm.Can(event)
}
