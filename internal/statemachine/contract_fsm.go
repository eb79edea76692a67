package statemachine

import (
	"context"
	"sort"

	"github.com/looplab/fsm"
	"github.com/sjperalta/contratus-api/internal/models"
)

// contractTransitions maps every contract status to the statuses it may move to
var contractTransitions = map[string][]string{
	models.ContractStatusDraft: {
		models.ContractStatusActive,
		models.ContractStatusCancelled,
	},
	models.ContractStatusActive: {
		models.ContractStatusInProgress,
		models.ContractStatusAwaitingSignature,
		models.ContractStatusCancelled,
	},
	models.ContractStatusInProgress: {
		models.ContractStatusAwaitingSignature,
		models.ContractStatusCancelled,
	},
	models.ContractStatusAwaitingSignature: {
		models.ContractStatusSigned,
		models.ContractStatusCancelled,
	},
	models.ContractStatusSigned: {
		models.ContractStatusUnderBankReview,
		models.ContractStatusFinalized,
		models.ContractStatusRescinded,
	},
	models.ContractStatusUnderBankReview: {
		models.ContractStatusBankApproved,
		models.ContractStatusBankRejected,
	},
	models.ContractStatusBankApproved: {
		models.ContractStatusFinalized,
		models.ContractStatusRescinded,
	},
	models.ContractStatusBankRejected: {
		models.ContractStatusUnderBankReview,
		models.ContractStatusCancelled,
		models.ContractStatusRescinded,
	},
	models.ContractStatusFinalized: {
		models.ContractStatusRescinded,
	},
}

// contractEvents has one event per target status, named after it
func contractEvents() fsm.Events {
	sources := map[string][]string{}
	for src, dsts := range contractTransitions {
		for _, dst := range dsts {
			sources[dst] = append(sources[dst], src)
		}
	}

	events := make(fsm.Events, 0, len(sources))
	for dst, src := range sources {
		sort.Strings(src)
		events = append(events, fsm.EventDesc{Name: dst, Src: src, Dst: dst})
	}
	return events
}

// ContractFSM wraps a contract with its state machine
type ContractFSM struct {
	contract *models.Contract
	fsm      *fsm.FSM
}

// NewContractFSM creates a new contract state machine
func NewContractFSM(contract *models.Contract) *ContractFSM {
	return &ContractFSM{
		contract: contract,
		fsm:      fsm.NewFSM(contract.Status, contractEvents(), fsm.Callbacks{}),
	}
}

// TransitionTo moves the contract to status
func (c *ContractFSM) TransitionTo(ctx context.Context, status string) error {
	return fire(ctx, c.fsm, "contrato", status, func(s string) { c.contract.Status = s })
}

// Available lists the statuses reachable from the current one
func (c *ContractFSM) Available() []string {
	return append([]string(nil), contractTransitions[c.fsm.Current()]...)
}

// Current returns the current state
func (c *ContractFSM) Current() string {
	return c.fsm.Current()
}

// Can checks if moving to status is possible
func (c *ContractFSM) Can(status string) bool {
	return c.fsm.Can(status)
}
