package statemachine

import (
	"context"

	"github.com/looplab/fsm"
	"github.com/sjperalta/contratus-api/internal/models"
)

// Unit events
const (
	UnitEventReserve = "reserve"
	UnitEventSell    = "sell"
	UnitEventRelease = "release"
	UnitEventBlock   = "block"
	UnitEventUnblock = "unblock"
)

// UnitFSM wraps a unit with its state machine
type UnitFSM struct {
	unit *models.Unit
	fsm  *fsm.FSM
}

// NewUnitFSM creates a new unit state machine
func NewUnitFSM(unit *models.Unit) *UnitFSM {
	u := &UnitFSM{unit: unit}

	u.fsm = fsm.NewFSM(
		unit.Status,
		fsm.Events{
			// available → reserved (proposal opened)
			{Name: UnitEventReserve, Src: []string{models.UnitStatusAvailable}, Dst: models.UnitStatusReserved},

			// reserved → sold (contract derived)
			{Name: UnitEventSell, Src: []string{models.UnitStatusReserved}, Dst: models.UnitStatusSold},

			// reserved → available (proposal rejected, cancelled or expired)
			{Name: UnitEventRelease, Src: []string{models.UnitStatusReserved}, Dst: models.UnitStatusAvailable},

			// available → blocked (admin)
			{Name: UnitEventBlock, Src: []string{models.UnitStatusAvailable}, Dst: models.UnitStatusBlocked},

			// blocked → available (admin)
			{Name: UnitEventUnblock, Src: []string{models.UnitStatusBlocked}, Dst: models.UnitStatusAvailable},
		},
		fsm.Callbacks{},
	)

	return u
}

func (u *UnitFSM) fire(ctx context.Context, event string) error {
	return fire(ctx, u.fsm, "unidade", event, func(s string) { u.unit.Status = s })
}

// Reserve transitions the unit to reserved
func (u *UnitFSM) Reserve(ctx context.Context) error {
	return u.fire(ctx, UnitEventReserve)
}

// Sell transitions the unit to sold
func (u *UnitFSM) Sell(ctx context.Context) error {
	return u.fire(ctx, UnitEventSell)
}

// Release puts a reserved unit back on the market
func (u *UnitFSM) Release(ctx context.Context) error {
	return u.fire(ctx, UnitEventRelease)
}

// Block takes the unit off the market
func (u *UnitFSM) Block(ctx context.Context) error {
	return u.fire(ctx, UnitEventBlock)
}

// Unblock puts a blocked unit back on the market
func (u *UnitFSM) Unblock(ctx context.Context) error {
	return u.fire(ctx, UnitEventUnblock)
}

// Current returns the current state
func (u *UnitFSM) Current() string {
	return u.fsm.Current()
}

// Can checks if a transition is possible
func (u *UnitFSM) Can(event string) bool {
	return u.fsm.Can(event)
}
