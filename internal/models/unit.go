package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Unit is one sellable property within a development
type Unit struct {
	ID            uint             `gorm:"primaryKey" json:"id"`
	DevelopmentID uint             `gorm:"not null;uniqueIndex:idx_units_development_identifier" json:"development_id"`
	UnitTypeID    *uint            `gorm:"index" json:"unit_type_id"`
	Identifier    string           `gorm:"size:50;not null;uniqueIndex:idx_units_development_identifier" json:"identifier"`
	Floor         string           `gorm:"size:10" json:"floor"`
	Block         string           `gorm:"size:20" json:"block"`
	Status        string           `gorm:"size:20;default:available;index" json:"status"`
	OverridePrice *decimal.Decimal `gorm:"type:decimal(14,2)" json:"override_price"`
	Notes         string           `gorm:"type:text" json:"notes"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`

	// Proposal holding the reservation, kept as the buyer's once sold
	ReservedByProposalID *uint `gorm:"index" json:"reserved_by_proposal_id"`

	// Associations
	Development Development `gorm:"foreignKey:DevelopmentID" json:"development,omitempty"`
	UnitType    *UnitType   `gorm:"foreignKey:UnitTypeID" json:"unit_type,omitempty"`
}

// TableName specifies the table name for Unit
func (Unit) TableName() string {
	return "units"
}

// Unit status constants
const (
	UnitStatusAvailable = "available"
	UnitStatusReserved  = "reserved"
	UnitStatusSold      = "sold"
	UnitStatusBlocked   = "blocked"
)

// BeforeCreate hook for setting defaults
func (u *Unit) BeforeCreate(tx *gorm.DB) error {
	if u.Status == "" {
		u.Status = UnitStatusAvailable
	}
	return nil
}

// EffectivePrice returns the unit's own price when set, otherwise its type's price
func (u *Unit) EffectivePrice() decimal.Decimal {
	if u.OverridePrice != nil && u.OverridePrice.IsPositive() {
		return *u.OverridePrice
	}
	if u.UnitType != nil {
		return u.UnitType.Price
	}
	return decimal.Zero
}

// EngineeringCost comes from the unit type, zero when the unit has none
func (u *Unit) EngineeringCost() decimal.Decimal {
	if u.UnitType != nil {
		return u.UnitType.EngineeringCost
	}
	return decimal.Zero
}

// MayReserve returns true if a proposal can be opened against the unit
func (u *Unit) MayReserve() bool {
	return u.Status == UnitStatusAvailable
}

// MaySell returns true if a contract can be signed for the unit
func (u *Unit) MaySell() bool {
	return u.Status == UnitStatusReserved
}

// MayRelease returns true if the reservation can be undone
func (u *Unit) MayRelease() bool {
	return u.Status == UnitStatusReserved
}

// ReservedFor returns true while the unit is reserved by proposalID
func (u *Unit) ReservedFor(proposalID uint) bool {
	return u.Status == UnitStatusReserved &&
		u.ReservedByProposalID != nil &&
		*u.ReservedByProposalID == proposalID
}

// MayBlock returns true if the unit can be taken off the market. Reserved
// and sold units belong to a proposal and stay out of reach.
func (u *Unit) MayBlock() bool {
	return u.Status == UnitStatusAvailable
}

// MayUnblock returns true if the unit is blocked
func (u *Unit) MayUnblock() bool {
	return u.Status == UnitStatusBlocked
}

// Label is "Bloco B - 101" when the unit has a block, otherwise the identifier
func (u *Unit) Label() string {
	if u.Block != "" {
		return "Bloco " + u.Block + " - " + u.Identifier
	}
	return u.Identifier
}

// UnitResponse is the JSON response format for units
type UnitResponse struct {
	ID              uint             `json:"id"`
	DevelopmentID   uint             `json:"development_id"`
	DevelopmentName string           `json:"development_name"`
	UnitTypeID      *uint            `json:"unit_type_id"`
	UnitTypeName    string           `json:"unit_type_name"`
	Identifier      string           `json:"identifier"`
	Label           string           `json:"label"`
	Floor           string           `json:"floor"`
	Block           string           `json:"block"`
	Status          string           `json:"status"`
	ReservedBy      *uint            `json:"reserved_by_proposal_id"`
	OverridePrice   *decimal.Decimal `json:"override_price"`
	EffectivePrice  decimal.Decimal  `json:"effective_price"`
	EngineeringCost decimal.Decimal  `json:"engineering_cost"`
	Notes           string           `json:"notes"`
	CreatedAt       time.Time        `json:"created_at"`
}

// ToResponse converts Unit to UnitResponse
func (u *Unit) ToResponse() UnitResponse {
	resp := UnitResponse{
		ID:              u.ID,
		DevelopmentID:   u.DevelopmentID,
		DevelopmentName: u.Development.Name,
		UnitTypeID:      u.UnitTypeID,
		Identifier:      u.Identifier,
		Label:           u.Label(),
		Floor:           u.Floor,
		Block:           u.Block,
		Status:          u.Status,
		ReservedBy:      u.ReservedByProposalID,
		OverridePrice:   u.OverridePrice,
		EffectivePrice:  u.EffectivePrice(),
		EngineeringCost: u.EngineeringCost(),
		Notes:           u.Notes,
		CreatedAt:       u.CreatedAt,
	}
	if u.UnitType != nil {
		resp.UnitTypeName = u.UnitType.Name
	}
	return resp
}
