package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Proposal is a sales offer binding a client to a unit at negotiated terms
type Proposal struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Number        string `gorm:"size:20;uniqueIndex:idx_proposals_number" json:"number"`
	DevelopmentID uint   `gorm:"not null;index" json:"development_id"`
	UnitID        uint   `gorm:"not null;index" json:"unit_id"`
	UnitTypeID    *uint  `gorm:"index" json:"unit_type_id"`
	ClientID      uint   `gorm:"not null;index" json:"client_id"`
	AgentID       uint   `gorm:"not null;index" json:"agent_id"`

	// Negotiation inputs
	EngineeringCost   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"engineering_cost"`
	PropertyValue     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"property_value"`
	FinancingAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"financing_amount"`
	SubsidyAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"subsidy_amount"`
	FGTSAmount        decimal.Decimal `gorm:"column:fgts_amount;type:decimal(14,2);not null;default:0" json:"fgts_amount"`
	SignalAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"signal_amount"`
	DownPayment       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"down_payment"`
	BasePrice         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"base_price"`
	ClientInstallment decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"client_installment"`

	// Derived by the pricing calculator, overridable
	MarkedUpTotal    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"marked_up_total"`
	InstallmentCount int             `gorm:"not null;default:0" json:"installment_count"`
	TotalApproval    decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_approval"`

	Status          string     `gorm:"size:20;default:draft;index" json:"status"`
	ValidityDays    int        `gorm:"not null;default:30" json:"validity_days"`
	SentAt          *time.Time `json:"sent_at"`
	AnsweredAt      *time.Time `json:"answered_at"`
	Notes           string     `gorm:"type:text" json:"notes"`
	RejectionReason *string    `gorm:"type:text" json:"rejection_reason"`
	DocumentPath    *string    `json:"document_path"`
	CreatedAt       time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Associations
	Development Development `gorm:"foreignKey:DevelopmentID" json:"development,omitempty"`
	Unit        Unit        `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	UnitType    *UnitType   `gorm:"foreignKey:UnitTypeID" json:"unit_type,omitempty"`
	Client      Client      `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Agent       User        `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	Contract    *Contract   `gorm:"foreignKey:ProposalID" json:"contract,omitempty"`
}

// TableName specifies the table name for Proposal
func (Proposal) TableName() string {
	return "proposals"
}

// Proposal status constants
const (
	ProposalStatusDraft     = "draft"
	ProposalStatusSent      = "sent"
	ProposalStatusApproved  = "approved"
	ProposalStatusRejected  = "rejected"
	ProposalStatusExpired   = "expired"
	ProposalStatusCancelled = "cancelled"
)

// ProposalNumberPrefix prefixes every proposal number
const ProposalNumberPrefix = "PROP"

// ValidProposalStatus reports whether s is a known proposal status
func ValidProposalStatus(s string) bool {
	switch s {
	case ProposalStatusDraft, ProposalStatusSent, ProposalStatusApproved,
		ProposalStatusRejected, ProposalStatusExpired, ProposalStatusCancelled:
		return true
	}
	return false
}

// BeforeCreate hook for setting defaults
func (p *Proposal) BeforeCreate(tx *gorm.DB) error {
	if p.Status == "" {
		p.Status = ProposalStatusDraft
	}
	return nil
}

// HasContract returns true once a contract was derived from the proposal
func (p *Proposal) HasContract() bool {
	return p.Contract != nil && p.Contract.ID != 0
}

// IsEditable returns true while the proposal is still being negotiated
func (p *Proposal) IsEditable() bool {
	if p.HasContract() {
		return false
	}
	return p.Status == ProposalStatusDraft || p.Status == ProposalStatusSent
}

// ExpiresAt is the end of the validity window, nil until the proposal is sent
func (p *Proposal) ExpiresAt() *time.Time {
	if p.SentAt == nil {
		return nil
	}
	t := p.SentAt.AddDate(0, 0, p.ValidityDays)
	return &t
}

// IsOverdue returns true for a sent proposal past its validity
func (p *Proposal) IsOverdue(now time.Time) bool {
	exp := p.ExpiresAt()
	return p.Status == ProposalStatusSent && exp != nil && now.After(*exp)
}

// ReleasesUnit returns true when moving the proposal out of negotiation
// should hand unit back to the inventory: only the proposal holding the
// reservation may release it.
func (p *Proposal) ReleasesUnit(unit *Unit) bool {
	return !p.HasContract() && unit.ReservedFor(p.ID)
}

// ProposalResponse is the JSON response format for proposals
type ProposalResponse struct {
	ID                uint            `json:"id"`
	Number            string          `json:"number"`
	Status            string          `json:"status"`
	DevelopmentID     uint            `json:"development_id"`
	DevelopmentName   string          `json:"development_name"`
	UnitID            uint            `json:"unit_id"`
	UnitLabel         string          `json:"unit_label"`
	UnitStatus        string          `json:"unit_status"`
	UnitTypeID        *uint           `json:"unit_type_id"`
	UnitTypeName      string          `json:"unit_type_name"`
	ClientID          uint            `json:"client_id"`
	ClientName        string          `json:"client_name"`
	AgentID           uint            `json:"agent_id"`
	AgentName         string          `json:"agent_name"`
	EngineeringCost   decimal.Decimal `json:"engineering_cost"`
	PropertyValue     decimal.Decimal `json:"property_value"`
	FinancingAmount   decimal.Decimal `json:"financing_amount"`
	SubsidyAmount     decimal.Decimal `json:"subsidy_amount"`
	FGTSAmount        decimal.Decimal `json:"fgts_amount"`
	SignalAmount      decimal.Decimal `json:"signal_amount"`
	DownPayment       decimal.Decimal `json:"down_payment"`
	BasePrice         decimal.Decimal `json:"base_price"`
	ClientInstallment decimal.Decimal `json:"client_installment"`
	MarkedUpTotal     decimal.Decimal `json:"marked_up_total"`
	InstallmentCount  int             `json:"installment_count"`
	TotalApproval     decimal.Decimal `json:"total_approval"`
	ValidityDays      int             `json:"validity_days"`
	SentAt            *time.Time      `json:"sent_at"`
	ExpiresAt         *time.Time      `json:"expires_at"`
	AnsweredAt        *time.Time      `json:"answered_at"`
	Notes             string          `json:"notes"`
	RejectionReason   *string         `json:"rejection_reason"`
	DocumentPath      *string         `json:"document_path"`
	Editable          bool            `json:"editable"`
	ContractID        *uint           `json:"contract_id"`
	ContractNumber    string          `json:"contract_number,omitempty"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ToResponse converts Proposal to ProposalResponse
func (p *Proposal) ToResponse() ProposalResponse {
	resp := ProposalResponse{
		ID:                p.ID,
		Number:            p.Number,
		Status:            p.Status,
		DevelopmentID:     p.DevelopmentID,
		DevelopmentName:   p.Development.Name,
		UnitID:            p.UnitID,
		UnitLabel:         p.Unit.Label(),
		UnitStatus:        p.Unit.Status,
		UnitTypeID:        p.UnitTypeID,
		ClientID:          p.ClientID,
		ClientName:        p.Client.FullName,
		AgentID:           p.AgentID,
		AgentName:         p.Agent.FullName,
		EngineeringCost:   p.EngineeringCost,
		PropertyValue:     p.PropertyValue,
		FinancingAmount:   p.FinancingAmount,
		SubsidyAmount:     p.SubsidyAmount,
		FGTSAmount:        p.FGTSAmount,
		SignalAmount:      p.SignalAmount,
		DownPayment:       p.DownPayment,
		BasePrice:         p.BasePrice,
		ClientInstallment: p.ClientInstallment,
		MarkedUpTotal:     p.MarkedUpTotal,
		InstallmentCount:  p.InstallmentCount,
		TotalApproval:     p.TotalApproval,
		ValidityDays:      p.ValidityDays,
		SentAt:            p.SentAt,
		ExpiresAt:         p.ExpiresAt(),
		AnsweredAt:        p.AnsweredAt,
		Notes:             p.Notes,
		RejectionReason:   p.RejectionReason,
		DocumentPath:      p.DocumentPath,
		Editable:          p.IsEditable(),
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	}
	if p.UnitType != nil {
		resp.UnitTypeName = p.UnitType.Name
	}
	if p.HasContract() {
		id := p.Contract.ID
		resp.ContractID = &id
		resp.ContractNumber = p.Contract.Number
	}
	return resp
}
