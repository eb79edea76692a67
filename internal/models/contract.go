package models

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/sjperalta/contratus-api/internal/currency"
	"gorm.io/gorm"
)

// Contract is the frozen, binding record derived from an approved proposal
type Contract struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	Number        string `gorm:"size:20;uniqueIndex:idx_contracts_number" json:"number"`
	ProposalID    uint   `gorm:"not null;uniqueIndex:idx_contracts_proposal" json:"proposal_id"`
	DevelopmentID uint   `gorm:"not null;index" json:"development_id"`
	UnitID        uint   `gorm:"not null;index" json:"unit_id"`
	ClientID      uint   `gorm:"not null;index" json:"client_id"`
	AgentID       uint   `gorm:"not null;index" json:"agent_id"`

	// Snapshot of the proposal values at derivation time
	EngineeringCost   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"engineering_cost"`
	PropertyValue     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"property_value"`
	FinancingAmount   decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"financing_amount"`
	SubsidyAmount     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"subsidy_amount"`
	FGTSAmount        decimal.Decimal `gorm:"column:fgts_amount;type:decimal(14,2);not null;default:0" json:"fgts_amount"`
	SignalAmount      decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"signal_amount"`
	DownPayment       decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"down_payment"`
	BasePrice         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"base_price"`
	ClientInstallment decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"client_installment"`
	MarkedUpTotal     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"marked_up_total"`
	InstallmentCount  int             `gorm:"not null;default:0" json:"installment_count"`
	TotalApproval     decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"total_approval"`

	SignatureDate      time.Time  `gorm:"type:date;not null" json:"signature_date"`
	ValidityDays       int        `gorm:"not null;default:180" json:"validity_days"`
	DueDate            time.Time  `gorm:"type:date;not null;index" json:"due_date"`
	ExtensionDays      int        `gorm:"not null;default:90" json:"extension_days"`
	Witness1Name       string     `gorm:"column:witness1_name;size:200" json:"witness1_name"`
	Witness1CPF        string     `gorm:"column:witness1_cpf;size:14" json:"witness1_cpf"`
	Witness2Name       string     `gorm:"column:witness2_name;size:200" json:"witness2_name"`
	Witness2CPF        string     `gorm:"column:witness2_cpf;size:14" json:"witness2_cpf"`
	Status             string     `gorm:"size:30;default:active;index" json:"status"`
	DocumentPath       *string    `json:"document_path"`
	SignedDocumentPath *string    `json:"signed_document_path"`
	Notes              string     `gorm:"type:text" json:"notes"`
	CancellationReason *string    `gorm:"type:text" json:"cancellation_reason"`
	FinalizedAt        *time.Time `json:"finalized_at"`
	CreatedAt          time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`

	// Associations
	Proposal    *Proposal         `gorm:"foreignKey:ProposalID" json:"proposal,omitempty"`
	Development Development       `gorm:"foreignKey:DevelopmentID" json:"development,omitempty"`
	Unit        Unit              `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
	Client      Client            `gorm:"foreignKey:ClientID" json:"client,omitempty"`
	Agent       User              `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
	History     []ContractHistory `gorm:"foreignKey:ContractID" json:"history,omitempty"`
	Commission  *Commission       `gorm:"foreignKey:ContractID" json:"commission,omitempty"`
}

// TableName specifies the table name for Contract
func (Contract) TableName() string {
	return "contracts"
}

// Contract status constants
const (
	ContractStatusDraft             = "draft"
	ContractStatusActive            = "active"
	ContractStatusInProgress        = "in_progress"
	ContractStatusAwaitingSignature = "awaiting_signature"
	ContractStatusSigned            = "signed"
	ContractStatusUnderBankReview   = "under_bank_review"
	ContractStatusBankApproved      = "bank_approved"
	ContractStatusBankRejected      = "bank_rejected"
	ContractStatusFinalized         = "finalized"
	ContractStatusCancelled         = "cancelled"
	ContractStatusRescinded         = "rescinded"
)

// ContractNumberPrefix prefixes every contract number
const ContractNumberPrefix = "CONT"

// ContractStatuses lists every contract status in lifecycle order
var ContractStatuses = []string{
	ContractStatusDraft,
	ContractStatusActive,
	ContractStatusInProgress,
	ContractStatusAwaitingSignature,
	ContractStatusSigned,
	ContractStatusUnderBankReview,
	ContractStatusBankApproved,
	ContractStatusBankRejected,
	ContractStatusFinalized,
	ContractStatusCancelled,
	ContractStatusRescinded,
}

// ContractStatusLabels are the display names used in documents and exports
var ContractStatusLabels = map[string]string{
	ContractStatusDraft:             "Rascunho",
	ContractStatusActive:            "Ativo",
	ContractStatusInProgress:        "Em andamento",
	ContractStatusAwaitingSignature: "Aguardando assinatura",
	ContractStatusSigned:            "Assinado",
	ContractStatusUnderBankReview:   "Em análise bancária",
	ContractStatusBankApproved:      "Aprovado pelo banco",
	ContractStatusBankRejected:      "Reprovado pelo banco",
	ContractStatusFinalized:         "Finalizado",
	ContractStatusCancelled:         "Cancelado",
	ContractStatusRescinded:         "Distratado",
}

// OccupyingContractStatuses count against a development's available units
var OccupyingContractStatuses = []string{ContractStatusActive, ContractStatusInProgress}

// ValidContractStatus reports whether s is a known contract status
func ValidContractStatus(s string) bool {
	_, ok := ContractStatusLabels[s]
	return ok
}

// BeforeCreate hook for setting defaults
func (c *Contract) BeforeCreate(tx *gorm.DB) error {
	if c.Status == "" {
		c.Status = ContractStatusActive
	}
	return nil
}

// IsClosed returns true when no further status changes are expected
func (c *Contract) IsClosed() bool {
	return c.Status == ContractStatusCancelled || c.Status == ContractStatusRescinded
}

// ComputeDueDate sets the due date from the signature date and validity days
func (c *Contract) ComputeDueDate() {
	c.DueDate = c.SignatureDate.AddDate(0, 0, c.ValidityDays)
}

// ExtendedDueDate is the due date plus the extension window
func (c *Contract) ExtendedDueDate() time.Time {
	return c.DueDate.AddDate(0, 0, c.ExtensionDays)
}

// AmountInWords spells out the property value for the contract document
func (c *Contract) AmountInWords() string {
	return currency.InWords(c.PropertyValue)
}

// StatusLabel returns the display name of the current status
func (c *Contract) StatusLabel() string {
	if l, ok := ContractStatusLabels[c.Status]; ok {
		return l
	}
	return c.Status
}

// ContractResponse is the JSON response format for contracts
type ContractResponse struct {
	ID                 uint                      `json:"id"`
	Number             string                    `json:"number"`
	Status             string                    `json:"status"`
	StatusLabel        string                    `json:"status_label"`
	ProposalID         uint                      `json:"proposal_id"`
	ProposalNumber     string                    `json:"proposal_number"`
	DevelopmentID      uint                      `json:"development_id"`
	DevelopmentName    string                    `json:"development_name"`
	UnitID             uint                      `json:"unit_id"`
	UnitLabel          string                    `json:"unit_label"`
	ClientID           uint                      `json:"client_id"`
	ClientName         string                    `json:"client_name"`
	ClientCPF          string                    `json:"client_cpf"`
	AgentID            uint                      `json:"agent_id"`
	AgentName          string                    `json:"agent_name"`
	EngineeringCost    decimal.Decimal           `json:"engineering_cost"`
	PropertyValue      decimal.Decimal           `json:"property_value"`
	FinancingAmount    decimal.Decimal           `json:"financing_amount"`
	SubsidyAmount      decimal.Decimal           `json:"subsidy_amount"`
	FGTSAmount         decimal.Decimal           `json:"fgts_amount"`
	SignalAmount       decimal.Decimal           `json:"signal_amount"`
	DownPayment        decimal.Decimal           `json:"down_payment"`
	BasePrice          decimal.Decimal           `json:"base_price"`
	ClientInstallment  decimal.Decimal           `json:"client_installment"`
	MarkedUpTotal      decimal.Decimal           `json:"marked_up_total"`
	InstallmentCount   int                       `json:"installment_count"`
	TotalApproval      decimal.Decimal           `json:"total_approval"`
	SignatureDate      time.Time                 `json:"signature_date"`
	ValidityDays       int                       `json:"validity_days"`
	DueDate            time.Time                 `json:"due_date"`
	ExtensionDays      int                       `json:"extension_days"`
	ExtendedDueDate    time.Time                 `json:"extended_due_date"`
	Witness1Name       string                    `json:"witness1_name"`
	Witness1CPF        string                    `json:"witness1_cpf"`
	Witness2Name       string                    `json:"witness2_name"`
	Witness2CPF        string                    `json:"witness2_cpf"`
	DocumentPath       *string                   `json:"document_path"`
	SignedDocumentPath *string                   `json:"signed_document_path"`
	Notes              string                    `json:"notes"`
	CancellationReason *string                   `json:"cancellation_reason"`
	FinalizedAt        *time.Time                `json:"finalized_at"`
	History            []ContractHistoryResponse `json:"history,omitempty"`
	Commission         *CommissionResponse       `json:"commission,omitempty"`
	CreatedAt          time.Time                 `json:"created_at"`
	UpdatedAt          time.Time                 `json:"updated_at"`
}

// ToResponse converts Contract to ContractResponse
func (c *Contract) ToResponse() ContractResponse {
	resp := ContractResponse{
		ID:                 c.ID,
		Number:             c.Number,
		Status:             c.Status,
		StatusLabel:        c.StatusLabel(),
		ProposalID:         c.ProposalID,
		DevelopmentID:      c.DevelopmentID,
		DevelopmentName:    c.Development.Name,
		UnitID:             c.UnitID,
		UnitLabel:          c.Unit.Label(),
		ClientID:           c.ClientID,
		ClientName:         c.Client.FullName,
		ClientCPF:          maskIdentity(c.Client.CPF),
		AgentID:            c.AgentID,
		AgentName:          c.Agent.FullName,
		EngineeringCost:    c.EngineeringCost,
		PropertyValue:      c.PropertyValue,
		FinancingAmount:    c.FinancingAmount,
		SubsidyAmount:      c.SubsidyAmount,
		FGTSAmount:         c.FGTSAmount,
		SignalAmount:       c.SignalAmount,
		DownPayment:        c.DownPayment,
		BasePrice:          c.BasePrice,
		ClientInstallment:  c.ClientInstallment,
		MarkedUpTotal:      c.MarkedUpTotal,
		InstallmentCount:   c.InstallmentCount,
		TotalApproval:      c.TotalApproval,
		SignatureDate:      c.SignatureDate,
		ValidityDays:       c.ValidityDays,
		DueDate:            c.DueDate,
		ExtensionDays:      c.ExtensionDays,
		ExtendedDueDate:    c.ExtendedDueDate(),
		Witness1Name:       c.Witness1Name,
		Witness1CPF:        c.Witness1CPF,
		Witness2Name:       c.Witness2Name,
		Witness2CPF:        c.Witness2CPF,
		DocumentPath:       c.DocumentPath,
		SignedDocumentPath: c.SignedDocumentPath,
		Notes:              c.Notes,
		CancellationReason: c.CancellationReason,
		FinalizedAt:        c.FinalizedAt,
		CreatedAt:          c.CreatedAt,
		UpdatedAt:          c.UpdatedAt,
	}

	if c.Proposal != nil {
		resp.ProposalNumber = c.Proposal.Number
	}

	for i := range c.History {
		resp.History = append(resp.History, c.History[i].ToResponse())
	}

	if c.Commission != nil {
		cr := c.Commission.ToResponse()
		resp.Commission = &cr
	}

	return resp
}
