package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Commission is the brokerage fee owed to an agent for one contract
type Commission struct {
	ID                  uint            `gorm:"primaryKey" json:"id"`
	ContractID          uint            `gorm:"not null;uniqueIndex:idx_commissions_contract" json:"contract_id"`
	AgentID             uint            `gorm:"not null;index" json:"agent_id"`
	BaseValue           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"base_value"`
	Percentage          decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"percentage"`
	GrossAmount         decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"gross_amount"`
	Deductions          decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"deductions"`
	NetAmount           decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"net_amount"`
	Status              string          `gorm:"size:20;default:pending;index" json:"status"`
	ExpectedPaymentDate *time.Time      `gorm:"type:date" json:"expected_payment_date"`
	PaymentDate         *time.Time      `gorm:"type:date" json:"payment_date"`
	PaymentMethod       string          `gorm:"size:50" json:"payment_method"`
	Notes               string          `gorm:"type:text" json:"notes"`
	CreatedAt           time.Time       `json:"created_at"`
	UpdatedAt           time.Time       `json:"updated_at"`

	// Associations
	Contract *Contract `gorm:"foreignKey:ContractID" json:"contract,omitempty"`
	Agent    User      `gorm:"foreignKey:AgentID" json:"agent,omitempty"`
}

// TableName specifies the table name for Commission
func (Commission) TableName() string {
	return "commissions"
}

// Commission status constants
const (
	CommissionStatusPending   = "pending"
	CommissionStatusApproved  = "approved"
	CommissionStatusPaid      = "paid"
	CommissionStatusCancelled = "cancelled"
)

var hundred = decimal.NewFromInt(100)

// BeforeSave keeps gross and net in line with base, percentage and deductions
func (c *Commission) BeforeSave(tx *gorm.DB) error {
	c.Calculate()
	return nil
}

// Calculate derives gross = base × pct / 100 and net = gross − deductions
func (c *Commission) Calculate() {
	c.GrossAmount = c.BaseValue.Mul(c.Percentage).Div(hundred).Round(2)
	c.NetAmount = c.GrossAmount.Sub(c.Deductions).Round(2)
}

// MayApprove returns true if the commission is awaiting approval
func (c *Commission) MayApprove() bool {
	return c.Status == CommissionStatusPending
}

// MayPay returns true if the commission was approved
func (c *Commission) MayPay() bool {
	return c.Status == CommissionStatusApproved
}

// MayCancel returns true if the commission was not paid yet
func (c *Commission) MayCancel() bool {
	return c.Status == CommissionStatusPending || c.Status == CommissionStatusApproved
}

// CommissionResponse is the JSON response format for commissions
type CommissionResponse struct {
	ID                  uint            `json:"id"`
	ContractID          uint            `json:"contract_id"`
	ContractNumber      string          `json:"contract_number"`
	AgentID             uint            `json:"agent_id"`
	AgentName           string          `json:"agent_name"`
	BaseValue           decimal.Decimal `json:"base_value"`
	Percentage          decimal.Decimal `json:"percentage"`
	GrossAmount         decimal.Decimal `json:"gross_amount"`
	Deductions          decimal.Decimal `json:"deductions"`
	NetAmount           decimal.Decimal `json:"net_amount"`
	Status              string          `json:"status"`
	ExpectedPaymentDate *time.Time      `json:"expected_payment_date"`
	PaymentDate         *time.Time      `json:"payment_date"`
	PaymentMethod       string          `json:"payment_method"`
	Notes               string          `json:"notes"`
	CreatedAt           time.Time       `json:"created_at"`
}

// ToResponse converts Commission to CommissionResponse
func (c *Commission) ToResponse() CommissionResponse {
	resp := CommissionResponse{
		ID:                  c.ID,
		ContractID:          c.ContractID,
		AgentID:             c.AgentID,
		AgentName:           c.Agent.FullName,
		BaseValue:           c.BaseValue,
		Percentage:          c.Percentage,
		GrossAmount:         c.GrossAmount,
		Deductions:          c.Deductions,
		NetAmount:           c.NetAmount,
		Status:              c.Status,
		ExpectedPaymentDate: c.ExpectedPaymentDate,
		PaymentDate:         c.PaymentDate,
		PaymentMethod:       c.PaymentMethod,
		Notes:               c.Notes,
		CreatedAt:           c.CreatedAt,
	}
	if c.Contract != nil {
		resp.ContractNumber = c.Contract.Number
	}
	return resp
}
