package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// SettingsID is the primary key of the single settings row
const SettingsID = 1

// Settings holds the agency branding and business defaults
type Settings struct {
	ID                       uint            `gorm:"primaryKey" json:"id"`
	AgencyName               string          `gorm:"size:200;not null" json:"agency_name"`
	CNPJ                     string          `gorm:"column:cnpj;size:18" json:"cnpj"`
	Address                  string          `gorm:"size:300" json:"address"`
	PostalCode               string          `gorm:"size:9" json:"postal_code"`
	Phone                    string          `gorm:"size:20" json:"phone"`
	Email                    string          `gorm:"size:150" json:"email"`
	Website                  string          `gorm:"size:200" json:"website"`
	Instagram                string          `gorm:"size:100" json:"instagram"`
	LogoPath                 *string         `json:"logo_path"`
	DefaultProposalValidity  int             `gorm:"not null;default:30" json:"default_proposal_validity"`
	DefaultContractValidity  int             `gorm:"not null;default:180" json:"default_contract_validity"`
	DefaultContractExtension int             `gorm:"not null;default:90" json:"default_contract_extension"`
	DefaultBrokerageFee      decimal.Decimal `gorm:"type:decimal(5,2);not null;default:5" json:"default_brokerage_fee"`
	CreatedAt                time.Time       `json:"created_at"`
	UpdatedAt                time.Time       `json:"updated_at"`
}

// TableName specifies the table name for Settings
func (Settings) TableName() string {
	return "settings"
}

// BrokerageFeeFor returns the development's fee, falling back to the default
func (s Settings) BrokerageFeeFor(d *Development) decimal.Decimal {
	if d != nil && d.BrokerageFee.IsPositive() {
		return d.BrokerageFee
	}
	return s.DefaultBrokerageFee
}
