package models

import (
	"time"
)

// Client is a prospective buyer registered by an agent
type Client struct {
	ID             uint       `gorm:"primaryKey" json:"id"`
	FullName       string     `gorm:"size:200;not null" json:"full_name"`
	CPF            string     `gorm:"column:cpf;size:14;uniqueIndex;not null" json:"cpf"`
	RG             string     `gorm:"column:rg;size:20" json:"rg"`
	BirthDate      *time.Time `gorm:"type:date" json:"birth_date"`
	MaritalStatus  string     `gorm:"size:20" json:"marital_status"`
	Phone          string     `gorm:"size:20;not null" json:"phone"`
	Email          string     `gorm:"size:150" json:"email"`
	Address        Address    `gorm:"embedded" json:"address"`
	LeadSource     string     `gorm:"size:20;default:other;index" json:"lead_source"`
	Notes          string     `gorm:"type:text" json:"notes"`
	RegisteredByID uint       `gorm:"not null;index" json:"registered_by_id"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// Associations
	RegisteredBy User `gorm:"foreignKey:RegisteredByID" json:"registered_by,omitempty"`
}

// TableName specifies the table name for Client
func (Client) TableName() string {
	return "clients"
}

// Lead source constants
const (
	LeadSourceBoostedAd   = "boosted_ad"
	LeadSourceReferral    = "referral"
	LeadSourceWalkIn      = "walk_in"
	LeadSourceWebsite     = "website"
	LeadSourceSocialMedia = "social_media"
	LeadSourcePhone       = "phone"
	LeadSourceOther       = "other"
)

// ValidLeadSource reports whether s is a known lead source
func ValidLeadSource(s string) bool {
	switch s {
	case LeadSourceBoostedAd, LeadSourceReferral, LeadSourceWalkIn, LeadSourceWebsite,
		LeadSourceSocialMedia, LeadSourcePhone, LeadSourceOther:
		return true
	}
	return false
}

// ClientResponse is the JSON response format for clients
type ClientResponse struct {
	ID               uint       `json:"id"`
	FullName         string     `json:"full_name"`
	CPF              string     `json:"cpf"`
	MaskedCPF        string     `json:"masked_cpf"`
	RG               string     `json:"rg"`
	BirthDate        *time.Time `json:"birth_date"`
	MaritalStatus    string     `json:"marital_status"`
	Phone            string     `json:"phone"`
	Email            string     `json:"email"`
	Address          Address    `json:"address"`
	FullAddress      string     `json:"full_address"`
	LeadSource       string     `json:"lead_source"`
	Notes            string     `json:"notes"`
	RegisteredByID   uint       `json:"registered_by_id"`
	RegisteredByName string     `json:"registered_by_name"`
	CreatedAt        time.Time  `json:"created_at"`
}

// ToResponse converts Client to ClientResponse
func (c *Client) ToResponse() ClientResponse {
	return ClientResponse{
		ID:               c.ID,
		FullName:         c.FullName,
		CPF:              c.CPF,
		MaskedCPF:        maskIdentity(c.CPF),
		RG:               c.RG,
		BirthDate:        c.BirthDate,
		MaritalStatus:    c.MaritalStatus,
		Phone:            c.Phone,
		Email:            c.Email,
		Address:          c.Address,
		FullAddress:      c.Address.Full(),
		LeadSource:       c.LeadSource,
		Notes:            c.Notes,
		RegisteredByID:   c.RegisteredByID,
		RegisteredByName: c.RegisteredBy.FullName,
		CreatedAt:        c.CreatedAt,
	}
}

// maskIdentity masks an identity string for privacy
func maskIdentity(identity string) string {
	runes := []rune(identity)
	if len(runes) <= 5 {
		masked := make([]rune, len(runes))
		for i := range masked {
			masked[i] = '*'
		}
		return string(masked)
	}
	masked := make([]rune, len(runes))
	for i, r := range runes {
		if i < 3 || i >= len(runes)-2 {
			masked[i] = r
		} else {
			masked[i] = '*'
		}
	}
	return string(masked)
}
