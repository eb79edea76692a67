package models

import "time"

// ConstructionCompany is the builder behind one or more developments
type ConstructionCompany struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	LegalName           string    `gorm:"size:200;not null" json:"legal_name"`
	TradeName           string    `gorm:"size:200" json:"trade_name"`
	CNPJ                string    `gorm:"column:cnpj;size:18;uniqueIndex;not null" json:"cnpj"`
	Address             Address   `gorm:"embedded" json:"address"`
	Phone               string    `gorm:"size:20" json:"phone"`
	Email               string    `gorm:"size:150" json:"email"`
	LegalRepresentative string    `gorm:"size:200" json:"legal_representative"`
	Notes               string    `gorm:"type:text" json:"notes"`
	Active              bool      `gorm:"default:true;index" json:"active"`
	RegisteredByID      *uint     `gorm:"index" json:"registered_by_id"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`

	// Associations
	Developments []Development `gorm:"foreignKey:ConstructionCompanyID" json:"developments,omitempty"`
}

// TableName specifies the table name for ConstructionCompany
func (ConstructionCompany) TableName() string {
	return "construction_companies"
}

// DisplayName prefers the trade name
func (c *ConstructionCompany) DisplayName() string {
	if c.TradeName != "" {
		return c.TradeName
	}
	return c.LegalName
}

// ConstructionCompanyResponse is the JSON response format
type ConstructionCompanyResponse struct {
	ID                  uint      `json:"id"`
	LegalName           string    `json:"legal_name"`
	TradeName           string    `json:"trade_name"`
	CNPJ                string    `json:"cnpj"`
	Address             Address   `json:"address"`
	FullAddress         string    `json:"full_address"`
	Phone               string    `json:"phone"`
	Email               string    `json:"email"`
	LegalRepresentative string    `json:"legal_representative"`
	Notes               string    `json:"notes"`
	Active              bool      `json:"active"`
	DevelopmentCount    int       `json:"development_count"`
	CreatedAt           time.Time `json:"created_at"`
}

// ToResponse converts ConstructionCompany to ConstructionCompanyResponse
func (c *ConstructionCompany) ToResponse() ConstructionCompanyResponse {
	return ConstructionCompanyResponse{
		ID:                  c.ID,
		LegalName:           c.LegalName,
		TradeName:           c.TradeName,
		CNPJ:                c.CNPJ,
		Address:             c.Address,
		FullAddress:         c.Address.Full(),
		Phone:               c.Phone,
		Email:               c.Email,
		LegalRepresentative: c.LegalRepresentative,
		Notes:               c.Notes,
		Active:              c.Active,
		DevelopmentCount:    len(c.Developments),
		CreatedAt:           c.CreatedAt,
	}
}
