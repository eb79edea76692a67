package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// UnitType is a template of characteristics and price shared by several units
type UnitType struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	DevelopmentID   uint            `gorm:"not null;uniqueIndex:idx_unit_types_development_name" json:"development_id"`
	Name            string          `gorm:"size:100;not null;uniqueIndex:idx_unit_types_development_name" json:"name"`
	Bedrooms        int             `gorm:"default:0" json:"bedrooms"`
	Bathrooms       int             `gorm:"default:0" json:"bathrooms"`
	ParkingSpaces   int             `gorm:"default:0" json:"parking_spaces"`
	UsableArea      decimal.Decimal `gorm:"type:decimal(8,2);default:0" json:"usable_area"`
	Price           decimal.Decimal `gorm:"type:decimal(14,2);not null" json:"price"`
	EngineeringCost decimal.Decimal `gorm:"type:decimal(14,2);not null;default:0" json:"engineering_cost"`
	ImagePath       *string         `json:"image_path"`
	ThumbnailPath   *string         `json:"thumbnail_path"`
	Active          bool            `gorm:"default:true" json:"active"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`

	// Associations
	Development Development `gorm:"foreignKey:DevelopmentID" json:"-"`
}

// TableName specifies the table name for UnitType
func (UnitType) TableName() string {
	return "unit_types"
}

func plural(n int, singular, pluralForm string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, singular)
	}
	return fmt.Sprintf("%d %s", n, pluralForm)
}

// Summary describes the unit type as "2 quartos | 1 banheiro | 1 vaga | 45.50m²"
func (t *UnitType) Summary() string {
	var parts []string
	if t.Bedrooms > 0 {
		parts = append(parts, plural(t.Bedrooms, "quarto", "quartos"))
	}
	if t.Bathrooms > 0 {
		parts = append(parts, plural(t.Bathrooms, "banheiro", "banheiros"))
	}
	if t.ParkingSpaces > 0 {
		parts = append(parts, plural(t.ParkingSpaces, "vaga", "vagas"))
	}
	if t.UsableArea.IsPositive() {
		parts = append(parts, t.UsableArea.StringFixed(2)+"m²")
	}
	if len(parts) == 0 {
		return "Sem características definidas"
	}
	return strings.Join(parts, " | ")
}

// UnitTypeResponse is the JSON response format for unit types
type UnitTypeResponse struct {
	ID              uint            `json:"id"`
	DevelopmentID   uint            `json:"development_id"`
	Name            string          `json:"name"`
	Bedrooms        int             `json:"bedrooms"`
	Bathrooms       int             `json:"bathrooms"`
	ParkingSpaces   int             `json:"parking_spaces"`
	UsableArea      decimal.Decimal `json:"usable_area"`
	Price           decimal.Decimal `json:"price"`
	EngineeringCost decimal.Decimal `json:"engineering_cost"`
	Summary         string          `json:"summary"`
	ImagePath       *string         `json:"image_path"`
	ThumbnailPath   *string         `json:"thumbnail_path"`
	Active          bool            `json:"active"`
}

// ToResponse converts UnitType to UnitTypeResponse
func (t *UnitType) ToResponse() UnitTypeResponse {
	return UnitTypeResponse{
		ID:              t.ID,
		DevelopmentID:   t.DevelopmentID,
		Name:            t.Name,
		Bedrooms:        t.Bedrooms,
		Bathrooms:       t.Bathrooms,
		ParkingSpaces:   t.ParkingSpaces,
		UsableArea:      t.UsableArea,
		Price:           t.Price,
		EngineeringCost: t.EngineeringCost,
		Summary:         t.Summary(),
		ImagePath:       t.ImagePath,
		ThumbnailPath:   t.ThumbnailPath,
		Active:          t.Active,
	}
}
