package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Development is a real-estate project built by one construction company
type Development struct {
	ID                    uint            `gorm:"primaryKey" json:"id"`
	ConstructionCompanyID uint            `gorm:"not null;index" json:"construction_company_id"`
	Name                  string          `gorm:"size:200;not null" json:"name"`
	PropertyType          string          `gorm:"size:20;default:apartment" json:"property_type"`
	Status                string          `gorm:"size:20;default:launch;index" json:"status"`
	Address               Address         `gorm:"embedded" json:"address"`
	Description           string          `gorm:"type:text" json:"description"`
	TotalUnits            int             `gorm:"not null;default:0" json:"total_units"`
	AvailableUnits        int             `gorm:"not null;default:0" json:"available_units"`
	BrokerageFee          decimal.Decimal `gorm:"type:decimal(5,2);not null;default:5" json:"brokerage_fee"`
	LaunchDate            *time.Time      `gorm:"type:date" json:"launch_date"`
	ExpectedDeliveryDate  *time.Time      `gorm:"type:date" json:"expected_delivery_date"`
	ImagePath             *string         `json:"image_path"`
	ThumbnailPath         *string         `json:"thumbnail_path"`
	Active                bool            `gorm:"default:true;index" json:"active"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`

	// Associations
	ConstructionCompany ConstructionCompany `gorm:"foreignKey:ConstructionCompanyID" json:"construction_company,omitempty"`
	UnitTypes           []UnitType          `gorm:"foreignKey:DevelopmentID" json:"unit_types,omitempty"`
	Units               []Unit              `gorm:"foreignKey:DevelopmentID" json:"units,omitempty"`
}

// TableName specifies the table name for Development
func (Development) TableName() string {
	return "developments"
}

// Development status constants
const (
	DevelopmentStatusPlanning          = "planning"
	DevelopmentStatusLaunch            = "launch"
	DevelopmentStatusUnderConstruction = "under_construction"
	DevelopmentStatusReady             = "ready"
	DevelopmentStatusDelivered         = "delivered"
	DevelopmentStatusSuspended         = "suspended"
)

// Property type constants
const (
	PropertyTypeHouse     = "house"
	PropertyTypeApartment = "apartment"
	PropertyTypeTownhouse = "townhouse"
	PropertyTypeStudio    = "studio"
)

// ValidDevelopmentStatus reports whether s is a known development status
func ValidDevelopmentStatus(s string) bool {
	switch s {
	case DevelopmentStatusPlanning, DevelopmentStatusLaunch, DevelopmentStatusUnderConstruction,
		DevelopmentStatusReady, DevelopmentStatusDelivered, DevelopmentStatusSuspended:
		return true
	}
	return false
}

// ValidPropertyType reports whether t is a known property type
func ValidPropertyType(t string) bool {
	switch t {
	case PropertyTypeHouse, PropertyTypeApartment, PropertyTypeTownhouse, PropertyTypeStudio:
		return true
	}
	return false
}

// BeforeCreate hook for setting defaults
func (d *Development) BeforeCreate(tx *gorm.DB) error {
	if d.Status == "" {
		d.Status = DevelopmentStatusLaunch
	}
	if d.PropertyType == "" {
		d.PropertyType = PropertyTypeApartment
	}
	if d.AvailableUnits == 0 {
		d.AvailableUnits = d.TotalUnits
	}
	return nil
}

// ApplyAvailableUnits sets the available counter from the number of
// contracts that currently occupy a unit, never going below zero.
func (d *Development) ApplyAvailableUnits(occupied int64) {
	available := d.TotalUnits - int(occupied)
	if available < 0 {
		available = 0
	}
	d.AvailableUnits = available
}

// DevelopmentResponse is the JSON response format for developments
type DevelopmentResponse struct {
	ID                      uint               `json:"id"`
	ConstructionCompanyID   uint               `json:"construction_company_id"`
	ConstructionCompanyName string             `json:"construction_company_name"`
	Name                    string             `json:"name"`
	PropertyType            string             `json:"property_type"`
	Status                  string             `json:"status"`
	Address                 Address            `json:"address"`
	FullAddress             string             `json:"full_address"`
	Description             string             `json:"description"`
	TotalUnits              int                `json:"total_units"`
	AvailableUnits          int                `json:"available_units"`
	BrokerageFee            decimal.Decimal    `json:"brokerage_fee"`
	LaunchDate              *time.Time         `json:"launch_date"`
	ExpectedDeliveryDate    *time.Time         `json:"expected_delivery_date"`
	ImagePath               *string            `json:"image_path"`
	ThumbnailPath           *string            `json:"thumbnail_path"`
	Active                  bool               `json:"active"`
	UnitTypes               []UnitTypeResponse `json:"unit_types,omitempty"`
	UnitCounts              map[string]int     `json:"unit_counts"`
	CreatedAt               time.Time          `json:"created_at"`
}

// ToResponse converts Development to DevelopmentResponse
func (d *Development) ToResponse() DevelopmentResponse {
	resp := DevelopmentResponse{
		ID:                      d.ID,
		ConstructionCompanyID:   d.ConstructionCompanyID,
		ConstructionCompanyName: d.ConstructionCompany.DisplayName(),
		Name:                    d.Name,
		PropertyType:            d.PropertyType,
		Status:                  d.Status,
		Address:                 d.Address,
		FullAddress:             d.Address.Full(),
		Description:             d.Description,
		TotalUnits:              d.TotalUnits,
		AvailableUnits:          d.AvailableUnits,
		BrokerageFee:            d.BrokerageFee,
		LaunchDate:              d.LaunchDate,
		ExpectedDeliveryDate:    d.ExpectedDeliveryDate,
		ImagePath:               d.ImagePath,
		ThumbnailPath:           d.ThumbnailPath,
		Active:                  d.Active,
		UnitCounts:              map[string]int{},
		CreatedAt:               d.CreatedAt,
	}
	for i := range d.UnitTypes {
		resp.UnitTypes = append(resp.UnitTypes, d.UnitTypes[i].ToResponse())
	}
	for _, u := range d.Units {
		resp.UnitCounts[u.Status]++
	}
	return resp
}
