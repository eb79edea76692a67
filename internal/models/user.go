package models

import (
	"time"

	"gorm.io/gorm"
)

// User is a back-office operator: administrator, team manager or agent
type User struct {
	ID                uint       `gorm:"primaryKey" json:"id"`
	Email             string     `gorm:"uniqueIndex;not null" json:"email"`
	EncryptedPassword string     `gorm:"column:encrypted_password;not null" json:"-"`
	FullName          string     `gorm:"not null" json:"full_name"`
	CPF               *string    `gorm:"column:cpf;uniqueIndex" json:"cpf"`
	CRECI             string     `gorm:"column:creci;size:20" json:"creci"`
	Phone             string     `gorm:"size:20" json:"phone"`
	Role              string     `gorm:"default:agent;index" json:"role"`
	Status            string     `gorm:"default:active" json:"status"`
	TeamID            *uint      `gorm:"index" json:"team_id"`
	LastLoginAt       *time.Time `json:"last_login_at"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`

	// Associations
	Team *Team `gorm:"foreignKey:TeamID" json:"team,omitempty"`
}

// TableName specifies the table name for User
func (User) TableName() string {
	return "users"
}

// BeforeCreate hook for setting defaults
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.Role == "" {
		u.Role = RoleAgent
	}
	if u.Status == "" {
		u.Status = StatusActive
	}
	return nil
}

// IsAdmin returns true if user has admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// IsManager returns true if user manages a team
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// IsActive returns true if user status is active
func (u *User) IsActive() bool {
	return u.Status == StatusActive
}

// Role constants
const (
	RoleAdmin   = "admin"
	RoleManager = "manager"
	RoleAgent   = "agent"
)

// ValidRole reports whether role is one of the known roles
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleManager, RoleAgent:
		return true
	}
	return false
}

// Status constants
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
)

// UserResponse is the JSON response format for users
type UserResponse struct {
	ID          uint       `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	CPF         string     `json:"cpf"`
	CRECI       string     `json:"creci"`
	Phone       string     `json:"phone"`
	Role        string     `json:"role"`
	Status      string     `json:"status"`
	TeamID      *uint      `json:"team_id"`
	TeamName    string     `json:"team_name"`
	LastLoginAt *time.Time `json:"last_login_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

// ToResponse converts User to UserResponse
func (u *User) ToResponse() UserResponse {
	resp := UserResponse{
		ID:          u.ID,
		Email:       u.Email,
		FullName:    u.FullName,
		CRECI:       u.CRECI,
		Phone:       u.Phone,
		Role:        u.Role,
		Status:      u.Status,
		TeamID:      u.TeamID,
		LastLoginAt: u.LastLoginAt,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
	if u.CPF != nil {
		resp.CPF = *u.CPF
	}
	if u.Team != nil {
		resp.TeamName = u.Team.Name
	}
	return resp
}
