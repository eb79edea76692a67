package models

import "time"

// Team groups agents under a manager. Used only for access scoping.
type Team struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"size:100;uniqueIndex;not null" json:"name"`
	ManagerID   *uint     `gorm:"index" json:"manager_id"`
	Description string    `gorm:"type:text" json:"description"`
	Active      bool      `gorm:"default:true" json:"active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Associations
	Manager *User  `gorm:"foreignKey:ManagerID" json:"manager,omitempty"`
	Members []User `gorm:"foreignKey:TeamID" json:"members,omitempty"`
}

// TableName specifies the table name for Team
func (Team) TableName() string {
	return "teams"
}

// TeamResponse is the JSON response format for teams
type TeamResponse struct {
	ID          uint           `json:"id"`
	Name        string         `json:"name"`
	ManagerID   *uint          `json:"manager_id"`
	ManagerName string         `json:"manager_name"`
	Description string         `json:"description"`
	Active      bool           `json:"active"`
	MemberCount int            `json:"member_count"`
	Members     []UserResponse `json:"members,omitempty"`
	CreatedAt   time.Time      `json:"created_at"`
}

// ToResponse converts Team to TeamResponse
func (t *Team) ToResponse() TeamResponse {
	resp := TeamResponse{
		ID:          t.ID,
		Name:        t.Name,
		ManagerID:   t.ManagerID,
		Description: t.Description,
		Active:      t.Active,
		MemberCount: len(t.Members),
		CreatedAt:   t.CreatedAt,
	}
	if t.Manager != nil {
		resp.ManagerName = t.Manager.FullName
	}
	for i := range t.Members {
		resp.Members = append(resp.Members, t.Members[i].ToResponse())
	}
	return resp
}
