package models

import (
	"time"
)

// ContractHistory is an append-only record of one contract status change
type ContractHistory struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	ContractID     uint      `gorm:"not null;index" json:"contract_id"`
	ActorID        *uint     `gorm:"index" json:"actor_id"`
	PreviousStatus string    `gorm:"size:30" json:"previous_status"`
	NewStatus      string    `gorm:"size:30;not null" json:"new_status"`
	Note           string    `gorm:"type:text" json:"note"`
	CreatedAt      time.Time `gorm:"index" json:"created_at"`

	// Associations
	Actor *User `gorm:"foreignKey:ActorID" json:"actor,omitempty"`
}

// TableName specifies the table name for ContractHistory
func (ContractHistory) TableName() string {
	return "contract_histories"
}

// ContractHistoryResponse is the JSON response format for history entries
type ContractHistoryResponse struct {
	ID             uint      `json:"id"`
	ContractID     uint      `json:"contract_id"`
	ActorID        *uint     `json:"actor_id"`
	ActorName      string    `json:"actor_name"`
	PreviousStatus string    `json:"previous_status"`
	NewStatus      string    `json:"new_status"`
	NewStatusLabel string    `json:"new_status_label"`
	Note           string    `json:"note"`
	CreatedAt      time.Time `json:"created_at"`
}

// ToResponse converts ContractHistory to ContractHistoryResponse
func (h *ContractHistory) ToResponse() ContractHistoryResponse {
	resp := ContractHistoryResponse{
		ID:             h.ID,
		ContractID:     h.ContractID,
		ActorID:        h.ActorID,
		PreviousStatus: h.PreviousStatus,
		NewStatus:      h.NewStatus,
		NewStatusLabel: ContractStatusLabels[h.NewStatus],
		Note:           h.Note,
		CreatedAt:      h.CreatedAt,
	}
	if h.Actor != nil {
		resp.ActorName = h.Actor.FullName
	}
	return resp
}
