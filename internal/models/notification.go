package models

import (
	"time"
)

// Notification kinds. Each event of the sale flow that reaches an inbox
// has its own kind so the front end can pick an icon and a link.
const (
	NotificationTypeProposalCreated  = "proposal_created"
	NotificationTypeProposalApproved = "proposal_approved"
	NotificationTypeProposalRejected = "proposal_rejected"
	NotificationTypeProposalExpired  = "proposal_expired"
	NotificationTypeContractCreated  = "contract_created"
	NotificationTypeContractStatus   = "contract_status_changed"
	NotificationTypeCommissionPaid   = "commission_paid"
	NotificationTypeUnitBlocked      = "unit_blocked"
	NotificationTypeNewUser          = "create_new_user"
	NotificationTypeSystemError      = "system_error"
)

var notificationLabels = map[string]string{
	NotificationTypeProposalCreated:  "Proposta",
	NotificationTypeProposalApproved: "Proposta",
	NotificationTypeProposalRejected: "Proposta",
	NotificationTypeProposalExpired:  "Proposta",
	NotificationTypeContractCreated:  "Contrato",
	NotificationTypeContractStatus:   "Contrato",
	NotificationTypeCommissionPaid:   "Comissão",
	NotificationTypeUnitBlocked:      "Unidade",
	NotificationTypeNewUser:          "Usuário",
	NotificationTypeSystemError:      "Sistema",
}

// Notification is one inbox entry of a user
type Notification struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	Kind      string     `gorm:"column:notification_type;size:40;not null;index" json:"notification_type"`
	Title     string     `gorm:"not null" json:"title"`
	Message   string     `gorm:"type:text;not null" json:"message"`
	ReadAt    *time.Time `gorm:"index" json:"read_at"`
	CreatedAt time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}

func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}

// MarkAsRead keeps the first read time
func (n *Notification) MarkAsRead(at time.Time) {
	if n.ReadAt == nil {
		n.ReadAt = &at
	}
}

// Category groups kinds for display; unknown kinds fall under "Sistema"
func (n *Notification) Category() string {
	if label, ok := notificationLabels[n.Kind]; ok {
		return label
	}
	return notificationLabels[NotificationTypeSystemError]
}

type NotificationResponse struct {
	ID        uint       `json:"id"`
	Kind      string     `json:"notification_type"`
	Category  string     `json:"category"`
	Title     string     `json:"title"`
	Message   string     `json:"message"`
	Read      bool       `json:"read"`
	ReadAt    *time.Time `json:"read_at"`
	CreatedAt time.Time  `json:"created_at"`
}

func (n *Notification) ToResponse() NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Kind:      n.Kind,
		Category:  n.Category(),
		Title:     n.Title,
		Message:   n.Message,
		Read:      n.IsRead(),
		ReadAt:    n.ReadAt,
		CreatedAt: n.CreatedAt,
	}
}
