package models

import (
	"time"
)

// Project statuses. These are the only values accepted by create and update.
const (
	StatusInProgress     = "in_progress"
	StatusDelivered      = "delivered"
	StatusAwaitingClient = "awaiting_client"
)

// Statuses lists the valid statuses in form display order.
var Statuses = []string{StatusInProgress, StatusDelivered, StatusAwaitingClient}

// StatusLabels maps a status to its human-readable label.
var StatusLabels = map[string]string{
	StatusInProgress:     "In progress",
	StatusDelivered:      "Delivered",
	StatusAwaitingClient: "Awaiting client",
}

// ValidStatus reports whether s is a member of the status enumeration.
func ValidStatus(s string) bool {
	_, ok := StatusLabels[s]
	return ok
}

// Project is one tracked freelance/agency engagement.
type Project struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	ProjectName   string    `json:"project_name" gorm:"not null"`
	TotalAmount   float64   `json:"total_amount" gorm:"not null"`
	ClientName    string    `json:"client_name" gorm:"not null"`
	DeliveryDate  string    `json:"delivery_date" gorm:"type:text;not null;index:idx_projects_delivery_date"`
	Status        string    `json:"status" gorm:"not null;default:in_progress;index:idx_projects_status"`
	Notes         string    `json:"notes" gorm:"type:text;default:''"`
	PendingAmount float64   `json:"pending_amount" gorm:"not null;default:0;index:idx_projects_pending_amount"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime;index:idx_projects_created_at"`
	// Null until the record is updated for the first time. Stamped by the
	// repository, not by GORM.
	UpdatedAt *time.Time `json:"updated_at" gorm:"autoUpdateTime:false"`
}

// StatusLabel returns the display label for the project's status.
func (p *Project) StatusLabel() string {
	if label, ok := StatusLabels[p.Status]; ok {
		return label
	}
	return p.Status
}

// FullyPaid reports whether nothing is pending from the client.
func (p *Project) FullyPaid() bool {
	return p.PendingAmount == 0
}
