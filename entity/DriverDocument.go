package entity

import "time"

type DocumentStatus string

const (
	DocumentPending  DocumentStatus = "pending"
	DocumentApproved DocumentStatus = "approved"
	DocumentRejected DocumentStatus = "rejected"
)

// DriverDocument is one uploaded credential artifact. A driver's aggregate
// document state gates the pending_approval -> active user transition.
type DriverDocument struct {
	Model
	DriverID string `gorm:"index;not null" json:"driverId"`
	Driver   User   `gorm:"foreignKey:DriverID" json:"-"`

	DocumentType string         `gorm:"not null" json:"documentType"` // license / registration / insurance / id_card
	DocumentURL  string         `json:"documentUrl"`
	Status       DocumentStatus `gorm:"type:varchar(16);not null;default:pending" json:"status"`

	AdminID      *string    `json:"adminId,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	RejectReason *string    `json:"rejectReason,omitempty"`
}
