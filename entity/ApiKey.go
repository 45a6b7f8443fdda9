package entity

import "time"

// ApiKey grants programmatic access to the public catalog API.
// Only the SHA-256 hash of the key is stored; the plaintext is shown once
// at creation time.
type ApiKey struct {
	Model
	Name       string     `gorm:"not null" json:"name"`
	KeyHash    string     `gorm:"uniqueIndex;not null" json:"-"`
	Prefix     string     `gorm:"size:12" json:"prefix"` // first chars, for display
	IsActive   bool       `gorm:"default:true" json:"isActive"`
	LastUsedAt *time.Time `json:"lastUsedAt,omitempty"`

	CreatedBy string `json:"createdBy"`
}
