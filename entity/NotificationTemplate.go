package entity

// NotificationTemplate holds per-language message bodies keyed by event.
// Delivery itself is out of scope; admins manage these as data.
type NotificationTemplate struct {
	Model
	Key      string `gorm:"uniqueIndex;not null" json:"key"` // e.g. booking_accepted
	Subject  string `json:"subject"`
	BodyEn   string `json:"bodyEn"`
	BodyAr   string `json:"bodyAr"`
	IsActive bool   `gorm:"default:true" json:"isActive"`
}
