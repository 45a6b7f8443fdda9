package entity

import "time"

type BookingStatus string

const (
	BookingPendingOffers BookingStatus = "pending_offers"
	BookingActive        BookingStatus = "active"
	BookingCompleted     BookingStatus = "completed"
	BookingCancelled     BookingStatus = "cancelled"
)

// Terminal reports whether no further transition is accepted from s.
func (s BookingStatus) Terminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

type Booking struct {
	Model
	CustomerID string  `gorm:"index;not null" json:"customerId"`
	Customer   User    `gorm:"foreignKey:CustomerID" json:"-"`
	DriverID   *string `gorm:"index" json:"driverId,omitempty"`
	Driver     *User   `gorm:"foreignKey:DriverID" json:"-"`
	ServiceID  string  `gorm:"index;not null" json:"serviceId"`
	Service    Service `gorm:"foreignKey:ServiceID" json:"-"`

	Location    string        `json:"location"`
	ServiceDate time.Time     `json:"serviceDate"`
	Quantity    int           `json:"quantity"`
	Status      BookingStatus `gorm:"type:varchar(20);not null;default:pending_offers;index" json:"status"`
	Notes       string        `json:"notes"`

	CancellationReason string `json:"cancellationReason,omitempty"`

	ChatRoom     *ChatRoom     `gorm:"foreignKey:BookingID" json:"-"`
	Transactions []Transaction `gorm:"foreignKey:BookingID" json:"-"`
}
