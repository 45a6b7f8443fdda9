package entity

// ChatRoom links the customer and the assigned driver of one booking.
type ChatRoom struct {
	Model
	BookingID string  `gorm:"uniqueIndex;not null" json:"bookingId"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`

	// preload messages only on the history endpoint
	Messages []Message `gorm:"foreignKey:RoomID" json:"-"`
}
