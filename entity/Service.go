package entity

type PriceType string

const (
	PriceTypeFixed   PriceType = "fixed"
	PriceTypeHourly  PriceType = "hourly"
	PriceTypePerUnit PriceType = "per_unit"
)

// Service is an admin-defined offering bookable by customers.
// is_active=false hides it from customer browsing.
type Service struct {
	Model
	Name        string    `gorm:"not null" json:"name"`
	Category    string    `gorm:"index" json:"category"`
	BasePrice   int64     `json:"basePrice"` // minor currency units
	PriceType   PriceType `gorm:"type:varchar(16);default:fixed" json:"priceType"`
	BillingUnit string    `json:"billingUnit"`
	PlatformFee float64   `json:"platformFee"` // percent of gross kept by the platform

	IsActive         bool `gorm:"default:true" json:"isActive"`
	IsInstantBooking bool `json:"isInstantBooking"`
	IsAvailableToday bool `json:"isAvailableToday"`
	Position         int  `json:"position"`

	Bookings []Booking `gorm:"foreignKey:ServiceID" json:"-"`
}
