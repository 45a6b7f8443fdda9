package entity

type UserType string

const (
	UserTypeCustomer UserType = "customer"
	UserTypeDriver   UserType = "driver"
	UserTypeAdmin    UserType = "admin"
)

type UserStatus string

const (
	UserStatusActive          UserStatus = "active"
	UserStatusSuspended       UserStatus = "suspended"
	UserStatusPendingApproval UserStatus = "pending_approval"
)

type User struct {
	Model
	Email       string     `gorm:"uniqueIndex;not null" json:"email"`
	Password    string     `json:"-"`
	FullName    string     `json:"fullName"`
	PhoneNumber string     `json:"phoneNumber"`
	UserType    UserType   `gorm:"type:varchar(16);not null;default:customer" json:"userType"`
	Status      UserStatus `gorm:"type:varchar(20);not null;default:active" json:"status"`

	Rating        float64 `json:"rating"`
	TotalReviews  int     `json:"totalReviews"`
	WalletBalance int64   `json:"walletBalance"` // minor currency units
	Language      string  `gorm:"size:2;default:en" json:"language"` // en / ar

	// Driver profile fields; empty for customers and admins.
	LicenseNumber string `json:"licenseNumber,omitempty"`
	VehicleMake   string `json:"vehicleMake,omitempty"`
	VehicleModel  string `json:"vehicleModel,omitempty"`
	VehicleColor  string `json:"vehicleColor,omitempty"`
	VehiclePlate  string `json:"vehiclePlate,omitempty"`

	// Relations — preload only where needed
	Bookings     []Booking        `gorm:"foreignKey:CustomerID" json:"-"`
	Documents    []DriverDocument `gorm:"foreignKey:DriverID" json:"-"`
	MessagesSent []Message        `gorm:"foreignKey:SenderID" json:"-"`
}
