package entity

type TransactionType string

const (
	TransactionInbound  TransactionType = "inbound"
	TransactionOutbound TransactionType = "outbound"
)

type TransactionStatus string

const (
	TransactionPending    TransactionStatus = "pending"
	TransactionProcessing TransactionStatus = "processing"
	TransactionCompleted  TransactionStatus = "completed"
	TransactionFailed     TransactionStatus = "failed"
	TransactionCancelled  TransactionStatus = "cancelled"
)

// Transaction is one ledger row for a booking. Amounts are minor currency
// units and must always satisfy GrossAmount = CompanyFee + DriverAmount.
// Rows are immutable once completed.
type Transaction struct {
	Model
	BookingID string  `gorm:"index;not null" json:"bookingId"`
	Booking   Booking `gorm:"foreignKey:BookingID" json:"-"`
	DriverID  *string `gorm:"index" json:"driverId,omitempty"`

	GrossAmount  int64 `json:"grossAmount"`
	CompanyFee   int64 `json:"companyFee"`
	DriverAmount int64 `json:"driverAmount"`

	Status TransactionStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	Type   TransactionType   `gorm:"type:varchar(16);not null;default:inbound" json:"type"`
}
