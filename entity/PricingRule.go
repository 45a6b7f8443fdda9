package entity

// PricingRule overrides a Service's default pricing/commission split.
// ServiceID is intentionally a plain string column with no FK constraint:
// imported/seed rows are known to carry malformed ids, and the resolver
// tolerates them instead of rejecting the batch.
type PricingRule struct {
	Model
	ServiceID string `gorm:"index" json:"serviceId"`

	CustomerFixedPrice *int64   `json:"customerFixedPrice,omitempty"`
	DriverPercentage   *float64 `json:"driverPercentage,omitempty"` // percent of gross paid to the driver
	DriverFixedPrice   *int64   `json:"driverFixedPrice,omitempty"`

	IsActive bool `gorm:"default:true" json:"isActive"`
}
