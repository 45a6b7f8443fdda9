package services

import (
	"math"

	"srvices-backend/entity"
)

// Settlement math for one booking. Every split satisfies
// gross = companyFee + driverAmount by construction: one side is rounded,
// the other is the remainder.

// GrossAmount is the customer-facing total for a booking. For hourly and
// per-unit services the unit price multiplies by quantity; fixed services
// charge the unit price once. A pricing rule's customer_fixed_price replaces
// the service base price as the unit price.
func GrossAmount(svc *entity.Service, rule *entity.PricingRule, quantity int) int64 {
	unit := svc.BasePrice
	if rule != nil && rule.CustomerFixedPrice != nil {
		unit = *rule.CustomerFixedPrice
	}
	if svc.PriceType == entity.PriceTypeFixed {
		return unit
	}
	if quantity < 1 {
		quantity = 1
	}
	return unit * int64(quantity)
}

// SplitAmount divides gross between platform and driver.
// Driver overrides from the pricing rule win over the service platform fee:
// a driver_fixed_price pins the payout; a driver_percentage computes it from
// gross. Without a rule the platform keeps platformFee percent.
func SplitAmount(gross int64, platformFeePct float64, rule *entity.PricingRule) (companyFee, driverAmount int64) {
	switch {
	case rule != nil && rule.DriverFixedPrice != nil:
		driverAmount = *rule.DriverFixedPrice
		if driverAmount > gross {
			driverAmount = gross
		}
		companyFee = gross - driverAmount
	case rule != nil && rule.DriverPercentage != nil:
		driverAmount = roundPct(gross, *rule.DriverPercentage)
		companyFee = gross - driverAmount
	default:
		companyFee = roundPct(gross, platformFeePct)
		driverAmount = gross - companyFee
	}
	return companyFee, driverAmount
}

func roundPct(amount int64, pct float64) int64 {
	if pct < 0 {
		pct = 0
	}
	if pct > 100 {
		pct = 100
	}
	return int64(math.Round(float64(amount) * pct / 100))
}
