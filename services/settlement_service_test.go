package services

import (
	"testing"

	"srvices-backend/entity"
)

func TestGrossAmount(t *testing.T) {
	fixed := &entity.Service{BasePrice: 5000, PriceType: entity.PriceTypeFixed}
	hourly := &entity.Service{BasePrice: 3000, PriceType: entity.PriceTypeHourly}
	perUnit := &entity.Service{BasePrice: 150, PriceType: entity.PriceTypePerUnit}

	if got := GrossAmount(fixed, nil, 4); got != 5000 {
		t.Fatalf("fixed x4 = %d, want 5000", got)
	}
	if got := GrossAmount(hourly, nil, 3); got != 9000 {
		t.Fatalf("hourly x3 = %d, want 9000", got)
	}
	if got := GrossAmount(perUnit, nil, 10); got != 1500 {
		t.Fatalf("per_unit x10 = %d, want 1500", got)
	}

	// customer fixed price replaces the unit price
	rule := &entity.PricingRule{CustomerFixedPrice: ptrI64(2500)}
	if got := GrossAmount(hourly, rule, 2); got != 5000 {
		t.Fatalf("hourly override x2 = %d, want 5000", got)
	}
}

func TestSplitAmountInvariant(t *testing.T) {
	rules := []*entity.PricingRule{
		nil,
		{},
		{DriverPercentage: ptrF64(33.33)},
		{DriverPercentage: ptrF64(100)},
		{DriverFixedPrice: ptrI64(777)},
		{DriverFixedPrice: ptrI64(999999)}, // clamps to gross
	}
	grosses := []int64{0, 1, 99, 10000, 12345}
	fees := []float64{0, 12.5, 20, 100}

	for _, rule := range rules {
		for _, gross := range grosses {
			for _, feePct := range fees {
				fee, driver := SplitAmount(gross, feePct, rule)
				if fee+driver != gross {
					t.Fatalf("gross %d fee%% %v rule %+v: %d + %d != %d",
						gross, feePct, rule, fee, driver, gross)
				}
				if fee < 0 || driver < 0 {
					t.Fatalf("negative split: fee %d driver %d", fee, driver)
				}
			}
		}
	}
}

func TestSplitAmountRounding(t *testing.T) {
	// 12345 at 20% -> fee 2469, driver 9876
	fee, driver := SplitAmount(12345, 20, nil)
	if fee != 2469 || driver != 9876 {
		t.Fatalf("split = %d/%d, want 2469/9876", fee, driver)
	}

	// driver percentage rounds the driver side, remainder to the platform
	fee, driver = SplitAmount(101, 0, &entity.PricingRule{DriverPercentage: ptrF64(50)})
	if driver != 51 || fee != 50 {
		t.Fatalf("split = %d/%d, want 50/51", fee, driver)
	}
}
