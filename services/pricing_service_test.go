package services

import (
	"testing"

	"srvices-backend/entity"
	"srvices-backend/repository"
)

func ptrI64(v int64) *int64     { return &v }
func ptrF64(v float64) *float64 { return &v }

func TestResolveRulesBestEffort(t *testing.T) {
	db := newTestDB(t)
	svc := NewPricingService(repository.NewPricingRepository(db))

	good := seedService(t, db, 3000, 15, entity.PriceTypeFixed, true)
	other := seedService(t, db, 4500, 15, entity.PriceTypeFixed, true)

	rules := []entity.PricingRule{
		{ServiceID: good.ID, CustomerFixedPrice: ptrI64(2500)},
		{ServiceID: "not-a-uuid", DriverPercentage: ptrF64(70)},
		{ServiceID: other.ID},
		{ServiceID: "00000000-0000-0000-0000-00000000dead"}, // well-formed but dangling
	}

	out, err := svc.ResolveRules(rules)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if len(out) != 4 {
		t.Fatalf("resolved %d rules, want 4", len(out))
	}

	if out[0].Service == nil || out[0].Service.ID != good.ID {
		t.Fatal("first rule should resolve its service")
	}
	if out[0].Service.BasePrice != 3000 {
		t.Fatalf("projection base price = %d", out[0].Service.BasePrice)
	}
	if out[1].Service != nil {
		t.Fatal("malformed id must leave service nil")
	}
	if out[2].Service == nil || out[2].Service.ID != other.ID {
		t.Fatal("third rule should resolve its service")
	}
	if out[3].Service != nil {
		t.Fatal("dangling id must leave service nil")
	}
}

func TestResolveRulesEmpty(t *testing.T) {
	db := newTestDB(t)
	svc := NewPricingService(repository.NewPricingRepository(db))

	out, err := svc.ResolveRules(nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 0 {
		t.Fatalf("resolved %d, want 0", len(out))
	}
}

func TestEffectivePrice(t *testing.T) {
	svc := &entity.Service{BasePrice: 5000}

	if got := EffectivePrice(svc, nil); got != 5000 {
		t.Fatalf("no rule: %d, want base 5000", got)
	}
	if got := EffectivePrice(svc, &entity.PricingRule{}); got != 5000 {
		t.Fatalf("rule without override: %d, want base 5000", got)
	}
	if got := EffectivePrice(svc, &entity.PricingRule{CustomerFixedPrice: ptrI64(4200)}); got != 4200 {
		t.Fatalf("fixed override: %d, want 4200", got)
	}
}

func TestDriverPayout(t *testing.T) {
	// no rule: platform keeps the fee percent
	if got := DriverPayout(10000, 20, nil); got != 8000 {
		t.Fatalf("default payout = %d, want 8000", got)
	}
	// percentage override
	if got := DriverPayout(10000, 20, &entity.PricingRule{DriverPercentage: ptrF64(75)}); got != 7500 {
		t.Fatalf("percentage payout = %d, want 7500", got)
	}
	// fixed override wins
	rule := &entity.PricingRule{DriverPercentage: ptrF64(75), DriverFixedPrice: ptrI64(6000)}
	if got := DriverPayout(10000, 20, rule); got != 6000 {
		t.Fatalf("fixed payout = %d, want 6000", got)
	}
}
