package services

import (
	"errors"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"
	"srvices-backend/repository"

	"github.com/google/uuid"
)

type PricingService struct {
	Repo *repository.PricingRepository
}

func NewPricingService(repo *repository.PricingRepository) *PricingService {
	return &PricingService{Repo: repo}
}

// EnrichedRule is a pricing rule with its service projection attached, or
// Service=nil when the foreign key was malformed or dangling.
type EnrichedRule struct {
	entity.PricingRule
	Service *repository.ServiceProjection `json:"service"`
}

// validServiceID accepts only canonical 8-4-4-4-12 UUIDs. uuid.Parse alone
// also takes urn: and braced forms, which imported rows never legitimately
// use.
func validServiceID(id string) bool {
	if len(id) != 36 {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

// ResolveRules attaches service projections best-effort: a malformed or
// dangling service_id nils that one rule's service and the batch continues.
// Only an actual gateway failure aborts.
func (s *PricingService) ResolveRules(rules []entity.PricingRule) ([]EnrichedRule, error) {
	out := make([]EnrichedRule, 0, len(rules))
	for _, rule := range rules {
		enriched := EnrichedRule{PricingRule: rule}
		if validServiceID(rule.ServiceID) {
			proj, err := s.Repo.FindServiceProjection(rule.ServiceID)
			switch {
			case err == nil:
				enriched.Service = proj
			case errors.Is(err, apperr.ErrNotFound):
				// dangling fk, leave service nil
			default:
				return nil, err
			}
		}
		out = append(out, enriched)
	}
	return out, nil
}

// ListResolved is the admin pricing view.
func (s *PricingService) ListResolved() ([]EnrichedRule, error) {
	rules, err := s.Repo.ListRules()
	if err != nil {
		return nil, err
	}
	return s.ResolveRules(rules)
}

// EffectivePrice is the customer-facing unit price for a service under an
// optional rule.
func EffectivePrice(svc *entity.Service, rule *entity.PricingRule) int64 {
	if rule != nil && rule.CustomerFixedPrice != nil {
		return *rule.CustomerFixedPrice
	}
	return svc.BasePrice
}

// DriverPayout is the driver's share of gross under an optional rule.
func DriverPayout(gross int64, platformFeePct float64, rule *entity.PricingRule) int64 {
	_, driver := SplitAmount(gross, platformFeePct, rule)
	return driver
}

func (s *PricingService) CreateRule(rule *entity.PricingRule) error {
	if rule.ServiceID == "" {
		return apperr.Validation("serviceId is required")
	}
	if rule.DriverPercentage != nil && (*rule.DriverPercentage < 0 || *rule.DriverPercentage > 100) {
		return apperr.Validation("driverPercentage must be between 0 and 100")
	}
	return s.Repo.Create(rule)
}

func (s *PricingService) UpdateRule(id string, updates map[string]any) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	return s.Repo.Update(id, updates)
}

func (s *PricingService) DeleteRule(id string) error {
	if _, err := s.Repo.Get(id); err != nil {
		return err
	}
	return s.Repo.Delete(id)
}
