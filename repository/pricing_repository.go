package repository

import (
	"errors"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type PricingRepository struct {
	DB *gorm.DB
}

func NewPricingRepository(db *gorm.DB) *PricingRepository {
	return &PricingRepository{DB: db}
}

func (r *PricingRepository) ListRules() ([]entity.PricingRule, error) {
	var rules []entity.PricingRule
	err := r.DB.Order("created_at DESC").Find(&rules).Error
	return rules, apperr.Gateway("list pricing rules", err)
}

func (r *PricingRepository) Get(id string) (*entity.PricingRule, error) {
	var rule entity.PricingRule
	if err := r.DB.First(&rule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find pricing rule", err)
	}
	return &rule, nil
}

func (r *PricingRepository) Create(rule *entity.PricingRule) error {
	return apperr.Gateway("create pricing rule", r.DB.Create(rule).Error)
}

func (r *PricingRepository) Update(id string, updates map[string]any) error {
	return apperr.Gateway("update pricing rule",
		r.DB.Model(&entity.PricingRule{}).Where("id = ?", id).Updates(updates).Error)
}

func (r *PricingRepository) Delete(id string) error {
	return apperr.Gateway("delete pricing rule",
		r.DB.Delete(&entity.PricingRule{}, "id = ?", id).Error)
}

// ServiceProjection is the slim service view attached to enriched rules.
type ServiceProjection struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	BasePrice int64  `json:"basePrice"`
	IsActive  bool   `json:"isActive"`
	Position  int    `json:"position"`
}

func (r *PricingRepository) FindServiceProjection(serviceID string) (*ServiceProjection, error) {
	var p ServiceProjection
	err := r.DB.Model(&entity.Service{}).
		Select("id, name, base_price, is_active, position").
		Where("id = ?", serviceID).
		First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find service projection", err)
	}
	return &p, nil
}

// ActiveRuleForService returns the active override for a service, or nil
// when the service prices from its base fields.
func (r *PricingRepository) ActiveRuleForService(serviceID string) (*entity.PricingRule, error) {
	var rule entity.PricingRule
	err := r.DB.Where("service_id = ? AND is_active = ?", serviceID, true).
		Order("created_at DESC").
		First(&rule).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, apperr.Gateway("find active rule", err)
	}
	return &rule, nil
}
