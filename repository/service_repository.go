package repository

import (
	"errors"
	"strings"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type ServiceRepository struct {
	DB *gorm.DB
}

func NewServiceRepository(db *gorm.DB) *ServiceRepository {
	return &ServiceRepository{DB: db}
}

// CatalogQuery mirrors the public /api/services query string.
type CatalogQuery struct {
	Category       string
	Search         string
	Location       string
	MinPrice       *int64
	MaxPrice       *int64
	InstantBooking *bool
	AvailableToday *bool
	Limit          int
	Offset         int
}

// ListActive serves customer browsing: active services only, catalog order.
func (r *ServiceRepository) ListActive(q CatalogQuery) ([]entity.Service, error) {
	db := r.DB.Model(&entity.Service{}).Where("is_active = ?", true)

	if q.Category != "" {
		db = db.Where("category = ?", q.Category)
	}
	if s := strings.TrimSpace(q.Search); s != "" {
		like := "%" + strings.ToLower(s) + "%"
		db = db.Where("LOWER(name) LIKE ? OR LOWER(category) LIKE ?", like, like)
	}
	if q.MinPrice != nil {
		db = db.Where("base_price >= ?", *q.MinPrice)
	}
	if q.MaxPrice != nil {
		db = db.Where("base_price <= ?", *q.MaxPrice)
	}
	if q.InstantBooking != nil {
		db = db.Where("is_instant_booking = ?", *q.InstantBooking)
	}
	if q.AvailableToday != nil {
		db = db.Where("is_available_today = ?", *q.AvailableToday)
	}

	limit := q.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}

	// non-nil even when empty: [] is a valid result, distinct from "no result set"
	out := make([]entity.Service, 0)
	err := db.Order("position ASC, created_at ASC").
		Limit(limit).Offset(q.Offset).
		Find(&out).Error
	return out, apperr.Gateway("list services", err)
}

func (r *ServiceRepository) ListAll() ([]entity.Service, error) {
	var out []entity.Service
	err := r.DB.Order("position ASC, created_at ASC").Find(&out).Error
	return out, apperr.Gateway("list all services", err)
}

func (r *ServiceRepository) Get(id string) (*entity.Service, error) {
	var s entity.Service
	if err := r.DB.First(&s, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find service", err)
	}
	return &s, nil
}

func (r *ServiceRepository) Create(s *entity.Service) error {
	return apperr.Gateway("create service", r.DB.Create(s).Error)
}

func (r *ServiceRepository) Update(id string, updates map[string]any) error {
	return apperr.Gateway("update service",
		r.DB.Model(&entity.Service{}).Where("id = ?", id).Updates(updates).Error)
}

func (r *ServiceRepository) Delete(id string) error {
	return apperr.Gateway("delete service", r.DB.Delete(&entity.Service{}, "id = ?", id).Error)
}

// Reorder rewrites catalog positions in one transaction.
func (r *ServiceRepository) Reorder(orderedIDs []string) error {
	return apperr.Gateway("reorder services", r.DB.Transaction(func(tx *gorm.DB) error {
		for i, id := range orderedIDs {
			if err := tx.Model(&entity.Service{}).Where("id = ?", id).
				Update("position", i).Error; err != nil {
				return err
			}
		}
		return nil
	}))
}
