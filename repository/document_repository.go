package repository

import (
	"errors"
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type DocumentRepository struct {
	DB *gorm.DB
}

func NewDocumentRepository(db *gorm.DB) *DocumentRepository {
	return &DocumentRepository{DB: db}
}

func (r *DocumentRepository) Create(d *entity.DriverDocument) error {
	return apperr.Gateway("create document", r.DB.Create(d).Error)
}

func (r *DocumentRepository) Get(id string) (*entity.DriverDocument, error) {
	var d entity.DriverDocument
	if err := r.DB.First(&d, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find document", err)
	}
	return &d, nil
}

func (r *DocumentRepository) ListByDriver(driverID string) ([]entity.DriverDocument, error) {
	var docs []entity.DriverDocument
	err := r.DB.Where("driver_id = ?", driverID).Order("created_at ASC").Find(&docs).Error
	return docs, apperr.Gateway("list driver documents", err)
}

// Review records an admin verdict on a single document.
func (r *DocumentRepository) Review(id string, status entity.DocumentStatus, reason *string, adminID string, at time.Time) error {
	updates := map[string]any{
		"status":      status,
		"admin_id":    adminID,
		"reviewed_at": at,
	}
	if reason != nil {
		updates["reject_reason"] = *reason
	}
	return apperr.Gateway("review document",
		r.DB.Model(&entity.DriverDocument{}).Where("id = ?", id).Updates(updates).Error)
}
