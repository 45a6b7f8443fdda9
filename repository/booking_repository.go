package repository

import (
	"errors"
	"time"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type BookingRepository struct {
	DB *gorm.DB
}

func NewBookingRepository(db *gorm.DB) *BookingRepository {
	return &BookingRepository{DB: db}
}

func (r *BookingRepository) Create(tx *gorm.DB, b *entity.Booking) error {
	return apperr.Gateway("create booking", tx.Create(b).Error)
}

func (r *BookingRepository) Get(id string) (*entity.Booking, error) {
	var b entity.Booking
	if err := r.DB.First(&b, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find booking", err)
	}
	return &b, nil
}

type BookingSummary struct {
	ID          string               `json:"id"`
	ServiceID   string               `json:"serviceId"`
	ServiceName string               `json:"serviceName"`
	Location    string               `json:"location"`
	ServiceDate time.Time            `json:"serviceDate"`
	Quantity    int                  `json:"quantity"`
	Status      entity.BookingStatus `json:"status"`
	CreatedAt   time.Time            `json:"createdAt"`
}

func (r *BookingRepository) ListForCustomer(customerID string, limit int) ([]BookingSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []BookingSummary
	err := r.DB.Table("bookings AS b").
		Select("b.id, b.service_id, s.name AS service_name, b.location, b.service_date, b.quantity, b.status, b.created_at").
		Joins("LEFT JOIN services s ON s.id = b.service_id").
		Where("b.customer_id = ? AND b.deleted_at IS NULL", customerID).
		Order("b.created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, apperr.Gateway("list customer bookings", err)
}

// ListOpen is the driver feed: unassigned bookings still collecting offers.
func (r *BookingRepository) ListOpen(limit int) ([]BookingSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []BookingSummary
	err := r.DB.Table("bookings AS b").
		Select("b.id, b.service_id, s.name AS service_name, b.location, b.service_date, b.quantity, b.status, b.created_at").
		Joins("LEFT JOIN services s ON s.id = b.service_id").
		Where("b.status = ? AND b.deleted_at IS NULL", entity.BookingPendingOffers).
		Order("b.service_date ASC").Limit(limit).
		Scan(&out).Error
	return out, apperr.Gateway("list open bookings", err)
}

func (r *BookingRepository) ListForDriver(driverID string, limit int) ([]BookingSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	var out []BookingSummary
	err := r.DB.Table("bookings AS b").
		Select("b.id, b.service_id, s.name AS service_name, b.location, b.service_date, b.quantity, b.status, b.created_at").
		Joins("LEFT JOIN services s ON s.id = b.service_id").
		Where("b.driver_id = ? AND b.deleted_at IS NULL", driverID).
		Order("b.created_at DESC").Limit(limit).
		Scan(&out).Error
	return out, apperr.Gateway("list driver bookings", err)
}

// CountForDriver counts the driver's bookings in a given status without
// loading rows, so totals are exact regardless of list limits.
func (r *BookingRepository) CountForDriver(driverID string, status entity.BookingStatus) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.Booking{}).
		Where("driver_id = ? AND status = ?", driverID, status).
		Count(&n).Error
	return n, apperr.Gateway("count driver bookings", err)
}

func (r *BookingRepository) ListAll() ([]entity.Booking, error) {
	var out []entity.Booking
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, apperr.Gateway("list bookings", err)
}

// UpdateStatusGuard applies the transition as a conditional UPDATE: the row
// must still hold `from` for anything to change. extra carries columns set
// alongside the status (driver_id, cancellation_reason).
func (r *BookingRepository) UpdateStatusGuard(tx *gorm.DB, id string, from, to entity.BookingStatus, extra map[string]any) (int64, error) {
	updates := map[string]any{"status": to}
	for k, v := range extra {
		updates[k] = v
	}
	res := tx.Model(&entity.Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(updates)
	return res.RowsAffected, apperr.Gateway("guarded booking status update", res.Error)
}
