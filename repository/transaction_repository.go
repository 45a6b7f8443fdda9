package repository

import (
	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type TransactionRepository struct {
	DB *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) *TransactionRepository {
	return &TransactionRepository{DB: db}
}

func (r *TransactionRepository) Create(tx *gorm.DB, t *entity.Transaction) error {
	return apperr.Gateway("create transaction", tx.Create(t).Error)
}

// UpdateStatusByBooking moves a booking's ledger row from one status to
// another. Completed rows are immutable, which the `from` condition enforces.
func (r *TransactionRepository) UpdateStatusByBooking(tx *gorm.DB, bookingID string, from, to entity.TransactionStatus) (int64, error) {
	res := tx.Model(&entity.Transaction{}).
		Where("booking_id = ? AND status = ?", bookingID, from).
		Update("status", to)
	return res.RowsAffected, apperr.Gateway("guarded transaction status update", res.Error)
}

func (r *TransactionRepository) ListByBooking(bookingID string) ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Where("booking_id = ?", bookingID).Order("created_at ASC").Find(&out).Error
	return out, apperr.Gateway("list booking transactions", err)
}

func (r *TransactionRepository) ListAll() ([]entity.Transaction, error) {
	var out []entity.Transaction
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, apperr.Gateway("list transactions", err)
}

// WalletBalance derives a driver's balance from the completed ledger rows,
// inbound minus outbound. The denormalized users.wallet_balance column is a
// display cache; this sum is the source of truth.
func (r *TransactionRepository) WalletBalance(driverID string) (int64, error) {
	var balance int64
	err := r.DB.Model(&entity.Transaction{}).
		Select("COALESCE(SUM(CASE WHEN type = ? THEN driver_amount ELSE -driver_amount END), 0)",
			entity.TransactionInbound).
		Where("driver_id = ? AND status = ?", driverID, entity.TransactionCompleted).
		Scan(&balance).Error
	return balance, apperr.Gateway("wallet balance", err)
}

type LedgerTotals struct {
	GrossTotal   int64 `json:"grossTotal"`
	FeeTotal     int64 `json:"feeTotal"`
	DriverTotal  int64 `json:"driverTotal"`
	Transactions int64 `json:"transactions"`
}

// Totals aggregates completed rows for the admin wallet view.
func (r *TransactionRepository) Totals() (*LedgerTotals, error) {
	var t LedgerTotals
	err := r.DB.Model(&entity.Transaction{}).
		Select("COALESCE(SUM(gross_amount),0) AS gross_total, COALESCE(SUM(company_fee),0) AS fee_total, COALESCE(SUM(driver_amount),0) AS driver_total, COUNT(*) AS transactions").
		Where("status = ?", entity.TransactionCompleted).
		Scan(&t).Error
	if err != nil {
		return nil, apperr.Gateway("ledger totals", err)
	}
	return &t, nil
}
