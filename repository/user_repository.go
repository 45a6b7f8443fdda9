package repository

import (
	"errors"
	"strings"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(u *entity.User) error {
	return apperr.Gateway("create user", r.DB.Create(u).Error)
}

func (r *UserRepository) FindByID(id string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find user", err)
	}
	return &u, nil
}

func (r *UserRepository) FindByEmail(email string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("email = ?", email).First(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.ErrNotFound
		}
		return nil, apperr.Gateway("find user by email", err)
	}
	return &u, nil
}

func (r *UserRepository) CountByEmail(email string) (int64, error) {
	var count int64
	err := r.DB.Model(&entity.User{}).Where("email = ?", email).Count(&count).Error
	return count, apperr.Gateway("count users by email", err)
}

func (r *UserRepository) Update(id string, updates map[string]any) error {
	return apperr.Gateway("update user",
		r.DB.Model(&entity.User{}).Where("id = ?", id).Updates(updates).Error)
}

// UpdateStatusGuard flips status only when the row is still in `from`.
// Returns the affected row count so callers can detect a lost race.
func (r *UserRepository) UpdateStatusGuard(tx *gorm.DB, id string, from, to entity.UserStatus) (int64, error) {
	res := tx.Model(&entity.User{}).
		Where("id = ? AND status = ?", id, from).
		Update("status", to)
	return res.RowsAffected, apperr.Gateway("guarded user status update", res.Error)
}

func (r *UserRepository) Delete(id string) error {
	return apperr.Gateway("delete user", r.DB.Delete(&entity.User{}, "id = ?", id).Error)
}

// EnsureProfile upserts a default profile row for an authenticated identity
// that has none yet (first-login bootstrap).
func (r *UserRepository) EnsureProfile(id, email string) (*entity.User, error) {
	u := entity.User{
		Model:    entity.Model{ID: id},
		Email:    strings.ToLower(strings.TrimSpace(email)),
		UserType: entity.UserTypeCustomer,
		Status:   entity.UserStatusActive,
		Language: "en",
	}
	if err := r.DB.Where("id = ?", id).FirstOrCreate(&u).Error; err != nil {
		return nil, apperr.Gateway("ensure profile", err)
	}
	return &u, nil
}

// ListByType loads all users of one type ordered by creation; the caller
// filters/paginates in memory the way the admin views do.
func (r *UserRepository) ListByType(t entity.UserType) ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Where("user_type = ?", t).Order("created_at DESC").Find(&users).Error
	return users, apperr.Gateway("list users", err)
}

func (r *UserRepository) AdjustWallet(tx *gorm.DB, id string, delta int64) error {
	return apperr.Gateway("adjust wallet",
		tx.Model(&entity.User{}).Where("id = ?", id).
			Update("wallet_balance", gorm.Expr("wallet_balance + ?", delta)).Error)
}
