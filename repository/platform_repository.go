package repository

import (
	"errors"

	"srvices-backend/entity"
	"srvices-backend/pkg/apperr"

	"gorm.io/gorm"
)

// PlatformRepository covers the small admin-managed collections: settings,
// API keys, notification templates and language strings.
type PlatformRepository struct {
	DB *gorm.DB
}

func NewPlatformRepository(db *gorm.DB) *PlatformRepository {
	return &PlatformRepository{DB: db}
}

// ---------------- Settings ----------------

func (r *PlatformRepository) ListSettings() ([]entity.Setting, error) {
	var out []entity.Setting
	err := r.DB.Order("key ASC").Find(&out).Error
	return out, apperr.Gateway("list settings", err)
}

func (r *PlatformRepository) UpsertSetting(key, value string) error {
	var s entity.Setting
	err := r.DB.Where("key = ?", key).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Gateway("create setting",
			r.DB.Create(&entity.Setting{Key: key, Value: value}).Error)
	}
	if err != nil {
		return apperr.Gateway("find setting", err)
	}
	return apperr.Gateway("update setting",
		r.DB.Model(&s).Update("value", value).Error)
}

// ---------------- API keys ----------------

func (r *PlatformRepository) ListApiKeys() ([]entity.ApiKey, error) {
	var out []entity.ApiKey
	err := r.DB.Order("created_at DESC").Find(&out).Error
	return out, apperr.Gateway("list api keys", err)
}

func (r *PlatformRepository) CreateApiKey(k *entity.ApiKey) error {
	return apperr.Gateway("create api key", r.DB.Create(k).Error)
}

func (r *PlatformRepository) RevokeApiKey(id string) error {
	return apperr.Gateway("revoke api key",
		r.DB.Model(&entity.ApiKey{}).Where("id = ?", id).Update("is_active", false).Error)
}

func (r *PlatformRepository) DeleteApiKey(id string) error {
	return apperr.Gateway("delete api key",
		r.DB.Delete(&entity.ApiKey{}, "id = ?", id).Error)
}

// ---------------- Notification templates ----------------

func (r *PlatformRepository) ListTemplates() ([]entity.NotificationTemplate, error) {
	var out []entity.NotificationTemplate
	err := r.DB.Order("key ASC").Find(&out).Error
	return out, apperr.Gateway("list templates", err)
}

func (r *PlatformRepository) UpdateTemplate(id string, updates map[string]any) error {
	return apperr.Gateway("update template",
		r.DB.Model(&entity.NotificationTemplate{}).Where("id = ?", id).Updates(updates).Error)
}

// ---------------- Language strings ----------------

func (r *PlatformRepository) ListLanguageStrings(lang string) ([]entity.LanguageString, error) {
	db := r.DB.Order("key ASC")
	if lang != "" {
		db = db.Where("lang = ?", lang)
	}
	var out []entity.LanguageString
	err := db.Find(&out).Error
	return out, apperr.Gateway("list language strings", err)
}

func (r *PlatformRepository) UpsertLanguageString(key, lang, value string) error {
	var s entity.LanguageString
	err := r.DB.Where("key = ? AND lang = ?", key, lang).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.Gateway("create language string",
			r.DB.Create(&entity.LanguageString{Key: key, Lang: lang, Value: value}).Error)
	}
	if err != nil {
		return apperr.Gateway("find language string", err)
	}
	return apperr.Gateway("update language string",
		r.DB.Model(&s).Update("value", value).Error)
}

func (r *PlatformRepository) DeleteLanguageString(id string) error {
	return apperr.Gateway("delete language string",
		r.DB.Delete(&entity.LanguageString{}, "id = ?", id).Error)
}
