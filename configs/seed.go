package configs

import (
	"log"

	"srvices-backend/entity"

	"golang.org/x/crypto/bcrypt"
)

// SeedAdmin creates the first admin account from ADMIN_EMAIL/ADMIN_PASSWORD.
func SeedAdmin() error {
	email := getEnv("ADMIN_EMAIL", "")
	pass := getEnv("ADMIN_PASSWORD", "")
	if email == "" || pass == "" {
		log.Println("skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", email).Count(&count)
	if count > 0 {
		log.Println("admin already exists:", email)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    email,
		Password: string(hash),
		FullName: "Platform Admin",
		UserType: entity.UserTypeAdmin,
		Status:   entity.UserStatusActive,
		Language: "en",
	}
	return db.Create(&admin).Error
}

// SeedLookups writes the default settings and notification templates.
func SeedLookups() error {
	defaults := map[string]string{
		"platform_name":        "srvices",
		"default_language":     "en",
		"support_email":        "support@srvices.app",
		"default_platform_fee": "20",
	}
	for k, v := range defaults {
		if err := db.Where(entity.Setting{Key: k}).
			Attrs(entity.Setting{Value: v}).
			FirstOrCreate(&entity.Setting{}).Error; err != nil {
			return err
		}
	}

	templates := []entity.NotificationTemplate{
		{Key: "booking_created", Subject: "Booking received", BodyEn: "Your booking has been placed.", BodyAr: "تم استلام حجزك."},
		{Key: "booking_accepted", Subject: "Driver on the way", BodyEn: "A driver accepted your booking.", BodyAr: "قبل السائق حجزك."},
		{Key: "booking_completed", Subject: "Service completed", BodyEn: "Your booking is complete.", BodyAr: "اكتمل حجزك."},
		{Key: "booking_cancelled", Subject: "Booking cancelled", BodyEn: "Your booking was cancelled.", BodyAr: "تم إلغاء حجزك."},
	}
	for _, t := range templates {
		if err := db.Where(entity.NotificationTemplate{Key: t.Key}).
			Attrs(t).
			FirstOrCreate(&entity.NotificationTemplate{}).Error; err != nil {
			return err
		}
	}
	return nil
}
