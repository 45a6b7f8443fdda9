package services

import (
	"fmt"
	"testing"

	"srvices-backend/entity"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory database and migrates the schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("unwrap sql db: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Service{}, &entity.PricingRule{},
		&entity.Booking{}, &entity.Transaction{},
		&entity.DriverDocument{},
		&entity.ChatRoom{}, &entity.Message{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func seedUser(t *testing.T, db *gorm.DB, userType entity.UserType, status entity.UserStatus) *entity.User {
	t.Helper()
	u := &entity.User{
		Email:    fmt.Sprintf("%s-%d@test.local", userType, seq(db)),
		UserType: userType,
		Status:   status,
		Language: "en",
	}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}
	return u
}

func seedService(t *testing.T, db *gorm.DB, basePrice int64, feePct float64, priceType entity.PriceType, active bool) *entity.Service {
	t.Helper()
	s := &entity.Service{
		Name:        "Home Cleaning",
		Category:    "cleaning",
		BasePrice:   basePrice,
		PriceType:   priceType,
		PlatformFee: feePct,
		IsActive:    active,
	}
	if err := db.Create(s).Error; err != nil {
		t.Fatalf("seed service: %v", err)
	}
	return s
}

var seqCounter int

func seq(_ *gorm.DB) int {
	seqCounter++
	return seqCounter
}
