package configs

import (
	"fmt"

	"srvices-backend/entity"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(cfg *Config) error {
	var dial gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dial = postgres.Open(cfg.DBSource)
	case "sqlite", "":
		dial = sqlite.Open(cfg.DBSource)
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	database, err := gorm.Open(dial, &gorm.Config{})
	if err != nil {
		return err
	}
	db = database
	return nil
}

func SetupDatabase() error {
	return db.AutoMigrate(
		&entity.User{},
		&entity.Service{}, &entity.PricingRule{},
		&entity.Booking{}, &entity.Transaction{},
		&entity.DriverDocument{},
		&entity.ChatRoom{}, &entity.Message{},
		&entity.ApiKey{}, &entity.NotificationTemplate{},
		&entity.LanguageString{}, &entity.Setting{},
	)
}
