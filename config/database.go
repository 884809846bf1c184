package config

import (
	"fmt"
	"log"

	"github.com/mingle-social/api-go/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// InitDB opens the shared database handle used by every handler for the
// lifetime of the process. TranslateError lets handlers recognize unique
// constraint violations as gorm.ErrDuplicatedKey instead of raw driver errors.
func InitDB(cfg *Config) *gorm.DB {
	dsn := cfg.DatabaseURL
	if dsn == "" {
		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Post{}, &models.Comment{}, &models.Like{}, &models.Follow{}); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	return db
}
