// Package database constructs the shared storage handle.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/salman-gigabit/PatientQueueBackend/internal/config"
	"github.com/salman-gigabit/PatientQueueBackend/internal/models"
)

// Connect opens the postgres connection and migrates the schema. The returned
// handle is constructed once at startup and shared by reference; there is no
// package-level singleton. TranslateError is enabled so unique-constraint
// violations surface as gorm.ErrDuplicatedKey.
func Connect(cfg *config.Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBPort, cfg.DBUser, cfg.DBPassword, cfg.DBName,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&models.User{}, &models.Patient{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	return db, nil
}
