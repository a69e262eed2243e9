package database

import (
	"fmt"

	"estoque-backend/internal/config"
	"estoque-backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Init opens the store connection and synchronizes the schema. The handle is
// returned instead of kept in a package global so repositories get it
// injected and tests can swap in their own database.
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}

	return db, nil
}

// Migrate creates the produtos and vendas tables if they do not exist yet.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.Product{},
		&models.Sale{},
	); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}
	return nil
}
