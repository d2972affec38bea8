// Package database binds the model layer to PostgreSQL. Init is the
// one-time process-wide setup and is safe to call repeatedly.
package database

import (
	"fmt"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/shoplite/products-service/config"
	"github.com/shoplite/products-service/models"
)

// Open connects to the store identified by the configured URI.
func Open(cfg *config.Config) (*gorm.DB, error) {
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURI), &gorm.Config{
		Logger: newGormLogger(zap.L()),
	})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate ensures the products schema exists. AutoMigrate is idempotent,
// so repeated test runs and restarts are safe.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Product{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}

// Init opens the connection and ensures the schema, in that order.
func Init(cfg *config.Config) (*gorm.DB, error) {
	db, err := Open(cfg)
	if err != nil {
		return nil, err
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	zap.L().Info("database ready")
	return db, nil
}
