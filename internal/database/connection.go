package database

import (
	"fmt"
	"strings"

	"samsip_orders/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the store selected by the URL scheme: postgres://... for
// production, sqlite://<path> (or a bare file path) for local use and tests.
// Foreign key constraints are intentionally not created: reference rows are
// hard-deleted while orders keep their ids, and the read path substitutes a
// placeholder for dangling references.
func Connect(databaseURL string, maxOpen, maxIdle int) (*gorm.DB, error) {
	config := &gorm.Config{
		Logger:                                   logger.Default.LogMode(logger.Error),
		DisableForeignKeyConstraintWhenMigrating: true,
	}

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(databaseURL, "postgres://"), strings.HasPrefix(databaseURL, "postgresql://"):
		dialector = postgres.Open(databaseURL)
	case strings.HasPrefix(databaseURL, "sqlite://"):
		dialector = sqlite.Open(strings.TrimPrefix(databaseURL, "sqlite://"))
	default:
		dialector = sqlite.Open(databaseURL)
	}

	db, err := gorm.Open(dialector, config)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if sqlDB, derr := db.DB(); derr == nil && sqlDB != nil {
		if maxOpen > 0 {
			sqlDB.SetMaxOpenConns(maxOpen)
		}
		if maxIdle >= 0 {
			sqlDB.SetMaxIdleConns(maxIdle)
		}
	}

	return db, nil
}

// Migrate creates missing tables and columns. It is idempotent and must run
// once before the server accepts traffic.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.Supplier{},
		&models.Item{},
		&models.Unit{},
		&models.Order{},
	)
}
