// Package postgres opens the GORM connection used by the dish and order
// repositories and keeps their schema up to date.
//
// Example:
//
//	db, err := postgres.Open(postgres.Config{Host: "localhost", Port: "5432", User: "app", Password: "secret", Name: "grubdash", SSLMode: "disable"})
//	if err != nil {
//	    return err
//	}
//	defer postgres.Close(db)
//
//	dishes := dishrepo.NewGormDishRepository(db)
//	orders := orderrepo.NewGormOrderRepository(db)
package postgres

import (
	"errors"
	"fmt"

	"grubdash/internal/adapters/out/postgres/dishrepo"
	"grubdash/internal/adapters/out/postgres/orderrepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Config holds the connection settings read from DB_* variables.
type Config struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN renders the settings as a libpq keyword/value connection string.
func (c Config) DSN() string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, sslMode,
	)
}

// Open connects to PostgreSQL and migrates the schema.
func Open(cfg Config) (*gorm.DB, error) {
	if cfg.Host == "" || cfg.Name == "" {
		return nil, errors.New("postgres: host and database name are required")
	}

	db, err := gorm.Open(postgresdriver.Open(cfg.DSN()), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("postgres: connect: %w", err)
	}

	if err = Migrate(db); err != nil {
		_ = Close(db)
		return nil, err
	}
	return db, nil
}

// Migrate creates or updates the dishes, orders and order_lines tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&dishrepo.DishDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}); err != nil {
		return fmt.Errorf("postgres: migrate: %w", err)
	}
	return nil
}

// Close releases the underlying connection pool.
func Close(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}
