package postgres

import (
	"fmt"

	"fleetdispatch/internal/adapters/out/postgres/orderrepo"
	"fleetdispatch/internal/adapters/out/postgres/vehiclerepo"
	"fleetdispatch/internal/adapters/out/postgres/zonerepo"

	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Open connects to PostgreSQL with duplicate-key errors translated to
// gorm.ErrDuplicatedKey.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the zones, vehicles and orders tables.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&zonerepo.ZoneDTO{}, &vehiclerepo.VehicleDTO{}, &orderrepo.OrderDTO{}); err != nil {
		return fmt.Errorf("migrate schema: %w", err)
	}
	return nil
}
