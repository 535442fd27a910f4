package postgres

import (
	"fmt"

	"depot/internal/adapters/out/postgres/packagerepo"
	"depot/internal/adapters/out/postgres/warehouserepo"

	"gorm.io/gorm"
)

// Models lists the persisted DTOs in creation order.
func Models() []any {
	return []any{
		&warehouserepo.WarehouseDTO{},
		&warehouserepo.SlotDTO{},
		&packagerepo.PackageDTO{},
	}
}

// Migrate creates or updates the warehouses, slots and packages tables. The
// unique indexes on slots.package_id and packages.slot_id back the
// one-slot-one-package rule at the storage level.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// Drop removes all tables created by Migrate.
func Drop(db *gorm.DB) error {
	models := Models()
	for i := len(models) - 1; i >= 0; i-- {
		if err := db.Migrator().DropTable(models[i]); err != nil {
			return fmt.Errorf("drop table: %w", err)
		}
	}
	return nil
}
