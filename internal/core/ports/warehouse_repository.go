package ports

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
)

// WarehouseRepository reads warehouses with their slots. Add is used by the
// seeding path only; the lifecycle use cases never create warehouses.
type WarehouseRepository interface {
	Add(ctx context.Context, aggregate *warehouse.Warehouse) error

	Get(ctx context.Context, id kernel.UUID) (*warehouse.Warehouse, error)

	Exists(ctx context.Context, id kernel.UUID) (bool, error)

	Count(ctx context.Context) (int64, error)
}
