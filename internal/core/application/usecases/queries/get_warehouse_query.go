package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrGetWarehouseQueryIsNotConstructed = errors.New(
	"GetWarehouseQuery must be created via NewGetWarehouseQuery constructor",
)

type GetWarehouseQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetWarehouseQuery(warehouseID kernel.UUID) (GetWarehouseQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return GetWarehouseQuery{}, err
	}
	return GetWarehouseQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetWarehouseQuery) Validate() error {
	return q.guard.Validate(ErrGetWarehouseQueryIsNotConstructed)
}

func (q GetWarehouseQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}
