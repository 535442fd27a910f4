package queries

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/guard"
)

var ErrListStoredPackagesQueryIsNotConstructed = errors.New(
	"ListStoredPackagesQuery must be created via NewListStoredPackagesQuery constructor",
)

// ListStoredPackagesQuery asks for the packages currently shelved in one warehouse.
type ListStoredPackagesQuery struct {
	warehouseID kernel.UUID

	guard guard.ConstructorGuard
}

func NewListStoredPackagesQuery(warehouseID kernel.UUID) (ListStoredPackagesQuery, error) {
	if err := warehouseID.Validate(); err != nil {
		return ListStoredPackagesQuery{}, err
	}
	return ListStoredPackagesQuery{warehouseID: warehouseID, guard: guard.NewConstructorGuard()}, nil
}

func (q ListStoredPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListStoredPackagesQueryIsNotConstructed)
}

func (q ListStoredPackagesQuery) WarehouseID() kernel.UUID {
	return q.warehouseID
}
