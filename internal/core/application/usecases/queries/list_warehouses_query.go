package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrListWarehousesQueryIsNotConstructed = errors.New(
	"ListWarehousesQuery must be created via NewListWarehousesQuery constructor",
)

type ListWarehousesQuery struct {
	guard guard.ConstructorGuard
}

func NewListWarehousesQuery() ListWarehousesQuery {
	return ListWarehousesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListWarehousesQuery) Validate() error {
	return q.guard.Validate(ErrListWarehousesQueryIsNotConstructed)
}
