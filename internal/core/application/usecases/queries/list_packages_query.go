package queries

import (
	"errors"

	"depot/internal/pkg/guard"
)

var ErrListPackagesQueryIsNotConstructed = errors.New(
	"ListPackagesQuery must be created via NewListPackagesQuery constructor",
)

type ListPackagesQuery struct {
	guard guard.ConstructorGuard
}

func NewListPackagesQuery() ListPackagesQuery {
	return ListPackagesQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPackagesQuery) Validate() error {
	return q.guard.Validate(ErrListPackagesQueryIsNotConstructed)
}
