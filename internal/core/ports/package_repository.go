package ports

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// PackageRepository persists packages. Get returns errs.ObjectNotFoundError for
// an unknown id, and within a unit of work it locks the package until the end
// of the transaction.
type PackageRepository interface {
	Add(ctx context.Context, aggregate *parcel.Package) error

	Update(ctx context.Context, aggregate *parcel.Package) error

	Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
