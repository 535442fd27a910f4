package ports

import (
	"context"
)

// UnitOfWorkFactory creates a fresh unit of work per use case invocation.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork groups slot store and repository calls into one atomic change.
// Between Begin and Commit every store and repository obtained from it shares
// the same transaction; Rollback undoes all of it, and is a no-op after Commit.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	Commit(ctx context.Context) error

	Rollback(ctx context.Context) error

	SlotStore() SlotStore

	PackageRepository() PackageRepository

	WarehouseRepository() WarehouseRepository
}
