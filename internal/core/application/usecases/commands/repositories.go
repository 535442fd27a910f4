package commands

import (
	"context"

	"depot/internal/core/ports"
)

type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	SlotStoreFactory interface {
		SlotStore() ports.SlotStore
	}

	PackageRepoFactory interface {
		PackageRepository() ports.PackageRepository
	}

	WarehouseRepoFactory interface {
		WarehouseRepository() ports.WarehouseRepository
	}

	// UoW is what package creation needs: the allocator reads the warehouse
	// and reserves through the slot store, then the package is added.
	UoW interface {
		TxManager
		SlotStoreFactory
		PackageRepoFactory
		WarehouseRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// PackageUoW is what shipping and deleting need.
	PackageUoW interface {
		TxManager
		SlotStoreFactory
		PackageRepoFactory
	}

	PackageUoWFactory interface {
		Create() PackageUoW
	}
)
