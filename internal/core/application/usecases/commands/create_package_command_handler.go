package commands

import (
	"context"

	"depot/internal/core/application/allocation"
	"depot/internal/core/domain/model/parcel"
)

// CreatePackageCommandHandler reserves a slot and stores a new package in it.
// The reservation and the insert share one unit of work, so a failed insert
// leaves the slot free.
//
// Errors from the allocator (allocation.ErrSlotNotAvailable,
// allocation.ErrNoFreeSlots, allocation.ErrWarehouseNotFound) are returned as is.
type CreatePackageCommandHandler struct {
	uowFactory UoWFactory
	allocator  allocation.Allocator
}

func NewCreatePackageCommandHandler(uowFactory UoWFactory, allocator allocation.Allocator) CreatePackageCommandHandler {
	return CreatePackageCommandHandler{
		uowFactory: uowFactory,
		allocator:  allocator,
	}
}

// Handle returns the stored package, InStorage and bound to its slot.
func (h CreatePackageCommandHandler) Handle(ctx context.Context, command CreatePackageCommand) (*parcel.Package, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	slotID, err := h.allocator.Reserve(ctx, uow, command.WarehouseID(), command.SlotID(), command.PackageID())
	if err != nil {
		return nil, err
	}

	pkg, err := parcel.NewPackage(command.PackageID(), command.TrackingNumber(), command.Address(), slotID)
	if err != nil {
		return nil, err
	}

	if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return pkg, nil
}
