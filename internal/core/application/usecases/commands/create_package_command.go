package commands

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var ErrCreatePackageCommandIsNotConstructed = errors.New(
	"CreatePackageCommand must be created via NewCreatePackageCommand constructor",
)

// CreatePackageCommand asks for a new package to be stored in a warehouse,
// either in the given slot or in a random free one.
//
// Tracking number and address lengths are checked here, before any slot is touched.
//
// Example:
//
//	cmd, err := NewCreatePackageCommand(kernel.NewUUID(), "MX-1872BR",
//	    "398 Peninsula Ave, San Francisco, CA 94134, USA", warehouseID, nil)
//	if err != nil {
//	    return err // errs.ValueIsRequiredError or errs.ValueIsOutOfRangeError
//	}
type CreatePackageCommand struct { //nolint:recvcheck //using for validation
	packageID      kernel.UUID
	trackingNumber string
	address        string
	warehouseID    kernel.UUID
	slotID         *kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreatePackageCommand(
	packageID kernel.UUID,
	trackingNumber, address string,
	warehouseID kernel.UUID,
	slotID *kernel.UUID,
) (CreatePackageCommand, error) {
	cmd := CreatePackageCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setPackageID(packageID),
		cmd.setTrackingNumber(trackingNumber),
		cmd.setAddress(address),
		cmd.setWarehouseID(warehouseID),
		cmd.setSlotID(slotID),
	); err != nil {
		return CreatePackageCommand{}, err
	}

	return cmd, nil
}

func (c CreatePackageCommand) Validate() error {
	return c.guard.Validate(ErrCreatePackageCommandIsNotConstructed)
}

func (c CreatePackageCommand) PackageID() kernel.UUID {
	return c.packageID
}

func (c CreatePackageCommand) TrackingNumber() string {
	return c.trackingNumber
}

func (c CreatePackageCommand) Address() string {
	return c.address
}

func (c CreatePackageCommand) WarehouseID() kernel.UUID {
	return c.warehouseID
}

// SlotID is the explicitly requested slot, nil for a random free one.
func (c CreatePackageCommand) SlotID() *kernel.UUID {
	return c.slotID
}

func (c *CreatePackageCommand) setPackageID(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}
	c.packageID = packageID
	return nil
}

func (c *CreatePackageCommand) setTrackingNumber(trackingNumber string) error {
	if err := parcel.ValidateTrackingNumber(trackingNumber); err != nil {
		return err
	}
	c.trackingNumber = trackingNumber
	return nil
}

func (c *CreatePackageCommand) setAddress(address string) error {
	if err := parcel.ValidateAddress(address); err != nil {
		return err
	}
	c.address = address
	return nil
}

func (c *CreatePackageCommand) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	c.warehouseID = warehouseID
	return nil
}

func (c *CreatePackageCommand) setSlotID(slotID *kernel.UUID) error {
	if slotID == nil {
		return nil
	}
	if err := slotID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("warehouseSlotId", err)
	}
	id := *slotID
	c.slotID = &id
	return nil
}
