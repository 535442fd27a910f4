package ports

import (
	"context"
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
)

// ErrSlotConflict is returned when a conditional slot write found the slot in
// an unexpected state: already occupied, held by another package, or not in
// the given warehouse.
var ErrSlotConflict = errors.New("slot conflict")

// SlotStore owns slot occupancy. Occupy and Release are compare-and-set
// operations: the check and the write happen as one atomic step in storage.
type SlotStore interface {
	// ListFree returns the currently free slots of a warehouse.
	ListFree(ctx context.Context, warehouseID kernel.UUID) ([]*warehouse.Slot, error)

	// Occupy marks slotID as held by packageID only if the slot belongs to
	// warehouseID and is free, otherwise it returns ErrSlotConflict.
	Occupy(ctx context.Context, warehouseID, slotID, packageID kernel.UUID) error

	// Release frees slotID only if packageID holds it, otherwise it returns ErrSlotConflict.
	Release(ctx context.Context, slotID, packageID kernel.UUID) error
}
