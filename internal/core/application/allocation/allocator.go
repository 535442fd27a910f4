package allocation

import (
	"context"
	"errors"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
)

// MaxReserveAttempts bounds how many times the random path re-reads the free
// slots after every candidate of the previous read was lost to other callers.
const MaxReserveAttempts = 5

var (
	ErrSlotNotAvailable  = errors.New("slot is not available")
	ErrNoFreeSlots       = errors.New("no free slots in warehouse")
	ErrWarehouseNotFound = errors.New("warehouse not found")
)

// Stores is the part of a unit of work the Allocator writes through. Passing
// it per call keeps the reservation inside the caller's transaction.
type Stores interface {
	SlotStore() ports.SlotStore
	WarehouseRepository() ports.WarehouseRepository
}

// Allocator decides which slot a new package goes to and reserves it.
type Allocator struct {
	picker      services.SlotPicker
	maxAttempts int
}

func NewAllocator(picker services.SlotPicker) Allocator {
	return Allocator{
		picker:      picker,
		maxAttempts: MaxReserveAttempts,
	}
}

// Reserve occupies a slot of warehouseID for packageID and returns its id.
//
// With slotID set, exactly that slot is reserved, or ErrSlotNotAvailable is
// returned when it is occupied or belongs to another warehouse. Without it, a
// free slot is chosen uniformly at random; ErrNoFreeSlots is returned when the
// warehouse is full. An unknown warehouse yields ErrWarehouseNotFound.
//
// The reservation is only durable once the caller's unit of work commits.
func (a Allocator) Reserve(
	ctx context.Context,
	stores Stores,
	warehouseID kernel.UUID,
	slotID *kernel.UUID,
	packageID kernel.UUID,
) (kernel.UUID, error) {
	exists, err := stores.WarehouseRepository().Exists(ctx, warehouseID)
	if err != nil {
		return kernel.UUID{}, err
	}
	if !exists {
		return kernel.UUID{}, fmt.Errorf("%w: %s", ErrWarehouseNotFound, warehouseID)
	}

	if slotID != nil {
		return a.reserveExplicit(ctx, stores.SlotStore(), warehouseID, *slotID, packageID)
	}

	return a.reserveRandom(ctx, stores.SlotStore(), warehouseID, packageID)
}

func (a Allocator) reserveExplicit(
	ctx context.Context,
	store ports.SlotStore,
	warehouseID, slotID, packageID kernel.UUID,
) (kernel.UUID, error) {
	err := store.Occupy(ctx, warehouseID, slotID, packageID)
	if errors.Is(err, ports.ErrSlotConflict) {
		return kernel.UUID{}, fmt.Errorf("%w: %s", ErrSlotNotAvailable, slotID)
	}
	if err != nil {
		return kernel.UUID{}, err
	}
	return slotID, nil
}

func (a Allocator) reserveRandom(
	ctx context.Context,
	store ports.SlotStore,
	warehouseID, packageID kernel.UUID,
) (kernel.UUID, error) {
	for range a.maxAttempts {
		candidates, err := store.ListFree(ctx, warehouseID)
		if err != nil {
			return kernel.UUID{}, err
		}

		reserved, err := a.occupyAny(ctx, store, warehouseID, candidates, packageID)
		if errors.Is(err, services.ErrNoFreeSlot) && len(candidates) == 0 {
			break
		}
		if errors.Is(err, services.ErrNoFreeSlot) {
			// every candidate was taken between the read and our write
			continue
		}
		if err != nil {
			return kernel.UUID{}, err
		}
		return reserved, nil
	}

	return kernel.UUID{}, fmt.Errorf("%w: %s", ErrNoFreeSlots, warehouseID)
}

// occupyAny tries random candidates until one conditional write succeeds. It
// returns services.ErrNoFreeSlot once all candidates are exhausted.
func (a Allocator) occupyAny(
	ctx context.Context,
	store ports.SlotStore,
	warehouseID kernel.UUID,
	candidates []*warehouse.Slot,
	packageID kernel.UUID,
) (kernel.UUID, error) {
	for {
		slot, err := a.picker.Pick(candidates)
		if err != nil {
			return kernel.UUID{}, err
		}

		err = store.Occupy(ctx, warehouseID, slot.ID(), packageID)
		if err == nil {
			return slot.ID(), nil
		}
		if !errors.Is(err, ports.ErrSlotConflict) {
			return kernel.UUID{}, err
		}

		candidates = without(candidates, slot)
	}
}

func without(slots []*warehouse.Slot, drop *warehouse.Slot) []*warehouse.Slot {
	out := slots[:0:0]
	for _, s := range slots {
		if !s.IsEqual(drop) {
			out = append(out, s)
		}
	}
	return out
}
