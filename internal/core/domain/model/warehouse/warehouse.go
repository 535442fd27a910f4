package warehouse

import (
	"errors"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrSlotNameIsTaken is returned by AddSlot when the warehouse already has a slot with that name.
	ErrSlotNameIsTaken = errors.New("slot name is already used in this warehouse")

	// ErrSlotBelongsToAnotherWarehouse is returned by AddSlot for a slot owned by a different warehouse.
	ErrSlotBelongsToAnotherWarehouse = errors.New("slot belongs to another warehouse")

	// ErrWarehouseIsNotConstructed is returned by Validate for a zero Warehouse.
	ErrWarehouseIsNotConstructed = errors.New("Warehouse must be created via NewWarehouse or RestoreWarehouse constructor")
)

// Warehouse is the aggregate root for a physical storage site and its slots.
//
// The warehouse is read-only for the package lifecycle: packages never change
// the warehouse itself, only the occupant of one of its slots, and that goes
// through the slot store so the write can be made conditional.
//
// Example usage:
//
//	coords, _ := kernel.ParseCoordinates("37.72585854879952", "-122.38684218300128")
//	wh, err := warehouse.NewWarehouse(kernel.NewUUID(), "San Francisco", coords)
//	if err != nil {
//	    return err
//	}
//	slot, _ := warehouse.NewSlot(kernel.NewUUID(), wh.ID(), "A-01")
//	if err = wh.AddSlot(slot); err != nil {
//	    return err
//	}
type Warehouse struct {
	// id uniquely identifies the warehouse
	id kernel.UUID

	// name is the display name, e.g. the city
	name string

	// coordinates is the site position
	coordinates kernel.Coordinates

	// slots are kept in insertion order
	slots []*Slot

	guard guard.ConstructorGuard
}

// NewWarehouse creates a warehouse without slots.
//
// Parameters:
//   - id: Unique identifier of the warehouse
//   - name: Display name, must not be empty
//   - coordinates: Site position built by kernel.NewCoordinates
//
// Returns:
//   - *Warehouse: The new warehouse
//   - error: Aggregated validation errors, if any
func NewWarehouse(id kernel.UUID, name string, coordinates kernel.Coordinates) (*Warehouse, error) {
	return RestoreWarehouse(id, name, coordinates, nil)
}

// RestoreWarehouse rebuilds a warehouse and its slots from storage.
//
// Returns:
//   - *Warehouse: Restored warehouse
//   - error: Aggregated validation errors, including slot ownership and name clashes
func RestoreWarehouse(id kernel.UUID, name string, coordinates kernel.Coordinates, slots []*Slot) (*Warehouse, error) {
	wh := &Warehouse{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(wh.setID(id), wh.setName(name), wh.setCoordinates(coordinates)); err != nil {
		return nil, err
	}

	for _, slot := range slots {
		if err := wh.AddSlot(slot); err != nil {
			return nil, err
		}
	}

	return wh, nil
}

func (w *Warehouse) ID() kernel.UUID {
	return w.id
}

func (w *Warehouse) Name() string {
	return w.name
}

func (w *Warehouse) Coordinates() kernel.Coordinates {
	return w.coordinates
}

// Slots returns the warehouse slots in insertion order. The slice is a copy;
// the slots are shared.
func (w *Warehouse) Slots() []*Slot {
	out := make([]*Slot, len(w.slots))
	copy(out, w.slots)
	return out
}

// FreeSlots returns the slots that currently have no occupant.
func (w *Warehouse) FreeSlots() []*Slot {
	var free []*Slot
	for _, s := range w.slots {
		if s.IsFree() {
			free = append(free, s)
		}
	}
	return free
}

// Slot looks a slot up by id.
func (w *Warehouse) Slot(id kernel.UUID) (*Slot, bool) {
	for _, s := range w.slots {
		if s.ID().IsEqual(id) {
			return s, true
		}
	}
	return nil, false
}

// AddSlot attaches a slot owned by this warehouse. Names are unique per warehouse.
func (w *Warehouse) AddSlot(slot *Slot) error {
	if err := slot.Validate(); err != nil {
		return err
	}

	if !slot.WarehouseID().IsEqual(w.id) {
		return fmt.Errorf("%w: %s", ErrSlotBelongsToAnotherWarehouse, slot.Name())
	}

	for _, s := range w.slots {
		if s.Name() == slot.Name() {
			return fmt.Errorf("%w: %s", ErrSlotNameIsTaken, slot.Name())
		}
	}

	w.slots = append(w.slots, slot)
	return nil
}

func (w *Warehouse) Validate() error {
	if w == nil {
		return ErrWarehouseIsNotConstructed
	}
	return w.guard.Validate(ErrWarehouseIsNotConstructed)
}

func (w *Warehouse) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Warehouse) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	w.name = name
	return nil
}

func (w *Warehouse) setCoordinates(coordinates kernel.Coordinates) error {
	if err := coordinates.Validate(); err != nil {
		return err
	}
	w.coordinates = coordinates
	return nil
}
