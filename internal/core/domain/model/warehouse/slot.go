package warehouse

import (
	"errors"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/pkg/errs"
	"depot/internal/pkg/guard"
)

var (
	// ErrSlotIsOccupied is returned by Occupy when another package already holds the slot.
	ErrSlotIsOccupied = errors.New("slot is occupied")

	// ErrPackageNotInSlot is returned by Release when the slot is empty or holds a different package.
	ErrPackageNotInSlot = errors.New("package is not stored in this slot")

	// ErrSlotIsNotConstructed is returned by Validate for a zero Slot.
	ErrSlotIsNotConstructed = errors.New("Slot must be created via NewSlot or RestoreSlot constructor")
)

// Slot is one shelf position inside a warehouse. Its name encodes aisle and
// shelf ("A-01"). A slot holds at most one package; the occupant is a weak
// reference by package id.
//
// Key business rules:
//   - Must be constructed through NewSlot or RestoreSlot
//   - Belongs to exactly one warehouse for its whole life
//   - Occupancy is binary: free, or held by a single package
//   - Only the occupying package can release the slot
//
// Example usage:
//
//	slot, err := warehouse.NewSlot(kernel.NewUUID(), warehouseID, "B-03")
//	if err != nil {
//	    return err
//	}
//	if err = slot.Occupy(packageID); err != nil {
//	    return err // ErrSlotIsOccupied
//	}
type Slot struct {
	// id uniquely identifies the slot
	id kernel.UUID

	// warehouseID is the owning warehouse
	warehouseID kernel.UUID

	// name is the aisle-shelf label printed on the rack
	name string

	// packageID points to the occupant, nil while the slot is free
	packageID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSlot creates a free slot.
//
// Parameters:
//   - id: Unique identifier of the slot
//   - warehouseID: Identifier of the owning warehouse
//   - name: Aisle-shelf label, must not be empty
//
// Returns:
//   - *Slot: A free slot
//   - error: Aggregated validation errors, if any
func NewSlot(id, warehouseID kernel.UUID, name string) (*Slot, error) {
	return RestoreSlot(id, warehouseID, name, nil)
}

// RestoreSlot rebuilds a slot from storage, including its current occupant.
//
// Parameters:
//   - id: Unique identifier of the slot
//   - warehouseID: Identifier of the owning warehouse
//   - name: Aisle-shelf label
//   - packageID: Occupant id, nil when the slot is free
//
// Returns:
//   - *Slot: Restored slot
//   - error: Aggregated validation errors, if any
func RestoreSlot(id, warehouseID kernel.UUID, name string, packageID *kernel.UUID) (*Slot, error) {
	slot := &Slot{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		slot.setID(id),
		slot.setWarehouseID(warehouseID),
		slot.setName(name),
		slot.setPackageID(packageID),
	); err != nil {
		return nil, err
	}

	return slot, nil
}

func (s *Slot) ID() kernel.UUID {
	return s.id
}

func (s *Slot) WarehouseID() kernel.UUID {
	return s.warehouseID
}

func (s *Slot) Name() string {
	return s.name
}

// PackageID returns the occupant id, or nil if the slot is free.
func (s *Slot) PackageID() *kernel.UUID {
	if s.packageID == nil {
		return nil
	}
	id := *s.packageID
	return &id
}

// IsFree reports whether no package occupies the slot.
func (s *Slot) IsFree() bool {
	return s.packageID == nil
}

// IsHeldBy reports whether packageID is the current occupant.
func (s *Slot) IsHeldBy(packageID kernel.UUID) bool {
	return s.packageID != nil && s.packageID.IsEqual(packageID)
}

// Occupy marks the slot as held by packageID.
//
// Returns:
//   - error: ErrSlotIsOccupied if any package (including packageID) already holds it,
//     or a validation error for an unconstructed id
func (s *Slot) Occupy(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	if !s.IsFree() {
		return ErrSlotIsOccupied
	}

	s.packageID = &packageID
	return nil
}

// Release frees the slot if packageID is its occupant.
//
// Returns:
//   - error: ErrPackageNotInSlot if the slot is free or held by another package
func (s *Slot) Release(packageID kernel.UUID) error {
	if err := packageID.Validate(); err != nil {
		return err
	}

	if !s.IsHeldBy(packageID) {
		return ErrPackageNotInSlot
	}

	s.packageID = nil
	return nil
}

func (s *Slot) IsEqual(other *Slot) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// Validate reports whether the slot was built by its constructor.
func (s *Slot) Validate() error {
	if s == nil {
		return ErrSlotIsNotConstructed
	}
	return s.guard.Validate(ErrSlotIsNotConstructed)
}

func (s *Slot) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Slot) setWarehouseID(warehouseID kernel.UUID) error {
	if err := warehouseID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("warehouseId", err)
	}
	s.warehouseID = warehouseID
	return nil
}

func (s *Slot) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	s.name = name
	return nil
}

func (s *Slot) setPackageID(packageID *kernel.UUID) error {
	if packageID != nil {
		if err := packageID.Validate(); err != nil {
			return err
		}
		id := *packageID
		packageID = &id
	}
	s.packageID = packageID
	return nil
}
