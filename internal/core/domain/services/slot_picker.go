package services

import (
	"errors"
	"math/rand/v2"

	"depot/internal/core/domain/model/warehouse"
)

// ErrNoFreeSlot is returned by Pick when no candidate is free.
var ErrNoFreeSlot = errors.New("no free slot")

// SlotPicker selects the slot a new package is put in when the caller did not
// ask for one. Each free candidate is equally likely.
//
// Picking is only a proposal: the slot store still has to occupy the slot with
// a conditional write, and a lost race means the caller picks again.
//
// Example:
//
//	free, err := store.ListFree(ctx, warehouseID)
//	if err != nil {
//	    return err
//	}
//	slot, err := services.NewSlotPicker().Pick(free)
//	if errors.Is(err, services.ErrNoFreeSlot) {
//	    return ErrNoFreeSlots
//	}
type SlotPicker struct {
	intN func(n int) int
}

// NewSlotPicker returns a picker backed by math/rand/v2.
func NewSlotPicker() SlotPicker {
	return SlotPicker{intN: rand.IntN}
}

// NewSlotPickerWithSource returns a picker that draws indexes from intN, which
// must return a value in [0, n).
func NewSlotPickerWithSource(intN func(n int) int) SlotPicker {
	return SlotPicker{intN: intN}
}

// Pick returns one of the free, valid candidates. Occupied candidates are ignored.
func (p SlotPicker) Pick(candidates []*warehouse.Slot) (*warehouse.Slot, error) {
	free := make([]*warehouse.Slot, 0, len(candidates))
	for _, s := range candidates {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if s.IsFree() {
			free = append(free, s)
		}
	}

	if len(free) == 0 {
		return nil, ErrNoFreeSlot
	}

	intN := p.intN
	if intN == nil {
		intN = rand.IntN
	}

	return free[intN(len(free))], nil
}
