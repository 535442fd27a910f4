package memory

import (
	"context"
	"slices"
	"strings"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
	"depot/internal/core/ports"
)

var _ ports.SlotStore = &SlotStore{}

type SlotStore struct {
	uow *UnitOfWork
}

// ListFree returns the free slots of the warehouse ordered by name.
func (s *SlotStore) ListFree(_ context.Context, warehouseID kernel.UUID) ([]*warehouse.Slot, error) {
	var free []*warehouse.Slot
	err := s.uow.read(func(st *Store) error {
		wh, ok := st.warehouses[warehouseID]
		if !ok {
			return nil
		}
		for _, id := range wh.slotIDs {
			rec := st.slots[id]
			if rec.packageID != nil {
				continue
			}
			slot, err := warehouse.RestoreSlot(rec.id, rec.warehouseID, rec.name, nil)
			if err != nil {
				return err
			}
			free = append(free, slot)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	slices.SortFunc(free, func(a, b *warehouse.Slot) int { return strings.Compare(a.Name(), b.Name()) })
	return free, nil
}

func (s *SlotStore) Occupy(_ context.Context, warehouseID, slotID, packageID kernel.UUID) error {
	return s.uow.write(func(st *Store) (func(), error) {
		rec, ok := st.slots[slotID]
		if !ok || !rec.warehouseID.IsEqual(warehouseID) || rec.packageID != nil {
			return nil, ports.ErrSlotConflict
		}
		rec.packageID = copyID(&packageID)
		return func() { rec.packageID = nil }, nil
	})
}

func (s *SlotStore) Release(_ context.Context, slotID, packageID kernel.UUID) error {
	return s.uow.write(func(st *Store) (func(), error) {
		rec, ok := st.slots[slotID]
		if !ok || rec.packageID == nil || !rec.packageID.IsEqual(packageID) {
			return nil, ports.ErrSlotConflict
		}
		previous := rec.packageID
		rec.packageID = nil
		return func() { rec.packageID = previous }, nil
	})
}
