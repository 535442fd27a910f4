package memory

import (
	"context"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"
)

var _ ports.WarehouseRepository = &WarehouseRepository{}

type WarehouseRepository struct {
	uow *UnitOfWork
}

// Add stores the warehouse together with its slots.
func (r *WarehouseRepository) Add(_ context.Context, aggregate *warehouse.Warehouse) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	wh := &warehouseRecord{
		id:        aggregate.ID(),
		name:      aggregate.Name(),
		latitude:  aggregate.Coordinates().Latitude().String(),
		longitude: aggregate.Coordinates().Longitude().String(),
	}
	slots := make([]*slotRecord, 0, len(aggregate.Slots()))
	for _, s := range aggregate.Slots() {
		wh.slotIDs = append(wh.slotIDs, s.ID())
		slots = append(slots, &slotRecord{
			id:          s.ID(),
			warehouseID: s.WarehouseID(),
			name:        s.Name(),
			packageID:   s.PackageID(),
		})
	}

	return r.uow.write(func(st *Store) (func(), error) {
		if _, ok := st.warehouses[wh.id]; ok {
			return nil, fmt.Errorf("warehouse %s already exists", wh.id)
		}
		for _, s := range slots {
			if _, ok := st.slots[s.id]; ok {
				return nil, fmt.Errorf("slot %s already exists", s.id)
			}
		}

		st.warehouses[wh.id] = wh
		for _, s := range slots {
			st.slots[s.id] = s
		}
		return func() {
			delete(st.warehouses, wh.id)
			for _, s := range slots {
				delete(st.slots, s.id)
			}
		}, nil
	})
}

func (r *WarehouseRepository) Get(_ context.Context, id kernel.UUID) (*warehouse.Warehouse, error) {
	var aggregate *warehouse.Warehouse
	err := r.uow.read(func(st *Store) error {
		rec, ok := st.warehouses[id]
		if !ok {
			return errs.NewObjectNotFoundError("warehouseId", id.String())
		}

		coordinates, err := kernel.ParseCoordinates(rec.latitude, rec.longitude)
		if err != nil {
			return err
		}

		slots := make([]*warehouse.Slot, 0, len(rec.slotIDs))
		for _, slotID := range rec.slotIDs {
			s := st.slots[slotID]
			slot, err := warehouse.RestoreSlot(s.id, s.warehouseID, s.name, copyID(s.packageID))
			if err != nil {
				return err
			}
			slots = append(slots, slot)
		}

		aggregate, err = warehouse.RestoreWarehouse(rec.id, rec.name, coordinates, slots)
		return err
	})
	return aggregate, err
}

func (r *WarehouseRepository) Exists(_ context.Context, id kernel.UUID) (bool, error) {
	var exists bool
	err := r.uow.read(func(st *Store) error {
		_, exists = st.warehouses[id]
		return nil
	})
	return exists, err
}

func (r *WarehouseRepository) Count(_ context.Context) (int64, error) {
	var n int64
	err := r.uow.read(func(st *Store) error {
		n = int64(len(st.warehouses))
		return nil
	})
	return n, err
}
