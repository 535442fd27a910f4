package memory

import (
	"cmp"
	"context"
	"slices"
	"strings"

	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

var (
	_ queries.PackageReader   = &ReadModel{}
	_ queries.WarehouseReader = &ReadModel{}
)

// ReadModel answers queries from the committed state of a Store.
type ReadModel struct {
	store *Store
}

func NewReadModel(store *Store) *ReadModel {
	return &ReadModel{store: store}
}

func (m *ReadModel) GetPackage(_ context.Context, id kernel.UUID) (queries.PackageResponse, bool, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	rec, ok := m.store.packages[id]
	if !ok {
		return queries.PackageResponse{}, false, nil
	}
	return m.packageResponse(rec), true, nil
}

func (m *ReadModel) ListPackages(_ context.Context) ([]queries.PackageResponse, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	out := make([]queries.PackageResponse, 0, len(m.store.packages))
	for _, rec := range m.store.packages {
		out = append(out, m.packageResponse(rec))
	}
	slices.SortFunc(out, func(a, b queries.PackageResponse) int {
		return cmp.Or(
			strings.Compare(a.TrackingNumber, b.TrackingNumber),
			strings.Compare(a.ID.String(), b.ID.String()),
		)
	})
	return out, nil
}

func (m *ReadModel) ListStoredPackages(_ context.Context, warehouseID kernel.UUID) ([]queries.PackageResponse, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	out := make([]queries.PackageResponse, 0)
	for _, rec := range m.store.packages {
		if rec.status != parcel.InStorage || rec.slotID == nil {
			continue
		}
		slot, ok := m.store.slots[*rec.slotID]
		if !ok || !slot.warehouseID.IsEqual(warehouseID) {
			continue
		}
		out = append(out, m.packageResponse(rec))
	}
	slices.SortFunc(out, func(a, b queries.PackageResponse) int {
		return strings.Compare(a.SlotName, b.SlotName)
	})
	return out, nil
}

func (m *ReadModel) GetWarehouse(_ context.Context, id kernel.UUID) (queries.WarehouseResponse, bool, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	rec, ok := m.store.warehouses[id]
	if !ok {
		return queries.WarehouseResponse{}, false, nil
	}
	resp, err := m.warehouseResponse(rec)
	if err != nil {
		return queries.WarehouseResponse{}, false, err
	}
	return resp, true, nil
}

func (m *ReadModel) ListWarehouses(_ context.Context) ([]queries.WarehouseResponse, error) {
	m.store.mu.RLock()
	defer m.store.mu.RUnlock()

	out := make([]queries.WarehouseResponse, 0, len(m.store.warehouses))
	for _, rec := range m.store.warehouses {
		resp, err := m.warehouseResponse(rec)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	slices.SortFunc(out, func(a, b queries.WarehouseResponse) int {
		return cmp.Or(strings.Compare(a.Name, b.Name), strings.Compare(a.ID.String(), b.ID.String()))
	})
	return out, nil
}

// packageResponse expects the read lock to be held.
func (m *ReadModel) packageResponse(rec *packageRecord) queries.PackageResponse {
	resp := queries.PackageResponse{
		ID:             rec.id,
		TrackingNumber: rec.trackingNumber,
		Address:        rec.address,
		Status:         rec.status,
		SlotID:         copyID(rec.slotID),
	}
	if rec.slotID == nil {
		return resp
	}
	if slot, ok := m.store.slots[*rec.slotID]; ok {
		resp.SlotName = slot.name
		resp.WarehouseID = copyID(&slot.warehouseID)
		if wh, ok := m.store.warehouses[slot.warehouseID]; ok {
			resp.WarehouseName = wh.name
		}
	}
	return resp
}

// warehouseResponse expects the read lock to be held.
func (m *ReadModel) warehouseResponse(rec *warehouseRecord) (queries.WarehouseResponse, error) {
	coordinates, err := kernel.ParseCoordinates(rec.latitude, rec.longitude)
	if err != nil {
		return queries.WarehouseResponse{}, err
	}

	resp := queries.WarehouseResponse{
		ID:          rec.id,
		Name:        rec.name,
		Coordinates: coordinates,
		Slots:       make([]queries.SlotResponse, 0, len(rec.slotIDs)),
	}
	for _, id := range rec.slotIDs {
		s := m.store.slots[id]
		slot := queries.SlotResponse{
			ID:          s.id,
			WarehouseID: s.warehouseID,
			Name:        s.name,
			PackageID:   copyID(s.packageID),
		}
		if s.packageID != nil {
			if p, ok := m.store.packages[*s.packageID]; ok {
				slot.PackageTrackingNumber = p.trackingNumber
				slot.PackageAddress = p.address
			}
		}
		resp.Slots = append(resp.Slots, slot)
	}
	slices.SortFunc(resp.Slots, func(a, b queries.SlotResponse) int { return strings.Compare(a.Name, b.Name) })
	return resp, nil
}
