package queries

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
)

// PackageReader serves package projections. Implemented by the postgres read
// model and by the in-memory store.
type PackageReader interface {
	// GetPackage returns false when no package has the id.
	GetPackage(ctx context.Context, id kernel.UUID) (PackageResponse, bool, error)

	ListPackages(ctx context.Context) ([]PackageResponse, error)

	// ListStoredPackages returns the InStorage packages sitting in the warehouse's slots.
	ListStoredPackages(ctx context.Context, warehouseID kernel.UUID) ([]PackageResponse, error)
}

// WarehouseReader serves warehouse projections with slot occupancy.
type WarehouseReader interface {
	// GetWarehouse returns false when no warehouse has the id.
	GetWarehouse(ctx context.Context, id kernel.UUID) (WarehouseResponse, bool, error)

	ListWarehouses(ctx context.Context) ([]WarehouseResponse, error)
}

// PackageResponse is a package joined with the slot and warehouse it sits in.
// Slot and warehouse fields are empty for shipped packages.
type PackageResponse struct {
	ID             kernel.UUID
	TrackingNumber string
	Address        string
	Status         parcel.Status
	SlotID         *kernel.UUID
	SlotName       string
	WarehouseID    *kernel.UUID
	WarehouseName  string
}

// SlotResponse is a slot with a summary of its occupant.
type SlotResponse struct {
	ID                    kernel.UUID
	WarehouseID           kernel.UUID
	Name                  string
	PackageID             *kernel.UUID
	PackageTrackingNumber string
	PackageAddress        string
}

func (s SlotResponse) IsFree() bool {
	return s.PackageID == nil
}

// WarehouseResponse is a warehouse with all of its slots ordered by name.
type WarehouseResponse struct {
	ID          kernel.UUID
	Name        string
	Coordinates kernel.Coordinates
	Slots       []SlotResponse
}

// Occupancy returns the number of free and occupied slots.
func (w WarehouseResponse) Occupancy() (free, occupied int) {
	for _, s := range w.Slots {
		if s.IsFree() {
			free++
		} else {
			occupied++
		}
	}
	return free, occupied
}
