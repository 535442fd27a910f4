// Package warehouserepo persists warehouses and their slots, and implements the
// conditional slot writes the allocator relies on.
package warehouserepo

import (
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// WarehouseDTO is the warehouses table row. Coordinates keep their decimal
// precision through a numeric column.
type WarehouseDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name      string          `gorm:"type:varchar(255);not null"`
	Latitude  decimal.Decimal `gorm:"type:numeric(18,14);not null"`
	Longitude decimal.Decimal `gorm:"type:numeric(18,14);not null"`
	Slots     []SlotDTO       `gorm:"foreignKey:WarehouseID;constraint:OnDelete:CASCADE"`
}

func (WarehouseDTO) TableName() string {
	return "warehouses"
}

// SlotDTO is the slots table row. package_id is unique, and NULL for a free slot.
type SlotDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	WarehouseID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_slots_warehouse_name"`
	Name        string     `gorm:"type:varchar(64);not null;uniqueIndex:idx_slots_warehouse_name"`
	PackageID   *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_slots_package_id"`
}

func (SlotDTO) TableName() string {
	return "slots"
}

func fromDomain(aggregate *warehouse.Warehouse) WarehouseDTO {
	dto := WarehouseDTO{
		ID:        aggregate.ID().Raw(),
		Name:      aggregate.Name(),
		Latitude:  aggregate.Coordinates().Latitude(),
		Longitude: aggregate.Coordinates().Longitude(),
	}
	for _, s := range aggregate.Slots() {
		dto.Slots = append(dto.Slots, slotFromDomain(s))
	}
	return dto
}

func slotFromDomain(s *warehouse.Slot) SlotDTO {
	dto := SlotDTO{
		ID:          s.ID().Raw(),
		WarehouseID: s.WarehouseID().Raw(),
		Name:        s.Name(),
	}
	if id := s.PackageID(); id != nil {
		raw := id.Raw()
		dto.PackageID = &raw
	}
	return dto
}

func toDomain(dto WarehouseDTO) (*warehouse.Warehouse, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	coordinates, err := kernel.NewCoordinates(dto.Latitude, dto.Longitude)
	if err != nil {
		return nil, err
	}

	slots := make([]*warehouse.Slot, 0, len(dto.Slots))
	for _, s := range dto.Slots {
		slot, err := slotToDomain(s)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}

	return warehouse.RestoreWarehouse(id, dto.Name, coordinates, slots)
}

func slotToDomain(dto SlotDTO) (*warehouse.Slot, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	warehouseID, err := kernel.UUIDFrom(dto.WarehouseID)
	if err != nil {
		return nil, err
	}

	var packageID *kernel.UUID
	if dto.PackageID != nil {
		pid, err := kernel.UUIDFrom(*dto.PackageID)
		if err != nil {
			return nil, err
		}
		packageID = &pid
	}

	return warehouse.RestoreSlot(id, warehouseID, dto.Name, packageID)
}
