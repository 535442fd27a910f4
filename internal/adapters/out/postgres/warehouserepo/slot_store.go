package warehouserepo

import (
	"context"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/warehouse"
	"depot/internal/core/ports"

	"gorm.io/gorm"
)

var _ ports.SlotStore = &GormSlotStore{}

// GormSlotStore writes slot occupancy with conditional UPDATEs. A write that
// matches no row means the slot was not in the expected state.
type GormSlotStore struct {
	db *gorm.DB
}

func NewGormSlotStore(db *gorm.DB) *GormSlotStore {
	return &GormSlotStore{db: db}
}

// ListFree takes no row locks. The free set may be stale by the time Occupy
// runs, and Occupy reports that as a conflict.
func (s *GormSlotStore) ListFree(ctx context.Context, warehouseID kernel.UUID) ([]*warehouse.Slot, error) {
	if err := warehouseID.Validate(); err != nil {
		return nil, err
	}

	var dtos []SlotDTO
	err := s.db.WithContext(ctx).
		Where("warehouse_id = ? AND package_id IS NULL", warehouseID.Raw()).
		Order("name").
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	slots := make([]*warehouse.Slot, 0, len(dtos))
	for _, dto := range dtos {
		slot, err := slotToDomain(dto)
		if err != nil {
			return nil, err
		}
		slots = append(slots, slot)
	}
	return slots, nil
}

func (s *GormSlotStore) Occupy(ctx context.Context, warehouseID, slotID, packageID kernel.UUID) error {
	if err := validateIDs(warehouseID, slotID, packageID); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&SlotDTO{}).
		Where("id = ? AND warehouse_id = ? AND package_id IS NULL", slotID.Raw(), warehouseID.Raw()).
		Update("package_id", packageID.Raw())
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ports.ErrSlotConflict
	}
	return nil
}

func (s *GormSlotStore) Release(ctx context.Context, slotID, packageID kernel.UUID) error {
	if err := validateIDs(slotID, packageID); err != nil {
		return err
	}

	result := s.db.WithContext(ctx).
		Model(&SlotDTO{}).
		Where("id = ? AND package_id = ?", slotID.Raw(), packageID.Raw()).
		Update("package_id", gorm.Expr("NULL"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected != 1 {
		return ports.ErrSlotConflict
	}
	return nil
}

func validateIDs(ids ...kernel.UUID) error {
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	return nil
}
