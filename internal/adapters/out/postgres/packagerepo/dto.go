// Package packagerepo persists packages.
package packagerepo

import (
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"

	"github.com/google/uuid"
)

// PackageDTO is the packages table row. slot_id is unique and NULL once the
// package has shipped.
type PackageDTO struct {
	ID             uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TrackingNumber string     `gorm:"type:varchar(30);not null;index"`
	Address        string     `gorm:"type:varchar(350);not null"`
	Status         int        `gorm:"type:smallint;not null;index"`
	SlotID         *uuid.UUID `gorm:"type:uuid;uniqueIndex:idx_packages_slot_id"`
}

func (PackageDTO) TableName() string {
	return "packages"
}

func fromDomain(aggregate *parcel.Package) PackageDTO {
	dto := PackageDTO{
		ID:             aggregate.ID().Raw(),
		TrackingNumber: aggregate.TrackingNumber(),
		Address:        aggregate.Address(),
		Status:         int(aggregate.Status()),
	}
	if id := aggregate.SlotID(); id != nil {
		raw := id.Raw()
		dto.SlotID = &raw
	}
	return dto
}

func toDomain(dto PackageDTO) (*parcel.Package, error) {
	id, err := kernel.UUIDFrom(dto.ID)
	if err != nil {
		return nil, err
	}

	var slotID *kernel.UUID
	if dto.SlotID != nil {
		sid, err := kernel.UUIDFrom(*dto.SlotID)
		if err != nil {
			return nil, err
		}
		slotID = &sid
	}

	return parcel.RestorePackage(id, dto.TrackingNumber, dto.Address, parcel.Status(dto.Status), slotID)
}
