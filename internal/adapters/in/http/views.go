package http

import (
	"strings"

	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

const (
	defaultAisle = "A"
	defaultShelf = "01"
)

func toPackages(packages []queries.PackageResponse) []servers.Package {
	response := make([]servers.Package, len(packages))
	for i, p := range packages {
		response[i] = toPackage(p)
	}
	return response
}

func toPackage(p queries.PackageResponse) servers.Package {
	return servers.Package{
		Id:                p.ID.Raw(),
		TrackingNumber:    p.TrackingNumber,
		Address:           p.Address,
		Status:            int(p.Status),
		StatusText:        p.Status.String(),
		WarehouseSlotId:   optionalID(p.SlotID),
		WarehouseSlotName: optionalString(p.SlotName),
		WarehouseId:       optionalID(p.WarehouseID),
		WarehouseName:     optionalString(p.WarehouseName),
	}
}

func packageFromDomain(p *parcel.Package) servers.Package {
	return servers.Package{
		Id:              p.ID().Raw(),
		TrackingNumber:  p.TrackingNumber(),
		Address:         p.Address(),
		Status:          int(p.Status()),
		StatusText:      p.Status().String(),
		WarehouseSlotId: optionalID(p.SlotID()),
	}
}

func toWarehouse(wh queries.WarehouseResponse) servers.Warehouse {
	slots := make([]servers.Slot, len(wh.Slots))
	for i, s := range wh.Slots {
		aisle, shelf := splitSlotName(s.Name)
		slots[i] = servers.Slot{
			Id:                    s.ID.Raw(),
			WarehouseId:           s.WarehouseID.Raw(),
			Name:                  s.Name,
			PackageId:             optionalID(s.PackageID),
			PackageTrackingNumber: optionalString(s.PackageTrackingNumber),
			PackageAddress:        optionalString(s.PackageAddress),
			IsFree:                s.IsFree(),
			Aisle:                 aisle,
			Shelf:                 shelf,
		}
	}

	return servers.Warehouse{
		Id:        wh.ID.Raw(),
		Name:      wh.Name,
		Latitude:  wh.Coordinates.Latitude().InexactFloat64(),
		Longitude: wh.Coordinates.Longitude().InexactFloat64(),
		Slots:     slots,
	}
}

// splitSlotName reads "B-03" as aisle "B", shelf "03".
func splitSlotName(name string) (aisle, shelf string) {
	aisle, shelf = defaultAisle, defaultShelf
	parts := strings.SplitN(name, "-", 2)
	if parts[0] != "" {
		aisle = parts[0]
	}
	if len(parts) == 2 && parts[1] != "" {
		shelf = parts[1]
	}
	return aisle, shelf
}

func optionalID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	raw := id.Raw()
	return &raw
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
