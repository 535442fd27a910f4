// Package servers holds the transport types, the server interface and the echo
// routing for the operations in api/openapi.yml.
package servers

import (
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewPackage defines model for NewPackage.
type NewPackage struct {
	Address         string              `json:"address"`
	TrackingNumber  string              `json:"trackingNumber"`
	WarehouseId     openapi_types.UUID  `json:"warehouseId"`
	WarehouseSlotId *openapi_types.UUID `json:"warehouseSlotId,omitempty"`
}

// Package defines model for Package.
type Package struct {
	Address           string              `json:"address"`
	Id                openapi_types.UUID  `json:"id"`
	Status            int                 `json:"status"`
	StatusText        string              `json:"statusText"`
	TrackingNumber    string              `json:"trackingNumber"`
	WarehouseId       *openapi_types.UUID `json:"warehouseId"`
	WarehouseName     *string             `json:"warehouseName"`
	WarehouseSlotId   *openapi_types.UUID `json:"warehouseSlotId"`
	WarehouseSlotName *string             `json:"warehouseSlotName"`
}

// Slot defines model for Slot.
type Slot struct {
	Aisle                 string              `json:"aisle"`
	Id                    openapi_types.UUID  `json:"id"`
	IsFree                bool                `json:"isFree"`
	Name                  string              `json:"name"`
	PackageAddress        *string             `json:"packageAddress"`
	PackageId             *openapi_types.UUID `json:"packageId"`
	PackageTrackingNumber *string             `json:"packageTrackingNumber"`
	Shelf                 string              `json:"shelf"`
	WarehouseId           openapi_types.UUID  `json:"warehouseId"`
}

// Warehouse defines model for Warehouse.
type Warehouse struct {
	Id        openapi_types.UUID `json:"id"`
	Latitude  float64            `json:"latitude"`
	Longitude float64            `json:"longitude"`
	Name      string             `json:"name"`
	Slots     []Slot             `json:"slots"`
}

// Id defines model for Id.
type Id = openapi_types.UUID

// CreatePackageJSONRequestBody defines body for CreatePackage for application/json ContentType.
type CreatePackageJSONRequestBody = NewPackage
