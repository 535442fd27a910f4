package queries

import (
	"context"
)

type GetWarehouseQueryHandler struct {
	reader WarehouseReader
}

func NewGetWarehouseQueryHandler(reader WarehouseReader) GetWarehouseQueryHandler {
	return GetWarehouseQueryHandler{reader: reader}
}

// Handle returns the warehouse with its slots and occupants, or false if it does not exist.
func (h GetWarehouseQueryHandler) Handle(ctx context.Context, query GetWarehouseQuery) (WarehouseResponse, bool, error) {
	if err := query.Validate(); err != nil {
		return WarehouseResponse{}, false, err
	}
	return h.reader.GetWarehouse(ctx, query.WarehouseID())
}
