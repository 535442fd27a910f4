package queries

import (
	"context"
)

type ListWarehousesQueryHandler struct {
	reader WarehouseReader
}

func NewListWarehousesQueryHandler(reader WarehouseReader) ListWarehousesQueryHandler {
	return ListWarehousesQueryHandler{reader: reader}
}

// Handle returns all warehouses ordered by name, each with its slots.
func (h ListWarehousesQueryHandler) Handle(ctx context.Context, query ListWarehousesQuery) ([]WarehouseResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.ListWarehouses(ctx)
}
