package queries

import (
	"context"
)

type ListStoredPackagesQueryHandler struct {
	reader PackageReader
}

func NewListStoredPackagesQueryHandler(reader PackageReader) ListStoredPackagesQueryHandler {
	return ListStoredPackagesQueryHandler{reader: reader}
}

// Handle returns the stored packages ordered by slot name. An unknown
// warehouse yields an empty list.
func (h ListStoredPackagesQueryHandler) Handle(
	ctx context.Context,
	query ListStoredPackagesQuery,
) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.ListStoredPackages(ctx, query.WarehouseID())
}
