package queries

import (
	"context"
)

type ListPackagesQueryHandler struct {
	reader PackageReader
}

func NewListPackagesQueryHandler(reader PackageReader) ListPackagesQueryHandler {
	return ListPackagesQueryHandler{reader: reader}
}

// Handle returns every package, stored and shipped, ordered by tracking number.
func (h ListPackagesQueryHandler) Handle(ctx context.Context, query ListPackagesQuery) ([]PackageResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return h.reader.ListPackages(ctx)
}
