package queries

import (
	"context"
)

type GetPackageQueryHandler struct {
	reader PackageReader
}

func NewGetPackageQueryHandler(reader PackageReader) GetPackageQueryHandler {
	return GetPackageQueryHandler{reader: reader}
}

// Handle returns the package and true, or false if it does not exist.
func (h GetPackageQueryHandler) Handle(ctx context.Context, query GetPackageQuery) (PackageResponse, bool, error) {
	if err := query.Validate(); err != nil {
		return PackageResponse{}, false, err
	}
	return h.reader.GetPackage(ctx, query.PackageID())
}
