package queries_test

import (
	"context"

	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/mock"
)

type MockPackageReader struct{ mock.Mock }

func (m *MockPackageReader) GetPackage(ctx context.Context, id kernel.UUID) (queries.PackageResponse, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.PackageResponse), args.Bool(1), args.Error(2)
}

func (m *MockPackageReader) ListPackages(ctx context.Context) ([]queries.PackageResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]queries.PackageResponse), args.Error(1)
}

func (m *MockPackageReader) ListStoredPackages(
	ctx context.Context,
	warehouseID kernel.UUID,
) ([]queries.PackageResponse, error) {
	args := m.Called(ctx, warehouseID)
	return args.Get(0).([]queries.PackageResponse), args.Error(1)
}

type MockWarehouseReader struct{ mock.Mock }

func (m *MockWarehouseReader) GetWarehouse(
	ctx context.Context,
	id kernel.UUID,
) (queries.WarehouseResponse, bool, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(queries.WarehouseResponse), args.Bool(1), args.Error(2)
}

func (m *MockWarehouseReader) ListWarehouses(ctx context.Context) ([]queries.WarehouseResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]queries.WarehouseResponse), args.Error(1)
}
