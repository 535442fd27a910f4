package commands_test

import (
	"context"
	"errors"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/model/warehouse"
	"depot/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockSlotStore struct{ mock.Mock }

func (m *MockSlotStore) ListFree(ctx context.Context, warehouseID kernel.UUID) ([]*warehouse.Slot, error) {
	args := m.Called(ctx, warehouseID)
	slots, _ := args.Get(0).([]*warehouse.Slot)
	return slots, args.Error(1)
}

func (m *MockSlotStore) Occupy(ctx context.Context, warehouseID, slotID, packageID kernel.UUID) error {
	args := m.Called(ctx, warehouseID, slotID, packageID)
	return args.Error(0)
}

func (m *MockSlotStore) Release(ctx context.Context, slotID, packageID kernel.UUID) error {
	args := m.Called(ctx, slotID, packageID)
	return args.Error(0)
}

type MockPackageRepository struct{ mock.Mock }

func (m *MockPackageRepository) Add(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Update(ctx context.Context, p *parcel.Package) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPackageRepository) Get(ctx context.Context, id kernel.UUID) (*parcel.Package, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*parcel.Package)
	return p, args.Error(1)
}

func (m *MockPackageRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockWarehouseRepository struct{ mock.Mock }

func (m *MockWarehouseRepository) Add(_ context.Context, _ *warehouse.Warehouse) error {
	return errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) Get(_ context.Context, _ kernel.UUID) (*warehouse.Warehouse, error) {
	return nil, errors.New("not implemented in mock")
}

func (m *MockWarehouseRepository) Exists(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockWarehouseRepository) Count(_ context.Context) (int64, error) {
	return 0, errors.New("not implemented in mock")
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) SlotStore() ports.SlotStore {
	args := m.Called()
	return args.Get(0).(ports.SlotStore)
}

func (m *MockUoW) PackageRepository() ports.PackageRepository {
	args := m.Called()
	return args.Get(0).(ports.PackageRepository)
}

func (m *MockUoW) WarehouseRepository() ports.WarehouseRepository {
	args := m.Called()
	return args.Get(0).(ports.WarehouseRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPackageUoWFactory struct{ mock.Mock }

func (m *MockPackageUoWFactory) Create() commands.PackageUoW {
	args := m.Called()
	return args.Get(0).(commands.PackageUoW)
}
