package commands_test

import (
	"errors"
	"testing"

	"depot/internal/core/application/allocation"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAllocator() allocation.Allocator {
	return allocation.NewAllocator(services.NewSlotPicker())
}

func TestCreatePackageCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	pkgID, whID, slotID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(pkgID, "JPAX-72BA6R", address, whID, &slotID)
	require.NoError(t, err)

	store := new(MockSlotStore)
	packages := new(MockPackageRepository)
	warehouses := new(MockWarehouseRepository)
	uow := new(MockUoW)
	uow.On("SlotStore").Return(store)
	uow.On("WarehouseRepository").Return(warehouses)
	uow.On("PackageRepository").Return(packages)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		warehouses.On("Exists", ctx, whID).Return(true, nil).Once(),
		store.On("Occupy", ctx, whID, slotID, pkgID).Return(nil).Once(),
		packages.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	pkg, err := commands.NewCreatePackageCommandHandler(factory, newAllocator()).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, pkg.ID().IsEqual(pkgID))
	assert.Equal(t, parcel.InStorage, pkg.Status())
	assert.True(t, pkg.SlotID().IsEqual(slotID))
	store.AssertExpectations(t)
	packages.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_NotConstructed(t *testing.T) {
	factory := new(MockUoWFactory)

	_, err := commands.NewCreatePackageCommandHandler(factory, newAllocator()).
		Handle(t.Context(), commands.CreatePackageCommand{})

	require.ErrorIs(t, err, commands.ErrCreatePackageCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}

func TestCreatePackageCommandHandler_Handle_SlotNotAvailable(t *testing.T) {
	ctx := t.Context()
	pkgID, whID, slotID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(pkgID, "JPAX-72BA6R", address, whID, &slotID)
	require.NoError(t, err)

	store := new(MockSlotStore)
	packages := new(MockPackageRepository)
	warehouses := new(MockWarehouseRepository)
	uow := new(MockUoW)
	uow.On("SlotStore").Return(store)
	uow.On("WarehouseRepository").Return(warehouses)
	uow.On("Begin", ctx).Return(nil).Once()
	warehouses.On("Exists", ctx, whID).Return(true, nil).Once()
	store.On("Occupy", ctx, whID, slotID, pkgID).Return(ports.ErrSlotConflict).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreatePackageCommandHandler(factory, newAllocator()).Handle(ctx, cmd)

	require.ErrorIs(t, err, allocation.ErrSlotNotAvailable)
	packages.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_AddErrorRollsBack(t *testing.T) {
	ctx := t.Context()
	pkgID, whID, slotID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()
	cmd, err := commands.NewCreatePackageCommand(pkgID, "JPAX-72BA6R", address, whID, &slotID)
	require.NoError(t, err)
	addErr := errors.New("insert failed")

	store := new(MockSlotStore)
	packages := new(MockPackageRepository)
	warehouses := new(MockWarehouseRepository)
	uow := new(MockUoW)
	uow.On("SlotStore").Return(store)
	uow.On("WarehouseRepository").Return(warehouses)
	uow.On("PackageRepository").Return(packages)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		warehouses.On("Exists", ctx, whID).Return(true, nil).Once(),
		store.On("Occupy", ctx, whID, slotID, pkgID).Return(nil).Once(),
		packages.On("Add", ctx, mock.AnythingOfType("*parcel.Package")).Return(addErr).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	_, err = commands.NewCreatePackageCommandHandler(factory, newAllocator()).Handle(ctx, cmd)

	require.ErrorIs(t, err, addErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestCreatePackageCommandHandler_Handle_BeginError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), "JPAX-72BA6R", address, kernel.NewUUID(), nil)
	require.NoError(t, err)

	uow := new(MockUoW)
	factory := new(MockUoWFactory)
	mock.InOrder(
		factory.On("Create").Return(uow).Once(),
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once(),
	)

	_, err = commands.NewCreatePackageCommandHandler(factory, newAllocator()).Handle(ctx, cmd)

	require.Error(t, err)
	uow.AssertNotCalled(t, "SlotStore")
}
