package commands_test

import (
	"errors"
	"testing"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/ports"
	"depot/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storedPackage(t *testing.T, slotID kernel.UUID) *parcel.Package {
	t.Helper()
	pkg, err := parcel.NewPackage(kernel.NewUUID(), "US-ABAC16R", address, slotID)
	require.NoError(t, err)
	return pkg
}

func TestNewMarkPackageShippedCommand(t *testing.T) {
	_, err := commands.NewMarkPackageShippedCommand(kernel.UUID{})
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)

	require.ErrorIs(t,
		commands.MarkPackageShippedCommand{}.Validate(),
		commands.ErrMarkPackageShippedCommandIsNotConstructed)
}

func TestMarkPackageShippedCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	slotID := kernel.NewUUID()
	pkg := storedPackage(t, slotID)
	cmd, err := commands.NewMarkPackageShippedCommand(pkg.ID())
	require.NoError(t, err)

	store := new(MockSlotStore)
	packages := new(MockPackageRepository)
	uow := new(MockUoW)
	uow.On("SlotStore").Return(store)
	uow.On("PackageRepository").Return(packages)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		packages.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once(),
		store.On("Release", ctx, slotID, pkg.ID()).Return(nil).Once(),
		packages.On("Update", ctx, pkg).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	ok, err := commands.NewMarkPackageShippedCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, parcel.Shipped, pkg.Status())
	assert.Nil(t, pkg.SlotID())
	store.AssertExpectations(t)
	packages.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkPackageShippedCommandHandler_Handle_AlreadyShipped(t *testing.T) {
	ctx := t.Context()
	pkg, err := parcel.RestorePackage(kernel.NewUUID(), "US-ABAC16R", address, parcel.Shipped, nil)
	require.NoError(t, err)
	cmd, err := commands.NewMarkPackageShippedCommand(pkg.ID())
	require.NoError(t, err)

	packages := new(MockPackageRepository)
	uow := new(MockUoW)
	uow.On("PackageRepository").Return(packages)
	uow.On("Begin", ctx).Return(nil).Once()
	packages.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	ok, err := commands.NewMarkPackageShippedCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, ok)
	packages.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "SlotStore")
}

func TestMarkPackageShippedCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkPackageShippedCommand(id)
	require.NoError(t, err)

	packages := new(MockPackageRepository)
	uow := new(MockUoW)
	uow.On("PackageRepository").Return(packages)
	uow.On("Begin", ctx).Return(nil).Once()
	packages.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("packageId", id.String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	ok, err := commands.NewMarkPackageShippedCommandHandler(factory).Handle(ctx, cmd)

	require.NoError(t, err)
	assert.False(t, ok)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkPackageShippedCommandHandler_Handle_ReleaseConflict(t *testing.T) {
	ctx := t.Context()
	slotID := kernel.NewUUID()
	pkg := storedPackage(t, slotID)
	cmd, err := commands.NewMarkPackageShippedCommand(pkg.ID())
	require.NoError(t, err)

	store := new(MockSlotStore)
	packages := new(MockPackageRepository)
	uow := new(MockUoW)
	uow.On("SlotStore").Return(store)
	uow.On("PackageRepository").Return(packages)
	uow.On("Begin", ctx).Return(nil).Once()
	packages.On("Get", ctx, pkg.ID()).Return(pkg, nil).Once()
	store.On("Release", ctx, slotID, pkg.ID()).Return(ports.ErrSlotConflict).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	ok, err := commands.NewMarkPackageShippedCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, ports.ErrSlotConflict)
	assert.False(t, ok)
	packages.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkPackageShippedCommandHandler_Handle_GetError(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewMarkPackageShippedCommand(id)
	require.NoError(t, err)
	dbErr := errors.New("connection lost")

	packages := new(MockPackageRepository)
	uow := new(MockUoW)
	uow.On("PackageRepository").Return(packages)
	uow.On("Begin", ctx).Return(nil).Once()
	packages.On("Get", ctx, id).Return(nil, dbErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPackageUoWFactory)
	factory.On("Create").Return(uow).Once()

	ok, err := commands.NewMarkPackageShippedCommandHandler(factory).Handle(ctx, cmd)

	require.ErrorIs(t, err, dbErr)
	assert.False(t, ok)
}
