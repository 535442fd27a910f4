package postgres_test

import (
	"context"
	"errors"
	"fmt"

	"depot/internal/core/application/allocation"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/services"

	"golang.org/x/sync/errgroup"
)

type uowFactoryFunc func() commands.UoW

func (f uowFactoryFunc) Create() commands.UoW { return f() }

type packageUoWFactoryFunc func() commands.PackageUoW

func (f packageUoWFactoryFunc) Create() commands.PackageUoW { return f() }

func (suite *UnitOfWorkIntegrationTestSuite) createHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(
		uowFactoryFunc(func() commands.UoW { return suite.factory.Create() }),
		allocation.NewAllocator(services.NewSlotPicker()),
	)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentCreates_NeverShareASlot() {
	ctx := context.Background()
	const slots, callers = 8, 20
	wh := suite.addWarehouse("San Francisco", slots)
	handler := suite.createHandler()

	results := make([]*parcel.Package, callers)
	failures := make([]error, callers)
	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			cmd, err := commands.NewCreatePackageCommand(
				kernel.NewUUID(), fmt.Sprintf("TRACK-%03d", i), address, wh.ID(), nil,
			)
			if err != nil {
				return err
			}
			results[i], failures[i] = handler.Handle(ctx, cmd)
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	taken := make(map[string]struct{})
	for i := range callers {
		if failures[i] != nil {
			suite.Truef(errors.Is(failures[i], allocation.ErrNoFreeSlots), "unexpected error: %v", failures[i])
			continue
		}
		suite.Require().NotNil(results[i].SlotID())
		key := results[i].SlotID().String()
		suite.NotContains(taken, key)
		taken[key] = struct{}{}
	}
	suite.LessOrEqual(len(taken), slots)

	stored, err := suite.reader.ListStoredPackages(ctx, wh.ID())
	suite.Require().NoError(err)
	suite.Len(stored, len(taken))

	got, _, err := suite.reader.GetWarehouse(ctx, wh.ID())
	suite.Require().NoError(err)
	free, occupied := got.Occupancy()
	suite.Equal(len(taken), occupied)
	suite.Equal(slots-len(taken), free)
	for _, s := range got.Slots {
		if s.PackageID != nil {
			suite.NotEmpty(s.PackageTrackingNumber, "slot %s points at a missing package", s.Name)
		}
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestConcurrentExplicitCreates_OneWinner() {
	ctx := context.Background()
	wh := suite.addWarehouse("San Francisco", 1)
	slotID := wh.Slots()[0].ID()
	handler := suite.createHandler()

	const callers = 10
	won := make([]bool, callers)
	var g errgroup.Group
	for i := range callers {
		g.Go(func() error {
			cmd, err := commands.NewCreatePackageCommand(
				kernel.NewUUID(), fmt.Sprintf("TRACK-%03d", i), address, wh.ID(), &slotID,
			)
			if err != nil {
				return err
			}
			_, err = handler.Handle(ctx, cmd)
			switch {
			case err == nil:
				won[i] = true
			case errors.Is(err, allocation.ErrSlotNotAvailable):
			default:
				return err
			}
			return nil
		})
	}
	suite.Require().NoError(g.Wait())

	winners := 0
	for _, w := range won {
		if w {
			winners++
		}
	}
	suite.Equal(1, winners)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestShipAndDelete_ReleaseSlots() {
	ctx := context.Background()
	wh := suite.addWarehouse("San Francisco", 2)
	create := suite.createHandler()
	narrow := packageUoWFactoryFunc(func() commands.PackageUoW { return suite.factory.Create() })
	ship := commands.NewMarkPackageShippedCommandHandler(narrow)
	remove := commands.NewDeletePackageCommandHandler(narrow)

	newPackage := func(tn string) *parcel.Package {
		cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), tn, address, wh.ID(), nil)
		suite.Require().NoError(err)
		p, err := create.Handle(ctx, cmd)
		suite.Require().NoError(err)
		return p
	}
	first := newPackage("MX-1872BR")
	second := newPackage("BR-1AJXA2BX")

	shipCmd, err := commands.NewMarkPackageShippedCommand(first.ID())
	suite.Require().NoError(err)
	ok, err := ship.Handle(ctx, shipCmd)
	suite.Require().NoError(err)
	suite.True(ok)
	ok, err = ship.Handle(ctx, shipCmd)
	suite.Require().NoError(err)
	suite.True(ok)

	deleteCmd, err := commands.NewDeletePackageCommand(second.ID())
	suite.Require().NoError(err)
	ok, err = remove.Handle(ctx, deleteCmd)
	suite.Require().NoError(err)
	suite.True(ok)

	free, err := suite.factory.Create().SlotStore().ListFree(ctx, wh.ID())
	suite.Require().NoError(err)
	suite.Len(free, 2)

	shipped, found, err := suite.reader.GetPackage(ctx, first.ID())
	suite.Require().NoError(err)
	suite.Require().True(found)
	suite.Equal(parcel.Shipped, shipped.Status)
	suite.Nil(shipped.SlotID)
	suite.Empty(shipped.WarehouseName)

	_, found, err = suite.reader.GetPackage(ctx, second.ID())
	suite.Require().NoError(err)
	suite.False(found)
}
