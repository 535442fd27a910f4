package commands

import (
	"context"
	"fmt"

	"depot/internal/core/domain/model/kernel"
	"depot/internal/core/domain/model/parcel"
	"depot/internal/core/domain/model/warehouse"
)

const (
	demoWarehouseName      = "San Francisco"
	demoWarehouseLatitude  = "37.72585854879952"
	demoWarehouseLongitude = "-122.38684218300128"
)

var demoSlotNames = []string{
	"A-01", "A-02", "A-03", "A-04", "A-05",
	"B-01", "B-02", "B-03", "B-04", "B-05",
	"C-01", "C-02", "C-03", "C-04",
	"D-01", "D-02",
}

var demoPackages = []struct {
	slot           string
	trackingNumber string
	address        string
}{
	{"A-01", "MX-1872BR", "398 Peninsula Ave, San Francisco, CA 94134, USA"},
	{"A-03", "BR-1AJXA2BX", "580 Raymond Ave, San Francisco, CA 94134, USA"},
	{"A-04", "JPAX-72BA6R", "1480 Golden Gate Ave, San Francisco, CA 94115, USA"},
	{"B-02", "US-ABAC16R", "4 Carolina St, San Francisco, CA 94103, USA"},
	{"B-03", "15612X-LB5A", "245 Brentwood Ave, San Francisco, CA 94127, USA"},
	{"C-03", "1HY18-SAB3", "5937 Geary Blvd, San Francisco, CA 94121, USA"},
}

// DemoWarehouseID is the id the demo warehouse is seeded with.
func DemoWarehouseID() kernel.UUID {
	return kernel.UUIDFromName("warehouse/" + demoWarehouseName)
}

// SeedDemoDataCommandHandler seeds the demo data when no warehouse exists yet.
// Packages go through the slot store like any other reservation.
type SeedDemoDataCommandHandler struct {
	uowFactory UoWFactory
}

func NewSeedDemoDataCommandHandler(uowFactory UoWFactory) SeedDemoDataCommandHandler {
	return SeedDemoDataCommandHandler{uowFactory: uowFactory}
}

// Handle reports whether anything was written.
func (h SeedDemoDataCommandHandler) Handle(ctx context.Context, command SeedDemoDataCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	count, err := uow.WarehouseRepository().Count(ctx)
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	wh, err := demoWarehouse()
	if err != nil {
		return false, err
	}
	if err = uow.WarehouseRepository().Add(ctx, wh); err != nil {
		return false, err
	}

	slotIDs := make(map[string]kernel.UUID, len(demoSlotNames))
	for _, s := range wh.Slots() {
		slotIDs[s.Name()] = s.ID()
	}

	for _, p := range demoPackages {
		pkgID := kernel.UUIDFromName("package/" + p.trackingNumber)
		slotID := slotIDs[p.slot]

		if err = uow.SlotStore().Occupy(ctx, wh.ID(), slotID, pkgID); err != nil {
			return false, fmt.Errorf("occupy %s: %w", p.slot, err)
		}

		pkg, err := parcel.NewPackage(pkgID, p.trackingNumber, p.address, slotID)
		if err != nil {
			return false, err
		}
		if err = uow.PackageRepository().Add(ctx, pkg); err != nil {
			return false, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func demoWarehouse() (*warehouse.Warehouse, error) {
	coordinates, err := kernel.ParseCoordinates(demoWarehouseLatitude, demoWarehouseLongitude)
	if err != nil {
		return nil, err
	}

	wh, err := warehouse.NewWarehouse(DemoWarehouseID(), demoWarehouseName, coordinates)
	if err != nil {
		return nil, err
	}

	for _, name := range demoSlotNames {
		slot, err := warehouse.NewSlot(kernel.UUIDFromName("slot/"+demoWarehouseName+"/"+name), wh.ID(), name)
		if err != nil {
			return nil, err
		}
		if err = wh.AddSlot(slot); err != nil {
			return nil, err
		}
	}

	return wh, nil
}
