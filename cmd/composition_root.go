package cmd

import (
	"log/slog"

	httpin "depot/internal/adapters/in/http"
	"depot/internal/adapters/out/memory"
	"depot/internal/adapters/out/postgres"
	"depot/internal/adapters/out/postgres/readmodel"
	"depot/internal/core/application/allocation"
	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/services"
	"depot/internal/core/ports"
	"depot/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config          Config
	logger          *slog.Logger
	uowFactory      ports.UnitOfWorkFactory
	packageReader   queries.PackageReader
	warehouseReader queries.WarehouseReader
	allocator       allocation.Allocator
}

// NewPostgresCompositionRoot wires the use cases to PostgreSQL through gormDB.
func NewPostgresCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	reader := readmodel.NewReadModel(gormDB)
	return CompositionRoot{
		config:          config,
		logger:          logger,
		uowFactory:      postgres.NewGormUnitOfWorkFactory(gormDB),
		packageReader:   reader,
		warehouseReader: reader,
		allocator:       allocation.NewAllocator(services.NewSlotPicker()),
	}
}

// NewMemoryCompositionRoot wires the use cases to a fresh in-process store.
func NewMemoryCompositionRoot(config Config, logger *slog.Logger) CompositionRoot {
	store := memory.NewStore()
	reader := memory.NewReadModel(store)
	return CompositionRoot{
		config:          config,
		logger:          logger,
		uowFactory:      memory.NewUnitOfWorkFactory(store),
		packageReader:   reader,
		warehouseReader: reader,
		allocator:       allocation.NewAllocator(services.NewSlotPicker()),
	}
}

func (c *CompositionRoot) CreateCreatePackageCommandHandler() commands.CreatePackageCommandHandler {
	return commands.NewCreatePackageCommandHandler(c.fullUoWFactory(), c.allocator)
}

func (c *CompositionRoot) CreateMarkPackageShippedCommandHandler() commands.MarkPackageShippedCommandHandler {
	return commands.NewMarkPackageShippedCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateDeletePackageCommandHandler() commands.DeletePackageCommandHandler {
	return commands.NewDeletePackageCommandHandler(c.packageUoWFactory())
}

func (c *CompositionRoot) CreateSeedDemoDataCommandHandler() commands.SeedDemoDataCommandHandler {
	return commands.NewSeedDemoDataCommandHandler(c.fullUoWFactory())
}

func (c *CompositionRoot) CreateGetPackageQueryHandler() queries.GetPackageQueryHandler {
	return queries.NewGetPackageQueryHandler(c.packageReader)
}

func (c *CompositionRoot) CreateListPackagesQueryHandler() queries.ListPackagesQueryHandler {
	return queries.NewListPackagesQueryHandler(c.packageReader)
}

func (c *CompositionRoot) CreateListStoredPackagesQueryHandler() queries.ListStoredPackagesQueryHandler {
	return queries.NewListStoredPackagesQueryHandler(c.packageReader)
}

func (c *CompositionRoot) CreateGetWarehouseQueryHandler() queries.GetWarehouseQueryHandler {
	return queries.NewGetWarehouseQueryHandler(c.warehouseReader)
}

func (c *CompositionRoot) CreateListWarehousesQueryHandler() queries.ListWarehousesQueryHandler {
	return queries.NewListWarehousesQueryHandler(c.warehouseReader)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreatePackage:      c.CreateCreatePackageCommandHandler(),
		MarkPackageShipped: c.CreateMarkPackageShippedCommandHandler(),
		DeletePackage:      c.CreateDeletePackageCommandHandler(),
		GetPackage:         c.CreateGetPackageQueryHandler(),
		ListPackages:       c.CreateListPackagesQueryHandler(),
		ListStoredPackages: c.CreateListStoredPackagesQueryHandler(),
		GetWarehouse:       c.CreateGetWarehouseQueryHandler(),
		ListWarehouses:     c.CreateListWarehousesQueryHandler(),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateListWarehousesQueryHandler(), c.config.OccupancyReportSchedule, c.logger)
}

func (c *CompositionRoot) fullUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) packageUoWFactory() commands.PackageUoWFactory {
	return FuncPackageUoWFactory(func() commands.PackageUoW {
		return c.uowFactory.Create()
	})
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}

type FuncPackageUoWFactory func() commands.PackageUoW

func (f FuncPackageUoWFactory) Create() commands.PackageUoW {
	return f()
}
