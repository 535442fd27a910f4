package http

import (
	"log/slog"
	"net/http"

	"depot/internal/core/application/usecases/commands"
	"depot/internal/core/application/usecases/queries"
	"depot/internal/core/domain/model/kernel"
	"depot/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

var _ servers.ServerInterface = &Server{}

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createPackageHandler      commands.CreatePackageCommandHandler
	markPackageShippedHandler commands.MarkPackageShippedCommandHandler
	deletePackageHandler      commands.DeletePackageCommandHandler

	// Query handlers
	getPackageHandler         queries.GetPackageQueryHandler
	listPackagesHandler       queries.ListPackagesQueryHandler
	listStoredPackagesHandler queries.ListStoredPackagesQueryHandler
	getWarehouseHandler       queries.GetWarehouseQueryHandler
	listWarehousesHandler     queries.ListWarehousesQueryHandler

	logger *slog.Logger
}

// Handlers groups the use cases the Server exposes.
type Handlers struct {
	CreatePackage      commands.CreatePackageCommandHandler
	MarkPackageShipped commands.MarkPackageShippedCommandHandler
	DeletePackage      commands.DeletePackageCommandHandler
	GetPackage         queries.GetPackageQueryHandler
	ListPackages       queries.ListPackagesQueryHandler
	ListStoredPackages queries.ListStoredPackagesQueryHandler
	GetWarehouse       queries.GetWarehouseQueryHandler
	ListWarehouses     queries.ListWarehousesQueryHandler
}

func NewServer(handlers Handlers, logger *slog.Logger) *Server {
	return &Server{
		createPackageHandler:      handlers.CreatePackage,
		markPackageShippedHandler: handlers.MarkPackageShipped,
		deletePackageHandler:      handlers.DeletePackage,
		getPackageHandler:         handlers.GetPackage,
		listPackagesHandler:       handlers.ListPackages,
		listStoredPackagesHandler: handlers.ListStoredPackages,
		getWarehouseHandler:       handlers.GetWarehouse,
		listWarehousesHandler:     handlers.ListWarehouses,
		logger:                    logger.With("component", "http_server"),
	}
}

// ListPackages handles GET /api/package.
func (s *Server) ListPackages(ctx echo.Context) error {
	packages, err := s.listPackagesHandler.Handle(ctx.Request().Context(), queries.NewListPackagesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackages(packages))
}

// CreatePackage handles POST /api/package. The package goes into the
// requested slot, or a random free one when warehouseSlotId is absent.
func (s *Server) CreatePackage(ctx echo.Context) error {
	var body servers.CreatePackageJSONRequestBody
	if err := ctx.Bind(&body); err != nil {
		return ctx.JSON(http.StatusBadRequest, servers.Error{
			Code:    http.StatusBadRequest,
			Message: "Invalid request body",
		})
	}

	warehouseID, err := kernel.UUIDFrom(body.WarehouseId)
	if err != nil {
		return s.fail(ctx, err)
	}

	var slotID *kernel.UUID
	if body.WarehouseSlotId != nil {
		id, err := kernel.UUIDFrom(*body.WarehouseSlotId)
		if err != nil {
			return s.fail(ctx, err)
		}
		slotID = &id
	}

	cmd, err := commands.NewCreatePackageCommand(kernel.NewUUID(), body.TrackingNumber, body.Address, warehouseID, slotID)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.createPackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPackageQuery(created.ID())
	if err != nil {
		return s.fail(ctx, err)
	}
	view, found, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !found {
		// removed again before we could read it back
		return ctx.JSON(http.StatusOK, packageFromDomain(created))
	}

	return ctx.JSON(http.StatusOK, toPackage(view))
}

// GetPackage handles GET /api/package/{id}. An unknown id yields null.
func (s *Server) GetPackage(ctx echo.Context, id servers.Id) error {
	packageID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetPackageQuery(packageID)
	if err != nil {
		return s.fail(ctx, err)
	}

	view, found, err := s.getPackageHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !found {
		return ctx.JSON(http.StatusOK, nil)
	}

	return ctx.JSON(http.StatusOK, toPackage(view))
}

// MarkPackageShipped handles PATCH /api/package/{id}.
func (s *Server) MarkPackageShipped(ctx echo.Context, id servers.Id) error {
	packageID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewMarkPackageShippedCommand(packageID)
	if err != nil {
		return s.fail(ctx, err)
	}

	shipped, err := s.markPackageShippedHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipped)
}

// DeletePackage handles DELETE /api/package/{id}.
func (s *Server) DeletePackage(ctx echo.Context, id servers.Id) error {
	packageID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	cmd, err := commands.NewDeletePackageCommand(packageID)
	if err != nil {
		return s.fail(ctx, err)
	}

	deleted, err := s.deletePackageHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deleted)
}

// ListWarehouses handles GET /api/warehouse.
func (s *Server) ListWarehouses(ctx echo.Context) error {
	warehouses, err := s.listWarehousesHandler.Handle(ctx.Request().Context(), queries.NewListWarehousesQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Warehouse, len(warehouses))
	for i, wh := range warehouses {
		response[i] = toWarehouse(wh)
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetWarehouse handles GET /api/warehouse/{id}. An unknown id yields null.
func (s *Server) GetWarehouse(ctx echo.Context, id servers.Id) error {
	warehouseID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewGetWarehouseQuery(warehouseID)
	if err != nil {
		return s.fail(ctx, err)
	}

	wh, found, err := s.getWarehouseHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	if !found {
		return ctx.JSON(http.StatusOK, nil)
	}

	return ctx.JSON(http.StatusOK, toWarehouse(wh))
}

// ListStoredPackages handles GET /api/warehouse/{id}/packages.
func (s *Server) ListStoredPackages(ctx echo.Context, id servers.Id) error {
	warehouseID, err := kernel.UUIDFrom(id)
	if err != nil {
		return s.fail(ctx, err)
	}

	query, err := queries.NewListStoredPackagesQuery(warehouseID)
	if err != nil {
		return s.fail(ctx, err)
	}

	packages, err := s.listStoredPackagesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusOK, toPackages(packages))
}
