package servers

import (
	"fmt"
	"net/http"

	"depot/api"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List all packages
	// (GET /api/package)
	ListPackages(ctx echo.Context) error
	// Store a new package in a warehouse slot
	// (POST /api/package)
	CreatePackage(ctx echo.Context) error
	// Delete a package and free its slot
	// (DELETE /api/package/{id})
	DeletePackage(ctx echo.Context, id Id) error
	// Get a package
	// (GET /api/package/{id})
	GetPackage(ctx echo.Context, id Id) error
	// Mark a package as shipped and free its slot
	// (PATCH /api/package/{id})
	MarkPackageShipped(ctx echo.Context, id Id) error
	// List warehouses with their slots
	// (GET /api/warehouse)
	ListWarehouses(ctx echo.Context) error
	// Get a warehouse with its slots
	// (GET /api/warehouse/{id})
	GetWarehouse(ctx echo.Context, id Id) error
	// List the packages currently stored in a warehouse
	// (GET /api/warehouse/{id}/packages)
	ListStoredPackages(ctx echo.Context, id Id) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) ListPackages(ctx echo.Context) error {
	return w.Handler.ListPackages(ctx)
}

func (w *ServerInterfaceWrapper) CreatePackage(ctx echo.Context) error {
	return w.Handler.CreatePackage(ctx)
}

func (w *ServerInterfaceWrapper) DeletePackage(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.DeletePackage(ctx, id)
}

func (w *ServerInterfaceWrapper) GetPackage(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetPackage(ctx, id)
}

func (w *ServerInterfaceWrapper) MarkPackageShipped(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.MarkPackageShipped(ctx, id)
}

func (w *ServerInterfaceWrapper) ListWarehouses(ctx echo.Context) error {
	return w.Handler.ListWarehouses(ctx)
}

func (w *ServerInterfaceWrapper) GetWarehouse(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.GetWarehouse(ctx, id)
}

func (w *ServerInterfaceWrapper) ListStoredPackages(ctx echo.Context) error {
	id, err := bindID(ctx)
	if err != nil {
		return err
	}
	return w.Handler.ListStoredPackages(ctx, id)
}

func bindID(ctx echo.Context) (Id, error) {
	var id Id
	err := runtime.BindStyledParameterWithOptions("simple", "id", ctx.Param("id"), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter id: %s", err))
	}
	return id, nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/package", wrapper.ListPackages)
	router.POST(baseURL+"/api/package", wrapper.CreatePackage)
	router.DELETE(baseURL+"/api/package/:id", wrapper.DeletePackage)
	router.GET(baseURL+"/api/package/:id", wrapper.GetPackage)
	router.PATCH(baseURL+"/api/package/:id", wrapper.MarkPackageShipped)
	router.GET(baseURL+"/api/warehouse", wrapper.ListWarehouses)
	router.GET(baseURL+"/api/warehouse/:id", wrapper.GetWarehouse)
	router.GET(baseURL+"/api/warehouse/:id/packages", wrapper.ListStoredPackages)
}

// GetSwagger parses and validates the embedded OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(api.Document)
	if err != nil {
		return nil, fmt.Errorf("error loading OpenAPI document: %w", err)
	}
	if err := doc.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("invalid OpenAPI document: %w", err)
	}
	return doc, nil
}
